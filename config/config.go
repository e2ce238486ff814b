/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

// Package config loads the user-level expresso configuration.
// Values resolve in the order: flags > EXPRESSO_* env vars > config file > defaults.
package config

import (
	"github.com/spf13/viper"
)

// DefaultTemplateURL is the boilerplate cloned into every new project.
const DefaultTemplateURL = "https://github.com/danielcoker/node-express-boilerplate.git"

// Config represents the global expresso configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Template TemplateConfig `mapstructure:"template" yaml:"template"`
	Git      GitConfig      `mapstructure:"git" yaml:"git"`
	Install  InstallConfig  `mapstructure:"install" yaml:"install"`
	Env      EnvConfig      `mapstructure:"env" yaml:"env"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// TemplateConfig selects the boilerplate repository.
// An empty Ref clones the remote's default branch.
type TemplateConfig struct {
	URL string `mapstructure:"url" yaml:"url"`
	Ref string `mapstructure:"ref" yaml:"ref"`
}

// GitConfig configures the git invocations made after the clone.
type GitConfig struct {
	Binary        string `mapstructure:"binary" yaml:"binary"`
	CommitMessage string `mapstructure:"commit_message" yaml:"commit_message"`
}

// InstallConfig holds the dependency install command, program first.
type InstallConfig struct {
	Command []string `mapstructure:"command" yaml:"command"`
}

// EnvConfig describes how the project's env file is produced.
type EnvConfig struct {
	Example      string `mapstructure:"example" yaml:"example"`
	Target       string `mapstructure:"target" yaml:"target"`
	NodeEnv      string `mapstructure:"node_env" yaml:"node_env"`
	SecretLength int    `mapstructure:"secret_length" yaml:"secret_length"`
	TokenExpire  string `mapstructure:"token_expire" yaml:"token_expire"`
}

// Load reads the global configuration file.
// Returns a Config with defaults if no config file exists.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	for _, dir := range SearchPaths() {
		v.AddConfigPath(dir)
	}

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return unmarshal(v)
}

// LoadFromPath loads configuration from a specific file path
func LoadFromPath(path string) (*Config, error) {
	v := newViper()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg, err := unmarshal(newViper())
	if err != nil {
		return &Config{}
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("EXPRESSO")
	v.AutomaticEnv()
	bindEnvVars(v)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "color")

	v.SetDefault("template.url", DefaultTemplateURL)
	v.SetDefault("template.ref", "")

	v.SetDefault("git.binary", "git")
	v.SetDefault("git.commit_message", "Initial commit")

	v.SetDefault("install.command", []string{"npm", "install"})

	v.SetDefault("env.example", ".env.example")
	v.SetDefault("env.target", ".env")
	v.SetDefault("env.node_env", "development")
	v.SetDefault("env.secret_length", 40)
	v.SetDefault("env.token_expire", "30d")
}

// bindEnvVars explicitly binds environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("log.level", "EXPRESSO_LOG_LEVEL")
	_ = v.BindEnv("log.format", "EXPRESSO_LOG_FORMAT")

	_ = v.BindEnv("template.url", "EXPRESSO_TEMPLATE_URL")
	_ = v.BindEnv("template.ref", "EXPRESSO_TEMPLATE_REF")

	_ = v.BindEnv("git.binary", "EXPRESSO_GIT_BINARY")
	_ = v.BindEnv("git.commit_message", "EXPRESSO_GIT_COMMIT_MESSAGE")

	_ = v.BindEnv("install.command", "EXPRESSO_INSTALL_COMMAND")

	_ = v.BindEnv("env.example", "EXPRESSO_ENV_EXAMPLE")
	_ = v.BindEnv("env.target", "EXPRESSO_ENV_TARGET")
	_ = v.BindEnv("env.node_env", "EXPRESSO_ENV_NODE_ENV")
	_ = v.BindEnv("env.secret_length", "EXPRESSO_ENV_SECRET_LENGTH")
	_ = v.BindEnv("env.token_expire", "EXPRESSO_ENV_TOKEN_EXPIRE")
}
