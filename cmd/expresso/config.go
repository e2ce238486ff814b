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

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cowdogmoo/expresso/config"
	"github.com/cowdogmoo/expresso/logging"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage expresso configuration",
	Long: `Manage expresso's global configuration file.

The configuration file stores the template repository, git and install
commands, and the values written into generated env files.

Configuration precedence (highest to lowest):
1. CLI flags
2. Environment variables (EXPRESSO_*)
3. Configuration file (~/.expresso/config.yaml)
4. Built-in defaults`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration file",
	Long: `Create ~/.config/expresso/config.yaml with default values.
An existing file is only overwritten with --force.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration after merging defaults, the config file, environment variables and CLI flags.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configForce bool

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil && !configForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
	}

	if err := os.MkdirAll(configDir, config.DirPermReadWriteExec); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, config.FilePermReadWrite); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	logging.InfoContext(cmd.Context(), "Configuration file created at: %s", configPath)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(configFromContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "# Current Expresso Configuration")
	_, _ = fmt.Fprintln(out, "# Sources: defaults -> config file -> environment variables -> CLI flags")
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprint(out, string(data))

	if path := usedConfigFile(); path != "" {
		_, _ = fmt.Fprintf(out, "\n# Config file: %s\n", path)
	} else {
		_, _ = fmt.Fprintln(out, "\n# No config file found (using defaults)")
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	if path := usedConfigFile(); path != "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
		return err
	}

	configDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (not created yet)\n", filepath.Join(configDir, "config.yaml"))
	logging.InfoContext(cmd.Context(), "Run 'expresso config init' to create the config file")
	return err
}

func usedConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.FindConfigFile()
}
