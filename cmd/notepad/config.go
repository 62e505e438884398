// ABOUTME: Config subcommands to inspect and initialize settings.
// ABOUTME: Prints the effective config or writes defaults to the XDG path.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harper/notepad/internal/config"
	"github.com/harper/notepad/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Inspect or create the notepad configuration file.

Settings are read from $XDG_CONFIG_HOME/notepad/config.yaml and may be
overridden by NOTEPAD_* environment variables or a .env file.

Commands:
  show  - Print the effective configuration
  init  - Write the default configuration file`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFilePath(cmd)
		out := cmd.OutOrStdout()

		source := color.New(color.Faint).Sprint("(defaults)")
		if _, err := os.Stat(path); err == nil {
			source = path
		}
		fmt.Fprintf(out, "# config: %s\n", source)

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Annotations: map[string]string{
		skipConfigAnnotation: "true",
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := configFilePath(cmd)

		_, err := os.Stat(path)
		switch {
		case err == nil && !force:
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		case err != nil && !errors.Is(err, os.ErrNotExist):
			return fmt.Errorf("failed to stat config: %w", err)
		}

		if err := config.SaveConfig(config.DefaultConfig(), path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Wrote "+path))
		return nil
	},
}

func configFilePath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.ConfigPath()
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}
