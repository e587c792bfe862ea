package cli

import (
	"fmt"
	"os"

	"appinfo/internal/config"
	"appinfo/internal/shared"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

func NewConfigCommand(globalOptions *GlobalOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or generate the configuration file",
	}
	configCmd.AddCommand(newConfigInitCommand(globalOptions))
	configCmd.AddCommand(newConfigShowCommand(globalOptions))
	return configCmd
}

func newConfigInitCommand(globalOptions *GlobalOptions) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a config file with all defaults to --config_path",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			// The .env file may name the config path.
			if err := loadEnvFile(globalOptions.EnvFile, cmd.Flags().Changed("env-file")); err != nil {
				return err
			}
			path := globalOptions.configPath(cmd.Flags())
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%w: %s (use --force to overwrite)", shared.ErrConfigExists, path)
			}
			if err := config.SaveConfig(path, config.Default()); err != nil {
				return fmt.Errorf("trying to save the config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file.")
	return initCmd
}

// newConfigShowCommand prints the effective configuration after every
// source has been merged.
func newConfigShowCommand(globalOptions *GlobalOptions) *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(globalOptions.Conf)
		},
	}
	registerServerFlags(showCmd)
	registerInfoFlags(showCmd)
	return showCmd
}
