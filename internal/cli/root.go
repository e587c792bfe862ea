// filepath: internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"appinfo/internal/config"
	"appinfo/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	defaultConfigPath = "config.toml"
	defaultEnvFile    = ".env"

	// skipConfigAnnotation marks commands that run without a resolved configuration.
	skipConfigAnnotation = "appinfo/skip-config"
)

type GlobalOptions struct {
	CfgFilePath string
	EnvFile     string
	LogLevel    string

	Logger *logrus.Logger
	Conf   *config.Config
}

func NewRootCMD() *cobra.Command {

	globalOptions := &GlobalOptions{}

	rootCMD := &cobra.Command{
		Use:   "appinfo",
		Short: "Application info service",
		Long:  "Serves static application metadata (name, version, environment) resolved from configuration.",
		// PersistentPreRunE loads the configuration before any command runs.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfigAnnotation] == "true" {
				return nil
			}
			return globalOptions.initialize(cmd)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// register global flags
	globalOptions.registerFlags(rootCMD)

	// add subcommands
	rootCMD.AddCommand(NewServeCommand(globalOptions))
	rootCMD.AddCommand(NewInfoCommand(globalOptions))
	rootCMD.AddCommand(NewConfigCommand(globalOptions))

	return rootCMD
}

func (options *GlobalOptions) registerFlags(cmd *cobra.Command) {
	// flags that can be used for each command
	cmd.PersistentFlags().StringVar(&options.CfgFilePath, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: APPINFO_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&options.EnvFile, "env-file", defaultEnvFile, "Path to a .env file loaded before reading the environment.")
	cmd.PersistentFlags().StringVar(&options.LogLevel, "log-level", "", "Logging level (trace, debug, info, warn, error). (Env: APPINFO_LOGGING_LEVEL)")
}

// registerInfoFlags adds the flags that override the [app] section.
func registerInfoFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Application name. (Env: APPINFO_APP_NAME)")
	cmd.Flags().String("app-version", "", "Application version. (Env: APPINFO_APP_VERSION)")
	cmd.Flags().String("environment", "", "Deployment environment. (Env: APPINFO_APP_ENVIRONMENT or ENVIRONMENT)")
}

// registerServerFlags adds the flags that override the [server] listen address.
func registerServerFlags(cmd *cobra.Command) {
	cmd.Flags().String("host", "", "Host interface for the HTTP server. (Env: APPINFO_SERVER_HOST)")
	cmd.Flags().Int("port", 0, "Port for the HTTP server. (Env: APPINFO_SERVER_PORT or PORT)")
}

// initialize resolves the configuration and sets up logging.
func (options *GlobalOptions) initialize(cmd *cobra.Command) error {
	cfg, err := resolveConfig(options, cmd.Flags())
	if err != nil {
		return err
	}
	options.Conf = cfg

	logging.Init(cfg.Logging.Level)
	options.Logger = logging.Log
	return nil
}

// configPath returns the config file path. APPINFO_CONFIG_PATH applies
// unless --config_path was given explicitly.
func (options *GlobalOptions) configPath(flags *pflag.FlagSet) string {
	if envPath := os.Getenv("APPINFO_CONFIG_PATH"); envPath != "" && !flags.Changed("config_path") {
		return envPath
	}
	return options.CfgFilePath
}

// Execute runs the root command and exits non-zero on error.
// This is called by main.main().
func Execute() {

	rootCmd := NewRootCMD()

	// Run the command based on os.Args
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
