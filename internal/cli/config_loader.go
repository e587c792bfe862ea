// filepath: internal/cli/config_loader.go
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"appinfo/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "APPINFO"

// override binds a config key to its environment variables and, optionally, a flag.
// The prefixed variable is derived from the key; aliases are checked after it.
type override struct {
	key     string
	flag    string
	aliases []string
}

var overrides = []override{
	{key: "app.name", flag: "name"},
	{key: "app.version", flag: "app-version"},
	{key: "app.environment", flag: "environment", aliases: []string{"ENVIRONMENT"}},
	{key: "server.host", flag: "host"},
	{key: "server.port", flag: "port", aliases: []string{"PORT"}},
	{key: "server.read_timeout"},
	{key: "server.write_timeout"},
	{key: "server.idle_timeout"},
	{key: "server.shutdown_timeout"},
	{key: "server.rate_limit.enabled"},
	{key: "server.rate_limit.rps"},
	{key: "server.rate_limit.burst"},
	{key: "server.rate_limit.trust_proxy"},
	{key: "logging.level", flag: "log-level"},
}

// envName maps a config key to its prefixed variable, e.g. app.name -> APPINFO_APP_NAME.
func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.NewReplacer(".", "_").Replace(key))
}

// resolveConfig builds the effective configuration.
// Precedence, lowest first: defaults, TOML file, .env file, environment, flags.
func resolveConfig(options *GlobalOptions, flags *pflag.FlagSet) (*config.Config, error) {
	if err := loadEnvFile(options.EnvFile, flags.Changed("env-file")); err != nil {
		return nil, err
	}

	path := options.configPath(flags)
	cfg, err := config.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No file; rely on defaults/env/flags
			cfg = config.Default()
		} else {
			return nil, fmt.Errorf("failed to load configuration from %s: %w", path, err)
		}
	}

	v, err := newOverrideViper(flags)
	if err != nil {
		return nil, err
	}
	if err := applyOverrides(cfg, v); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.ParseAndValidate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// loadEnvFile loads a .env file without overriding variables already set.
// A missing file is only an error if it was requested explicitly.
func loadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// newOverrideViper binds every override to the environment and to the
// matching flag when the command defines it.
func newOverrideViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	for _, o := range overrides {
		names := append([]string{o.key, envName(o.key)}, o.aliases...)
		if err := v.BindEnv(names...); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", o.key, err)
		}
		if o.flag == "" {
			continue
		}
		if f := flags.Lookup(o.flag); f != nil {
			if err := v.BindPFlag(o.key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", o.flag, err)
			}
		}
	}
	return v, nil
}

// applyOverrides copies every value set in the environment or on the
// command line onto cfg. Unset keys leave the file value in place.
func applyOverrides(c *config.Config, v *viper.Viper) error {
	setString := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	setInt := func(key string, dst *int) error {
		if !v.IsSet(key) {
			return nil
		}
		// Decimal only: "010" is port 10, not octal 8.
		n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", key, v.GetString(key))
		}
		*dst = n
		return nil
	}
	setBool := func(key string, dst *bool) error {
		if !v.IsSet(key) {
			return nil
		}
		b, err := cast.ToBoolE(v.Get(key))
		if err != nil {
			return fmt.Errorf("%s: %q is not a boolean", key, v.GetString(key))
		}
		*dst = b
		return nil
	}

	setString("app.name", &c.App.Name)
	setString("app.version", &c.App.Version)
	setString("app.environment", &c.App.Environment)
	setString("server.host", &c.Server.Host)
	setString("server.read_timeout", &c.Server.ReadTimeout)
	setString("server.write_timeout", &c.Server.WriteTimeout)
	setString("server.idle_timeout", &c.Server.IdleTimeout)
	setString("server.shutdown_timeout", &c.Server.ShutdownTimeout)
	setString("logging.level", &c.Logging.Level)

	if err := setInt("server.port", &c.Server.Port); err != nil {
		return err
	}
	if err := setInt("server.rate_limit.burst", &c.Server.RateLimit.Burst); err != nil {
		return err
	}

	if err := setBool("server.rate_limit.enabled", &c.Server.RateLimit.Enabled); err != nil {
		return err
	}
	if err := setBool("server.rate_limit.trust_proxy", &c.Server.RateLimit.TrustProxy); err != nil {
		return err
	}
	if v.IsSet("server.rate_limit.rps") {
		f, err := cast.ToFloat64E(v.Get("server.rate_limit.rps"))
		if err != nil {
			return fmt.Errorf("server.rate_limit.rps: %q is not a number", v.GetString("server.rate_limit.rps"))
		}
		c.Server.RateLimit.RPS = f
	}
	return nil
}
