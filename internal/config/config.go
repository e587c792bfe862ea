// filepath: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"appinfo/internal/shared"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Defaults for the info document. An empty value resolves to these.
const (
	DefaultAppName     = "unknown"
	DefaultAppVersion  = "1.0.0"
	DefaultEnvironment = "development"
)

const (
	defaultHost            = "0.0.0.0"
	defaultPort            = 8080
	defaultReadTimeout     = "15s"
	defaultWriteTimeout    = "15s"
	defaultIdleTimeout     = "60s"
	defaultShutdownTimeout = "10s"
	defaultRateLimitRPS    = 10
	defaultRateLimitBurst  = 20
	defaultLogLevel        = "info"
)

// Config holds the application's configuration.
type Config struct {
	App     AppConfig     `toml:"app"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

// AppConfig holds the metadata served by the info endpoint.
type AppConfig struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Environment string `toml:"environment"`
}

// ServerConfig holds the HTTP server configuration.
// Timeouts are kept as strings in the file (e.g. "15s") and parsed into Timeouts.
type ServerConfig struct {
	Host            string          `toml:"host"`
	Port            int             `toml:"port" validate:"min=1,max=65535"`
	ReadTimeout     string          `toml:"read_timeout"`
	WriteTimeout    string          `toml:"write_timeout"`
	IdleTimeout     string          `toml:"idle_timeout"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	RateLimit       RateLimitConfig `toml:"rate_limit"`

	Timeouts Timeouts `toml:"-"` // Runtime computed values
}

// Timeouts are the parsed server durations.
type Timeouts struct {
	Read     time.Duration
	Write    time.Duration
	Idle     time.Duration
	Shutdown time.Duration
}

// RateLimitConfig configures the optional per-client request limiter.
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps" validate:"gt=0"`
	Burst   int     `toml:"burst" validate:"gte=1"`

	// TrustProxy keys clients by X-Forwarded-For / X-Real-IP instead of the socket peer.
	TrustProxy bool `toml:"trust_proxy"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level string `toml:"level" validate:"oneof=trace debug info warn error"`
}

// WithDefaults returns a copy where every blank field holds its default.
func (a AppConfig) WithDefaults() AppConfig {
	if strings.TrimSpace(a.Name) == "" {
		a.Name = DefaultAppName
	}
	if strings.TrimSpace(a.Version) == "" {
		a.Version = DefaultAppVersion
	}
	if strings.TrimSpace(a.Environment) == "" {
		a.Environment = DefaultEnvironment
	}
	return a
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		App: AppConfig{}.WithDefaults(),
		Server: ServerConfig{
			Host:            defaultHost,
			Port:            defaultPort,
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			RateLimit: RateLimitConfig{
				RPS:   defaultRateLimitRPS,
				Burst: defaultRateLimitBurst,
			},
		},
		Logging: LoggingConfig{Level: defaultLogLevel},
	}
}

// ApplyDefaults replaces blank strings with their defaults.
// Numeric fields are seeded by Default before any source is read, so a zero
// left in them was set explicitly and is left for validation to reject.
func (c *Config) ApplyDefaults() {
	c.App = c.App.WithDefaults()

	if strings.TrimSpace(c.Server.Host) == "" {
		c.Server.Host = defaultHost
	}
	if strings.TrimSpace(c.Server.ReadTimeout) == "" {
		c.Server.ReadTimeout = defaultReadTimeout
	}
	if strings.TrimSpace(c.Server.WriteTimeout) == "" {
		c.Server.WriteTimeout = defaultWriteTimeout
	}
	if strings.TrimSpace(c.Server.IdleTimeout) == "" {
		c.Server.IdleTimeout = defaultIdleTimeout
	}
	if strings.TrimSpace(c.Server.ShutdownTimeout) == "" {
		c.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// LoadConfig loads the configuration from a TOML file.
// The file is decoded over Default, so keys it omits keep their defaults.
func LoadConfig(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the configuration to a TOML file.
// Used by `config init` to generate a starting config.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrorCreateFile, err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrorEncodeFile, err)
	}
	return nil
}

// ParseAndValidate processes configuration strings into runtime values
// and checks every field against its constraints.
func (c *Config) ParseAndValidate() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	if err := newValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", shared.ErrInvalidConfig, describe(verrs))
		}
		return fmt.Errorf("%w: %v", shared.ErrInvalidConfig, err)
	}

	var err error
	t := &c.Server.Timeouts
	if t.Read, err = parseDuration("server.read_timeout", c.Server.ReadTimeout); err != nil {
		return err
	}
	if t.Write, err = parseDuration("server.write_timeout", c.Server.WriteTimeout); err != nil {
		return err
	}
	if t.Idle, err = parseDuration("server.idle_timeout", c.Server.IdleTimeout); err != nil {
		return err
	}
	if t.Shutdown, err = parseDuration("server.shutdown_timeout", c.Server.ShutdownTimeout); err != nil {
		return err
	}
	return nil
}

// newValidator reports field names the way they appear in the TOML file.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("%s=%v violates %s", field, fe.Value(), rule))
	}
	return strings.Join(msgs, "; ")
}

func parseDuration(field, s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", shared.ErrInvalidDuration, field, s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %q", shared.ErrInvalidDuration, field, s)
	}
	return d, nil
}
