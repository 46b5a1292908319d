// Package config loads service settings from defaults, an optional YAML file
// and INVOICEFLOW_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers accepted for store.driver.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config is the full service configuration.
type Config struct {
	Server  Server  `mapstructure:"server"`
	Store   Store   `mapstructure:"store"`
	Log     Log     `mapstructure:"log"`
	Tracing Tracing `mapstructure:"tracing"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// RequestTimeout bounds each request's context. Zero disables it.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

// Addr returns host:port.
func (s Server) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type Store struct {
	Driver   string `mapstructure:"driver"`
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type Tracing struct {
	Host        string  `mapstructure:"host"`
	Probability float64 `mapstructure:"probability"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.request_timeout", 0)
	v.SetDefault("store.driver", DriverMongo)
	v.SetDefault("store.uri", "mongodb://localhost:27017")
	v.SetDefault("store.database", "invoice-demo")
	v.SetDefault("log.level", "info")
	v.SetDefault("tracing.host", "")
	v.SetDefault("tracing.probability", 1.0)
}

// Load reads configuration. path may be empty.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("INVOICEFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	var errs []error
	switch c.Store.Driver {
	case DriverMongo, DriverPostgres, DriverRedis:
		if c.Store.URI == "" {
			errs = append(errs, fmt.Errorf("store.uri is required for driver %q", c.Store.Driver))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown store.driver %q", c.Store.Driver))
	}
	if c.Store.Database == "" {
		errs = append(errs, errors.New("store.database is required"))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Server.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}
	if c.Tracing.Probability < 0 || c.Tracing.Probability > 1 {
		errs = append(errs, fmt.Errorf("tracing.probability %v not in [0,1]", c.Tracing.Probability))
	}
	return errors.Join(errs...)
}
