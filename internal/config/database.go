package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names read by LoadDatabaseConfig.
const (
	EnvDBHost            = "DB_HOST"
	EnvDBUser            = "DB_USER"
	EnvDBPass            = "DB_PASS"
	EnvDBName            = "DB_NAME"
	EnvDBPort            = "DB_PORT"
	EnvDBSSLMode         = "DB_SSLMODE"
	EnvDBConnectTimeout  = "DB_CONNECT_TIMEOUT"
	EnvDBConnMaxLifetime = "DB_CONN_MAX_LIFETIME"
	EnvDBConnMaxIdleTime = "DB_CONN_MAX_IDLE_TIME"
)

// DotEnvFile is the file LoadDatabaseConfig reads before the process environment.
// Variables already present in the environment are never overwritten by it.
var DotEnvFile = ".env"

// DatabaseConfig holds everything needed to open the news database.
// It is built once at startup and passed explicitly to db.Open.
type DatabaseConfig struct {
	// Host, User, Password and Name have no defaults. Empty values are
	// handed to the driver as-is.
	Host     string `yaml:"host"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`

	// Port of the PostgreSQL server. Default: 5432
	Port int `yaml:"port"`

	// SSLMode is passed through as the sslmode DSN parameter. Default: "disable"
	SSLMode string `yaml:"sslmode"`

	// ConnectTimeout bounds the initial connect + ping. Default: 5s
	ConnectTimeout time.Duration `yaml:"connect_timeout"`

	// ConnMaxLifetime is the maximum lifetime of the pinned connection. Default: 1h
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`

	// ConnMaxIdleTime is how long the connection may sit idle. Default: 30m
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// DefaultDatabaseConfig returns a config with every optional setting at its default.
func DefaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Port:            5432,
		SSLMode:         "disable",
		ConnectTimeout:  5 * time.Second,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// LoadDatabaseConfig loads the database configuration from the environment.
// A .env file in the working directory is loaded first when present.
func LoadDatabaseConfig() (DatabaseConfig, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return DatabaseConfig{}, err
	}

	cfg := DefaultDatabaseConfig()
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid database configuration: %w", err)
	}
	return cfg, nil
}

// LoadDatabaseConfigFile loads the configuration from a YAML file.
// Environment variables that are set take precedence over the file.
// The path is expected to come from a trusted source (command-line flag).
func LoadDatabaseConfigFile(path string) (DatabaseConfig, error) {
	// #nosec G304 -- path comes from a CLI flag, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return DatabaseConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var file struct {
		Database DatabaseConfig `yaml:"database"`
	}
	file.Database = DefaultDatabaseConfig()
	if err := yaml.Unmarshal(data, &file); err != nil {
		return DatabaseConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := loadDotEnv(DotEnvFile); err != nil {
		return DatabaseConfig{}, err
	}

	cfg := file.Database
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return DatabaseConfig{}, fmt.Errorf("invalid database configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the settings that have a well-defined valid range.
// Connection identity (host, user, password, name) is left to the driver.
func (c DatabaseConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535", EnvDBPort)
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("%s must be positive", EnvDBConnectTimeout)
	}
	if c.ConnMaxLifetime < 0 {
		return fmt.Errorf("%s must not be negative", EnvDBConnMaxLifetime)
	}
	if c.ConnMaxIdleTime < 0 {
		return fmt.Errorf("%s must not be negative", EnvDBConnMaxIdleTime)
	}
	return nil
}

// DSN renders the config as a postgres:// connection URL.
// Credentials are escaped so passwords containing ':' or '@' survive.
// A Host starting with '/' is a Unix socket directory and goes into the
// host query parameter, since it cannot be part of the URL authority.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Path:   "/" + c.Name,
	}

	q := url.Values{}
	if strings.HasPrefix(c.Host, "/") {
		q.Set("host", c.Host)
		q.Set("port", strconv.Itoa(c.Port))
	} else {
		u.Host = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	}
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	if secs := int(c.ConnectTimeout / time.Second); secs > 0 {
		q.Set("connect_timeout", strconv.Itoa(secs))
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// LogValue implements slog.LogValuer. The password is never logged.
func (c DatabaseConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", c.Host),
		slog.Int("port", c.Port),
		slog.String("user", c.User),
		slog.String("name", c.Name),
		slog.String("sslmode", c.SSLMode),
		slog.Duration("connect_timeout", c.ConnectTimeout),
	)
}

// applyEnv overlays every variable that is set onto cfg.
func applyEnv(cfg *DatabaseConfig) {
	if v, ok := os.LookupEnv(EnvDBHost); ok {
		cfg.Host = v
	}
	if v, ok := os.LookupEnv(EnvDBUser); ok {
		cfg.User = v
	}
	if v, ok := os.LookupEnv(EnvDBPass); ok {
		cfg.Password = v
	}
	if v, ok := os.LookupEnv(EnvDBName); ok {
		cfg.Name = v
	}

	cfg.Port = getEnvInt(EnvDBPort, cfg.Port)
	cfg.SSLMode = getEnvOrDefault(EnvDBSSLMode, cfg.SSLMode)
	cfg.ConnectTimeout = getEnvDuration(EnvDBConnectTimeout, cfg.ConnectTimeout)
	cfg.ConnMaxLifetime = getEnvDuration(EnvDBConnMaxLifetime, cfg.ConnMaxLifetime)
	cfg.ConnMaxIdleTime = getEnvDuration(EnvDBConnMaxIdleTime, cfg.ConnMaxIdleTime)
}

// loadDotEnv loads path into the process environment. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	slog.Debug("loaded environment file", slog.String("path", path))
	return nil
}
