package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config struct to hold the configuration settings
type Config struct {
	Database      DatabaseConfig      `yaml:"database"`
	Course        CourseConfig        `yaml:"course"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// DatabaseConfig holds the connection settings for stored matches.
type DatabaseConfig struct {
	Driver     string `yaml:"driver" validate:"oneof=postgres sqlite"`
	DSN        string `yaml:"dsn"`
	Host       string `yaml:"host" validate:"required_without=DSN"`
	Port       int    `yaml:"port" validate:"min=1,max=65535"`
	Name       string `yaml:"name"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	SSLMode    string `yaml:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	Table      string `yaml:"table" validate:"required"`
	SQLitePath string `yaml:"sqlite_path"`
}

// CourseConfig holds the hole difficulty ranks used for stored matches.
type CourseConfig struct {
	HoleHandicaps []int `yaml:"hole_handicaps" validate:"min=1,max=18,unique,dive,min=1"`
}

// ObservabilityConfig holds configuration for observability components
type ObservabilityConfig struct {
	MetricsPushURL string `yaml:"metrics_push_url" validate:"omitempty,url"`
	MetricsJob     string `yaml:"metrics_job"`
}

// Default returns the configuration used when no file or env var says otherwise.
func Default() *Config {
	ranks := make([]int, 18)
	for i := range ranks {
		ranks[i] = i + 1
	}
	return &Config{
		Database: DatabaseConfig{
			Driver:     "postgres",
			Host:       "127.0.0.1",
			Port:       5432,
			Name:       "golf_db",
			User:       "postgres",
			SSLMode:    "disable",
			Table:      "scores",
			SQLitePath: "golf.db",
		},
		Course: CourseConfig{HoleHandicaps: ranks},
		Observability: ObservabilityConfig{
			MetricsJob: "golfscore",
		},
	}
}

// LoadConfig loads the configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Try reading configuration from the file first
	data, err := os.ReadFile(filename)
	if err != nil {
		if filename != "" && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// If the file is not found, try loading from environment variables
		return loadConfigFromEnv()
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFromEnv loads the configuration from environment variables.
func loadConfigFromEnv() (*Config, error) {
	cfg := Default()
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("GOLF_DB_DRIVER"); v != "" {
		cfg.Database.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("GOLF_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("GOLF_DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid GOLF_DB_PORT value: %v", err)
		}
		cfg.Database.Port = port
	}
	if v := os.Getenv("GOLF_DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("GOLF_DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("GOLF_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("GOLF_DB_TABLE"); v != "" {
		cfg.Database.Table = v
	}
	if v := os.Getenv("GOLF_DB_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("METRICS_PUSH_URL"); v != "" {
		cfg.Observability.MetricsPushURL = v
	}
	return nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ConnString returns the connection string for the configured driver. An explicit
// dsn or DATABASE_URL wins over the individual fields.
func (d DatabaseConfig) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	if d.Driver == "sqlite" {
		return d.SQLitePath
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	if d.User != "" {
		if d.Password != "" {
			u.User = url.UserPassword(d.User, d.Password)
		} else {
			u.User = url.User(d.User)
		}
	}
	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {d.SSLMode}}.Encode()
	}
	return u.String()
}
