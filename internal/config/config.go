package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/paint-calculator/internal/calculator"
	"github.com/eugenenazirov/paint-calculator/internal/report"
	"github.com/eugenenazirov/paint-calculator/internal/survey"
)

const (
	defaultEnvFile  = ".env"
	defaultLogLevel = "info"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > config file > Environment variables (.env included) > Defaults
type Config struct {
	PaintType   string
	Format      report.Format
	MaxAttempts int
	LogLevel    string
	Rooms       []survey.Room
	RoomNames   []string
}

// fileConfig represents the YAML or TOML configuration file structure.
type fileConfig struct {
	PaintType   string        `yaml:"paint_type" toml:"paint_type"`
	Format      string        `yaml:"format" toml:"format"`
	MaxAttempts int           `yaml:"max_attempts" toml:"max_attempts"`
	LogLevel    string        `yaml:"log_level" toml:"log_level"`
	Rooms       []survey.Room `yaml:"rooms" toml:"rooms"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile  string
	EnvFile     string
	PaintType   *string
	Format      *string
	MaxAttempts *int
	LogLevel    *string
	Rooms       []string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > config file > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	envFile := defaultEnvFile
	if overrides != nil && overrides.EnvFile != "" {
		envFile = overrides.EnvFile
	}
	if err := loadEnvFile(envFile); err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	if err := applyEnvConfig(&cfg); err != nil {
		return Config{}, err
	}

	if overrides != nil && overrides.ConfigFile != "" {
		fileCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
		if err := applyFileConfig(&cfg, fileCfg); err != nil {
			return Config{}, err
		}
	}

	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		PaintType:   calculator.EmulsionPaint,
		Format:      report.FormatAuto,
		MaxAttempts: survey.DefaultMaxAttempts,
		LogLevel:    defaultLogLevel,
	}
}

// loadEnvFile exports variables from a dotenv file without overriding the
// process environment. A missing file is not an error.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// loadFromFile loads configuration from a YAML or TOML file, chosen by extension.
func loadFromFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q", ext)
	}

	return &fileCfg, nil
}

// applyFileConfig applies file configuration to the Config struct.
func applyFileConfig(cfg *Config, fileCfg *fileConfig) error {
	if fileCfg.PaintType != "" {
		cfg.PaintType = fileCfg.PaintType
	}

	if fileCfg.Format != "" {
		format, err := report.ParseFormat(fileCfg.Format)
		if err != nil {
			return err
		}
		cfg.Format = format
	}

	if fileCfg.MaxAttempts != 0 {
		cfg.MaxAttempts = fileCfg.MaxAttempts
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}

	if len(fileCfg.Rooms) > 0 {
		cfg.Rooms = fileCfg.Rooms
	}

	return nil
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) error {
	if paintType := strings.TrimSpace(os.Getenv("PAINT_TYPE")); paintType != "" {
		cfg.PaintType = paintType
	}

	if raw := strings.TrimSpace(os.Getenv("PAINT_FORMAT")); raw != "" {
		format, err := report.ParseFormat(raw)
		if err != nil {
			return fmt.Errorf("PAINT_FORMAT: %w", err)
		}
		cfg.Format = format
	}

	if raw := strings.TrimSpace(os.Getenv("PAINT_MAX_ATTEMPTS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("PAINT_MAX_ATTEMPTS: invalid integer %q", raw)
		}
		cfg.MaxAttempts = value
	}

	if level := strings.TrimSpace(os.Getenv("LOG_LEVEL")); level != "" {
		cfg.LogLevel = level
	}

	return nil
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.PaintType != nil && *overrides.PaintType != "" {
		cfg.PaintType = *overrides.PaintType
	}

	if overrides.Format != nil && *overrides.Format != "" {
		format, err := report.ParseFormat(*overrides.Format)
		if err != nil {
			return fmt.Errorf("parse format: %w", err)
		}
		cfg.Format = format
	}

	if overrides.MaxAttempts != nil {
		cfg.MaxAttempts = *overrides.MaxAttempts
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = *overrides.LogLevel
	}

	if len(overrides.Rooms) > 0 {
		cfg.RoomNames = overrides.Rooms
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if _, ok := calculator.DefaultCoverageTable().Lookup(cfg.PaintType); !ok {
		return fmt.Errorf("default paint type: %w", &calculator.UnknownPaintTypeError{PaintType: cfg.PaintType})
	}
	if cfg.MaxAttempts < 1 {
		return fmt.Errorf("max attempts must be >= 1, got %d", cfg.MaxAttempts)
	}
	for i, room := range cfg.Rooms {
		if strings.TrimSpace(room.Name) == "" {
			return fmt.Errorf("room %d: name cannot be empty", i+1)
		}
	}
	return nil
}
