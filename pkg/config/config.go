// Package config provides configuration loading and validation for the
// deskfang analyzer.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/deskfang/pkg/analysis"
)

// Sentinel validation errors.
var (
	ErrInvalidRate         = errors.New("migration requests per minute must be positive")
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrInvalidLogLevel     = errors.New("invalid log level")
)

// Default configuration values.
const (
	defaultSourceDir = "data"
	samplesDir       = "samples"
	mappingDirName   = "mapping"
	defaultLogDir    = "logs"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultOutFormat = "json"
	yamlOutputFormat = "yaml"
)

// Config holds all configuration for one deskfang run.
type Config struct {
	Source    SourceConfig    `mapstructure:"source"`
	Output    OutputConfig    `mapstructure:"output"`
	Migration MigrationConfig `mapstructure:"migration"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// SourceConfig locates the dump directory holding the three input files.
type SourceConfig struct {
	Dir     string `mapstructure:"dir"`
	Samples bool   `mapstructure:"samples"`
}

// OutputConfig controls where and how the analysis result is written.
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

// MigrationConfig holds parameters of the downstream migration.
type MigrationConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Dir    string `mapstructure:"dir"`
}

// LoadConfig loads configuration from file and environment variables.
// DESKFANG_SOURCE_DIR overrides the dump directory.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	// Set defaults.
	setDefaults(viperCfg)

	// Read config file.
	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("config")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
	}

	// Read environment variables.
	viperCfg.SetEnvPrefix("DESKFANG")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// Validate re-checks the configuration after programmatic overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}

// SourceDir resolves the dump directory: the fixed samples directory when
// sample data is selected, otherwise the configured directory.
func (c *Config) SourceDir() string {
	if c.Source.Samples {
		return samplesDir
	}

	return c.Source.Dir
}

// MappingDir resolves the output directory: the configured one when set,
// otherwise a mapping directory sibling to the source directory.
func (c *Config) MappingDir() string {
	if c.Output.Dir != "" {
		return c.Output.Dir
	}

	return filepath.Join(filepath.Dir(c.SourceDir()), mappingDirName)
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Source defaults.
	viperCfg.SetDefault("source.dir", defaultSourceDir)
	viperCfg.SetDefault("source.samples", false)

	// Output defaults.
	viperCfg.SetDefault("output.dir", "")
	viperCfg.SetDefault("output.format", defaultOutFormat)

	// Migration defaults.
	viperCfg.SetDefault("migration.requests_per_minute", analysis.DefaultRequestsPerMinute)

	// Logging defaults.
	viperCfg.SetDefault("logging.level", defaultLogLevel)
	viperCfg.SetDefault("logging.format", defaultLogFormat)
	viperCfg.SetDefault("logging.dir", defaultLogDir)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Migration.RequestsPerMinute <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, config.Migration.RequestsPerMinute)
	}

	if config.Output.Format != defaultOutFormat && config.Output.Format != yamlOutputFormat {
		return fmt.Errorf("%w: %q (expected json or yaml)", ErrInvalidOutputFormat, config.Output.Format)
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	return nil
}
