package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "github.com/CHAUHANRUDRA24/UIDAI-Data-Hackathon-2026/internal/errors"
)

// Config is the complete preprocessor configuration.
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig controls source discovery.
type InputConfig struct {
	// Dir is scanned non-recursively for *.csv and *.zip files.
	Dir string `yaml:"dir" envconfig:"DIR" validate:"required"`
}

// ReportConfig controls the emitted artifacts.
type ReportConfig struct {
	OutputDir    string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
	SnapshotFile string `yaml:"snapshot_file" envconfig:"SNAPSHOT_FILE" validate:"required"`
	LoaderFile   string `yaml:"loader_file" envconfig:"LOADER_FILE" validate:"required"`
	SummaryCSV   string `yaml:"summary_csv" envconfig:"SUMMARY_CSV" validate:"required"`
	// TopN is the number of leading regions shown in the console summary.
	TopN int `yaml:"top_n" envconfig:"TOP_N" validate:"min=1"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Dir: ".",
		},
		Report: ReportConfig{
			OutputDir:    ".",
			SnapshotFile: DefaultSnapshotFile,
			LoaderFile:   DefaultLoaderFile,
			SummaryCSV:   DefaultSummaryCSV,
			TopN:         DefaultTopN,
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Output:   "file",
			FilePath: DefaultLogFile,
		},
	}
}

// Load builds the configuration from, in increasing precedence: built-in
// defaults, an optional config.yaml in the working directory, and UIDAI_*
// environment variables. The result is validated before being returned.
func Load() (*Config, error) {
	cfg := Default()

	if path := findConfigFile(); path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeConfigInvalid,
				fmt.Sprintf("failed to load config file %s", path))
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeConfigInvalid, "failed to load config from environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return apperrors.Wrap(err, apperrors.CodeConfigInvalid, "config validation failed")
	}
	return nil
}

// loadFromFile overlays YAML values onto cfg; fields absent from the file
// keep their current values.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// findConfigFile returns the path of the config file if one exists.
func findConfigFile() string {
	locations := []string{
		ConfigFileName,
		"configs/" + ConfigFileName,
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}
