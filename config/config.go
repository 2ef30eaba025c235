package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// DefaultConfigFile is read when CONFIG_FILE is unset and the file exists
const DefaultConfigFile = "netflix_analysis.yaml"

// Config holds all application-level configuration
type Config struct {
	// Input
	DatasetPath string `yaml:"dataset_path" envconfig:"DATASET_PATH" validate:"required"`

	// Reporting
	HeadRows  int `yaml:"head_rows" envconfig:"HEAD_ROWS" validate:"min=1"`
	TopN      int `yaml:"top_n" envconfig:"TOP_N" validate:"min=1"`
	ChartTopN int `yaml:"chart_top_n" envconfig:"CHART_TOP_N" validate:"min=1"`

	// Charts
	ChartDir        string        `yaml:"chart_dir" envconfig:"CHART_DIR" validate:"required"`
	AssetsHost      string        `yaml:"chart_assets_host" envconfig:"CHART_ASSETS_HOST"`
	ChartSnapshot   bool          `yaml:"chart_snapshot" envconfig:"CHART_SNAPSHOT"`
	SnapshotTimeout time.Duration `yaml:"snapshot_timeout" envconfig:"SNAPSHOT_TIMEOUT" validate:"gt=0"`
	SnapshotSettle  time.Duration `yaml:"snapshot_settle" envconfig:"SNAPSHOT_SETTLE" validate:"gte=0"`

	// Optional sinks, disabled when empty
	ReportDir   string `yaml:"report_dir" envconfig:"REPORT_DIR"`
	DatabaseURL string `yaml:"database_url" envconfig:"DATABASE_URL"`
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`

	// Logging
	LogLevel      string `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFile       string `yaml:"log_file" envconfig:"LOG_FILE"`
	LogMaxSizeMB  int    `yaml:"log_max_size_mb" envconfig:"LOG_MAX_SIZE_MB" validate:"min=1"`
	LogMaxBackups int    `yaml:"log_max_backups" envconfig:"LOG_MAX_BACKUPS" validate:"min=0"`
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("CONFIG_FILE")
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	if err := loadFile(path, cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Only variables that are actually set override the file
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration an unconfigured run uses. Load starts
// from it, so keys absent from the file and the environment keep these values
// and an explicit zero is kept as zero.
func Default() *Config {
	return &Config{
		DatasetPath:     "netflix_titles.csv",
		HeadRows:        5,
		TopN:            5,
		ChartTopN:       10,
		ChartDir:        "charts",
		SnapshotTimeout: 30 * time.Second,
		SnapshotSettle:  1500 * time.Millisecond,
		LogLevel:        "info",
		LogMaxSizeMB:    10,
		LogMaxBackups:   3,
	}
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
