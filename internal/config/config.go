package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Store backends.
const (
	BackendDynamo   = "dynamodb"
	BackendPostgres = "postgres"
)

// Default table names, overridable per environment.
const (
	DefaultFormTable = "fc-form-data"
	DefaultJobsTable = "inference-jobs"
)

// Config holds all runtime configuration for the processor.
type Config struct {
	StoreBackend string `mapstructure:"store_backend"` // "dynamodb" or "postgres"
	DSN          string `mapstructure:"dsn"`           // postgres backend only
	AWSRegion    string `mapstructure:"aws_region"`
	FormTable    string `mapstructure:"form_table"` // processed reports table
	JobsTable    string `mapstructure:"jobs_table"` // inference job metadata table
	QueueURL     string `mapstructure:"queue_url"`  // SQS queue carrying S3 notifications
	Bucket       string `mapstructure:"bucket"`     // inference output bucket, for backfills
	LogFormat    string `mapstructure:"log_format"` // "text" or "json"
}

// Load builds a Config from defaults, an optional config file, and
// FCPROC_-prefixed environment variables, in increasing precedence.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("store_backend", BackendDynamo)
	v.SetDefault("dsn", "")
	v.SetDefault("aws_region", "")
	v.SetDefault("form_table", DefaultFormTable)
	v.SetDefault("jobs_table", DefaultJobsTable)
	v.SetDefault("queue_url", "")
	v.SetDefault("bucket", "")
	v.SetDefault("log_format", "json")

	v.SetEnvPrefix("FCPROC")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the fields every command needs.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendDynamo, BackendPostgres:
	default:
		return fmt.Errorf("unknown store backend %q (want %s or %s)",
			c.StoreBackend, BackendDynamo, BackendPostgres)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}
	if c.StoreBackend == BackendPostgres && c.DSN == "" {
		return fmt.Errorf("--dsn or FCPROC_DSN is required for the postgres backend")
	}
	return nil
}

// ValidateServe additionally requires the notification queue.
func (c *Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.QueueURL == "" {
		return fmt.Errorf("--queue-url or FCPROC_QUEUE_URL is required")
	}
	return nil
}

// ValidateWithBucket additionally requires the inference output bucket.
func (c *Config) ValidateWithBucket() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Bucket == "" {
		return fmt.Errorf("--bucket or FCPROC_BUCKET is required")
	}
	return nil
}
