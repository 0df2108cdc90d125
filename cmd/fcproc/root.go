package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hospitech/fcproc/internal/config"
)

var (
	cfgFile string
	flags   config.Config
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fcproc",
	Short: "FC form processor for async inference outputs",
	Long: `Consumes async inference outputs (.out JSON), classifies each record into
a billing template, maps it to a render-ready cost estimate, and stores the
report with at-most-once semantics.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Path to a YAML config file")
	pf.StringVar(&flags.StoreBackend, "store-backend", config.BackendDynamo, "Report store backend: dynamodb or postgres")
	pf.StringVar(&flags.DSN, "dsn", "", "Postgres connection string (postgres backend)")
	pf.StringVar(&flags.AWSRegion, "aws-region", "", "AWS region override")
	pf.StringVar(&flags.FormTable, "form-table", config.DefaultFormTable, "Table holding processed reports")
	pf.StringVar(&flags.JobsTable, "jobs-table", config.DefaultJobsTable, "Table holding inference job metadata")
	pf.StringVar(&flags.QueueURL, "queue-url", "", "SQS queue URL carrying S3 notifications")
	pf.StringVar(&flags.Bucket, "bucket", "", "Inference output bucket")
	pf.StringVar(&flags.LogFormat, "log-format", "json", "Log format: text or json")
}

// loadConfig merges defaults, the optional config file, FCPROC_ environment
// variables, and explicitly set flags, in that order of precedence.
func loadConfig(cmd *cobra.Command, args []string) error {
	// A .env file is optional; deployments set the environment directly.
	_ = godotenv.Load()

	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	set := rootCmd.PersistentFlags().Changed
	if set("store-backend") {
		loaded.StoreBackend = flags.StoreBackend
	}
	if set("dsn") {
		loaded.DSN = flags.DSN
	}
	if set("aws-region") {
		loaded.AWSRegion = flags.AWSRegion
	}
	if set("form-table") {
		loaded.FormTable = flags.FormTable
	}
	if set("jobs-table") {
		loaded.JobsTable = flags.JobsTable
	}
	if set("queue-url") {
		loaded.QueueURL = flags.QueueURL
	}
	if set("bucket") {
		loaded.Bucket = flags.Bucket
	}
	if set("log-format") {
		loaded.LogFormat = flags.LogFormat
	}

	cfg = loaded
	return nil
}
