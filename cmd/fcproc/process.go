package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hospitech/fcproc/internal/events"
	"github.com/hospitech/fcproc/internal/exitcode"
	"github.com/hospitech/fcproc/internal/logging"
)

var processEventFile string

var processCmd = &cobra.Command{
	Use:   "process [key ...]",
	Short: "Process specific output objects from the inference bucket",
	Long: `Process fetches, classifies and stores the named objects in one shot.

Keys are resolved against --bucket. Alternatively --event replays a saved
S3 notification body, taking bucket and keys from the notification itself.`,
	Args: cobra.ArbitraryArgs,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVar(&processEventFile, "event", "", "replay a saved S3 notification JSON file")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if processEventFile != "" && len(args) > 0 {
		log.Error().Msg("--event cannot be combined with key arguments")
		os.Exit(exitcode.UsageError)
	}
	if processEventFile == "" && len(args) == 0 {
		log.Error().Msg("at least one key argument or --event is required")
		os.Exit(exitcode.UsageError)
	}

	cfgErr := cfg.ValidateWithBucket()
	if processEventFile != "" {
		cfgErr = cfg.Validate()
	}
	if cfgErr != nil {
		log.Error().Err(cfgErr).Msg("config validation failed")
		os.Exit(exitcode.ValidationError)
	}

	refs, err := processRefs(args)
	if err != nil {
		log.Error().Err(err).Msg("event decode failed")
		os.Exit(exitcode.UsageError)
	}

	awsCfg, err := loadAWSConfig(ctx)
	if err != nil {
		log.Error().Err(err).Msg("aws configuration failed")
		os.Exit(exitcode.ConnError)
	}

	proc, cleanup, err := newProcessor(ctx, awsCfg, log)
	if err != nil {
		log.Error().Err(err).Msg("store connection failed")
		os.Exit(exitcode.ConnError)
	}
	defer cleanup()

	summary, err := proc.ProcessBatch(ctx, refs)
	if err != nil {
		log.Error().Err(err).Msg("processing incomplete")
		if summary.Processed > 0 {
			os.Exit(exitcode.PartialSuccess)
		}
		os.Exit(exitcode.ProcessError)
	}

	fmt.Printf("Processed %d object(s), skipped %d (%.1fs)\n",
		summary.Processed, summary.Skipped, summary.Duration.Seconds())
	return nil
}

// processRefs resolves the object references named by the invocation,
// either from the replayed notification file or from positional keys.
func processRefs(args []string) ([]events.ObjectRef, error) {
	if processEventFile != "" {
		body, err := os.ReadFile(processEventFile)
		if err != nil {
			return nil, fmt.Errorf("read event file: %w", err)
		}
		return events.Parse(body)
	}

	refs := make([]events.ObjectRef, 0, len(args))
	for _, key := range args {
		refs = append(refs, events.ObjectRef{Bucket: cfg.Bucket, Key: key})
	}
	return refs, nil
}
