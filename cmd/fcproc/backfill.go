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

var backfillPrefix string

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Reprocess every output object under a key prefix",
	Long: `Lists the inference output bucket and runs every .out object through the
processor. Objects whose reports already exist are skipped by the store's
conditional write, so a backfill never overwrites earlier results.`,
	RunE: runBackfill,
}

func init() {
	backfillCmd.Flags().StringVar(&backfillPrefix, "prefix", "", "Key prefix to scan")
	rootCmd.AddCommand(backfillCmd)
}

func runBackfill(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateWithBucket(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.ValidationError)
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

	keys, err := proc.Blobs.List(ctx, cfg.Bucket, backfillPrefix)
	if err != nil {
		log.Error().Err(err).Msg("bucket listing failed")
		os.Exit(exitcode.ProcessError)
	}

	refs := make([]events.ObjectRef, 0, len(keys))
	for _, key := range keys {
		refs = append(refs, events.ObjectRef{Bucket: cfg.Bucket, Key: key})
	}
	log.Info().Int("objects", len(refs)).Str("prefix", backfillPrefix).Msg("starting backfill")

	summary, err := proc.ProcessBatch(ctx, refs)
	if err != nil {
		log.Error().Err(err).Msg("backfill incomplete")
		if summary.Processed > 0 {
			os.Exit(exitcode.PartialSuccess)
		}
		os.Exit(exitcode.ProcessError)
	}

	fmt.Printf("Backfill complete: %d processed, %d skipped (%.1fs)\n",
		summary.Processed, summary.Skipped, summary.Duration.Seconds())
	return nil
}
