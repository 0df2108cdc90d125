package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/spf13/cobra"

	"github.com/hospitech/fcproc/internal/exitcode"
	"github.com/hospitech/fcproc/internal/logging"
	"github.com/hospitech/fcproc/internal/queue"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Consume S3 notifications from SQS until interrupted",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := cfg.ValidateServe(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.ValidationError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	consumer := queue.NewConsumer(sqs.NewFromConfig(awsCfg), cfg.QueueURL, proc, log)
	return consumer.Run(ctx)
}
