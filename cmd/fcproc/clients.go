package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/hospitech/fcproc/internal/blobstore"
	"github.com/hospitech/fcproc/internal/config"
	"github.com/hospitech/fcproc/internal/db"
	"github.com/hospitech/fcproc/internal/pipeline"
	"github.com/hospitech/fcproc/internal/store"
)

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return awsCfg, nil
}

// newProcessor wires the S3 blob store and the configured report store into
// a processor. The returned cleanup releases the postgres pool when one was
// opened.
func newProcessor(ctx context.Context, awsCfg aws.Config, log zerolog.Logger) (*pipeline.Processor, func(), error) {
	blobs := blobstore.NewS3(s3.NewFromConfig(awsCfg))

	if cfg.StoreBackend == config.BackendPostgres {
		pool, err := db.NewPool(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		pg := store.NewPostgres(pool)
		return pipeline.New(blobs, pg, pg, log), pool.Close, nil
	}

	dyn := store.NewDynamo(dynamodb.NewFromConfig(awsCfg), cfg.FormTable, cfg.JobsTable)
	return pipeline.New(blobs, dyn, dyn, log), func() {}, nil
}
