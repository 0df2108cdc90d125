// Package queue long-polls an SQS queue for S3 notifications and hands the
// referenced objects to the processor.
package queue

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/rs/zerolog"

	"github.com/hospitech/fcproc/internal/events"
	"github.com/hospitech/fcproc/internal/model"
)

const (
	maxMessages    = 10
	waitSeconds    = 20
	receiveBackoff = 5 * time.Second
)

// sqsAPI is the slice of the SQS client the consumer depends on.
type sqsAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// Processor handles one decoded batch of object references.
type Processor interface {
	ProcessBatch(ctx context.Context, refs []events.ObjectRef) (*model.ProcessSummary, error)
}

// Consumer drains a queue of S3 notifications. Messages are deleted only
// after their whole batch succeeds; failed batches stay on the queue and
// come back after the visibility timeout, where already-stored reports are
// skipped as duplicates.
type Consumer struct {
	client    sqsAPI
	queueURL  string
	processor Processor
	log       zerolog.Logger
}

func NewConsumer(client *sqs.Client, queueURL string, processor Processor, log zerolog.Logger) *Consumer {
	return &Consumer{client: client, queueURL: queueURL, processor: processor, log: log}
}

// Run polls until the context is canceled. Receive errors are logged and
// retried after a short backoff.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info().Str("queue_url", c.queueURL).Msg("consuming queue")

	for {
		if ctx.Err() != nil {
			c.log.Info().Msg("consumer stopping")
			return nil
		}

		out, err := c.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(c.queueURL),
			MaxNumberOfMessages: maxMessages,
			WaitTimeSeconds:     waitSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				c.log.Info().Msg("consumer stopping")
				return nil
			}
			c.log.Error().Err(err).Msg("receive failed")
			select {
			case <-ctx.Done():
			case <-time.After(receiveBackoff):
			}
			continue
		}

		for _, msg := range out.Messages {
			c.handleMessage(ctx, msg)
		}
	}
}

func (c *Consumer) handleMessage(ctx context.Context, msg types.Message) {
	log := c.log.With().Str("message_id", aws.ToString(msg.MessageId)).Logger()

	refs, err := events.Parse([]byte(aws.ToString(msg.Body)))
	if err != nil {
		// An unparsable body would redeliver forever; drop it.
		log.Error().Err(err).Msg("unparsable notification, deleting")
		c.delete(ctx, msg, log)
		return
	}

	if _, err := c.processor.ProcessBatch(ctx, refs); err != nil {
		log.Error().Err(err).Msg("batch incomplete, message retained for retry")
		return
	}

	c.delete(ctx, msg, log)
}

func (c *Consumer) delete(ctx context.Context, msg types.Message, log zerolog.Logger) {
	_, err := c.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		log.Warn().Err(err).Msg("delete message failed")
	}
}
