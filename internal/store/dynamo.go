package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hospitech/fcproc/internal/model"
)

// dynamoAPI is the slice of the DynamoDB client the store depends on.
type dynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// Dynamo persists reports in a DynamoDB table keyed by job_id and resolves
// FA numbers from the inference-jobs table.
type Dynamo struct {
	client      dynamoAPI
	reportTable string
	jobsTable   string
}

var (
	_ ReportStore = (*Dynamo)(nil)
	_ JobStore    = (*Dynamo)(nil)
)

// NewDynamo wraps a DynamoDB client with the two table names.
func NewDynamo(client *dynamodb.Client, reportTable, jobsTable string) *Dynamo {
	return &Dynamo{client: client, reportTable: reportTable, jobsTable: jobsTable}
}

// PutIfAbsent writes the report with a condition on the job_id key, so a
// replayed event cannot overwrite an existing item. Top-level null
// attributes (an absent fa_number) are dropped rather than stored.
func (d *Dynamo) PutIfAbsent(ctx context.Context, report *model.Report) error {
	item, err := attributevalue.MarshalMap(report)
	if err != nil {
		return fmt.Errorf("marshal report %s: %w", report.JobID, err)
	}
	for k, v := range item {
		if _, ok := v.(*types.AttributeValueMemberNULL); ok {
			delete(item, k)
		}
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(d.reportTable),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(job_id)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrDuplicate
		}
		return fmt.Errorf("put report %s: %w", report.JobID, err)
	}
	return nil
}

func (d *Dynamo) FANumber(ctx context.Context, jobID string) (*string, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.jobsTable),
		Key: map[string]types.AttributeValue{
			"job_id": &types.AttributeValueMemberS{Value: jobID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", jobID, err)
	}
	if out.Item == nil {
		return nil, nil
	}
	attr, ok := out.Item["fa_number"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, nil
	}
	fa := attr.Value
	return &fa, nil
}
