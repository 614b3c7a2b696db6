// Package dynamodb stores messages in an Amazon DynamoDB table.
//
// The table has a single string partition key "id" and the attributes "title", "body" and
// "createdAt" (RFC 3339 string). Provisioning, encryption at rest and access policy are managed
// outside of this package; CreateTable exists for local development and tests.
package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

//go:generate go tool moq -pkg dynamodb_test -stub -out mock_test.go . Client

// Client defines the DynamoDB methods used by the Store. This is used for testing purposes.
type Client interface {
	PutItem(
		ctx context.Context,
		params *dynamodb.PutItemInput,
		optFns ...func(*dynamodb.Options),
	) (*dynamodb.PutItemOutput, error)
	GetItem(
		ctx context.Context,
		params *dynamodb.GetItemInput,
		optFns ...func(*dynamodb.Options),
	) (*dynamodb.GetItemOutput, error)
	Scan(
		ctx context.Context,
		params *dynamodb.ScanInput,
		optFns ...func(*dynamodb.Options),
	) (*dynamodb.ScanOutput, error)
}

// TableClient defines the DynamoDB methods needed to create the table.
type TableClient interface {
	CreateTable(
		ctx context.Context,
		params *dynamodb.CreateTableInput,
		optFns ...func(*dynamodb.Options),
	) (*dynamodb.CreateTableOutput, error)
	dynamodb.DescribeTableAPIClient
}

// Attribute names of the table.
const (
	AttrID        = "id"
	AttrTitle     = "title"
	AttrBody      = "body"
	AttrCreatedAt = "createdAt"
)

type item struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Body      string `dynamodbav:"body"`
	CreatedAt string `dynamodbav:"createdAt"`
}

// startKey is the last evaluated key of a scan, carried inside the cursor.
type startKey struct {
	ID string `dynamodbav:"id" json:"id"`
}
