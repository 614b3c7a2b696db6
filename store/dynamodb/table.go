package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CreateTable creates the messages table with on demand billing and waits until it is active.
// An already existing table is not an error.
func CreateTable(ctx context.Context, cli TableClient, table string) error {
	_, err := cli.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(table),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(AttrID), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(AttrID), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if !errors.As(err, &inUse) {
			return fmt.Errorf("creating table %s: %w", table, err)
		}
	}

	waiter := dynamodb.NewTableExistsWaiter(cli)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}, tableReadyTimeout); err != nil {
		return fmt.Errorf("waiting for table %s: %w", table, err)
	}

	return nil
}

// ErrTableClient is returned by EnsureTable when the store client cannot manage tables.
var ErrTableClient = errors.New("client cannot manage tables")

// EnsureTable creates the store table when missing. See CreateTable.
func (s *Store) EnsureTable(ctx context.Context) error {
	tc, ok := s.cli.(TableClient)
	if !ok {
		return ErrTableClient
	}

	return CreateTable(ctx, tc, s.table)
}
