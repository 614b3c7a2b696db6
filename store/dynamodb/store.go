package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/x4b1/msgbox"
	"github.com/x4b1/msgbox/codec"
	"github.com/x4b1/msgbox/internal/cursor"
)

const tableReadyTimeout = 2 * time.Minute

// ErrMissingTableName is returned when the store is built without a table name.
var ErrMissingTableName = errors.New("missing table name")

var _ msgbox.Store = (*Store)(nil)

// Open creates a Store using the default AWS configuration chain
// (environment, shared config, instance role).
func Open(ctx context.Context, table string, opts ...Option) (*Store, error) {
	s, err := newStore(nil, table, opts...)
	if err != nil {
		return nil, err
	}

	var loadOpts []func(*config.LoadOptions) error
	if s.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(s.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config from default: %w", err)
	}

	s.cli = NewClient(cfg, s.endpoint)

	return s, nil
}

// NewClient returns a DynamoDB client for cfg. A non empty endpoint replaces the resolved one.
func NewClient(cfg aws.Config, endpoint string) *dynamodb.Client {
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}

// New returns a Store over the given client and table.
func New(cli Client, table string, opts ...Option) (*Store, error) {
	return newStore(cli, table, opts...)
}

func newStore(cli Client, table string, opts ...Option) (*Store, error) {
	if table == "" {
		return nil, ErrMissingTableName
	}

	s := Store{
		cli:            cli,
		table:          table,
		consistentRead: true,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return &s, nil
}

// Store is the DynamoDB implementation of msgbox.Store.
type Store struct {
	cli   Client
	table string

	consistentRead bool

	// only used by Open
	endpoint string
	region   string
}

// Table returns the table name the store writes to.
func (s *Store) Table() string {
	return s.table
}

// Put writes msg on the condition that its id does not exist yet.
func (s *Store) Put(ctx context.Context, msg msgbox.Message) error {
	av, err := attributevalue.MarshalMap(item{
		ID:        msg.ID,
		Title:     msg.Title,
		Body:      msg.Body,
		CreatedAt: msg.CreatedAt.UTC().Format(codec.TimeLayout),
	})
	if err != nil {
		return fmt.Errorf("marshaling item: %w", err)
	}

	_, err = s.cli.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(s.table),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": AttrID},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return fmt.Errorf("putting item %s: %w", msg.ID, msgbox.ErrConflict)
		}
		return msgbox.Unavailable("putting item", err)
	}

	return nil
}

// GetByID reads the item with the given id.
func (s *Store) GetByID(ctx context.Context, id string) (msgbox.Message, error) {
	if !cursor.IsText([]byte(id)) {
		return msgbox.Message{}, msgbox.ErrNotFound
	}

	out, err := s.cli.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            keyOf(id),
		ConsistentRead: aws.Bool(s.consistentRead),
	})
	if err != nil {
		return msgbox.Message{}, msgbox.Unavailable("getting item", err)
	}
	if len(out.Item) == 0 {
		return msgbox.Message{}, msgbox.ErrNotFound
	}

	var it item
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return msgbox.Message{}, fmt.Errorf("unmarshaling item %s: %w", id, err)
	}

	return toMessage(it)
}

// ListPage scans the table. Items come in the table's hash order.
//
// DynamoDB stops a scan after limit items and returns a continuation key even when those were
// the last ones, so the final page of a listing can be empty.
func (s *Store) ListPage(ctx context.Context, c msgbox.Cursor, limit int) (msgbox.Page, error) {
	if limit <= 0 {
		limit = msgbox.DefaultPageLimit
	}

	in := &dynamodb.ScanInput{
		TableName:      aws.String(s.table),
		Limit:          aws.Int32(int32(min(limit, msgbox.MaxPageLimit))), //nolint:gosec // bounded by MaxPageLimit
		ConsistentRead: aws.Bool(s.consistentRead),
	}

	if c != "" {
		start, err := decodeCursor(c)
		if err != nil {
			return msgbox.Page{}, err
		}
		in.ExclusiveStartKey = keyOf(start.ID)
	}

	out, err := s.cli.Scan(ctx, in)
	if err != nil {
		return msgbox.Page{}, msgbox.Unavailable("scanning table", err)
	}

	var its []item
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &its); err != nil {
		return msgbox.Page{}, fmt.Errorf("unmarshaling items: %w", err)
	}

	page := msgbox.Page{Items: make([]msgbox.Message, 0, len(its))}
	for _, it := range its {
		msg, err := toMessage(it)
		if err != nil {
			return msgbox.Page{}, err
		}
		page.Items = append(page.Items, msg)
	}

	if len(out.LastEvaluatedKey) > 0 {
		if page.Next, err = encodeCursor(out.LastEvaluatedKey); err != nil {
			return msgbox.Page{}, err
		}
	}

	return page, nil
}

func keyOf(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		AttrID: &types.AttributeValueMemberS{Value: id},
	}
}

func toMessage(it item) (msgbox.Message, error) {
	at, err := codec.ParseTime(it.CreatedAt)
	if err != nil {
		return msgbox.Message{}, fmt.Errorf("parsing createdAt of %s: %w", it.ID, err)
	}

	return msgbox.Message{
		ID:        it.ID,
		Title:     it.Title,
		Body:      it.Body,
		CreatedAt: at,
	}, nil
}

func encodeCursor(lek map[string]types.AttributeValue) (msgbox.Cursor, error) {
	var k startKey
	if err := attributevalue.UnmarshalMap(lek, &k); err != nil {
		return "", fmt.Errorf("unmarshaling last evaluated key: %w", err)
	}

	raw, err := codec.Marshal(k)
	if err != nil {
		return "", fmt.Errorf("encoding cursor: %w", err)
	}

	return cursor.Encode(raw), nil
}

func decodeCursor(c msgbox.Cursor) (startKey, error) {
	raw, err := cursor.Decode(c)
	if err != nil {
		return startKey{}, err
	}

	var k startKey
	if err := codec.Unmarshal(raw, &k); err != nil || k.ID == "" {
		return startKey{}, msgbox.NewValidationError("cursor", "malformed continuation token")
	}

	return k, nil
}
