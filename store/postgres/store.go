// Package postgres implements msgbox.Store on PostgreSQL for any driver wrapped as an Instance.
// The pgx and stdsql subpackages provide the wrappers.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/x4b1/msgbox"
	"github.com/x4b1/msgbox/internal/cursor"
)

// errors.
var (
	ErrMissingSchemaName = errors.New("missing schema name")
)

// DefaultMessagesTable is the table name that will be used if no other table name provided.
const DefaultMessagesTable = "messages"

const uniqueViolation = "23505"

var _ msgbox.Store = (*Storer)(nil)

// New returns a postgres store initialised with the given connection instance and config.
func New(ctx context.Context, db Instance, opts ...Option) (*Storer, error) {
	if err := db.Ping(ctx); err != nil {
		return nil, err
	}

	s := Storer{db: db}

	for _, opt := range opts {
		opt(&s)
	}

	var err error
	if s.schema == "" {
		if s.schema, err = currentSchema(ctx, db); err != nil {
			return nil, err
		}
		if s.schema == "" {
			return nil, ErrMissingSchemaName
		}
	}

	if s.table == "" {
		s.table = DefaultMessagesTable
	}

	if err := s.ensureTable(ctx); err != nil {
		return nil, err
	}

	return &s, nil
}

// Storer is the implementation of messages store for postgres.
type Storer struct {
	db Instance

	schema string
	table  string
}

// Put inserts the message. The primary key rejects duplicated ids.
func (s *Storer) Put(ctx context.Context, msg msgbox.Message) error {
	err := s.db.Exec(
		ctx,
		fmt.Sprintf(`INSERT INTO %q.%q (id, title, body, created_at) VALUES ($1, $2, $3, $4)`, s.schema, s.table),
		msg.ID, msg.Title, msg.Body, msg.CreatedAt.UTC(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("storing message %s: %w", msg.ID, msgbox.ErrConflict)
		}
		return msgbox.Unavailable("storing message", err)
	}

	return nil
}

// GetByID returns the message with the given id.
func (s *Storer) GetByID(ctx context.Context, id string) (msgbox.Message, error) {
	// TEXT cannot hold such an id, so no row can match it
	if !cursor.IsText([]byte(id)) {
		return msgbox.Message{}, msgbox.ErrNotFound
	}

	row := s.db.QueryRow(
		ctx,
		fmt.Sprintf(`SELECT id, title, body, created_at FROM %q.%q WHERE id = $1`, s.schema, s.table),
		id,
	)

	msg, err := scan(row)
	if err != nil {
		if isNoRows(err) {
			return msgbox.Message{}, msgbox.ErrNotFound
		}
		return msgbox.Message{}, msgbox.Unavailable("getting message", err)
	}

	return msg, nil
}

// ListPage returns messages after the cursor using keyset pagination on id.
func (s *Storer) ListPage(ctx context.Context, c msgbox.Cursor, limit int) (msgbox.Page, error) {
	if limit <= 0 {
		limit = msgbox.DefaultPageLimit
	}

	var after string
	if c != "" {
		var err error
		if after, err = cursor.DecodeText(c); err != nil {
			return msgbox.Page{}, err
		}
	}

	// one extra row tells whether another page exists
	rows, err := s.db.Query(
		ctx,
		fmt.Sprintf(
			`SELECT
				id, title, body, created_at
			FROM
				%q.%q
			WHERE
				id > $1
			ORDER BY
				id ASC
			LIMIT $2`,
			s.schema,
			s.table,
		),
		after,
		limit+1,
	)
	if err != nil {
		return msgbox.Page{}, msgbox.Unavailable("listing messages", err)
	}
	defer rows.Close()

	items := make([]msgbox.Message, 0, limit+1)
	for rows.Next() {
		msg, err := scan(rows)
		if err != nil {
			return msgbox.Page{}, msgbox.Unavailable("scanning message", err)
		}
		items = append(items, msg)
	}
	if err := rows.Err(); err != nil {
		return msgbox.Page{}, msgbox.Unavailable("listing messages", err)
	}

	page := msgbox.Page{Items: items}
	if len(items) > limit {
		page.Items = items[:limit]
		page.Next = cursor.Encode([]byte(page.Items[limit-1].ID))
	}

	return page, nil
}

func scan(row Row) (msgbox.Message, error) {
	var (
		msg msgbox.Message
		at  time.Time
	)
	if err := row.Scan(&msg.ID, &msg.Title, &msg.Body, &at); err != nil {
		return msgbox.Message{}, err
	}
	msg.CreatedAt = at.UTC()

	return msg, nil
}

// isNoRows matches the no rows error of both pgx and database/sql.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// ensureTable creates if not exists the table to store messages.
func (s *Storer) ensureTable(ctx context.Context) error {
	// Check if table already exists, we cannot use `CREATE TABLE IF NOT EXISTS`,
	// maybe the user does not have permissions to CREATE and it will fail
	row := s.db.QueryRow(
		ctx,
		`SELECT COUNT(1) FROM information_schema.tables WHERE table_schema = $1 AND table_name = $2 LIMIT 1`,
		s.schema,
		s.table,
	)

	var count int
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("ensuring messages table exists: %w", err)
	}

	if count == 1 {
		return nil
	}

	err := s.db.Exec(
		ctx,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %q.%q (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
			s.schema,
			s.table,
		),
	)
	if err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	return nil
}

// currentSchema returns the connection schema is using.
func currentSchema(ctx context.Context, db Instance) (string, error) {
	var schemaName string
	if err := db.QueryRow(ctx, `SELECT CURRENT_SCHEMA()`).Scan(&schemaName); err != nil {
		return "", fmt.Errorf("getting current schema: %w", err)
	}

	return schemaName, nil
}
