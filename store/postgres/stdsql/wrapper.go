package stdsql

import (
	"context"
	"database/sql"

	"github.com/x4b1/msgbox/store/postgres"
)

var _ postgres.Instance = (*conn)(nil)

type db interface {
	PingContext(ctx context.Context) error
	QueryContext(ctx context.Context, sql string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, sql string, args ...any) *sql.Row
	ExecContext(ctx context.Context, sql string, args ...any) (sql.Result, error)
}

type conn struct {
	db db
}

func (c *conn) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *conn) Query(ctx context.Context, sql string, args ...any) (postgres.Rows, error) {
	//nolint:rowserrcheck // just propagating rows.
	r, err := c.db.QueryContext(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return &rows{r}, nil
}

func (c *conn) QueryRow(ctx context.Context, sql string, args ...any) postgres.Row {
	return c.db.QueryRowContext(ctx, sql, args...)
}

func (c *conn) Exec(ctx context.Context, sql string, args ...any) error {
	_, err := c.db.ExecContext(ctx, sql, args...)

	return err
}

type rows struct {
	*sql.Rows
}

func (r *rows) Close() {
	_ = r.Rows.Close()
}
