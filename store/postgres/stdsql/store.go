// Package stdsql expose the methods to connect to postgres with std driver.
package stdsql

import (
	"context"
	"database/sql"
	"fmt"

	// initialize pgx stdlib driver.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/x4b1/msgbox"
	"github.com/x4b1/msgbox/store/postgres"
)

// Ensure implements msgbox.Store interface.
var _ msgbox.Store = (*Store)(nil)

// Open returns a store connected to database connection string with config.
func Open(ctx context.Context, connStr string, opts ...postgres.Option) (*Store, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("postgres connect parsing conf: %w", err)
	}

	s, err := WithInstance(ctx, db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.close = db.Close

	return s, nil
}

// WithInstance returns Store initialised with the given connection instance and config.
func WithInstance(ctx context.Context, db *sql.DB, opts ...postgres.Option) (*Store, error) {
	s, err := postgres.New(ctx, &conn{db: db}, opts...)
	if err != nil {
		return nil, err
	}

	return &Store{Storer: s}, nil
}

// Store is the instance to store and retrieve the messages in PostgreSQL database.
type Store struct {
	*postgres.Storer

	close func() error
}

// Close closes the database when the store opened it.
func (s *Store) Close() error {
	if s.close != nil {
		return s.close()
	}

	return nil
}
