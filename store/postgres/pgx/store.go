// Package pgx connects the postgres store with a pgx connection or pool.
package pgx

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/x4b1/msgbox"
	"github.com/x4b1/msgbox/store/postgres"
)

// Ensure implements msgbox.Store interface.
var _ msgbox.Store = (*Store)(nil)

// Open returns a store backed by a pgx pool connected to the connection string.
func Open(ctx context.Context, connStr string, opts ...postgres.Option) (*Store, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, err
	}

	s, err := WithPool(ctx, pool, opts...)
	if err != nil {
		pool.Close()
		return nil, err
	}
	s.close = pool.Close

	return s, nil
}

// WithConn returns Store initialised with the given connection instance and config.
func WithConn(ctx context.Context, conn *pgx.Conn, opts ...postgres.Option) (*Store, error) {
	s, err := postgres.New(ctx, newWrapper(conn), opts...)
	if err != nil {
		return nil, err
	}

	return &Store{Storer: s}, nil
}

// WithPool returns Store initialised with the given connection pool instance and config.
func WithPool(ctx context.Context, pool *pgxpool.Pool, opts ...postgres.Option) (*Store, error) {
	s, err := postgres.New(ctx, newWrapper(pool), opts...)
	if err != nil {
		return nil, err
	}

	return &Store{Storer: s}, nil
}

// Store is the instance to store and retrieve the messages in PostgreSQL database.
type Store struct {
	*postgres.Storer

	close func()
}

// Close releases the pool when the store opened it.
func (s *Store) Close() error {
	if s.close != nil {
		s.close()
	}

	return nil
}
