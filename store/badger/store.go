// Package badger stores messages in an embedded Badger database.
//
// Keys are "msg:<id>" and values the JSON representation of the message. It is meant for
// local development, single node deployments and tests.
package badger

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/x4b1/msgbox"
	"github.com/x4b1/msgbox/codec"
	"github.com/x4b1/msgbox/internal/cursor"
)

const keyPrefix = "msg:"

var _ msgbox.Store = (*Store)(nil)

// Open opens the database stored in dir. An empty dir opens an in-memory database.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLoggingLevel(badger.WARNING)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger: %w", err)
	}

	return New(db), nil
}

// New returns a Store over an already opened database.
func New(db *badger.DB) *Store {
	return &Store{db: db}
}

// Store is the badger implementation of msgbox.Store.
type Store struct {
	db *badger.DB
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func key(id string) []byte {
	return []byte(keyPrefix + id)
}

// Put writes msg if no message with the same id exists.
func (s *Store) Put(_ context.Context, msg msgbox.Message) error {
	val, err := codec.Marshal(codec.NewMessageJSON(msg))
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key(msg.ID))
		switch {
		case err == nil:
			return msgbox.ErrConflict
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		return txn.Set(key(msg.ID), val)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, msgbox.ErrConflict), errors.Is(err, badger.ErrConflict):
		return fmt.Errorf("putting message %s: %w", msg.ID, msgbox.ErrConflict)
	default:
		return msgbox.Unavailable("putting message", err)
	}
}

// GetByID returns the message stored under id.
func (s *Store) GetByID(_ context.Context, id string) (msgbox.Message, error) {
	var msg msgbox.Message
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(id))
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			msg, err = decode(val)
			return err
		})
	})
	switch {
	case err == nil:
		return msg, nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return msgbox.Message{}, msgbox.ErrNotFound
	default:
		return msgbox.Message{}, msgbox.Unavailable("getting message", err)
	}
}

// ListPage iterates the keys in byte order, starting after the id carried by c.
func (s *Store) ListPage(_ context.Context, c msgbox.Cursor, limit int) (msgbox.Page, error) {
	if limit <= 0 {
		limit = msgbox.DefaultPageLimit
	}

	var after []byte
	if c != "" {
		id, err := cursor.DecodeText(c)
		if err != nil {
			return msgbox.Page{}, err
		}
		after = key(id)
	}

	items := make([]msgbox.Message, 0, limit)
	more := false
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		it.Seek(opts.Prefix)
		if after != nil {
			it.Seek(after)
			if it.ValidForPrefix(opts.Prefix) && bytes.Equal(it.Item().Key(), after) {
				it.Next()
			}
		}

		for ; it.ValidForPrefix(opts.Prefix); it.Next() {
			if len(items) == limit {
				more = true
				return nil
			}

			err := it.Item().Value(func(val []byte) error {
				msg, err := decode(val)
				if err != nil {
					return err
				}
				items = append(items, msg)
				return nil
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return msgbox.Page{}, msgbox.Unavailable("listing messages", err)
	}

	page := msgbox.Page{Items: items}
	if more && len(items) > 0 {
		page.Next = cursor.Encode([]byte(items[len(items)-1].ID))
	}

	return page, nil
}

func decode(val []byte) (msgbox.Message, error) {
	var m codec.MessageJSON
	if err := codec.Unmarshal(val, &m); err != nil {
		return msgbox.Message{}, fmt.Errorf("decoding message: %w", err)
	}

	at, err := codec.ParseTime(m.CreatedAt)
	if err != nil {
		return msgbox.Message{}, fmt.Errorf("decoding createdAt: %w", err)
	}

	return msgbox.Message{ID: m.ID, Title: m.Title, Body: m.Body, CreatedAt: at}, nil
}
