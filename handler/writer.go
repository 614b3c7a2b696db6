// Package handler implements the create and read request handlers.
//
// Handlers are transport agnostic: they take raw request data and return messages or errors.
// Errors are one of *msgbox.ValidationError, msgbox.ErrNotFound or an internal error, and
// the transports in the transport directory map them to status codes.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/x4b1/msgbox"
	"github.com/x4b1/msgbox/codec"
	"github.com/x4b1/msgbox/ids"
	"github.com/x4b1/msgbox/log"
)

// putAttempts is the first write plus one retry with a fresh id on collision.
const putAttempts = 2

// NewWriter returns a Writer persisting into store with defaults:
//   - UUIDv4 identifiers.
//   - time.Now as clock.
//   - slog.Default logger.
func NewWriter(store msgbox.Store, opts ...WriterOption) *Writer {
	w := Writer{
		store:  store,
		ids:    ids.UUID(),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt.applyWriter(&w)
	}
	if w.errHandler == nil {
		w.errHandler = log.NewDefault(w.logger)
	}

	return &w
}

// Writer creates new messages.
type Writer struct {
	store      msgbox.Store
	ids        ids.Generator
	now        func() time.Time
	logger     *slog.Logger
	errHandler msgbox.ErrorHandler
}

// Create validates raw, assigns id and creation time and stores the message.
//
// On success exactly one message has been written. If the context expires while the store call
// is in flight the write may still complete, so a timed out request does not guarantee absence.
func (w *Writer) Create(ctx context.Context, raw []byte) (msgbox.Message, error) {
	title, body, err := codec.DecodeCreateRequest(raw)
	if err != nil {
		w.logger.InfoContext(ctx, "rejected create request", slog.String("reason", err.Error()))
		return msgbox.Message{}, err
	}

	msg := msgbox.Message{
		Title:     title,
		Body:      body,
		CreatedAt: w.now().UTC(),
	}

	for attempt := 1; attempt <= putAttempts; attempt++ {
		if msg.ID, err = w.ids.NewID(); err != nil {
			return msgbox.Message{}, w.fail(ctx, err)
		}

		err = w.store.Put(ctx, msg)
		if err == nil {
			w.logger.InfoContext(ctx, "message stored", slog.String("id", msg.ID), slog.Int("attempt", attempt))
			return msg, nil
		}
		if !errors.Is(err, msgbox.ErrConflict) {
			break
		}
		w.logger.WarnContext(ctx, "message id collision", slog.String("id", msg.ID), slog.Int("attempt", attempt))
	}

	return msgbox.Message{}, w.fail(ctx, err)
}

func (w *Writer) fail(ctx context.Context, err error) error {
	err = fmt.Errorf("creating message: %w", err)
	w.errHandler.Error(ctx, err)

	return err
}
