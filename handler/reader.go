package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/x4b1/msgbox"
	"github.com/x4b1/msgbox/log"
)

// NewReader returns a Reader over store.
func NewReader(store msgbox.Store, opts ...ReaderOption) *Reader {
	r := Reader{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt.applyReader(&r)
	}
	if r.errHandler == nil {
		r.errHandler = log.NewDefault(r.logger)
	}

	return &r
}

// Reader returns stored messages, one by id or a page of them.
type Reader struct {
	store      msgbox.Store
	logger     *slog.Logger
	errHandler msgbox.ErrorHandler
}

// Get returns the message with the given id.
// A missing message is reported with msgbox.ErrNotFound. The id is opaque and used verbatim.
func (r *Reader) Get(ctx context.Context, id string) (msgbox.Message, error) {
	if strings.TrimSpace(id) == "" {
		return msgbox.Message{}, msgbox.NewValidationError("id", "is required")
	}

	msg, err := r.store.GetByID(ctx, id)
	switch {
	case err == nil:
		return msg, nil
	case errors.Is(err, msgbox.ErrNotFound):
		r.logger.DebugContext(ctx, "message not found", slog.String("id", id))
		return msgbox.Message{}, msgbox.ErrNotFound
	default:
		return msgbox.Message{}, r.fail(ctx, fmt.Errorf("getting message %s: %w", id, err))
	}
}

// List returns a page of messages. cursor and limit are the raw query values; both optional.
// The order of the items is unspecified.
func (r *Reader) List(ctx context.Context, cursor, limit string) (msgbox.Page, error) {
	n, err := ParseLimit(limit)
	if err != nil {
		return msgbox.Page{}, err
	}

	page, err := r.store.ListPage(ctx, msgbox.Cursor(strings.TrimSpace(cursor)), n)
	if err != nil {
		if msgbox.IsValidation(err) {
			return msgbox.Page{}, err
		}
		return msgbox.Page{}, r.fail(ctx, fmt.Errorf("listing messages: %w", err))
	}
	if page.Items == nil {
		page.Items = []msgbox.Message{}
	}

	r.logger.DebugContext(ctx, "messages listed", slog.Int("count", len(page.Items)), slog.Bool("more", page.Next != ""))

	return page, nil
}

// ParseLimit parses a page size. Empty means msgbox.DefaultPageLimit; values are clamped to
// [1, msgbox.MaxPageLimit].
func ParseLimit(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return msgbox.DefaultPageLimit, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, msgbox.NewValidationError("limit", "must be an integer")
	}

	return max(1, min(msgbox.MaxPageLimit, n)), nil
}

func (r *Reader) fail(ctx context.Context, err error) error {
	r.errHandler.Error(ctx, err)

	return err
}
