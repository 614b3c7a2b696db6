package msgbox

import "context"

const (
	// DefaultPageLimit is the page size used when the caller does not provide one.
	DefaultPageLimit = 20
	// MaxPageLimit is the largest page size a caller can request.
	MaxPageLimit = 200
)

//go:generate go tool moq -stub -pkg handler_test -out handler/mock_test.go . Store ErrorHandler

// Store is the durable key-value backend where messages live.
//
// Implementations must make Put and GetByID atomic for a single item. ListPage makes no
// ordering promise: the backends do not keep insertion order and callers must not rely on it.
type Store interface {
	// Put writes a new message keyed by its id.
	// Returns ErrConflict if the id already exists.
	Put(ctx context.Context, msg Message) error
	// GetByID returns the message with the given id or ErrNotFound.
	GetByID(ctx context.Context, id string) (Message, error)
	// ListPage returns up to limit messages starting after cursor.
	// An empty cursor starts from the beginning.
	ListPage(ctx context.Context, cursor Cursor, limit int) (Page, error)
}

// Cursor is an opaque continuation token issued by a Store.
// Only the store that issued it knows how to interpret it.
type Cursor string

// Page is a slice of a listing.
type Page struct {
	Items []Message
	// Next is empty when the store knows there are no more items.
	Next Cursor
}

// ErrorHandler receives failures that are hidden from clients.
type ErrorHandler interface {
	Error(ctx context.Context, err error)
}
