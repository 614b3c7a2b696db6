// Package msgbox stores JSON messages and reads them back by id or as a paginated listing.
//
// The Writer and Reader handlers hold only injected dependencies, so a single instance can
// serve any number of concurrent requests. Persistence is delegated to a Store, implemented
// by the backends under the store directory.
package msgbox

import (
	"time"
)

// Message is the only persisted entity. Once written it is never mutated.
type Message struct {
	// Unique identifier generated by the server.
	ID string
	// Title of the message, never blank.
	Title string
	// Content of the message, may be empty.
	Body string
	// CreatedAt is the moment the writer accepted the message, in UTC.
	CreatedAt time.Time
}

// Complete reports whether every attribute of the message is populated.
// Body is allowed to be empty.
func (m Message) Complete() bool {
	return m.ID != "" && m.Title != "" && !m.CreatedAt.IsZero()
}
