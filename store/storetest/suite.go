// Package storetest provides the behaviour every msgbox.Store implementation must satisfy.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/x4b1/msgbox"
)

// maxPages guards pagination loops against stores that never stop returning cursors.
const maxPages = 1000

// Suite runs the store contract against the store returned by NewStore.
//
// Usage:
//
//	suite.Run(t, &storetest.Suite{NewStore: func(t *testing.T) msgbox.Store { ... }})
type Suite struct {
	suite.Suite

	// NewStore returns an empty store. It is called before every test.
	NewStore func(t *testing.T) msgbox.Store

	store msgbox.Store
}

// SetupTest creates a fresh store.
func (s *Suite) SetupTest() {
	s.store = s.NewStore(s.T())
}

// NewMessage returns a complete message with a random id.
// CreatedAt is truncated to microseconds, the coarsest precision of the backends.
func NewMessage(title string) msgbox.Message {
	return msgbox.Message{
		ID:        uuid.NewString(),
		Title:     title,
		Body:      "body of " + title,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (s *Suite) requireSame(want, got msgbox.Message) {
	s.T().Helper()

	s.Require().True(got.Complete(), "incomplete message %+v", got)
	s.Require().Equal(want.ID, got.ID)
	s.Require().Equal(want.Title, got.Title)
	s.Require().Equal(want.Body, got.Body)
	s.Require().True(want.CreatedAt.Equal(got.CreatedAt), "createdAt %s != %s", want.CreatedAt, got.CreatedAt)
	s.Require().Equal(time.UTC, got.CreatedAt.Location())
}

func (s *Suite) TestPutAndGet() {
	ctx := context.Background()
	msg := NewMessage("First message")

	s.Require().NoError(s.store.Put(ctx, msg))

	got, err := s.store.GetByID(ctx, msg.ID)
	s.Require().NoError(err)
	s.requireSame(msg, got)
}

func (s *Suite) TestPutEmptyBody() {
	ctx := context.Background()
	msg := NewMessage("no body")
	msg.Body = ""

	s.Require().NoError(s.store.Put(ctx, msg))

	got, err := s.store.GetByID(ctx, msg.ID)
	s.Require().NoError(err)
	s.requireSame(msg, got)
}

func (s *Suite) TestPutConflict() {
	ctx := context.Background()
	msg := NewMessage("original")
	s.Require().NoError(s.store.Put(ctx, msg))

	dup := msg
	dup.Title = "overwrite attempt"
	s.Require().ErrorIs(s.store.Put(ctx, dup), msgbox.ErrConflict)

	got, err := s.store.GetByID(ctx, msg.ID)
	s.Require().NoError(err)
	s.requireSame(msg, got)
}

func (s *Suite) TestGetNotFound() {
	_, err := s.store.GetByID(context.Background(), uuid.NewString())
	s.Require().ErrorIs(err, msgbox.ErrNotFound)
	s.Require().NotErrorIs(err, msgbox.ErrUnavailable)
}

func (s *Suite) TestGetIsIdempotent() {
	ctx := context.Background()
	msg := NewMessage("idempotent")
	s.Require().NoError(s.store.Put(ctx, msg))

	first, err := s.store.GetByID(ctx, msg.ID)
	s.Require().NoError(err)
	for range 3 {
		again, err := s.store.GetByID(ctx, msg.ID)
		s.Require().NoError(err)
		s.Require().Equal(first, again)
	}
}

func (s *Suite) TestListEmpty() {
	page, err := s.store.ListPage(context.Background(), "", msgbox.DefaultPageLimit)
	s.Require().NoError(err)
	s.Require().Empty(page.Items)
	s.Require().Empty(page.Next)
}

func (s *Suite) TestListCoversEveryItemOnce() {
	ctx := context.Background()

	const total, limit = 23, 5

	written := make(map[string]msgbox.Message, total)
	for i := range total {
		msg := NewMessage(fmt.Sprintf("message %d", i))
		s.Require().NoError(s.store.Put(ctx, msg))
		written[msg.ID] = msg
	}

	seen := make(map[string]struct{}, total)
	var cursor msgbox.Cursor
	for pages := 0; ; pages++ {
		s.Require().Less(pages, maxPages, "pagination never ends")

		page, err := s.store.ListPage(ctx, cursor, limit)
		s.Require().NoError(err)
		s.Require().LessOrEqual(len(page.Items), limit)

		for _, item := range page.Items {
			s.Require().NotContains(seen, item.ID, "item listed twice")
			seen[item.ID] = struct{}{}

			want, ok := written[item.ID]
			s.Require().True(ok, "unknown item %s", item.ID)
			s.requireSame(want, item)
		}

		if page.Next == "" {
			break
		}
		cursor = page.Next
	}

	s.Require().Len(seen, total)
}

func (s *Suite) TestListLimitOne() {
	ctx := context.Background()
	for i := range 2 {
		s.Require().NoError(s.store.Put(ctx, NewMessage(fmt.Sprintf("m%d", i))))
	}

	page, err := s.store.ListPage(ctx, "", 1)
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Require().NotEmpty(page.Next)
}

func (s *Suite) TestListInvalidCursor() {
	_, err := s.store.ListPage(context.Background(), "not a cursor!!", msgbox.DefaultPageLimit)
	s.Require().True(msgbox.IsValidation(err), "got %v", err)
}

func (s *Suite) TestListBinaryCursor() {
	ctx := context.Background()
	s.Require().NoError(s.store.Put(ctx, NewMessage("m")))

	// "_w" and "AA" carry a lone 0xff and a NUL byte
	for _, c := range []msgbox.Cursor{"_w", "AA"} {
		_, err := s.store.ListPage(ctx, c, msgbox.DefaultPageLimit)
		s.Require().True(msgbox.IsValidation(err), "cursor %q: got %v", c, err)
	}
}

func (s *Suite) TestGetBinaryID() {
	for _, id := range []string{"\xff", "a\x00b"} {
		_, err := s.store.GetByID(context.Background(), id)
		s.Require().ErrorIs(err, msgbox.ErrNotFound, "id %q", id)
	}
}
