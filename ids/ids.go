// Package ids generates message identifiers.
package ids

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Generator returns a new unique identifier on every call.
type Generator interface {
	NewID() (string, error)
}

// GeneratorFunc adapts an ordinary function to a Generator.
type GeneratorFunc func() (string, error)

// NewID calls f().
func (f GeneratorFunc) NewID() (string, error) {
	return f()
}

// UUID returns random version 4 UUIDs (122 random bits).
func UUID() Generator {
	return GeneratorFunc(func() (string, error) {
		id, err := uuid.NewRandom()
		if err != nil {
			return "", fmt.Errorf("generating uuid: %w", err)
		}

		return id.String(), nil
	})
}

// ULID returns lexicographically sortable identifiers with 80 bits of randomness per millisecond.
func ULID() Generator {
	var mu sync.Mutex
	entropy := ulid.Monotonic(rand.Reader, 0)

	return GeneratorFunc(func() (string, error) {
		mu.Lock()
		defer mu.Unlock()

		id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
		if err != nil {
			return "", fmt.Errorf("generating ulid: %w", err)
		}

		return id.String(), nil
	})
}

// Format names a generator in configuration.
type Format string

// Available formats.
const (
	FormatUUID Format = "uuid"
	FormatULID Format = "ulid"
)

// New returns the generator for the given format. An empty format selects UUID.
func New(f Format) (Generator, error) {
	switch f {
	case "", FormatUUID:
		return UUID(), nil
	case FormatULID:
		return ULID(), nil
	default:
		return nil, fmt.Errorf("unknown id format %q", f)
	}
}
