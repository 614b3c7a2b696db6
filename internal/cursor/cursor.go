// Package cursor encodes store specific continuation keys into opaque URL safe tokens.
package cursor

import (
	"bytes"
	"encoding/base64"
	"unicode/utf8"

	"github.com/x4b1/msgbox"
)

// Encode returns the opaque token for key. An empty key returns an empty cursor.
func Encode(key []byte) msgbox.Cursor {
	if len(key) == 0 {
		return ""
	}

	return msgbox.Cursor(base64.RawURLEncoding.EncodeToString(key))
}

// Decode returns the key hidden in c. A malformed cursor is a client error.
func Decode(c msgbox.Cursor) ([]byte, error) {
	key, err := base64.RawURLEncoding.DecodeString(string(c))
	if err != nil || len(key) == 0 {
		return nil, msgbox.NewValidationError("cursor", "malformed continuation token")
	}

	return key, nil
}

// DecodeText is Decode for stores keyed by text: the key must be valid UTF-8 without NUL bytes.
func DecodeText(c msgbox.Cursor) (string, error) {
	key, err := Decode(c)
	if err != nil {
		return "", err
	}
	if !IsText(key) {
		return "", msgbox.NewValidationError("cursor", "malformed continuation token")
	}

	return string(key), nil
}

// IsText reports whether key can be held by a text column.
func IsText(key []byte) bool {
	return utf8.Valid(key) && bytes.IndexByte(key, 0) < 0
}
