// Package transport maps handler results to status codes and JSON bodies.
// The HTTP server and the Lambda adapter share it so both answer the same way.
package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/x4b1/msgbox"
	"github.com/x4b1/msgbox/codec"
)

// error codes of the client facing body.
const (
	CodeValidation       = "ValidationError"
	CodeNotFound         = "NotFound"
	CodeMethodNotAllowed = "MethodNotAllowed"
	CodeTimeout          = "Timeout"
	CodeInternal         = "InternalError"
)

// ContentType of every body.
const ContentType = "application/json"

// fallback body when the error itself cannot be encoded.
var internalBody = []byte(`{"error":"InternalError"}`)

// Response is a status code and its JSON body. Location is set only for created resources.
type Response struct {
	Status   int
	Body     []byte
	Location string
}

// Created answers a successful create, pointing Location at the new message.
func Created(m msgbox.Message) Response {
	res := encoded(http.StatusCreated, codec.EncodeMessage, m)
	if res.Status == http.StatusCreated {
		res.Location = "/messages/" + m.ID
	}

	return res
}

// Message answers a successful get.
func Message(m msgbox.Message) Response {
	return encoded(http.StatusOK, codec.EncodeMessage, m)
}

// Page answers a successful list.
func Page(p msgbox.Page) Response {
	return encoded(http.StatusOK, codec.EncodePage, p)
}

// Health answers the liveness probe.
func Health() Response {
	return Response{Status: http.StatusOK, Body: []byte(`{"status":"ok"}`)}
}

// Error maps err to its client response. Server side failures never leak their cause.
func Error(err error) Response {
	var verr *msgbox.ValidationError
	switch {
	case errors.As(err, &verr):
		return Failure(http.StatusBadRequest, CodeValidation, verr.Error())
	case errors.Is(err, msgbox.ErrNotFound):
		return Failure(http.StatusNotFound, CodeNotFound, "")
	case errors.Is(err, context.DeadlineExceeded):
		return Failure(http.StatusGatewayTimeout, CodeTimeout, "")
	default:
		return Failure(http.StatusInternalServerError, CodeInternal, "")
	}
}

// Failure builds an error response with the given status and code.
func Failure(status int, code, detail string) Response {
	b, err := codec.EncodeError(code, detail)
	if err != nil {
		return Response{Status: http.StatusInternalServerError, Body: internalBody}
	}

	return Response{Status: status, Body: b}
}

func encoded[T any](status int, enc func(T) ([]byte, error), v T) Response {
	b, err := enc(v)
	if err != nil {
		return Response{Status: http.StatusInternalServerError, Body: internalBody}
	}

	return Response{Status: status, Body: b}
}
