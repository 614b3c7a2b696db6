// Package lambda serves the messages API from API Gateway HTTP API (payload v2) events.
package lambda

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/x4b1/msgbox"
	"github.com/x4b1/msgbox/handler"
	"github.com/x4b1/msgbox/transport"
)

// DefaultMaxBodyBytes is the create payload limit when none is configured.
const DefaultMaxBodyBytes = 64 << 10

const messagesPath = "messages"

// Option configures the Handler.
type Option func(*Handler)

// WithLogger sets the invocation logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = l
	}
}

// WithMaxBodyBytes limits the size of the decoded create payload.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		h.maxBody = n
	}
}

// NewHandler returns a Handler dispatching to w and r.
func NewHandler(w *handler.Writer, r *handler.Reader, opts ...Option) *Handler {
	h := Handler{
		writer:  w,
		reader:  r,
		logger:  slog.Default(),
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(&h)
	}

	return &h
}

// Handler adapts API Gateway events to the writer and reader handlers.
type Handler struct {
	writer  *handler.Writer
	reader  *handler.Reader
	logger  *slog.Logger
	maxBody int64
}

// Handle serves one event. Failures are always answered with a response, the returned error is
// reserved for the runtime and is always nil.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	method := req.RequestContext.HTTP.Method
	res := h.dispatch(ctx, method, req)

	h.logger.LogAttrs(ctx, slog.LevelInfo, "request",
		slog.String("request_id", req.RequestContext.RequestID),
		slog.String("route", req.RouteKey),
		slog.String("method", method),
		slog.String("path", req.RawPath),
		slog.Int("status", res.Status),
	)

	headers := map[string]string{"Content-Type": transport.ContentType}
	if res.Location != "" {
		headers["Location"] = res.Location
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: res.Status,
		Headers:    headers,
		Body:       string(res.Body),
	}, nil
}

func (h *Handler) dispatch(ctx context.Context, method string, req events.APIGatewayV2HTTPRequest) transport.Response {
	segments := strings.Split(strings.Trim(routePath(req), "/"), "/")

	switch {
	case len(segments) == 1 && segments[0] == "healthz":
		if method != http.MethodGet {
			return methodNotAllowed()
		}
		return transport.Health()

	case len(segments) == 1 && segments[0] == messagesPath:
		switch method {
		case http.MethodPost:
			return h.create(ctx, req)
		case http.MethodGet:
			return h.list(ctx, req)
		default:
			return methodNotAllowed()
		}

	case len(segments) == 2 && segments[0] == messagesPath:
		if method != http.MethodGet {
			return methodNotAllowed()
		}
		id, ok := req.PathParameters["id"]
		if !ok {
			var err error
			if id, err = url.PathUnescape(segments[1]); err != nil {
				return transport.Error(msgbox.NewValidationError("id", "malformed path"))
			}
		}
		return h.get(ctx, id)

	default:
		return transport.Failure(http.StatusNotFound, transport.CodeNotFound, "route not found")
	}
}

func (h *Handler) create(ctx context.Context, req events.APIGatewayV2HTTPRequest) transport.Response {
	raw := []byte(req.Body)
	if req.IsBase64Encoded {
		var err error
		if raw, err = base64.StdEncoding.DecodeString(req.Body); err != nil {
			return transport.Error(msgbox.NewValidationError("", "payload is not valid base64"))
		}
	}
	if h.maxBody > 0 && int64(len(raw)) > h.maxBody {
		return transport.Error(msgbox.NewValidationError("", fmt.Sprintf("payload exceeds %d bytes", h.maxBody)))
	}

	msg, err := h.writer.Create(ctx, raw)
	if err != nil {
		return transport.Error(err)
	}

	return transport.Created(msg)
}

func (h *Handler) get(ctx context.Context, id string) transport.Response {
	msg, err := h.reader.Get(ctx, id)
	if err != nil {
		return transport.Error(err)
	}

	return transport.Message(msg)
}

func (h *Handler) list(ctx context.Context, req events.APIGatewayV2HTTPRequest) transport.Response {
	q := req.QueryStringParameters

	page, err := h.reader.List(ctx, q["cursor"], q["limit"])
	if err != nil {
		return transport.Error(err)
	}

	return transport.Page(page)
}

// routePath strips the stage prefix API Gateway keeps in rawPath for named stages.
func routePath(req events.APIGatewayV2HTTPRequest) string {
	stage := req.RequestContext.Stage
	if stage == "" || stage == "$default" {
		return req.RawPath
	}

	if p, ok := strings.CutPrefix(req.RawPath, "/"+stage+"/"); ok {
		return "/" + p
	}

	return req.RawPath
}

func methodNotAllowed() transport.Response {
	return transport.Failure(http.StatusMethodNotAllowed, transport.CodeMethodNotAllowed, "")
}
