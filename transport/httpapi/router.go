// Package httpapi exposes the writer and reader handlers over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/x4b1/msgbox"
	"github.com/x4b1/msgbox/handler"
	"github.com/x4b1/msgbox/transport"
)

// DefaultMaxBodyBytes is the create payload limit when none is configured.
const DefaultMaxBodyBytes = 64 << 10

type router struct {
	writer *handler.Writer
	reader *handler.Reader

	logger      *slog.Logger
	timeout     time.Duration
	maxBody     int64
	middlewares []func(http.Handler) http.Handler
	metrics     http.Handler
}

// NewRouter returns the HTTP handler serving the messages API.
func NewRouter(w *handler.Writer, rd *handler.Reader, opts ...Option) http.Handler {
	rt := router{
		writer:  w,
		reader:  rd,
		logger:  slog.Default(),
		maxBody: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(&rt)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(accessLog(rt.logger))
	r.Use(middleware.Recoverer)
	r.Use(rt.middlewares...)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		write(w, transport.Failure(http.StatusNotFound, transport.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		write(w, transport.Failure(http.StatusMethodNotAllowed, transport.CodeMethodNotAllowed, ""))
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		write(w, transport.Health())
	})
	if rt.metrics != nil {
		r.Method(http.MethodGet, "/metrics", rt.metrics)
	}

	r.Route("/messages", func(r chi.Router) {
		r.Use(deadline(rt.timeout))
		r.Post("/", rt.create)
		r.Get("/", rt.list)
		r.Get("/{id}", rt.get)
	})

	return r
}

func (rt *router) create(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, rt.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			write(w, transport.Error(msgbox.NewValidationError("", fmt.Sprintf("payload exceeds %d bytes", tooLarge.Limit))))
			return
		}
		write(w, transport.Error(msgbox.NewValidationError("", "unreadable payload")))
		return
	}

	msg, err := rt.writer.Create(r.Context(), raw)
	if err != nil {
		write(w, transport.Error(err))
		return
	}

	write(w, transport.Created(msg))
}

func (rt *router) get(w http.ResponseWriter, r *http.Request) {
	msg, err := rt.reader.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		write(w, transport.Error(err))
		return
	}

	write(w, transport.Message(msg))
}

func (rt *router) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := rt.reader.List(r.Context(), q.Get("cursor"), q.Get("limit"))
	if err != nil {
		write(w, transport.Error(err))
		return
	}

	write(w, transport.Page(page))
}

func write(w http.ResponseWriter, res transport.Response) {
	w.Header().Set("Content-Type", transport.ContentType)
	if res.Location != "" {
		w.Header().Set("Location", res.Location)
	}
	w.WriteHeader(res.Status)
	_, _ = w.Write(res.Body)
}

// deadline sets a timeout on the request context. Handlers answer themselves when it expires.
func deadline(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func accessLog(l *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			l.LogAttrs(r.Context(), slog.LevelInfo, "request",
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
