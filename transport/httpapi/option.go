package httpapi

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures the router.
type Option func(*router)

// WithLogger sets the access logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *router) {
		r.logger = l
	}
}

// WithTimeout bounds the time every request may spend in the handlers. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *router) {
		r.timeout = d
	}
}

// WithMaxBodyBytes limits the size of the create payload.
func WithMaxBodyBytes(n int64) Option {
	return func(r *router) {
		r.maxBody = n
	}
}

// WithMiddleware appends middlewares run for every request, after the built in ones.
func WithMiddleware(mws ...func(http.Handler) http.Handler) Option {
	return func(r *router) {
		r.middlewares = append(r.middlewares, mws...)
	}
}

// WithMetricsHandler mounts h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(r *router) {
		r.metrics = h
	}
}
