// Package prometheus instruments the store and the HTTP transport with prometheus collectors.
package prometheus

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/x4b1/msgbox"
)

const namespace = "msgbox"

// store operation results.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultConflict = "conflict"
	ResultInvalid  = "invalid"
	ResultError    = "error"
)

// Metrics holds the collectors of the service.
type Metrics struct {
	storeOps      *prom.CounterVec
	storeDuration *prom.HistogramVec
	httpRequests  *prom.CounterVec
	httpDuration  *prom.HistogramVec
}

// New creates the collectors and registers them in reg.
// A nil reg uses the prometheus default registerer.
func New(reg prom.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}

	m := &Metrics{
		storeOps: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Store operations by operation and result",
		}, []string{"op", "result"}),
		storeDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Store operation latency",
			Buckets:   prom.DefBuckets,
		}, []string{"op"}),
		httpRequests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code",
		}, []string{"method", "route", "code"}),
		httpDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prom.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, c := range []prom.Collector{m.storeOps, m.storeDuration, m.httpRequests, m.httpDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handler exposes the metrics gathered by g.
func Handler(g prom.Gatherer) http.Handler {
	if g == nil {
		g = prom.DefaultGatherer
	}

	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Store wraps s recording every call.
func (m *Metrics) Store(s msgbox.Store) msgbox.Store {
	return &store{next: s, m: m}
}

func (m *Metrics) observe(op string, start time.Time, err error) {
	m.storeDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	m.storeOps.WithLabelValues(op, result(err)).Inc()
}

func result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, msgbox.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, msgbox.ErrConflict):
		return ResultConflict
	case msgbox.IsValidation(err):
		return ResultInvalid
	default:
		return ResultError
	}
}

type store struct {
	next msgbox.Store
	m    *Metrics
}

func (s *store) Put(ctx context.Context, msg msgbox.Message) (err error) {
	defer func(start time.Time) { s.m.observe("put", start, err) }(time.Now())

	return s.next.Put(ctx, msg)
}

func (s *store) GetByID(ctx context.Context, id string) (_ msgbox.Message, err error) {
	defer func(start time.Time) { s.m.observe("get", start, err) }(time.Now())

	return s.next.GetByID(ctx, id)
}

func (s *store) ListPage(ctx context.Context, cursor msgbox.Cursor, limit int) (_ msgbox.Page, err error) {
	defer func(start time.Time) { s.m.observe("list", start, err) }(time.Now())

	return s.next.ListPage(ctx, cursor, limit)
}

// Middleware records every request served by a chi router.
// The route label is the matched pattern so ids do not explode cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
