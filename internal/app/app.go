// Package app assembles the service from its configuration. Both binaries share it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/x4b1/msgbox"
	"github.com/x4b1/msgbox/handler"
	"github.com/x4b1/msgbox/ids"
	"github.com/x4b1/msgbox/internal/config"
	"github.com/x4b1/msgbox/metrics/prometheus"
	"github.com/x4b1/msgbox/store/badger"
	"github.com/x4b1/msgbox/store/dynamodb"
	"github.com/x4b1/msgbox/store/postgres"
	pgxstore "github.com/x4b1/msgbox/store/postgres/pgx"
	"github.com/x4b1/msgbox/store/postgres/stdsql"
	"github.com/x4b1/msgbox/transport/httpapi"
	"github.com/x4b1/msgbox/transport/lambda"
)

// App holds the wired handlers and the resources to release on shutdown.
type App struct {
	Writer   *handler.Writer
	Reader   *handler.Reader
	Registry *prom.Registry

	cfg     config.Config
	logger  *slog.Logger
	metrics *prometheus.Metrics
	close   func() error
}

// New opens the configured store and builds the handlers over it.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	gen, err := ids.New(ids.Format(cfg.IDFormat))
	if err != nil {
		return nil, err
	}

	reg := prom.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics, err := prometheus.New(reg)
	if err != nil {
		return nil, fmt.Errorf("registering metrics: %w", err)
	}

	store, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	instrumented := metrics.Store(store)

	logger.InfoContext(ctx, "store opened", slog.String("driver", cfg.StoreDriver))

	return &App{
		Writer:   handler.NewWriter(instrumented, handler.WithLogger(logger), handler.WithIDGenerator(gen)),
		Reader:   handler.NewReader(instrumented, handler.WithLogger(logger)),
		Registry: reg,
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		close:    closeStore,
	}, nil
}

// HTTPHandler returns the HTTP API. It serves /metrics too unless a metrics address is configured.
func (a *App) HTTPHandler() http.Handler {
	opts := []httpapi.Option{
		httpapi.WithLogger(a.logger),
		httpapi.WithTimeout(a.cfg.RequestTimeout),
		httpapi.WithMaxBodyBytes(int64(a.cfg.MaxBodyBytes)),
		httpapi.WithMiddleware(a.metrics.Middleware),
	}
	if a.cfg.MetricsAddr == "" {
		opts = append(opts, httpapi.WithMetricsHandler(a.MetricsHandler()))
	}

	return httpapi.NewRouter(a.Writer, a.Reader, opts...)
}

// MetricsHandler exposes the app registry.
func (a *App) MetricsHandler() http.Handler {
	return prometheus.Handler(a.Registry)
}

// LambdaHandler returns the API Gateway event handler.
func (a *App) LambdaHandler() *lambda.Handler {
	return lambda.NewHandler(a.Writer, a.Reader,
		lambda.WithLogger(a.logger),
		lambda.WithMaxBodyBytes(int64(a.cfg.MaxBodyBytes)),
	)
}

// Close releases the store.
func (a *App) Close() error {
	return a.close()
}

// OpenStore opens the store selected by cfg.StoreDriver and returns the function releasing it.
func OpenStore(ctx context.Context, cfg config.Config) (msgbox.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.DriverDynamoDB:
		s, err := dynamodb.Open(ctx, cfg.DynamoTable,
			dynamodb.WithRegion(cfg.AWSRegion),
			dynamodb.WithEndpoint(cfg.DynamoEndpoint),
			dynamodb.WithConsistentRead(cfg.DynamoConsistentRead),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("opening dynamodb store: %w", err)
		}
		if cfg.DynamoCreateTable {
			if err := s.EnsureTable(ctx); err != nil {
				return nil, nil, err
			}
		}
		return s, noop, nil

	case config.DriverPostgres:
		opts := []postgres.Option{postgres.WithSchema(cfg.PostgresSchema), postgres.WithTableName(cfg.PostgresTable)}
		if cfg.PostgresDriver == config.PostgresStdSQL {
			s, err := stdsql.Open(ctx, cfg.PostgresURL, opts...)
			if err != nil {
				return nil, nil, fmt.Errorf("opening postgres store: %w", err)
			}
			return s, s.Close, nil
		}
		s, err := pgxstore.Open(ctx, cfg.PostgresURL, opts...)
		if err != nil {
			return nil, nil, fmt.Errorf("opening postgres store: %w", err)
		}
		return s, s.Close, nil

	case config.DriverBadger:
		s, err := badger.Open(cfg.BadgerPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening badger store: %w", err)
		}
		return s, s.Close, nil

	default:
		return nil, nil, errors.New("unknown store driver " + cfg.StoreDriver)
	}
}
