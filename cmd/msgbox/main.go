// Command msgbox serves the messages API over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/x4b1/msgbox/internal/app"
	"github.com/x4b1/msgbox/internal/config"
	"github.com/x4b1/msgbox/log"
	"github.com/x4b1/msgbox/transport/httpapi"
)

// Run starts the server and blocks until ctx is done or a server fails.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	envFile := fs.String("env", "", "env file loaded before the process environment")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}

	logger := log.New(stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("closing store", slog.Any("error", err))
		}
	}()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return httpapi.NewServer(cfg.HTTPAddr, a.HTTPHandler(), cfg.ShutdownTimeout, logger).Run(ctx)
	})

	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return httpapi.NewServer(cfg.MetricsAddr, a.MetricsHandler(), cfg.ShutdownTimeout, logger).Run(ctx)
		})
	}

	return g.Wait()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		stop()
		os.Exit(1)
	}
}
