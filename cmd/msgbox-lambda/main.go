// Command msgbox-lambda serves the messages API as an AWS Lambda behind API Gateway HTTP API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/x4b1/msgbox/internal/app"
	"github.com/x4b1/msgbox/internal/config"
	"github.com/x4b1/msgbox/log"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	logger := log.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	// the store lives as long as the execution environment
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("starting", slog.Any("error", err))
		os.Exit(1)
	}

	awslambda.Start(a.LambdaHandler().Handle)
}
