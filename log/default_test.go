package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x4b1/msgbox/log"
)

func TestDefaultErrorHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := log.NewDefault(log.New(&buf, "info"))

	h.Error(context.Background(), errors.New("dynamodb: connection reset"))

	require.Contains(t, buf.String(), `"level":"ERROR"`)
	require.Contains(t, buf.String(), "dynamodb: connection reset")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	} {
		require.Equal(t, want, log.ParseLevel(in), in)
	}
}
