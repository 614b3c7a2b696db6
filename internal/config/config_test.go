package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"

	"github.com/x4b1/msgbox/internal/config"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := config.Parse(env.EnvSet{"DDB_TABLE": "messages"})
	require.NoError(t, err)

	require.Equal(t, config.DriverDynamoDB, cfg.StoreDriver)
	require.Equal(t, "messages", cfg.DynamoTable)
	require.True(t, cfg.DynamoConsistentRead)
	require.False(t, cfg.DynamoCreateTable)
	require.Equal(t, config.PostgresPgx, cfg.PostgresDriver)
	require.Equal(t, "uuid", cfg.IDFormat)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, 65536, cfg.MaxBodyBytes)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestParseTableNameFallback(t *testing.T) {
	cfg, err := config.Parse(env.EnvSet{"DDB_TABLE_NAME": "legacy"})
	require.NoError(t, err)
	require.Equal(t, "legacy", cfg.DynamoTable)

	cfg, err = config.Parse(env.EnvSet{"DDB_TABLE": "primary", "DDB_TABLE_NAME": "legacy"})
	require.NoError(t, err)
	require.Equal(t, "primary", cfg.DynamoTable)
}

func TestParseInvalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		es   env.EnvSet
		want string
	}{
		{"missing table", env.EnvSet{}, "DDB_TABLE"},
		{"unknown driver", env.EnvSet{"STORE_DRIVER": "mysql"}, "STORE_DRIVER"},
		{"postgres without url", env.EnvSet{"STORE_DRIVER": "postgres"}, "POSTGRES_URL"},
		{"unknown postgres driver", env.EnvSet{"STORE_DRIVER": "postgres", "POSTGRES_URL": "postgres://x", "POSTGRES_DRIVER": "lib/pq"}, "POSTGRES_DRIVER"},
		{"bad endpoint", env.EnvSet{"DDB_TABLE": "t", "DYNAMODB_ENDPOINT": "not a url"}, "DYNAMODB_ENDPOINT"},
		{"unknown id format", env.EnvSet{"STORE_DRIVER": "badger", "ID_FORMAT": "snowflake"}, "ID_FORMAT"},
		{"zero body", env.EnvSet{"STORE_DRIVER": "badger", "MAX_BODY_BYTES": "0"}, "MAX_BODY_BYTES"},
		{"bad level", env.EnvSet{"STORE_DRIVER": "badger", "LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad duration", env.EnvSet{"STORE_DRIVER": "badger", "REQUEST_TIMEOUT": "soon"}, "decoding"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse(tc.es)
			require.ErrorContains(t, err, tc.want)
		})
	}
}

func TestParseBadger(t *testing.T) {
	cfg, err := config.Parse(env.EnvSet{"STORE_DRIVER": "badger", "ID_FORMAT": "ulid", "REQUEST_TIMEOUT": "250ms"})
	require.NoError(t, err)

	require.Equal(t, config.DriverBadger, cfg.StoreDriver)
	require.Empty(t, cfg.BadgerPath)
	require.Equal(t, "ulid", cfg.IDFormat)
	require.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STORE_DRIVER=badger\nHTTP_ADDR=127.0.0.1:9999\n"), 0o600))

	t.Setenv("STORE_DRIVER", "")
	t.Setenv("HTTP_ADDR", "")
	require.NoError(t, os.Unsetenv("STORE_DRIVER"))
	require.NoError(t, os.Unsetenv("HTTP_ADDR"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.DriverBadger, cfg.StoreDriver)
	require.Equal(t, "127.0.0.1:9999", cfg.HTTPAddr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
