// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// store drivers.
const (
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
	DriverBadger   = "badger"
)

// postgres client libraries.
const (
	PostgresPgx    = "pgx"
	PostgresStdSQL = "stdsql"
)

// Config is the whole service configuration.
type Config struct {
	StoreDriver string `env:"STORE_DRIVER,default=dynamodb" validate:"oneof=dynamodb postgres badger"`

	// DynamoTable falls back to DynamoTableName when empty.
	DynamoTable          string `env:"DDB_TABLE" validate:"required_if=StoreDriver dynamodb"`
	DynamoTableName      string `env:"DDB_TABLE_NAME"`
	AWSRegion            string `env:"AWS_REGION"`
	DynamoEndpoint       string `env:"DYNAMODB_ENDPOINT" validate:"omitempty,url"`
	DynamoCreateTable    bool   `env:"DYNAMODB_CREATE_TABLE,default=false"`
	DynamoConsistentRead bool   `env:"DYNAMODB_CONSISTENT_READ,default=true"`

	PostgresURL    string `env:"POSTGRES_URL" validate:"required_if=StoreDriver postgres"`
	PostgresDriver string `env:"POSTGRES_DRIVER,default=pgx" validate:"oneof=pgx stdsql"`
	PostgresSchema string `env:"POSTGRES_SCHEMA"`
	PostgresTable  string `env:"POSTGRES_TABLE"`

	// BadgerPath empty keeps the data in memory.
	BadgerPath string `env:"BADGER_PATH"`

	IDFormat string `env:"ID_FORMAT,default=uuid" validate:"oneof=uuid ulid"`

	HTTPAddr string `env:"HTTP_ADDR,default=:8080"`
	// MetricsAddr empty serves /metrics on HTTPAddr.
	MetricsAddr     string        `env:"METRICS_ADDR"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT,default=10s" validate:"gte=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=15s" validate:"gt=0"`
	MaxBodyBytes    int           `env:"MAX_BODY_BYTES,default=65536" validate:"gt=0"`
	LogLevel        string        `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn warning error"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && len(files) > 0 {
		return Config{}, fmt.Errorf("loading env files: %w", err)
	}

	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	return Parse(es)
}

// Parse decodes and validates the configuration held in es.
func Parse(es env.EnvSet) (Config, error) {
	var cfg Config
	if err := env.Unmarshal(es, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}

	if cfg.DynamoTable == "" {
		cfg.DynamoTable = cfg.DynamoTableName
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return Config{}, fmt.Errorf("invalid configuration: %s fails %q", verrs[0].Field(), verrs[0].Tag())
		}
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

var validate = newValidator()

// newValidator reports fields by their environment variable name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("env"), ",")
		return name
	})

	return v
}
