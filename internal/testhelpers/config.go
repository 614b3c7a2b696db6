// Package testhelpers starts the containers used by integration tests.
package testhelpers

import (
	"testing"

	"github.com/kelseyhightower/envconfig"
)

// Config defines how integration tests reach their dependencies.
type Config struct {
	// SkipContainers disables every test that needs docker.
	SkipContainers  bool   `envconfig:"MSGBOX_SKIP_CONTAINERS" default:"false"`
	LocalStackImage string `envconfig:"MSGBOX_LOCALSTACK_IMAGE" default:"localstack/localstack:3.8"`
	PostgresImage   string `envconfig:"MSGBOX_POSTGRES_IMAGE" default:"postgres:16.1-alpine"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var c Config
	err := envconfig.Process("", &c)

	return c, err
}

// Enabled reports whether containers should be started. It must be called after flag parsing,
// usually from TestMain.
func (c Config) Enabled() bool {
	return !c.SkipContainers && !testing.Short()
}
