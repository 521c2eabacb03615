package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/esig/internal/constants"
)

func TestNewClientConfig_Logger(t *testing.T) {
	NewRootCommand("dev", "none", "unknown")

	t.Setenv(constants.EnvPrefix+"_ENDPOINT", "https://example.com")
	t.Setenv(constants.EnvPrefix+"_USERNAME", "user")
	t.Setenv(constants.EnvPrefix+"_PASSWORD", "secret")
	t.Setenv(constants.EnvPrefix+"_VERBOSE", "true")

	initConfig()

	config, done, err := newClientConfig()
	require.NoError(t, err)
	require.NotNil(t, done)
	assert.True(t, config.Debug)
	assert.NotNil(t, config.Logger)
	assert.NotPanics(t, done)

	t.Setenv(constants.EnvPrefix+"_VERBOSE", "false")

	config, done, err = newClientConfig()
	require.NoError(t, err)
	require.NotNil(t, done)
	assert.False(t, config.Debug)
	assert.Nil(t, config.Logger)
	assert.NotPanics(t, done)
}
