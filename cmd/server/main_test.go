package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"today-games-service/internal/config"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func captureRun(t *testing.T) *config.Config {
	t.Helper()
	var got config.Config
	orig := runServer
	runServer = func(ctx context.Context, cfg config.Config) error {
		got = cfg
		return nil
	}
	t.Cleanup(func() { runServer = orig })
	return &got
}

func TestRootCmdFlagsOverrideEnv(t *testing.T) {
	t.Setenv("HOST", "10.0.0.1")
	t.Setenv("PORT", "7000")
	got := captureRun(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--host", "127.0.0.1", "--port", "8081", "--debug"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "127.0.0.1", got.Host)
	assert.Equal(t, 8081, got.Port)
	assert.True(t, got.Debug)
	assert.Equal(t, "debug", got.Log.Level)
}

func TestRootCmdKeepsEnvWhenFlagsUnset(t *testing.T) {
	t.Setenv("HOST", "10.0.0.1")
	t.Setenv("PORT", "7000")
	got := captureRun(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "10.0.0.1:7000", got.Addr())
	assert.False(t, got.Debug)
}

func TestRootCmdFailsOnInvalidConfig(t *testing.T) {
	t.Setenv("PROVIDER", "nope")
	captureRun(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}

func TestRootCmdRejectsPositionalArgs(t *testing.T) {
	captureRun(t)

	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
