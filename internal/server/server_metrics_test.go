package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"today-games-service/internal/config"
	"today-games-service/internal/metrics"
	"today-games-service/internal/testutil"
)

func TestNewServerHandlesMetricsSetupFailure(t *testing.T) {
	origSetup := metricsSetup
	defer func() { metricsSetup = origSetup }()

	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true}

	srv := newServerWithSource(cfg, nil, &testutil.StaticSource{}, nil)
	assert.NotNil(t, srv.metrics, "expected fallback recorder on setup failure")
	assert.Nil(t, srv.metricsServer)
}

func TestNewServerWithMetricsDisabledSkipsServer(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: false}

	srv := newServerWithSource(cfg, nil, &testutil.StaticSource{}, nil)
	assert.NotNil(t, srv.metrics)
	assert.Nil(t, srv.metricsServer)
}

func TestNewServerUsesInjectedRecorder(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	cfg := testConfig()
	cfg.Metrics = config.MetricsConfig{Enabled: true}

	srv := newServerWithSource(cfg, nil, &testutil.StaticSource{}, rec)
	assert.Same(t, rec, srv.metrics)
	assert.Nil(t, srv.metricsStop)
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
	}

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{Enabled: true, Port: "9999"},
	}, nil, nil)

	require.NotNil(t, rec)
	require.NotNil(t, srv)
	require.NotNil(t, stop)
	assert.Equal(t, ":9999", srv.Addr())
}

func TestRequestsAreCountedInRecorder(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	source := &testutil.StaticSource{}
	srv := newServerWithSource(testConfig(), nil, source, rec)

	testutil.Serve(srv.Handler(), http.MethodGet, "/api/today-games", nil)
	testutil.Serve(srv.Handler(), http.MethodGet, "/api/today-games", nil)

	assert.Equal(t, int32(2), source.Calls.Load())
}
