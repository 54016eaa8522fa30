package observability

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counter(t *testing.T) {
	m := NewPrometheusMetrics("portico", nil)

	m.Counter("snapshot_loads_total", 1, T("result", "ok"))
	m.Counter("snapshot_loads_total", 2, T("result", "ok"))

	count, err := testutil.GatherAndCount(m.Registry(), "portico_snapshot_loads_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusMetrics_Gauge(t *testing.T) {
	m := NewPrometheusMetrics("portico", nil)

	m.Gauge("sessions_connected", 3, T("company", "acme"))
	m.Gauge("sessions_connected", 5, T("company", "acme"))

	count, err := testutil.GatherAndCount(m.Registry(), "portico_sessions_connected")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusMetrics_Timing(t *testing.T) {
	m := NewPrometheusMetrics("portico", nil)

	m.Timing("snapshot_duration_seconds", 250*time.Millisecond)

	count, err := testutil.GatherAndCount(m.Registry(), "portico_snapshot_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNoopMetrics_DoesNothing(t *testing.T) {
	var m Metrics = NoopMetrics{}
	m.Counter("x", 1)
	m.Gauge("y", 1.0)
	m.Timing("z", time.Second)
}

func TestHealthRegistry_Handler(t *testing.T) {
	registry := NewHealthRegistry()
	registry.Register("database", func(ctx context.Context) HealthCheckResult {
		return CheckHealthy("connected")
	})

	srv := httptest.NewServer(registry.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	registry.Register("feed", func(ctx context.Context) HealthCheckResult {
		return CheckUnhealthy(errors.New("connection refused"))
	})

	resp, err = http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.False(t, registry.Healthy(context.Background()))
}

func TestLogger_CorrelationIDFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:       LogLevelDebug,
		Format:      LogFormatJSON,
		Output:      &buf,
		ServiceName: "portico",
	})

	ctx := WithCorrelationID(context.Background(), "abc-123")
	logger.InfoContext(ctx, "hello")

	out := buf.String()
	assert.Contains(t, out, `"correlation_id":"abc-123"`)
	assert.Contains(t, out, `"service":"portico"`)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LogConfig{
		Level:  LogLevelWarn,
		Format: LogFormatText,
		Output: &buf,
	})

	logger.Log(context.Background(), slog.LevelInfo, "invisible")
	logger.Log(context.Background(), slog.LevelWarn, "visible")

	assert.NotContains(t, buf.String(), "invisible")
	assert.Contains(t, buf.String(), "visible")
}
