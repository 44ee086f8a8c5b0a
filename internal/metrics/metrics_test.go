package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine checks that the Prometheus output contains a metric matching
// the given name, partial label pattern, and value. Uses regex to handle extra
// OTel scope labels injected by the Prometheus exporter.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(w.Result().Body)
	require.NoError(t, err)
	return string(body)
}

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)
	assert.NotNil(t, provider.MeterProvider())
	assert.NotNil(t, provider.Handler())

	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestBusinessMetrics_RecordOperation(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	bm.RecordOperation(context.Background(), "gate", "can_send_assets", "allowed")
	bm.RecordOperation(context.Background(), "gate", "can_send_assets", "allowed")
	bm.RecordOperation(context.Background(), "registry", "set_membership", "success")

	output := scrape(t, provider)
	assertMetricLine(t, output, "test_app_operations_total", `operation="can_send_assets"`, "2")
	assertMetricLine(t, output, "test_app_operations_total", `operation="set_membership"`, "1")
}

func TestBusinessMetrics_RecordDuration(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	// Should not panic and should show up as histogram samples.
	bm.RecordDuration(context.Background(), "registry", "transfer_administrator", 42*time.Millisecond, "success")

	output := scrape(t, provider)
	assertMetricLine(t, output, "test_app_operation_duration_seconds_count", `operation="transfer_administrator"`, "1")
}

func TestNoOpBusinessMetrics(t *testing.T) {
	bm := NewNoOpBusinessMetrics()

	// Must be safe to call with any input.
	bm.RecordOperation(context.Background(), "gate", "can_receive_shares", "denied")
	bm.RecordDuration(context.Background(), "gate", "can_receive_shares", time.Second, "denied")
}
