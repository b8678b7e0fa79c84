package observability

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/crm-backend/internal/platform/logger"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics(logger.NewNop())

	m.MutationFinished("create_customer", "created")
	m.MutationFinished("create_customer", "created")
	m.MutationFinished("create_customer", "rejected")
	m.BulkRowFinished("rejected")
	m.ObserveHTTP(http.MethodGet, "/api/customers", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	m.JobFinished("heartbeat", nil)
	m.JobFinished("heartbeat", errors.New("boom"))

	require.Equal(t, 2.0, testutil.ToFloat64(m.mutations.WithLabelValues("create_customer", "created")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("create_customer", "rejected")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.bulkRows.WithLabelValues("rejected")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.httpTotal.WithLabelValues("GET", "/api/customers", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.httpTotal.WithLabelValues("GET", "unmatched", "404")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.jobRuns.WithLabelValues("heartbeat", "error")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.MutationFinished("x", "y")
	m.BulkRowFinished("y")
	m.ObserveHTTP("GET", "/", 200, 0)
	m.JobFinished("x", nil)
	require.Nil(t, m.Registry())
}
