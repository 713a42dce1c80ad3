package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kazup01/frontend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeoutMiddleware(t *testing.T) {
	t.Parallel()

	var ctx context.Context
	h := NewTimeoutMiddleware(time.Minute)(func(w http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	})

	start := time.Now()
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/collectives/acme", nil))

	require.NotNil(t, ctx)
	deadline, ok := ctx.Deadline()
	require.True(t, ok, "handler context has no deadline")
	assert.WithinDuration(t, start.Add(time.Minute), deadline, time.Second)
	assert.ErrorIs(t, ctx.Err(), context.Canceled, "context is released after handler returns")
}

func TestNewRequestIDMiddleware(t *testing.T) {
	t.Parallel()

	var seen string
	h := NewRequestIDMiddleware()(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	})

	r, _ := http.NewRequest(http.MethodGet, "testurl", nil)
	w := httptest.NewRecorder()
	h(w, r)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	r, _ = http.NewRequest(http.MethodGet, "testurl", nil)
	r.Header.Set(RequestIDHeader, "req-1")
	w = httptest.NewRecorder()
	h(w, r)
	assert.Equal(t, "req-1", seen)
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

func TestNewMetricsMiddleware(t *testing.T) {
	t.Parallel()

	m := metrics.New("test", prometheus.NewRegistry())
	h := NewMetricsMiddleware(m, "collective/members")(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "", http.StatusNotFound)
	})

	r, _ := http.NewRequest(http.MethodGet, "testurl", nil)
	h(httptest.NewRecorder(), r)
	h(httptest.NewRecorder(), r)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "collective/members", "404")))
}
