package graphql

import (
	"context"
	"time"

	"github.com/kazup01/frontend/internal/app"
	"github.com/kazup01/frontend/internal/metrics"
)

// InstrumentedClient wraps transport and records query counts and durations.
type InstrumentedClient struct {
	client  app.Transport
	metrics *metrics.Metrics
}

var _ app.Transport = &InstrumentedClient{}

// NewInstrumentedClient creates new InstrumentedClient instance.
func NewInstrumentedClient(client app.Transport, m *metrics.Metrics) *InstrumentedClient {
	return &InstrumentedClient{
		client:  client,
		metrics: m,
	}
}

// Execute runs query and records its outcome.
func (c *InstrumentedClient) Execute(ctx context.Context, q app.Query) ([]byte, error) {
	start := time.Now()
	data, err := c.client.Execute(ctx, q)
	c.metrics.QueryDuration.WithLabelValues(string(q.Template)).Observe(time.Since(start).Seconds())

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.metrics.QueriesTotal.WithLabelValues(string(q.Template), outcome).Inc()

	return data, err
}
