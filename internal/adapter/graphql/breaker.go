package graphql

import (
	"context"
	"time"

	"github.com/kazup01/frontend/internal/app"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
)

// BreakerClient wraps transport with circuit breaker.
// When breaker is open, queries fail fast with app.TransportError without touching the api.
// Queries are never retried.
type BreakerClient struct {
	client app.Transport
	cb     *gobreaker.CircuitBreaker[[]byte]
}

var _ app.Transport = &BreakerClient{}

// BreakerSettings configures BreakerClient.
type BreakerSettings struct {
	// FailureThreshold - consecutive failures opening the breaker
	FailureThreshold uint32
	// OpenTimeout - how long breaker stays open before letting a probe query through
	OpenTimeout time.Duration
	// OnStateChange is called on every breaker state transition. Optional.
	OnStateChange func(from, to string)
}

// NewBreakerClient creates new BreakerClient instance.
func NewBreakerClient(client app.Transport, s BreakerSettings, l logrus.FieldLogger) *BreakerClient {
	threshold := s.FailureThreshold
	if threshold == 0 {
		threshold = 1
	}

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "collectives-api",
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			l.Warnf("circuit breaker %s: %s -> %s", name, from, to)
			if s.OnStateChange != nil {
				s.OnStateChange(from.String(), to.String())
			}
		},
		// Only transport failures count, except queries given up by the caller.
		IsSuccessful: func(err error) bool {
			return err == nil || isCallerDone(err) || !app.IsTransportError(err)
		},
	})

	return &BreakerClient{
		client: client,
		cb:     cb,
	}
}

// Execute runs query through the breaker.
func (c *BreakerClient) Execute(ctx context.Context, q app.Query) ([]byte, error) {
	data, err := c.cb.Execute(func() ([]byte, error) {
		data, err := c.client.Execute(ctx, q)
		if err != nil && ctx.Err() != nil {
			return data, callerDoneError{err: err}
		}
		return data, err
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, app.NewTransportError("circuit breaker", err)
	}
	var cde callerDoneError
	if errors.As(err, &cde) {
		err = cde.err
	}

	return data, err
}

// callerDoneError marks query failure happening after caller's context was done.
type callerDoneError struct {
	err error
}

func (e callerDoneError) Error() string {
	return e.err.Error()
}

func (e callerDoneError) Unwrap() error {
	return e.err
}

func isCallerDone(err error) bool {
	var cde callerDoneError
	return errors.As(err, &cde) || errors.Is(err, context.Canceled)
}

// State returns current breaker state name.
func (c *BreakerClient) State() string {
	return c.cb.State().String()
}
