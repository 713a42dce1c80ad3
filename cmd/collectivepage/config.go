package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// GRPCServerAddress - listen address for grpc server. If empty, grpc server is disabled
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// ServiceResponseTimeout - timeout for handling single http request
	ServiceResponseTimeout time.Duration `default:"30s"`

	// LogLevel - logrus log level name
	LogLevel string `default:"info"`

	// APIURL - collectives api address with protocol, graphql endpoint is at /graphql
	APIURL string `envconfig:"API_URL" default:"https://api.opencollective.com"`

	// APIKey - api key sent with every query (optional)
	APIKey string `envconfig:"API_KEY" default:""`

	// APITimeout - timeout for single api http call
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"15s"`

	// APIRateLimit - max frequency of api calls per second
	APIRateLimit float64 `envconfig:"API_RATE_LIMIT" default:"20"`

	// APIRateBurst - max number of api calls at once
	APIRateBurst int `envconfig:"API_RATE_BURST" default:"5"`

	// APIBreakerFailures - consecutive api failures opening the circuit breaker
	APIBreakerFailures uint32 `envconfig:"API_BREAKER_FAILURES" default:"5"`

	// APIBreakerOpenTimeout - how long circuit breaker stays open
	APIBreakerOpenTimeout time.Duration `envconfig:"API_BREAKER_OPEN_TIMEOUT" default:"30s"`

	// MetricsNamespace - prometheus metrics namespace
	MetricsNamespace string `default:"collectivepage"`
}

// LoadConfig reads .env files, if any, then parses config from environment.
func LoadConfig(envFiles ...string) (*Config, error) {
	// Default ./.env is optional, explicitly given files are not.
	if err := godotenv.Load(envFiles...); err != nil && (len(envFiles) > 0 || !os.IsNotExist(err)) {
		return nil, errors.Wrap(err, "loading env files")
	}

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return nil, errors.Wrap(err, "parsing env")
	}
	if conf.APIURL == "" {
		return nil, errors.New("API_URL cannot be empty")
	}

	return &conf, nil
}
