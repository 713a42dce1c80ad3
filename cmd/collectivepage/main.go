package main

import (
	"context"
	"flag"
	netHttp "net/http"
	"net/url"
	"os"
	"os/signal"
	"sync"

	"github.com/kazup01/frontend/internal/adapter/graphql"
	"github.com/kazup01/frontend/internal/api/grpc"
	"github.com/kazup01/frontend/internal/api/http"
	"github.com/kazup01/frontend/internal/app"
	"github.com/kazup01/frontend/internal/limiter"
	"github.com/kazup01/frontend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

var envFile = flag.String("env", "", "Path to .env file. If empty, ./.env is loaded when present")

func main() {
	flag.Parse()

	l := logrus.New()
	l.Level = logrus.InfoLevel

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	conf, err := LoadConfig(envFiles...)
	if err != nil {
		l.Fatalf("couldn't parse config: %v", err)
	}
	if lvl, err := logrus.ParseLevel(conf.LogLevel); err == nil {
		l.Level = lvl
	} else {
		l.Warnf("invalid log level %q, using info", conf.LogLevel)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(conf.MetricsNamespace, reg)

	httpClient := &netHttp.Client{
		Timeout: conf.APITimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.APIRateLimit,
		conf.APIRateBurst,
	)

	graphqlClient, err := graphql.NewClient(
		limitedHTTPClient,
		conf.APIURL,
		conf.APIKey,
	)
	if err != nil {
		l.Fatalf("couldn't create graphql client: %v", err)
	}
	l.Infof("using collectives api at %s", redactedURL(conf.APIURL))

	breakerClient := graphql.NewBreakerClient(
		graphqlClient,
		graphql.BreakerSettings{
			FailureThreshold: conf.APIBreakerFailures,
			OpenTimeout:      conf.APIBreakerOpenTimeout,
			OnStateChange: func(from, to string) {
				m.BreakerStateTotal.WithLabelValues(to).Inc()
			},
		},
		l.WithField("component", "breakerClient"),
	)
	transport := graphql.NewInstrumentedClient(breakerClient, m)

	dispatcher := app.NewDispatcher(
		transport,
		l.WithField("component", "dispatcher"),
	)

	mux := http.NewMux(
		dispatcher,
		conf.ServiceResponseTimeout,
		m,
		reg,
		l.WithField("component", "mux"),
	)
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	go func() {
		<-stop
		cancel()
	}()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		server.RunContext(ctx)
		wg.Done()
	}()

	if conf.GRPCServerAddress != "" {
		grpcServer := grpc.NewServer(
			grpc.NewService(dispatcher),
			conf.GRPCServerAddress,
			l.WithField("component", "grpcServer"),
		)
		wg.Add(1)
		go func() {
			if err := grpcServer.RunContext(ctx); err != nil {
				l.Fatalf("couldn't run grpc server: %v", err)
			}
			wg.Done()
		}()
	}
	wg.Wait()
}

// redactedURL strips credentials from address before it is logged.
func redactedURL(address string) string {
	u, err := url.Parse(address)
	if err != nil {
		return "<invalid url>"
	}
	u.User = nil
	u.RawQuery = ""
	return u.String()
}
