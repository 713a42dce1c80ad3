package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/kazup01/frontend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const collectivesPath = "/collectives/"

// NewMux creates router for app's http server.
//
// Routes:
//	/collectives/{slug}
//	/collectives/{slug}/image
//	/collectives/{slug}/members
//	/collectives/{slug}/members/stats
//	/collectives/{slug}/page
//	/metrics
func NewMux(
	service Service,
	timeout time.Duration,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	l logrus.FieldLogger,
) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)
	requestIDMiddleware := NewRequestIDMiddleware()

	routes := map[string]http.HandlerFunc{
		"":              NewCollectiveHandler(collectiveSlug, service, l),
		"image":         NewCollectiveImageHandler(collectiveSlug, service, l),
		"members":       NewMembersHandler(collectiveSlug, service, l),
		"members/stats": NewMembersStatsHandler(collectiveSlug, service, l),
		"page":          NewPageHandler(collectiveSlug, service, l),
	}
	for name, h := range routes {
		routeName := "collective"
		if name != "" {
			routeName += "/" + name
		}
		h = timeoutMiddleware(h)
		h = requestIDMiddleware(h)
		h = NewMetricsMiddleware(m, routeName)(h)
		routes[name] = h
	}

	collectivesHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "", http.StatusMethodNotAllowed)
			return
		}
		if collectiveSlug(r) == "" {
			http.NotFound(w, r)
			return
		}
		h, ok := routes[collectiveSubpath(r)]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(collectivesPath, collectivesHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return mux
}

func collectiveSlug(r *http.Request) string {
	p := strings.TrimPrefix(r.URL.Path, collectivesPath)
	if i := strings.Index(p, "/"); i >= 0 {
		p = p[:i]
	}
	return p
}

func collectiveSubpath(r *http.Request) string {
	p := strings.TrimPrefix(r.URL.Path, collectivesPath)
	i := strings.Index(p, "/")
	if i < 0 {
		return ""
	}
	return strings.Trim(p[i+1:], "/")
}
