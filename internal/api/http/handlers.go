package http

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/kazup01/frontend/internal/app"
	"github.com/sirupsen/logrus"
)

// Service returns collective page data.
//go:generate mockgen -destination mock/service.go -package mock github.com/kazup01/frontend/internal/api/http Service
type Service interface {
	FetchMembers(ctx context.Context, r app.MembersRequest) ([]app.Member, error)
	FetchMembersStats(ctx context.Context, r app.MembersRequest) (*app.MembersStats, error)
	FetchCollective(ctx context.Context, collectiveSlug string) (*app.Collective, error)
	FetchCollectiveImage(ctx context.Context, collectiveSlug string) (*app.CollectiveImage, error)
	Page(ctx context.Context, collectiveSlug string) (*app.CollectivePage, error)
}

type membersResponse struct {
	Collective string       `json:"collective"`
	Members    []app.Member `json:"members"`
}

func newMembersResponse(collectiveSlug string, members []app.Member) membersResponse {
	if members == nil {
		members = []app.Member{}
	}
	return membersResponse{
		Collective: collectiveSlug,
		Members:    members,
	}
}

// NewMembersHandler creates handlerfunc returning collective members.
// Members are selected with backerType or tierSlug url params.
func NewMembersHandler(
	getSlug func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := getSlug(r)
		members, err := service.FetchMembers(r.Context(), membersRequest(r, slug))
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, newMembersResponse(slug, members))
	}
}

// NewMembersStatsHandler creates handlerfunc returning members count.
func NewMembersStatsHandler(
	getSlug func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.FetchMembersStats(r.Context(), membersRequest(r, getSlug(r)))
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, stats)
	}
}

// NewCollectiveHandler creates handlerfunc returning collective details.
func NewCollectiveHandler(
	getSlug func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := service.FetchCollective(r.Context(), getSlug(r))
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, c)
	}
}

// NewCollectiveImageHandler creates handlerfunc returning collective image.
func NewCollectiveImageHandler(
	getSlug func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, err := service.FetchCollectiveImage(r.Context(), getSlug(r))
		if err != nil {
			writeError(w, r, err, l)
			return
		}

		writeJSON(w, img)
	}
}

// NewPageHandler creates handlerfunc returning all collective page data.
func NewPageHandler(
	getSlug func(*http.Request) string,
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := service.Page(r.Context(), getSlug(r))
		if err != nil {
			writeError(w, r, err, l)
			return
		}
		if page.Sponsors == nil {
			page.Sponsors = []app.Member{}
		}
		if page.Backers == nil {
			page.Backers = []app.Member{}
		}

		writeJSON(w, page)
	}
}

func membersRequest(r *http.Request, slug string) app.MembersRequest {
	q := r.URL.Query()
	return app.NewMembersRequest(slug, q.Get("backerType"), q.Get("tierSlug"))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error, l logrus.FieldLogger) {
	switch {
	case app.IsInvalidRequestError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case app.IsNotFoundError(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case app.IsTransportError(err):
		l.WithField("requestID", RequestID(r.Context())).Errorf("collectives api error: %v", err)
		http.Error(w, "", http.StatusBadGateway)
	default:
		l.WithField("requestID", RequestID(r.Context())).Errorf("internal error: %v", err)
		http.Error(w, "", http.StatusInternalServerError)
	}
}
