package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/kazup01/frontend/internal/api/http/mock"
	"github.com/kazup01/frontend/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func TestNewMembersHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		url             string
		setupMock       func(*mock.MockService)
		wantStatus      int
		wantBody        string
		wantContentType string
	}{
		{
			name: "backer type from url query",
			url:  "testurl?backerType=sponsors",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					FetchMembers(gomock.Any(), app.MembersRequest{CollectiveSlug: "acme", BackerType: "sponsors"}).
					Return(nil, nil)
			},
			wantStatus:      http.StatusOK,
			wantBody:        `{"collective":"acme","members":[]}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "contributors backer type",
			url:  "testurl?backerType=contributors",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					FetchMembers(gomock.Any(), app.MembersRequest{CollectiveSlug: "acme", Contributors: true}).
					Return(
						[]app.Member{
							{
								Slug:    "alice",
								Type:    app.MemberTypeUser,
								Image:   "https://avatars.githubusercontent.com/alice?s=96",
								Website: "https://github.com/alice",
								Stats:   map[string]int{"c": 5},
							},
						},
						nil,
					)
			},
			wantStatus:      http.StatusOK,
			wantBody:        `{"collective":"acme","members":[{"slug":"alice","type":"USER","image":"https://avatars.githubusercontent.com/alice?s=96","website":"https://github.com/alice","stats":{"c":5}}]}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "tier slug from url query",
			url:  "testurl?tierSlug=gold",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					FetchMembers(gomock.Any(), app.MembersRequest{CollectiveSlug: "acme", TierSlug: "gold"}).
					Return([]app.Member{{ID: 3, Slug: "bob", Type: app.MemberTypeUser}}, nil)
			},
			wantStatus:      http.StatusOK,
			wantBody:        `{"collective":"acme","members":[{"slug":"bob","type":"USER"}]}`,
			wantContentType: "application/json; charset=utf-8",
		},
		{
			name: "bad request",
			url:  "testurl",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					FetchMembers(gomock.Any(), app.MembersRequest{CollectiveSlug: "acme"}).
					Return(nil, app.InvalidRequestError("invalid params"))
			},
			wantStatus:      http.StatusBadRequest,
			wantBody:        `invalid params`,
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name: "not found",
			url:  "testurl?tierSlug=gold",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					FetchMembers(gomock.Any(), gomock.Any()).
					Return(nil, app.NotFoundError("tier not found"))
			},
			wantStatus:      http.StatusNotFound,
			wantBody:        `tier not found`,
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name: "transport error",
			url:  "testurl?tierSlug=gold",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					FetchMembers(gomock.Any(), gomock.Any()).
					Return(nil, app.NewTransportError("doing http request", errors.New("timeout")))
			},
			wantStatus:      http.StatusBadGateway,
			wantContentType: "text/plain; charset=utf-8",
		},
		{
			name: "service error",
			url:  "testurl?tierSlug=gold",
			setupMock: func(m *mock.MockService) {
				m.EXPECT().
					FetchMembers(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("error"))
			},
			wantStatus:      http.StatusInternalServerError,
			wantContentType: "text/plain; charset=utf-8",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := mock.NewMockService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(s)
			}

			handler := NewMembersHandler(
				func(*http.Request) string {
					return "acme"
				},
				s,
				newTestLogger(),
			)
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantContentType, w.Header().Get("Content-type"))

			body := strings.Trim(w.Body.String(), "\n")
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestNewMembersStatsHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().
		FetchMembersStats(gomock.Any(), app.MembersRequest{CollectiveSlug: "acme", TierSlug: "gold"}).
		Return(&app.MembersStats{Slug: "gold", Name: "Gold", Count: 4}, nil)
	s.EXPECT().
		FetchMembersStats(gomock.Any(), app.MembersRequest{CollectiveSlug: "acme", BackerType: "sponsors"}).
		Return(&app.MembersStats{Name: "sponsors", Count: 2}, nil)

	handler := NewMembersStatsHandler(func(*http.Request) string { return "acme" }, s, newTestLogger())

	req, _ := http.NewRequest(http.MethodGet, "testurl?tierSlug=gold", nil)
	w := httptest.NewRecorder()
	handler(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"slug":"gold","name":"Gold","count":4}`, w.Body.String())

	req, _ = http.NewRequest(http.MethodGet, "testurl?backerType=sponsors", nil)
	w = httptest.NewRecorder()
	handler(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"sponsors","count":2}`, w.Body.String())
}

func TestNewCollectiveHandlers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockService(ctrl)
	s.EXPECT().
		FetchCollective(gomock.Any(), "acme").
		Return(&app.Collective{ID: 1, Slug: "acme", Currency: "USD"}, nil)
	s.EXPECT().
		FetchCollectiveImage(gomock.Any(), "acme").
		Return(nil, app.NotFoundError("collective not found"))
	s.EXPECT().
		Page(gomock.Any(), "acme").
		Return(&app.CollectivePage{Collective: &app.Collective{ID: 1, Slug: "acme"}}, nil)

	getSlug := func(*http.Request) string { return "acme" }
	l := newTestLogger()

	req, _ := http.NewRequest(http.MethodGet, "testurl", nil)
	w := httptest.NewRecorder()
	NewCollectiveHandler(getSlug, s, l)(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"slug":"acme","currency":"USD"}`, w.Body.String())

	w = httptest.NewRecorder()
	NewCollectiveImageHandler(getSlug, s, l)(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	NewPageHandler(getSlug, s, l)(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"collective":{"id":1,"slug":"acme"},"sponsors":[],"backers":[]}`, w.Body.String())
}
