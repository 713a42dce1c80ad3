package graphql

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/kazup01/frontend/internal/app"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client executes graphql queries over http.
// This struct is an adapter for app.Transport.
type Client struct {
	doer     HTTPDoer
	endpoint string

	responseMaxSize int
}

var _ app.Transport = &Client{}

// NewClient creates new graphql client for api at given address.
// apiKey is optional, it is sent as api_key query param.
func NewClient(doer HTTPDoer, address string, apiKey string) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(address, "/") + "/graphql")
	if err != nil {
		return nil, errors.Wrap(err, "invalid api address")
	}
	if apiKey != "" {
		v := u.Query()
		v.Set("api_key", apiKey)
		u.RawQuery = v.Encode()
	}

	return &Client{
		doer:            doer,
		endpoint:        u.String(),
		responseMaxSize: 1024 * 1024 * 10,
	}, nil
}

type request struct {
	Query     string        `json:"query"`
	Variables app.Variables `json:"variables,omitempty"`
}

type response struct {
	Data   jsoniter.RawMessage `json:"data"`
	Errors []responseError     `json:"errors"`
}

type responseError struct {
	Message string        `json:"message"`
	Path    []interface{} `json:"path"`
}

func (r response) err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Execute runs query and returns raw json of response data.
func (c *Client) Execute(ctx context.Context, q app.Query) ([]byte, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(request{
		Query:     q.Text(),
		Variables: q.Variables,
	})
	if err != nil {
		return nil, app.NewTransportError("encoding request", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, app.NewTransportError("creating http request", err)
	}

	b, err := c.makeRequest(ctx, httpReq)
	if err != nil {
		return nil, app.NewTransportError("making http request", err)
	}

	var resp response
	if err := json.Unmarshal(b, &resp); err != nil {
		return nil, app.NewTransportError("unmarshalling response", err)
	}
	// Errors next to a data object are partial results, eg. a missing
	// collective resolved to null. Callers classify those from data.
	if !resp.hasData() {
		if err := resp.err(); err != nil {
			return nil, app.NewTransportError("graphql", err)
		}
		return nil, app.NewTransportError("graphql", errors.New("response has no data"))
	}

	return resp.Data, nil
}

func (r response) hasData() bool {
	d := bytes.TrimSpace(r.Data)
	return len(d) > 0 && d[0] == '{'
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request) ([]byte, error) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "doing http request")
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	// Graphql servers report query errors in the body, with 4xx status too.
	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading http response body")
	}
	if len(b) > c.responseMaxSize {
		return nil, errors.Errorf("response body exceeds %d bytes", c.responseMaxSize)
	}

	if resp.StatusCode/100 != 2 {
		var gqlResp response
		if json.Unmarshal(b, &gqlResp) == nil {
			if err := gqlResp.err(); err != nil {
				return nil, errors.Wrapf(err, "got http status code %d", resp.StatusCode)
			}
		}
		return nil, errors.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	return b, nil
}
