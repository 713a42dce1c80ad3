package mock

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// HTTPDoer mocks http.Client.
// Responses are served from Statuses and Bodies in round robin.
type HTTPDoer struct {
	Statuses []int
	Bodies   [][]byte
	Err      error

	DoFunc func(*http.Request) (*http.Response, error)

	// Requests and RequestBodies record every received request.
	Requests      []*http.Request
	RequestBodies [][]byte

	m sync.Mutex
	i int
}

// Do fakes executing http request.
func (d *HTTPDoer) Do(r *http.Request) (*http.Response, error) {
	d.m.Lock()
	defer d.m.Unlock()
	defer func() {
		d.i++
	}()

	var reqBody []byte
	if r.Body != nil {
		reqBody, _ = io.ReadAll(r.Body)
		r.Body.Close()
	}
	d.Requests = append(d.Requests, r)
	d.RequestBodies = append(d.RequestBodies, reqBody)

	if d.DoFunc != nil {
		return d.DoFunc(r)
	}
	if d.Err != nil {
		return nil, d.Err
	}

	status := http.StatusOK
	if len(d.Statuses) > 0 {
		status = d.Statuses[d.i%len(d.Statuses)]
	}
	var data []byte
	if len(d.Bodies) > 0 {
		data = d.Bodies[d.i%len(d.Bodies)]
	}

	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(data)),
		Header:     http.Header{},
		Request:    r,
	}, nil
}

// Calls returns number of Do calls.
func (d *HTTPDoer) Calls() int {
	d.m.Lock()
	defer d.m.Unlock()

	return d.i
}
