// Regression tests for rest.go.
//
// Main tests are really by running the end-to-end path, using the
// apitest tests driven from restclient.  This contains the
// special-case tests.
//
// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/descriptor"
	"github.com/mantacode/lin/restdata"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

type failResponseWriter struct {
	Headers    http.Header
	StatusCode int
}

func (rw *failResponseWriter) Header() http.Header {
	if rw.Headers == nil {
		rw.Headers = make(http.Header)
	}
	return rw.Headers
}

func (rw *failResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("foo")
}

func (rw *failResponseWriter) WriteHeader(code int) {
	rw.StatusCode = code
}

// TestDoubleFault checks that, if there is an error serializing a JSON
// response, it doesn't actually panic the process.
func TestDoubleFault(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	router := NewRouter(api.New(), Options{Logger: logger})
	req := &http.Request{
		Method: http.MethodGet,
		URL: &url.URL{
			Path:     "/v1/groups/show",
			RawQuery: "arg=547033",
		},
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Close:      true,
		Host:       "localhost",
	}
	resp := &failResponseWriter{}
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, "writing response", entry.Message)
		assert.Contains(t, fmt.Sprint(entry.Data[logrus.ErrorKey]), "foo")
	}
}

// panicBuilder is an api.Builder that always panics.
type panicBuilder struct{}

func (panicBuilder) Build(resource, operation string, args []string, options map[string]interface{}) (descriptor.Descriptor, error) {
	panic("no builders here")
}

func (panicBuilder) Operations() ([]api.OperationInfo, error) {
	return nil, errors.New("no operations here")
}

func TestPanicRecovery(t *testing.T) {
	router := NewRouter(panicBuilder{}, Options{})
	req := httptest.NewRequest(http.MethodGet, "/v1/groups/show?arg=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, restdata.V1JSONMediaType, resp.Header().Get("Content-Type"))

	var errResp restdata.ErrorResponse
	err := restdata.Decode(resp.Header().Get("Content-Type"), resp.Body, &errResp)
	if assert.NoError(t, err) {
		assert.Equal(t, "panic", errResp.Error)
		assert.Equal(t, "no builders here", errResp.Message)
	}
}

func TestNegotiateResponse(t *testing.T) {
	tests := []struct {
		Accept string
		Type   string
		Err    bool
	}{
		{"", restdata.V1JSONMediaType, false},
		{"*/*", restdata.V1JSONMediaType, false},
		{"application/json", "application/json", false},
		{"text/*", "text/json", false},
		{"text/html;q=0.9, application/json;q=0.5", "application/json", false},
		{"application/*, " + restdata.V1JSONMediaType, restdata.V1JSONMediaType, false},
		{"text/html", "", true},
		{"application/json;q=2", "", true},
	}
	for _, test := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if test.Accept != "" {
			req.Header.Set("Accept", test.Accept)
		}
		actual, err := negotiateResponse(req)
		if test.Err {
			assert.Error(t, err, "Accept: %q", test.Accept)
		} else if assert.NoError(t, err, "Accept: %q", test.Accept) {
			assert.Equal(t, test.Type, actual, "Accept: %q", test.Accept)
		}
	}
}

func TestNotAcceptable(t *testing.T) {
	router := NewRouter(api.New(), Options{})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/html")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusNotAcceptable, resp.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	router := NewRouter(api.New(), Options{})
	req := httptest.NewRequest(http.MethodDelete, "/v1/groups/show?arg=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.Code)
}
