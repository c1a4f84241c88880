// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/api/apitest"
	"github.com/mantacode/lin/descriptor"
	"github.com/mantacode/lin/restclient"
	"github.com/mantacode/lin/restserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic builder tests through a REST client talking
// to a REST server in front of the local registry.
type Suite struct {
	apitest.Suite
	server *httptest.Server
}

func (s *Suite) SetupSuite() {
	s.server = httptest.NewServer(restserver.NewRouter(api.New(), restserver.Options{}))
	client, err := restclient.New(s.server.URL)
	s.Require().NoError(err)
	s.Builder = client
}

func (s *Suite) TearDownSuite() {
	s.server.Close()
}

func TestRestClient(t *testing.T) {
	suite.Run(t, &Suite{})
}

func TestEmptyURL(t *testing.T) {
	_, err := restclient.New("")
	if err == nil {
		t.Fatal("Expected error when given empty URL.")
	}
}

func TestMissingArgumentRoundTrip(t *testing.T) {
	server := httptest.NewServer(restserver.NewRouter(api.New(), restserver.Options{}))
	defer server.Close()
	client, err := restclient.New(server.URL)
	if !assert.NoError(t, err) {
		return
	}

	_, err = client.Build("groups", "commentOnPost", []string{"g-1"}, nil)
	assert.Equal(t, &descriptor.ErrMissingArgument{Operation: "commentOnPost", Argument: "comment"}, err)

	_, err = client.Build("groups", "nope", nil, nil)
	assert.Equal(t, api.ErrNoSuchOperation{Resource: "groups", Operation: "nope"}, err)

	_, err = client.Build("groups", "list", nil, map[string]interface{}{"count": "lots"})
	if assert.Error(t, err) {
		bad, isBad := err.(api.ErrBadOptions)
		if assert.True(t, isBad, "%#v", err) {
			assert.Equal(t, "list", bad.Operation)
		}
	}
}

func TestErrorHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("X-Request-Id", "r-1")
		http.Error(w, "gone fishing", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := restclient.New(server.URL)
	if assert.Error(t, err) {
		httpErr, isHTTP := err.(restclient.ErrorHTTP)
		if assert.True(t, isHTTP, "%#v", err) {
			assert.Equal(t, http.StatusServiceUnavailable, httpErr.Response.StatusCode)
			assert.Contains(t, httpErr.Body, "gone fishing")
			assert.Contains(t, httpErr.Error(), "r-1")
		}
	}
}

func TestBuildContextCancelled(t *testing.T) {
	server := httptest.NewServer(restserver.NewRouter(api.New(), restserver.Options{}))
	defer server.Close()
	client, err := restclient.New(server.URL)
	if !assert.NoError(t, err) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)
	_, err = client.BuildContext(ctx, "groups", "list", nil, nil)
	assert.Error(t, err)
}
