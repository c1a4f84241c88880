// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver_test

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/api/v1"
	"github.com/mantacode/lin/restdata"
	"github.com/mantacode/lin/restserver"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func newServer() *httptest.Server {
	return httptest.NewServer(restserver.NewRouter(api.New(), restserver.Options{
		Clock: clock.NewMock(),
	}))
}

func get(t *testing.T, url string) (*http.Response, string) {
	resp, err := http.Get(url)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	assert.NoError(t, err)
	return resp, string(body)
}

func post(t *testing.T, url, contentType, in string) (*http.Response, string) {
	resp, err := http.Post(url, contentType, strings.NewReader(in))
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	assert.NoError(t, err)
	return resp, string(body)
}

func TestRootDocument(t *testing.T) {
	server := newServer()
	defer server.Close()

	resp, body := get(t, server.URL+"/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, restdata.V1JSONMediaType, resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get(restdata.RequestIDHeader))
	assert.Equal(t, "/", gjson.Get(body, "url").String())
	assert.Equal(t, "/v1/operations", gjson.Get(body, "operations_url").String())
	assert.Equal(t, "/v1/{resource}/{operation}", gjson.Get(body, "operation_url").String())
}

func TestOperationList(t *testing.T) {
	server := newServer()
	defer server.Close()

	resp, body := get(t, server.URL+"/v1/operations")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	ops := gjson.Get(body, "operations")
	assert.Len(t, ops.Array(), 28)
	show := gjson.Get(body, `operations.#(name=="show")`)
	assert.Equal(t, "groups", show.Get("resource").String())
	assert.Equal(t, "GET", show.Get("method").String())
	assert.Equal(t, "/v1/groups/show", show.Get("url").String())
	assert.Equal(t, "groupId", show.Get("args.0").String())
}

func TestBuildFromQuery(t *testing.T) {
	server := newServer()
	defer server.Close()

	resp, body := get(t, server.URL+"/v1/groupsAPI/posts?arg=547033&count=10&after=1323726382&headers.x-li-format=xml")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	expected, _ := v1.Posts("547033", v1.PostsOptions{
		FieldOptions: v1.FieldOptions{Headers: map[string]string{"x-li-format": "xml"}},
		Count:        v1.Int(10),
		After:        1323726382,
	})
	assert.Equal(t, expected.Path, gjson.Get(body, "path").String())
	assert.Equal(t, "xml", gjson.Get(body, "headers.x-li-format").String())
	assert.Equal(t, "groups", gjson.Get(body, "resource").String())
}

func TestBuildFromQueryRepeatedArgs(t *testing.T) {
	server := newServer()
	defer server.Close()

	resp, body := get(t, server.URL+"/v1/groups/postToGroup?arg=547033&arg=Title&arg=Summary")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	expected, _ := v1.PostToGroup("547033", "Title", "Summary")
	assert.Equal(t, "POST", gjson.Get(body, "method").String())
	assert.Equal(t, expected.Body, gjson.Get(body, "body").String())
}

func TestBuildFromBody(t *testing.T) {
	server := newServer()
	defer server.Close()

	resp, body := post(t, server.URL+"/v1/groups/createGroup", "application/json",
		`{"options":{"body":{"name":"myGroup","isOpenToNonMembers":true}}}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	expected, _ := v1.CreateGroup(v1.CreateGroupBody{Name: "myGroup", IsOpenToNonMembers: true})
	assert.Equal(t, expected.Body, gjson.Get(body, "body").String())
	assert.Equal(t, "myGroup", gjson.Get(gjson.Get(body, "body").String(), "name").String())
}

func TestMissingArgument(t *testing.T) {
	server := newServer()
	defer server.Close()

	resp, body := get(t, server.URL+"/v1/groups/show")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "ErrMissingArgument", gjson.Get(body, "error").String())
	assert.Equal(t, "show", gjson.Get(body, "operation").String())
	assert.Equal(t, "groupId", gjson.Get(body, "argument").String())
}

func TestNoSuchOperation(t *testing.T) {
	server := newServer()
	defer server.Close()

	resp, body := get(t, server.URL+"/v1/jobs/list")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ErrNoSuchOperation", gjson.Get(body, "error").String())
	assert.Equal(t, "jobs", gjson.Get(body, "resource").String())
}

func TestBadOptions(t *testing.T) {
	server := newServer()
	defer server.Close()

	resp, body := get(t, server.URL+"/v1/groups/list?count=many")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "ErrBadOptions", gjson.Get(body, "error").String())
	assert.Equal(t, "list", gjson.Get(body, "operation").String())
}

func TestBadBody(t *testing.T) {
	server := newServer()
	defer server.Close()

	resp, _ := post(t, server.URL+"/v1/groups/show", "text/plain", "547033")
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)

	resp, _ = post(t, server.URL+"/v1/groups/show", "application/json", "{")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Fails validation: too many positional arguments
	resp, _ = post(t, server.URL+"/v1/groups/show", "application/json",
		`{"args":["1","2","3","4","5","6","7","8","9"]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRequestIDEchoed(t *testing.T) {
	server := newServer()
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL+"/", nil)
	if !assert.NoError(t, err) {
		return
	}
	req.Header.Set(restdata.RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if assert.NoError(t, err) {
		resp.Body.Close()
		assert.Equal(t, "abc-123", resp.Header.Get(restdata.RequestIDHeader))
	}
}
