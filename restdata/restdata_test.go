// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/descriptor"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestErrorRoundTrip(t *testing.T) {
	tests := []struct {
		Err  error
		Code string
	}{
		{descriptor.Missing("show", "groupId"), "ErrMissingArgument"},
		{api.ErrNoSuchOperation{Resource: "groups", Operation: "nope"}, "ErrNoSuchOperation"},
		{api.ErrBadOptions{Operation: "list", Err: errors.New("count: bad")}, "ErrBadOptions"},
		{ErrNotFound{Err: api.ErrNoSuchOperation{Resource: "x", Operation: "y"}}, "ErrNoSuchOperation"},
	}
	for _, test := range tests {
		resp := ErrorResponse{Error: "error", Message: test.Err.Error()}
		resp.FromError(test.Err)
		assert.Equal(t, test.Code, resp.Error)

		back := resp.ToError()
		if nf, isNF := test.Err.(ErrNotFound); isNF {
			assert.Equal(t, nf.Err, back)
		} else {
			assert.Equal(t, test.Err, back)
		}
	}
}

func TestErrorPlain(t *testing.T) {
	resp := ErrorResponse{Error: "error", Message: "boom"}
	resp.FromError(errors.New("boom"))
	assert.Equal(t, "error", resp.Error)
	assert.EqualError(t, resp.ToError(), "boom")
}

func TestFromPanic(t *testing.T) {
	resp := ErrorResponse{}
	resp.FromPanic("kaboom")
	assert.Equal(t, "panic", resp.Error)
	assert.Equal(t, "kaboom", resp.Message)
	assert.NotEmpty(t, resp.Stack)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity,
		HTTPStatus(descriptor.Missing("show", "groupId"), 500))
	assert.Equal(t, http.StatusNotFound,
		HTTPStatus(api.ErrNoSuchOperation{}, 500))
	assert.Equal(t, http.StatusBadRequest,
		HTTPStatus(api.ErrBadOptions{Err: errors.New("x")}, 500))
	assert.Equal(t, http.StatusUnsupportedMediaType,
		HTTPStatus(ErrUnsupportedMediaType{Type: "text/plain"}, 500))
	assert.Equal(t, http.StatusInternalServerError,
		HTTPStatus(errors.New("other"), 500))
}

func TestDecode(t *testing.T) {
	var req BuildRequest
	err := Decode("application/json; charset=utf-8",
		strings.NewReader(`{"args":["547033"],"options":{"count":5}}`), &req)
	if assert.NoError(t, err) {
		assert.Equal(t, []string{"547033"}, req.Args)
		assert.Contains(t, req.Options, "count")
	}

	err = Decode("text/plain", strings.NewReader("hi"), &req)
	assert.Equal(t, ErrUnsupportedMediaType{Type: "text/plain"}, err)

	err = Decode("", strings.NewReader("{}"), &req)
	assert.Equal(t, ErrUnsupportedMediaType{Type: "application/octet-stream"}, err)

	err = Decode(V1JSONMediaType, strings.NewReader("{"), &req)
	if assert.Error(t, err) {
		assert.Equal(t, http.StatusBadRequest, HTTPStatus(err, 500))
	}
}

func TestEncodeDescriptor(t *testing.T) {
	d := descriptor.Descriptor{
		Method:   descriptor.GET,
		Path:     "groups/547033:(id,name)",
		Headers:  descriptor.ReadHeaders(),
		Resource: descriptor.Groups,
	}
	var buf bytes.Buffer
	if assert.NoError(t, Encode(&buf, d)) {
		out := buf.String()
		assert.Equal(t, "GET", gjson.Get(out, "method").String())
		assert.Equal(t, "groups/547033:(id,name)", gjson.Get(out, "path").String())
		assert.Equal(t, "json", gjson.Get(out, "headers.x-li-format").String())
		assert.Equal(t, "groups", gjson.Get(out, "resource").String())
		assert.False(t, gjson.Get(out, "body").Exists())
	}

	var back descriptor.Descriptor
	if assert.NoError(t, Decode(V1JSONMediaType, &buf, &back)) {
		assert.Equal(t, d, back)
	}
}

func TestEncodeOperation(t *testing.T) {
	op := Operation{
		OperationInfo: api.OperationInfo{
			Resource: descriptor.Groups,
			Name:     "show",
			Method:   descriptor.GET,
			Args:     []string{"groupId"},
			Options:  []string{"fields", "headers"},
		},
		URL: "/v1/groups/show",
	}
	var buf bytes.Buffer
	if assert.NoError(t, Encode(&buf, op)) {
		out := buf.String()
		assert.Equal(t, "/v1/groups/show", gjson.Get(out, "url").String())
		assert.Equal(t, "groups", gjson.Get(out, "resource").String())
		assert.Equal(t, "show", gjson.Get(out, "name").String())
		assert.Equal(t, "groupId", gjson.Get(out, "args.0").String())
	}
}
