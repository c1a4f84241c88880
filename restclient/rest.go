// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

// This file provides generic REST client code.

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/jtacoma/uritemplates"
	"github.com/mantacode/lin/restdata"
)

// resource is any object that has a URL and a representation.
type resource struct {
	URL *url.URL

	// Client sends requests; http.DefaultClient if nil.
	Client *http.Client
}

// Template expands a URI template with vars and resolves the result
// relative to the resource's URL.
func (r *resource) Template(template string, vars map[string]interface{}) (*url.URL, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return nil, err
	}
	expanded, err := tmpl.Expand(vars)
	if err != nil {
		return nil, err
	}
	return r.URL.Parse(expanded)
}

// Do performs some HTTP action.  If in is non-nil, the request data is
// serialized and sent as the body of, for instance, a POST request.
// If out is non-nil, the response data (if any) is deserialized into
// this object, which must be of pointer type.
func (r *resource) Do(ctx context.Context, method string, url *url.URL, in, out interface{}) (err error) {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err = restdata.Encode(buf, in); err != nil {
			return err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, url.String(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", restdata.V1JSONMediaType)
	}
	if out != nil {
		req.Header.Set("Accept", restdata.V1JSONMediaType)
	}

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := resp.Body.Close(); err == nil {
			err = closeErr
		}
	}()

	if err = checkHTTPStatus(resp); err != nil {
		return err
	}
	if out != nil && resp.StatusCode != http.StatusNoContent {
		err = restdata.Decode(resp.Header.Get("Content-Type"), resp.Body, out)
	}
	return err
}

// Get retrieves the resource from its own URL.  The result is stored
// in out, which must be of pointer type.
func (r *resource) Get(ctx context.Context, out interface{}) error {
	return r.Do(ctx, http.MethodGet, r.URL, nil, out)
}

// GetFrom retrieves a resource from some other URL, interpreted
// as a URI template and modified by vars.
func (r *resource) GetFrom(ctx context.Context, template string, vars map[string]interface{}, out interface{}) error {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(ctx, http.MethodGet, url, nil, out)
	}
	return err
}

// PostTo submits data to a service at some other URL, interpreted
// as a URI template and modified by vars.  The server response is
// stored in out, which must be of pointer type.
func (r *resource) PostTo(ctx context.Context, template string, vars map[string]interface{}, in, out interface{}) error {
	url, err := r.Template(template, vars)
	if err == nil {
		err = r.Do(ctx, http.MethodPost, url, in, out)
	}
	return err
}

// ErrorHTTP is a catch-all error for non-successes returned from the
// REST endpoint.
type ErrorHTTP struct {
	// Response holds a pointer to the failing HTTP response.
	Response *http.Response

	// Body holds the contents of the message body, presumed to
	// be text.
	Body string
}

func (e ErrorHTTP) Error() string {
	id := e.Response.Header.Get(restdata.RequestIDHeader)
	if id == "" {
		return e.Response.Status
	}
	return fmt.Sprintf("%s (request %s)", e.Response.Status, id)
}

// checkHTTPStatus examines an HTTP response and returns an error if
// it is not successful.  A decodable ErrorResponse body becomes the
// error it describes.
func checkHTTPStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// The body is needed both for decoding and as a fallback, and
	// can only be read once.
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var errResp restdata.ErrorResponse
	contentType := resp.Header.Get("Content-Type")
	if restdata.Decode(contentType, bytes.NewReader(body), &errResp) == nil && errResp.Error != "" {
		return errResp.ToError()
	}
	return ErrorHTTP{Response: resp, Body: string(body)}
}
