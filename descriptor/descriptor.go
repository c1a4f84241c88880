// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package descriptor defines the request descriptor produced by the
// LinkedIn API builders, along with the small set of helpers the
// builders share: default header sets, an ordered query string
// builder, URI template path expansion, and body encoders.
//
// A Descriptor is a plain value.  Nothing in this package performs
// network I/O; handing a Descriptor to an HTTP transport is the
// caller's job, though HTTPRequest will build the *http.Request for
// it.
package descriptor

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Method is an HTTP method used by a descriptor.
type Method string

// The methods the LinkedIn API uses.
const (
	GET    Method = "GET"
	POST   Method = "POST"
	PUT    Method = "PUT"
	DELETE Method = "DELETE"
)

// Resource is a tag identifying the endpoint family that produced a
// descriptor.  Transports may use it for routing or metrics.
type Resource string

// The four endpoint families.
const (
	People  Resource = "people"
	Groups  Resource = "groups"
	Updates Resource = "updates"
	News    Resource = "news"
)

// Descriptor is a fully formed, but unsent, HTTP request.
type Descriptor struct {
	// Method is the HTTP method.
	Method Method `json:"method"`

	// Path is the request path relative to the API root, with no
	// leading slash, including any partial-response field
	// expression and query string.
	Path string `json:"path"`

	// Headers holds the request headers.
	Headers map[string]string `json:"headers"`

	// Body is the serialized request body.  It is empty if the
	// request has no body.
	Body string `json:"body,omitempty"`

	// Resource names the endpoint family.
	Resource Resource `json:"resource"`
}

// HasBody reports whether the descriptor carries a request body.
func (d Descriptor) HasBody() bool {
	return d.Body != ""
}

// Clone returns a copy of d that shares no mutable state with it.
func (d Descriptor) Clone() Descriptor {
	d.Headers = copyHeaders(d.Headers)
	return d
}

// URL returns the absolute URL of the request relative to base.  The
// path is appended textually: parsing it as a relative reference
// would misread "people-search:(...)" as a URL scheme.
func (d Descriptor) URL(base *url.URL) string {
	return strings.TrimRight(base.String(), "/") + "/" + d.Path
}

// HTTPRequest converts the descriptor into an *http.Request against
// the API rooted at base, for instance https://api.linkedin.com/v1/.
// The request is not sent.
func (d Descriptor) HTTPRequest(ctx context.Context, base *url.URL) (*http.Request, error) {
	var body io.Reader
	if d.HasBody() {
		body = strings.NewReader(d.Body)
	}
	req, err := http.NewRequestWithContext(ctx, string(d.Method), d.URL(base), body)
	if err != nil {
		return nil, err
	}
	for name, value := range d.Headers {
		req.Header.Set(name, value)
	}
	return req, nil
}
