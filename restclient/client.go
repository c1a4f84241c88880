// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides an api.Builder that talks to the
// matching server in the "restserver" package.
//
// The server in github.com/mantacode/lin/cmd/lind runs a compatible
// REST server.  Call New() with the base URL of that service; for
// instance,
//
//	b, err := restclient.New("http://localhost:5990/")
//	d, err := b.Build("groups", "show", []string{"547033"}, nil)
//
// Errors the server reports come back as the same error types the
// local api.Registry returns, so descriptor.IsMissingArgument works
// on either.
package restclient

import (
	"context"
	"net/url"

	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/descriptor"
	"github.com/mantacode/lin/restdata"
)

// Client is an api.Builder backed by a remote descriptor service.
type Client struct {
	resource
	Representation restdata.RootData
}

// New creates a new builder that speaks to an external REST server.
// It fetches the service's root document before returning.
func New(baseURL string) (*Client, error) {
	return NewWithContext(context.Background(), baseURL)
}

// NewWithContext is New with a caller-supplied context for the
// initial root document fetch.
func NewWithContext(ctx context.Context, baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{resource: resource{URL: u}}
	if err = c.Refresh(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Refresh re-reads the root document.
func (c *Client) Refresh(ctx context.Context) error {
	c.Representation = restdata.RootData{}
	return c.Get(ctx, &c.Representation)
}

// Build implements api.Builder by posting to the operation URL.
func (c *Client) Build(resource, operation string, args []string, options map[string]interface{}) (descriptor.Descriptor, error) {
	return c.BuildContext(context.Background(), resource, operation, args, options)
}

// BuildContext is Build with a caller-supplied context.
func (c *Client) BuildContext(ctx context.Context, resource, operation string, args []string, options map[string]interface{}) (descriptor.Descriptor, error) {
	var d descriptor.Descriptor
	in := restdata.BuildRequest{Args: args, Options: options}
	vars := map[string]interface{}{
		"resource":  resource,
		"operation": operation,
	}
	err := c.PostTo(ctx, c.Representation.OperationURL, vars, in, &d)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	return d, nil
}

// Operations implements api.Builder by fetching the operation list.
func (c *Client) Operations() ([]api.OperationInfo, error) {
	var resp restdata.OperationList
	err := c.GetFrom(context.Background(), c.Representation.OperationsURL, map[string]interface{}{}, &resp)
	if err != nil {
		return nil, err
	}
	result := make([]api.OperationInfo, len(resp.Operations))
	for i, op := range resp.Operations {
		result[i] = op.OperationInfo
	}
	return result, nil
}
