// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines common data structures shared between the
// restserver and restclient packages.  Generally JSON encodings of
// these are passed across the wire as the
// application/vnd.mantacode.lin.v1+json MIME type.
//
// # API Usage
//
// HTTP GET the root document at its specified URL.  This will return
// a JSON serialization of the RootData object.  That serialization
// has links to other resources; follow these links, possibly filling
// in template values, to get to other resources.
//
// OperationURL is an RFC 6570 URI template with parameters
// "resource" and "operation".  If the service is rooted at /, a JSON
// serialization of RootData will look like
//
//	{
//	    "url": "/",
//	    "operations_url": "/v1/operations",
//	    "operation_url": "/v1/{resource}/{operation}"
//	}
//
// While the URL structure is predictable and formulaic, it is not
// actually part of the API contract.  The only specific guarantee is
// that retrieving the root resource will return a serialization of
// RootData.
//
// # Building Descriptors
//
// An HTTP GET of an operation URL builds its descriptor from the
// query string: each "arg" parameter is a positional argument, in
// order, and every other parameter is an option.  An HTTP POST of a
// BuildRequest to the same URL does the same with JSON-typed options.
// Either returns the JSON serialization of descriptor.Descriptor.
//
// Nothing is sent to LinkedIn.  The service only describes requests.
//
// # Errors
//
// Errors are returned as encodings of the ErrorResponse type with a
// failing HTTP status.  A missing required argument is 422
// Unprocessable Entity, an unknown operation is 404 Not Found, and
// undecodable input or options are 400 Bad Request.  These round-trip
// through ErrorResponse to the descriptor and api package errors.
//
// If Go server code panics, this should be captured and returned as
// an ErrorResponse with error code "panic".
package restdata

import (
	"github.com/mantacode/lin/api"
)

// V1JSONMediaType is the preferred, most specific MIME type for the
// JSON representation of this content.
const V1JSONMediaType = "application/vnd.mantacode.lin.v1+json"

// JSONMediaType requests the most recent version of the JSON
// representation of this content.
const JSONMediaType = "application/vnd.mantacode.lin+json"

// RequestIDHeader is set on every response to identify the request
// in server logs.
const RequestIDHeader = "X-Request-Id"

// Resource is a base type for all resources in this module.
type Resource struct {
	// URL points at this resource.
	URL string `json:"url"`
}

// RootData is returned by the root path.
type RootData struct {
	Resource

	// OperationsURL points at the operation list.  This endpoint
	// supports HTTP GET and returns an OperationList.
	OperationsURL string `json:"operations_url"`

	// OperationURL points at a single operation.  This is a URI
	// template with parameters "resource" and "operation".  It
	// supports HTTP GET with query-string arguments and HTTP POST
	// of a BuildRequest, both returning a descriptor.
	OperationURL string `json:"operation_url"`
}

// Operation describes one operation and where to build it.
type Operation struct {
	api.OperationInfo

	// URL is the operation URL, with the template filled in.
	URL string `json:"url"`
}

// OperationList is the list of all known operations, sorted by
// resource and name.
type OperationList struct {
	Operations []Operation `json:"operations"`
}

// BuildRequest is posted to an operation URL.
type BuildRequest struct {
	// Args are the positional arguments in order.
	Args []string `json:"args" validate:"max=8,dive,max=8192"`

	// Options are the operation's named options.  Values may be
	// JSON numbers, booleans, strings, lists or objects; they are
	// converted to the operation's option types.
	Options map[string]interface{} `json:"options" validate:"max=64"`
}

// ErrorResponse can be a response to any method, generally accompanied
// by a failing HTTP status code.
type ErrorResponse struct {
	// Error is a short description of the failure.  This is the
	// type name of a well-known error, the string "panic", or
	// the string "error" for some other kind of error.
	Error string `json:"error"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Resource names the resource of an unknown operation.
	Resource string `json:"resource,omitempty"`

	// Operation names the operation that failed, if known.
	Operation string `json:"operation,omitempty"`

	// Argument names the missing argument for
	// ErrMissingArgument.
	Argument string `json:"argument,omitempty"`

	// Value is an extra parameter to the error if applicable.
	Value string `json:"value,omitempty"`

	// Stack holds a formatted backtrace, if the method failed
	// due to a panic.
	Stack string `json:"stack,omitempty"`
}
