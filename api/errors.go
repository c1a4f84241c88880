// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package api

import (
	"fmt"
	"net/http"
)

// ErrNoSuchOperation is returned by Registry.Build for an unknown
// resource or operation name.
type ErrNoSuchOperation struct {
	Resource  string
	Operation string
}

func (e ErrNoSuchOperation) Error() string {
	return fmt.Sprintf("No such operation %s.%s", e.Resource, e.Operation)
}

// HTTPStatus returns a fixed 404 Not Found.
func (e ErrNoSuchOperation) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrBadOptions is returned by Registry.Build when an option value
// cannot be converted to the type the operation expects.
type ErrBadOptions struct {
	Operation string
	Err       error
}

func (e ErrBadOptions) Error() string {
	if e.Operation == "" {
		return "Invalid options: " + e.Err.Error()
	}
	return fmt.Sprintf("Invalid options for %s: %v", e.Operation, e.Err)
}

// HTTPStatus returns a fixed 400 Bad Request.
func (e ErrBadOptions) HTTPStatus() int {
	return http.StatusBadRequest
}
