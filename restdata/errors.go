// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/descriptor"
)

// ErrorStatus describes errors that correspond to specific HTTP status
// codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrNotFound is a wrapper error that indicates that, due to the
// embedded error, a REST service should return a 404 Not Found error.
type ErrNotFound struct {
	Err error
}

func (e ErrNotFound) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (e ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrBadRequest is returned as an error when there is an error decoding
// HTTP headers or the request body.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// HTTPStatus picks the response status for an error.  def is
// returned for errors with no better status.
func HTTPStatus(err error, def int) int {
	if descriptor.IsMissingArgument(err) {
		return http.StatusUnprocessableEntity
	}
	if errS, hasStatus := err.(ErrorStatus); hasStatus {
		return errS.HTTPStatus()
	}
	return def
}

// FromError populates an ErrorResponse to fill in its fields based
// on an error value.  This remaps the well-known builder errors to
// specific e.Error codes.
func (e *ErrorResponse) FromError(err error) {
	var missing *descriptor.ErrMissingArgument
	if errors.As(err, &missing) {
		e.Error = "ErrMissingArgument"
		e.Operation = missing.Operation
		e.Argument = missing.Argument
		return
	}
	switch et := err.(type) {
	case api.ErrNoSuchOperation:
		e.Error = "ErrNoSuchOperation"
		e.Resource = et.Resource
		e.Operation = et.Operation
	case api.ErrBadOptions:
		e.Error = "ErrBadOptions"
		e.Operation = et.Operation
		if et.Err != nil {
			e.Value = et.Err.Error()
		}
	case ErrNotFound:
		// Discard this wrapper and return the embedded error
		e.FromError(et.Err)
	case ErrBadRequest:
		e.FromError(et.Err)
	}
}

// ToError converts e back to a builder error, if that is possible.
// If not, returns a plain error with e.Message text.
func (e *ErrorResponse) ToError() error {
	switch e.Error {
	case "ErrMissingArgument":
		return &descriptor.ErrMissingArgument{
			Operation: e.Operation,
			Argument:  e.Argument,
		}
	case "ErrNoSuchOperation":
		return api.ErrNoSuchOperation{
			Resource:  e.Resource,
			Operation: e.Operation,
		}
	case "ErrBadOptions":
		return api.ErrBadOptions{
			Operation: e.Operation,
			Err:       errors.New(e.Value),
		}
	default:
		return errors.New(e.Message)
	}
}

// FromPanic populates an error response based on a panic.  Typical use
// is:
//
//	 defer func() {
//	     if obj := recovered(); obj != nil {
//	         resp := restdata.ErrorResponse{}
//	         resp.FromPanic(obj)
//	         // write resp out as makes sense
//	     }
//	}
func (e *ErrorResponse) FromPanic(obj interface{}) {
	e.Error = "panic"
	if recoveredError, isError := obj.(error); isError {
		e.Message = recoveredError.Error()
	} else {
		e.Message = fmt.Sprintf("%+v", obj)
	}
	var stack [4096]byte
	len := runtime.Stack(stack[:], false)
	e.Stack = string(stack[:len])
}
