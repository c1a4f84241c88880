// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct an api.Builder
// based on command-line flags.
package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/restclient"
)

// Backend describes where descriptors are built.  This implements
// the flag.Value interface, and so a typical use is
//
//	func main() {
//		backend := backend.Backend{Implementation: "local"}
//		flag.Var(&backend, "backend", "impl[:address] of the builder")
//		flag.Parse()
//		builder, err := backend.Builder()
//	}
type Backend struct {
	// Implementation holds the name of the implementation:
	// "local" builds in-process, "rest" calls a descriptor
	// service.
	Implementation string

	// Address holds the implementation-specific address, the
	// service base URL for "rest".
	Address string
}

// ErrUnknownBackend is returned for an unrecognized implementation
// name.
type ErrUnknownBackend struct {
	Implementation string
}

func (e ErrUnknownBackend) Error() string {
	return fmt.Sprintf("unknown builder backend %q", e.Implementation)
}

// Builder creates the api.Builder.  For "rest" this contacts the
// service to fetch its root document.
func (b *Backend) Builder() (api.Builder, error) {
	switch b.Implementation {
	case "local":
		return api.New(), nil
	case "rest":
		if b.Address == "" {
			return nil, errors.New("rest backend needs a base URL")
		}
		return restclient.New(b.Address)
	default:
		return nil, ErrUnknownBackend{Implementation: b.Implementation}
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string, including one with more colons.  A bare
// http:// or https:// URL is taken as a "rest" address.
//
// This is part of the flag.Value interface.  Set does not attempt to
// validate the address or make a connection.
func (b *Backend) Set(param string) error {
	if strings.HasPrefix(param, "http://") || strings.HasPrefix(param, "https://") {
		b.Implementation = "rest"
		b.Address = param
		return nil
	}
	parts := strings.SplitN(param, ":", 2)
	switch parts[0] {
	case "local", "rest":
	case "":
		return errors.New("must specify a backend type")
	default:
		return ErrUnknownBackend{Implementation: parts[0]}
	}
	b.Implementation = parts[0]
	b.Address = ""
	if len(parts) == 2 {
		b.Address = parts[1]
	}
	return nil
}
