// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package descriptor

import (
	"errors"
	"fmt"
)

// ErrMissingArgument is returned from a builder when a required
// argument is absent or empty.  This is the only error the builders
// produce in normal operation.
type ErrMissingArgument struct {
	// Operation names the builder, e.g. "show".
	Operation string

	// Argument names the missing argument, e.g. "groupId".
	Argument string
}

func (e *ErrMissingArgument) Error() string {
	return fmt.Sprintf("%s: missing required argument %q", e.Operation, e.Argument)
}

// Missing constructs an ErrMissingArgument.
func Missing(operation, argument string) error {
	return &ErrMissingArgument{Operation: operation, Argument: argument}
}

// IsMissingArgument reports whether err is, or wraps, an
// ErrMissingArgument.
func IsMissingArgument(err error) bool {
	var missing *ErrMissingArgument
	return errors.As(err, &missing)
}
