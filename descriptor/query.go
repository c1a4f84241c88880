// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package descriptor

import (
	"strconv"
	"strings"
)

// Query is an ordered list of query string parameters.  Parameters
// are emitted in the order they were added, and values are not
// escaped: the LinkedIn API expects raw timestamps, field codes and
// facet expressions.
//
// net/url.Values is not used here because its Encode() sorts keys
// and escapes values.
type Query struct {
	params []string
}

// Add appends key=value unconditionally.
func (q *Query) Add(key, value string) {
	q.params = append(q.params, key+"="+value)
}

// AddString appends key=value if value is non-empty.
func (q *Query) AddString(key, value string) {
	if value != "" {
		q.Add(key, value)
	}
}

// AddInt appends key=value if value is non-nil, including when it
// points at zero.
func (q *Query) AddInt(key string, value *int) {
	if value != nil {
		q.Add(key, strconv.Itoa(*value))
	}
}

// AddNonZero appends key=value if value is not zero.
func (q *Query) AddNonZero(key string, value int64) {
	if value != 0 {
		q.Add(key, strconv.FormatInt(value, 10))
	}
}

// AddNonZeroInt appends key=value if value points at a non-zero
// number, negative numbers included.  This matches endpoints that
// treat 0 the same as absent.
func (q *Query) AddNonZeroInt(key string, value *int) {
	if value != nil && *value != 0 {
		q.Add(key, strconv.Itoa(*value))
	}
}

// Len returns the number of parameters.
func (q *Query) Len() int {
	return len(q.params)
}

// Encode joins the parameters with "&".
func (q *Query) Encode() string {
	return strings.Join(q.params, "&")
}

// Suffix returns "?" followed by the encoded parameters, or the
// empty string if there are none.
func (q *Query) Suffix() string {
	if len(q.params) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
