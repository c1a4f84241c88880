// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package v1 builds request descriptors for version 1 of the LinkedIn
// REST API.
//
// Every builder is a pure function of its arguments.  Required
// identifiers that are empty produce a *descriptor.ErrMissingArgument
// and a zero Descriptor; nothing else is validated, so field
// expressions and option values pass through as given.
//
//	d, err := v1.Show("547033", v1.FieldOptions{Fields: ":(id,name)"})
//	// d.Path == "groups/547033:(id,name)"
package v1

import (
	"fmt"

	"github.com/mantacode/lin/descriptor"
)

// self is the path segment naming the authenticated member.
const self = "~"

func orSelf(id string) string {
	if id == "" {
		return self
	}
	return id
}

// expand fills in a path template from name, value pairs.
func expand(t *descriptor.Template, pairs ...string) (string, error) {
	vars := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		vars[pairs[i]] = pairs[i+1]
	}
	return t.Expand(vars)
}

func read(resource descriptor.Resource, path string, headers map[string]string) descriptor.Descriptor {
	return descriptor.Descriptor{
		Method:   descriptor.GET,
		Path:     path,
		Headers:  descriptor.ResolveHeaders(headers),
		Resource: resource,
	}
}

func writeJSON(method descriptor.Method, resource descriptor.Resource, path string, body interface{}) (descriptor.Descriptor, error) {
	text, err := descriptor.JSON(body)
	if err != nil {
		return descriptor.Descriptor{}, err
	}
	return descriptor.Descriptor{
		Method:   method,
		Path:     path,
		Headers:  descriptor.JSONHeaders(),
		Body:     text,
		Resource: resource,
	}, nil
}

func writeXML(resource descriptor.Resource, path, body string) descriptor.Descriptor {
	return descriptor.Descriptor{
		Method:   descriptor.POST,
		Path:     path,
		Headers:  descriptor.XMLHeaders(),
		Body:     body,
		Resource: resource,
	}
}

// isTrue reads a boolean-like option by its string form, so true and
// "true" are both true and anything else, including false, "yes" and
// 1, is false.  A nil value yields dflt.
func isTrue(v interface{}, dflt bool) bool {
	if v == nil {
		return dflt
	}
	return fmt.Sprint(v) == "true"
}

// likeBody is the JSON boolean body of the like endpoints; liking is
// the default.
func likeBody(doLike interface{}) string {
	if isTrue(doLike, true) {
		return "true"
	}
	return "false"
}

type code struct {
	Code string `json:"code"`
}
