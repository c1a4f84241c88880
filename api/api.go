// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package api dispatches LinkedIn API builders by name.
//
// The builders in the v1 subpackage are ordinary Go functions with
// typed options.  Callers that only know an operation by name, such
// as the command-line tool or the REST service, go through a Registry
// instead:
//
//	r := api.New()
//	d, err := r.Build("groups", "list", nil, map[string]interface{}{
//		"membership": []string{"member"},
//		"count":      25,
//	})
//
// Options are loose maps here and are decoded into the builder's
// option struct, with string values converted as needed, so query
// string or command-line input can be passed straight through.
package api

import (
	"reflect"
	"sort"
	"strings"

	"github.com/mantacode/lin/descriptor"
	"github.com/mitchellh/mapstructure"
)

// Builder builds descriptors by operation name.  Registry implements
// this locally and restclient implements it against a remote service.
type Builder interface {
	// Build produces the descriptor for one operation.  args
	// are the operation's positional arguments in order;
	// missing trailing arguments are treated as empty.
	Build(resource, operation string, args []string, options map[string]interface{}) (descriptor.Descriptor, error)

	// Operations lists the known operations.
	Operations() ([]OperationInfo, error)
}

// OperationInfo describes one named operation.
type OperationInfo struct {
	Resource descriptor.Resource `json:"resource"`
	Name     string              `json:"name"`
	Method   descriptor.Method   `json:"method"`

	// Args names the positional arguments.
	Args []string `json:"args"`

	// Options names the recognized option keys.
	Options []string `json:"options"`
}

type buildFunc func(args []string, options map[string]interface{}) (descriptor.Descriptor, error)

type operation struct {
	OperationInfo
	build buildFunc
}

// Registry is a static table of named operations.  It is read-only
// and safe for concurrent use.
type Registry struct {
	ops  map[string]*operation
	info []OperationInfo
}

// New creates a Registry holding every v1 operation.
func New() *Registry {
	r := &Registry{ops: make(map[string]*operation)}
	for _, op := range v1Operations() {
		op := op
		r.ops[key(string(op.Resource), op.Name)] = &op
		r.info = append(r.info, op.OperationInfo)
	}
	sort.Slice(r.info, func(i, j int) bool {
		if r.info[i].Resource != r.info[j].Resource {
			return r.info[i].Resource < r.info[j].Resource
		}
		return r.info[i].Name < r.info[j].Name
	})
	return r
}

func key(resource, operation string) string {
	return resource + "." + operation
}

// Resource normalizes a resource name, accepting the "groupsAPI"
// spelling as well as "groups".
func Resource(name string) descriptor.Resource {
	return descriptor.Resource(strings.TrimSuffix(name, "API"))
}

// Lookup returns the description of a single operation.
func (r *Registry) Lookup(resource, operation string) (OperationInfo, error) {
	op, present := r.ops[key(string(Resource(resource)), operation)]
	if !present {
		return OperationInfo{}, ErrNoSuchOperation{Resource: resource, Operation: operation}
	}
	return op.OperationInfo, nil
}

// Build builds the descriptor for a named operation.
func (r *Registry) Build(resource, operation string, args []string, options map[string]interface{}) (descriptor.Descriptor, error) {
	op, present := r.ops[key(string(Resource(resource)), operation)]
	if !present {
		return descriptor.Descriptor{}, ErrNoSuchOperation{Resource: resource, Operation: operation}
	}
	d, err := op.build(args, options)
	if badOpts, isBad := err.(ErrBadOptions); isBad {
		badOpts.Operation = operation
		err = badOpts
	}
	return d, err
}

// Operations lists every operation, sorted by resource and name.
func (r *Registry) Operations() ([]OperationInfo, error) {
	result := make([]OperationInfo, len(r.info))
	copy(result, r.info)
	return result, nil
}

// arg returns the i'th positional argument, or "" if there are not
// that many.
func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// optionalArg is like arg but returns nil for a missing argument.
func optionalArg(args []string, i int) interface{} {
	if i < len(args) {
		return args[i]
	}
	return nil
}

// decode copies a loose option map into an option struct.
func decode(options map[string]interface{}, out interface{}) error {
	if len(options) == 0 {
		return nil
	}
	config := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	}
	decoder, err := mapstructure.NewDecoder(config)
	if err == nil {
		err = decoder.Decode(options)
	}
	if err != nil {
		return ErrBadOptions{Err: err}
	}
	return nil
}

// optionNames lists the mapstructure keys of an option struct,
// flattening squashed embedded structs.
func optionNames(proto interface{}) []string {
	if proto == nil {
		return []string{}
	}
	var names []string
	t := reflect.TypeOf(proto)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if strings.HasSuffix(tag, ",squash") {
			names = append(names, optionNames(reflect.Zero(field.Type).Interface())...)
			continue
		}
		if tag != "" {
			names = append(names, tag)
		}
	}
	return names
}
