// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/mantacode/lin/descriptor"
	"github.com/mantacode/lin/restdata"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"
)

const headerPrefix = "headers."

// parseOptions merges a JSON options object with key=value pairs.
// A key given more than once becomes a list, and "headers.{name}"
// keys are gathered into the "headers" map.
func parseOptions(pairs []string, jsonOpts string) (map[string]interface{}, error) {
	options := make(map[string]interface{})
	if jsonOpts != "" {
		if !gjson.Valid(jsonOpts) {
			return nil, fmt.Errorf("invalid JSON options %q", jsonOpts)
		}
		parsed, isMap := gjson.Parse(jsonOpts).Value().(map[string]interface{})
		if !isMap {
			return nil, fmt.Errorf("JSON options must be an object")
		}
		options = parsed
	}

	var headers map[string]string
	for _, pair := range pairs {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			return nil, fmt.Errorf("option %q is not key=value", pair)
		}
		key, value := kv[0], kv[1]
		if strings.HasPrefix(key, headerPrefix) {
			if headers == nil {
				headers = make(map[string]string)
			}
			headers[strings.TrimPrefix(key, headerPrefix)] = value
			continue
		}
		switch prev := options[key].(type) {
		case nil:
			options[key] = value
		case string:
			options[key] = []string{prev, value}
		case []string:
			options[key] = append(prev, value)
		default:
			options[key] = value
		}
	}
	if headers != nil {
		options["headers"] = headers
	}
	return options, nil
}

// writeValue writes v as one line of JSON or as a YAML document.
func writeValue(w io.Writer, format string, v interface{}) error {
	switch format {
	case "yaml":
		bytes, err := yaml.Marshal(v)
		if err == nil {
			_, err = w.Write(bytes)
		}
		return err
	default:
		if err := restdata.Encode(w, v); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
}

// writeDescriptor writes d in the requested format.  The "http"
// format writes the HTTP/1.1 request it describes against base.
func writeDescriptor(w io.Writer, format string, base *url.URL, d descriptor.Descriptor) error {
	if format != "http" {
		return writeValue(w, format, d)
	}
	req, err := d.HTTPRequest(context.Background(), base)
	if err != nil {
		return err
	}
	return req.Write(w)
}
