// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"io"
	"mime"
	"reflect"

	"github.com/ugorji/go/codec"
)

// Decode tries to decode a restdata object from a reader, such as an
// HTTP request or response.  out must be a pointer type.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		contentType = "application/octet-stream"
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ErrBadRequest{Err: err}
	}

	switch mediaType {
	case "text/json", "application/json", JSONMediaType, V1JSONMediaType:
		// Nested options must come back with string keys
		json := &codec.JsonHandle{}
		json.MapType = reflect.TypeOf(map[string]interface{}(nil))
		decoder := codec.NewDecoder(r, json)
		err = decoder.Decode(out)
		if err != nil {
			err = ErrBadRequest{Err: err}
		}
		return err

	default:
		return ErrUnsupportedMediaType{Type: mediaType}
	}
}

// Encode writes a restdata object as JSON.
func Encode(w io.Writer, in interface{}) error {
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoder(w, json)
	return encoder.Encode(in)
}
