// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package descriptor

import (
	"strings"

	"github.com/ugorji/go/codec"
)

// JSON serializes v as JSON text.  Struct fields are written in
// declaration order, and '<', '>' and '&' are written as themselves.
func JSON(v interface{}) (string, error) {
	var b []byte
	json := &codec.JsonHandle{HTMLCharsAsIs: true}
	encoder := codec.NewEncoderBytes(&b, json)
	if err := encoder.Encode(v); err != nil {
		return "", err
	}
	return string(b), nil
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// XMLText substitutes entities for the characters that would break
// an XML fragment.  Nothing else is validated.
func XMLText(s string) string {
	return xmlEscaper.Replace(s)
}

// XMLElement returns <name>text</name> with text escaped.
func XMLElement(name, text string) string {
	return "<" + name + ">" + XMLText(text) + "</" + name + ">"
}

// XMLFragment wraps already-built child elements in a root element.
func XMLFragment(root string, children ...string) string {
	return "<" + root + ">" + strings.Join(children, "") + "</" + root + ">"
}
