// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package descriptor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jtacoma/uritemplates"
)

// Template is a parsed RFC 6570 URI template for a resource path.
//
// Path templates differ from plain RFC 6570 in one way.  A {+name}
// variable is an identifier the caller already formatted for the
// API, and its value is embedded verbatim: "a b" stays "a b" and
// "x%2Fy" stays "x%2Fy".  A simple {name} variable is escaped the way
// a query-string component is, leaving only unreserved characters
// and !'()* unescaped.
type Template struct {
	raw      string
	tmpl     *uritemplates.UriTemplate
	verbatim map[string]bool
}

var templateVar = regexp.MustCompile(`\{(\+?)(\w+)\}`)

// ParseTemplate parses a URI template.
func ParseTemplate(raw string) (*Template, error) {
	tmpl, err := uritemplates.Parse(raw)
	if err != nil {
		return nil, err
	}
	t := &Template{raw: raw, tmpl: tmpl, verbatim: make(map[string]bool)}
	for _, m := range templateVar.FindAllStringSubmatch(raw, -1) {
		if m[1] == "+" {
			t.verbatim[m[2]] = true
		}
	}
	return t, nil
}

// MustTemplate parses a URI template and panics if it is malformed.
// It is intended for package-level path tables.
func MustTemplate(raw string) *Template {
	t, err := ParseTemplate(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the unexpanded template.
func (t *Template) String() string {
	return t.raw
}

// Expand fills in the template variables.
func (t *Template) Expand(vars map[string]interface{}) (string, error) {
	// Verbatim values go in after expansion, behind markers the
	// expander leaves alone.
	held := make(map[string]interface{}, len(vars))
	var replacements []string
	for name, value := range vars {
		if !t.verbatim[name] {
			held[name] = value
			continue
		}
		marker := "---" + name + "---"
		held[name] = marker
		replacements = append(replacements, marker, fmt.Sprint(value))
	}
	expanded, err := t.tmpl.Expand(held)
	if err != nil {
		return "", err
	}
	expanded = componentUnescaper.Replace(expanded)
	return strings.NewReplacer(replacements...).Replace(expanded), nil
}

// componentUnescaper restores the sub-delimiters that query-string
// escaping keeps but RFC 6570 simple expansion encodes.  Every
// literal '%' has already become "%25", so these triplets only come
// from the expander.
var componentUnescaper = strings.NewReplacer(
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

var (
	uriExpander = mustParse("{+value}")
	uriBrackets = strings.NewReplacer("[", "%5B", "]", "%5D")
)

func mustParse(raw string) *uritemplates.UriTemplate {
	tmpl, err := uritemplates.Parse(raw)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// EscapeURI escapes s the way a browser escapes a whole URI: reserved
// characters such as '/', ',' and '=' are kept, while spaces,
// brackets, non-ASCII text and '%' are percent-encoded.
func EscapeURI(s string) string {
	escaped, err := uriExpander.Expand(map[string]interface{}{"value": s})
	if err != nil {
		return s
	}
	return uriBrackets.Replace(escaped)
}
