// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package descriptor

// Header names used by the LinkedIn API.
const (
	// FormatHeader selects the response format, "json" or "xml".
	FormatHeader = "x-li-format"

	// AuthTokenHeader carries an out-of-network auth token
	// obtained from search results.
	AuthTokenHeader = "x-li-auth-token"

	// ContentTypeHeader is the standard request body type header.
	ContentTypeHeader = "Content-Type"
)

// Content types of request bodies.
const (
	JSONContentType = "application/json;charset=UTF-8"
	XMLContentType  = "text/xml;charset=UTF-8"
)

// ReadHeaders returns the default header set for read requests.
func ReadHeaders() map[string]string {
	return map[string]string{FormatHeader: "json"}
}

// JSONHeaders returns the header set for requests with a JSON body.
func JSONHeaders() map[string]string {
	return map[string]string{
		FormatHeader:      "json",
		ContentTypeHeader: JSONContentType,
	}
}

// XMLHeaders returns the header set for requests with an XML body.
func XMLHeaders() map[string]string {
	return map[string]string{
		FormatHeader:      "xml",
		ContentTypeHeader: XMLContentType,
	}
}

// ResolveHeaders returns a copy of override if it is non-nil, and
// otherwise ReadHeaders().  An override replaces the defaults
// entirely; it is not merged with them.
func ResolveHeaders(override map[string]string) map[string]string {
	if override != nil {
		return copyHeaders(override)
	}
	return ReadHeaders()
}

func copyHeaders(h map[string]string) map[string]string {
	if h == nil {
		return nil
	}
	result := make(map[string]string, len(h))
	for k, v := range h {
		result[k] = v
	}
	return result
}
