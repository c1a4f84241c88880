// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes an api.Builder as a REST service.
// The restclient package is a matching client.
//
// The complete REST API is defined in the restdata package.  In
// particular, note that the URLs described here are not actually part
// of the API.
//
// # HTTP Considerations
//
// Clients should use the standard HTTP Accept: header to request a
// specific format.  See "MIME Types" below.  Every response carries
// an X-Request-Id header; a client-supplied one is echoed back.
//
// This interface does not support HTTP caching or authentication
// headers.  It never contacts LinkedIn.
//
// # MIME Types
//
// This interface understands MIME types as follows:
//
//	application/vnd.mantacode.lin.v1+json
//
// JSON representation of version 1 of this interface.
//
//	application/vnd.mantacode.lin+json
//	application/json
//	text/json
//
// JSON representation of latest version of this interface.
//
// # URL Scheme
//
// The following URLs are defined:
//
//	/
//	/v1/operations
//	/v1/{resource}/{operation}
//
// The resource may be spelled "groups" or "groupsAPI".  A GET of an
// operation takes positional arguments as repeated "arg" query
// parameters and every other parameter as an option; options named
// "headers.{name}" are collected into the headers override.  A POST
// takes a restdata.BuildRequest.
package restserver
