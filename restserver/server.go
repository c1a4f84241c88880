// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/gorilla/mux"
	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/restdata"
	"github.com/sirupsen/logrus"
)

// Options controls optional parts of the service.  The zero value
// is ready to use.
type Options struct {
	// Clock times requests for the latency metric.  Defaults to
	// the wall clock.
	Clock clock.Clock

	// Logger, if non-nil, receives a Debug line for every
	// request.  Failures are logged to the standard logger
	// regardless.
	Logger *logrus.Logger
}

// NewRouter creates a new HTTP handler that processes all descriptor
// requests.  All resources are under the URL path root, e.g.
// /v1/groups/show.  For more control over this setup, create a
// mux.Router and call PopulateRouter instead.
func NewRouter(b api.Builder, opts Options) http.Handler {
	r := mux.NewRouter()
	PopulateRouter(r, b, opts)
	return r
}

// PopulateRouter adds descriptor routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the service under a subpath:
//
//	r := mux.NewRouter()
//	s := r.PathPrefix("/lin").Subrouter()
//	PopulateRouter(s, api.New(), Options{})
func PopulateRouter(r *mux.Router, b api.Builder, opts Options) {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	api := &restAPI{Builder: b, Router: r, Options: opts}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the REST API.
type restAPI struct {
	Builder api.Builder
	Router  *mux.Router
	Options
}

// PopulateRouter adds all URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	r.Path("/v1/operations").Name("operations").Handler(&resourceHandler{
		Representation: restdata.OperationList{},
		Context:        api.Context,
		Monitor:        api.monitor("operations"),
		Get:            api.OperationList,
	})
	r.Path("/v1/{resource}/{operation}").Name("operation").Handler(&resourceHandler{
		Representation: restdata.BuildRequest{},
		Context:        api.Context,
		Monitor:        api.monitor("operation"),
		Get:            api.BuildFromQuery,
		Post:           api.BuildFromBody,
	})
	r.Path("/").Name("root").Handler(&resourceHandler{
		Representation: restdata.RootData{},
		Context:        api.Context,
		Monitor:        api.monitor("root"),
		Get:            api.RootDocument,
	})
}

func (api *restAPI) logger() *logrus.Logger {
	if api.Logger != nil {
		return api.Logger
	}
	return logrus.StandardLogger()
}

func (api *restAPI) monitor(route string) *monitor {
	return &monitor{Route: route, Clock: api.Clock, Logger: api.Logger}
}

func (api *restAPI) RootDocument(ctx *context) (interface{}, error) {
	resp := restdata.RootData{}
	err := buildURLs(api.Router).
		URL(&resp.URL, "root").
		URL(&resp.OperationsURL, "operations").
		Template(&resp.OperationURL, "operation", "resource", "operation").
		Error
	return resp, err
}
