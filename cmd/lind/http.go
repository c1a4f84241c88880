// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/restserver"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// HTTP serves descriptor requests.
type HTTP struct {
	builder   api.Builder
	laddr     string
	reqLogger *logrus.Logger
}

// Handler builds the complete HTTP handler: the REST routes, the
// metrics endpoint, and panic recovery around both.
func (h *HTTP) Handler() http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	restserver.PopulateRouter(r, h.builder, restserver.Options{Logger: h.reqLogger})

	n := negroni.New(negroni.NewRecovery())
	if h.reqLogger != nil {
		n.Use(negroni.NewLogger())
	}
	n.UseHandler(r)
	return n
}

// Serve runs an HTTP server on the configured local address.  This
// serves connections until the listener fails.
func (h *HTTP) Serve() error {
	return http.ListenAndServe(h.laddr, h.Handler())
}
