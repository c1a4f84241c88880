// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"github.com/mantacode/lin/api"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var operationCount = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "mantacode",
		Subsystem: "lin",
		Name:      "operations",
		Help:      "Operations the builder offers, by resource",
	},
	[]string{
		"resource",
		"method",
	},
)

func init() {
	prometheus.MustRegister(operationCount)
}

// observe publishes the builder's operation table.
func observe(builder api.Builder) {
	ops, err := builder.Operations()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Warn("Could not list operations")
		return
	}
	operationCount.Reset()
	for _, op := range ops {
		operationCount.With(prometheus.Labels{
			"resource": string(op.Resource),
			"method":   string(op.Method),
		}).Inc()
	}
}
