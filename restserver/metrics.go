// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var descriptorsBuilt = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "mantacode",
		Subsystem: "lin",
		Name:      "descriptors_built_total",
		Help:      "Descriptors built, by operation",
	},
	[]string{
		"resource",
		"operation",
		"method",
	},
)

var buildFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "mantacode",
		Subsystem: "lin",
		Name:      "build_failures_total",
		Help:      "Failed descriptor builds, by error code",
	},
	[]string{
		"reason",
	},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "mantacode",
		Subsystem: "lin",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{
		"route",
		"code",
	},
)

func init() {
	prometheus.MustRegister(descriptorsBuilt, buildFailures, requestDuration)
}

// monitor times requests on one route and optionally logs them.
type monitor struct {
	Route  string
	Clock  clock.Clock
	Logger *logrus.Logger
}

func (m *monitor) Start() time.Time {
	if m == nil || m.Clock == nil {
		return time.Time{}
	}
	return m.Clock.Now()
}

func (m *monitor) Finish(req *http.Request, status int, requestID string, start time.Time) {
	if m == nil || m.Clock == nil {
		return
	}
	elapsed := m.Clock.Now().Sub(start)
	requestDuration.WithLabelValues(m.Route, strconv.Itoa(status)).Observe(elapsed.Seconds())

	fields := logrus.Fields{
		"request_id": requestID,
		"method":     req.Method,
		"path":       req.URL.Path,
		"status":     status,
		"elapsed":    elapsed,
	}
	if status >= http.StatusInternalServerError {
		logrus.WithFields(fields).Error("request failed")
	} else if m.Logger != nil {
		m.Logger.WithFields(fields).Debug("request")
	}
}

// WriteFailed logs a response body that could not be written.  The
// status line has already gone out, so this is all that can be done.
func (m *monitor) WriteFailed(req *http.Request, requestID string, err error) {
	if err == nil {
		return
	}
	logger := logrus.StandardLogger()
	if m != nil && m.Logger != nil {
		logger = m.Logger
	}
	logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     req.Method,
		"path":       req.URL.Path,
	}).WithError(err).Error("writing response")
}
