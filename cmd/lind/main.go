// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package lind runs the LinkedIn request descriptor service.  It
// builds descriptors over HTTP for clients that cannot link the Go
// builders directly; it never contacts LinkedIn itself.
package main

import (
	"flag"

	"github.com/mantacode/lin/backend"
	"github.com/sirupsen/logrus"
)

func main() {
	httpBind := flag.String("http", defaultConfig.HTTP,
		"[ip]:port for HTTP REST interface")
	back := backend.Backend{Implementation: "local"}
	flag.Var(&back, "backend", "impl[:address] of the descriptor builder")
	configFile := flag.String("config", "", "global configuration YAML file")
	logLevel := flag.String("log-level", defaultConfig.LogLevel, "minimum level to log")
	logRequests := flag.Bool("log-requests", false, "log all requests")
	flag.Parse()

	config := defaultConfig
	if *configFile != "" {
		var err error
		config, err = loadConfigYaml(*configFile)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err":  err,
				"file": *configFile,
			}).Fatal("Could not load YAML configuration")
			return
		}
	}

	// Explicit command-line flags win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "http":
			config.HTTP = *httpBind
		case "backend":
			config.Backend = back.String()
		case "log-level":
			config.LogLevel = *logLevel
		case "log-requests":
			config.LogRequests = *logRequests
		}
	})

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":   err,
			"level": config.LogLevel,
		}).Fatal("Invalid log level")
		return
	}
	logrus.SetLevel(level)

	if err = back.Set(config.Backend); err != nil {
		logrus.WithFields(logrus.Fields{
			"err":     err,
			"backend": config.Backend,
		}).Fatal("Invalid builder backend")
		return
	}
	builder, err := back.Builder()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":     err,
			"backend": back.String(),
		}).Fatal("Could not create descriptor builder")
		return
	}
	observe(builder)

	var reqLogger *logrus.Logger
	if config.LogRequests {
		stdlog := logrus.StandardLogger()
		reqLogger = &logrus.Logger{
			Out:       stdlog.Out,
			Formatter: stdlog.Formatter,
			Hooks:     stdlog.Hooks,
			Level:     logrus.DebugLevel,
		}
	}

	h := &HTTP{builder: builder, laddr: config.HTTP, reqLogger: reqLogger}
	logrus.WithFields(logrus.Fields{
		"http":    config.HTTP,
		"backend": back.String(),
	}).Info("Serving descriptors")
	if err = h.Serve(); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("HTTP server failed")
	}
}
