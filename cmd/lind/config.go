// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"io/ioutil"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v2"
)

// Config holds the daemon settings that may come from a YAML file.
type Config struct {
	// HTTP is the [ip]:port to listen on.
	HTTP string `mapstructure:"http"`

	// Backend is the impl[:address] of the descriptor builder.
	Backend string `mapstructure:"backend"`

	// LogLevel is a logrus level name.
	LogLevel string `mapstructure:"log_level"`

	// LogRequests logs every request at Debug level.
	LogRequests bool `mapstructure:"log_requests"`
}

var defaultConfig = Config{
	HTTP:     ":5990",
	Backend:  "local",
	LogLevel: "info",
}

func loadConfigYaml(filename string) (Config, error) {
	bytes, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	return parseConfig(bytes)
}

// parseConfig reads YAML over the defaults.  Unknown keys are
// errors.
func parseConfig(bytes []byte) (Config, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, err
	}
	config := defaultConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &config,
	})
	if err == nil {
		err = decoder.Decode(raw)
	}
	if err != nil {
		return Config{}, err
	}
	return config, nil
}
