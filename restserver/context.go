// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/mantacode/lin/restdata"
	"github.com/sirupsen/logrus"
)

// errUnmarshal is returned if the post contract is violated and a
// handler function is passed the wrong type.
var errUnmarshal = restdata.ErrBadRequest{
	Err: errors.New("Invalid input format"),
}

// headerPrefix marks query parameters that go into the headers
// override.
const headerPrefix = "headers."

// context holds all of the information and objects that can be extracted
// from URL parameters.
type context struct {
	Resource    string
	Operation   string
	RequestID   string
	QueryParams url.Values
	Log         *logrus.Entry
}

func (api *restAPI) Context(req *http.Request) (*context, error) {
	ctx := &context{}
	ctx.QueryParams = req.URL.Query()
	vars := mux.Vars(req)
	ctx.Resource = vars["resource"]
	ctx.Operation = vars["operation"]
	ctx.Log = logrus.NewEntry(api.logger())
	return ctx, nil
}

// buildQuery holds the positional arguments of a GET build request.
type buildQuery struct {
	Args []string `schema:"arg"`
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// Args decodes the repeated "arg" query parameter.
func (ctx *context) Args() ([]string, error) {
	var q buildQuery
	if err := queryDecoder.Decode(&q, ctx.QueryParams); err != nil {
		return nil, restdata.ErrBadRequest{Err: err}
	}
	return q.Args, nil
}

// Options collects every query parameter other than "arg" into an
// option map.  A parameter given once is a string; one given several
// times is a list.  "headers.{name}" parameters are gathered into a
// "headers" map.
func (ctx *context) Options() map[string]interface{} {
	options := make(map[string]interface{})
	var headers map[string]string
	for key, values := range ctx.QueryParams {
		switch {
		case key == "arg" || len(values) == 0:
			continue
		case strings.HasPrefix(key, headerPrefix):
			if headers == nil {
				headers = make(map[string]string)
			}
			headers[strings.TrimPrefix(key, headerPrefix)] = values[0]
		case len(values) == 1:
			options[key] = values[0]
		default:
			options[key] = values
		}
	}
	if headers != nil {
		options["headers"] = headers
	}
	return options
}
