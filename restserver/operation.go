// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/go-playground/validator/v10"
	"github.com/mantacode/lin/restdata"
	"github.com/sirupsen/logrus"
)

var validate = validator.New()

func (api *restAPI) OperationList(ctx *context) (interface{}, error) {
	ops, err := api.Builder.Operations()
	if err != nil {
		return nil, err
	}
	resp := restdata.OperationList{Operations: make([]restdata.Operation, len(ops))}
	for i, op := range ops {
		resp.Operations[i].OperationInfo = op
		err = buildURLs(api.Router, "resource", string(op.Resource), "operation", op.Name).
			URL(&resp.Operations[i].URL, "operation").
			Error
		if err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (api *restAPI) BuildFromQuery(ctx *context) (interface{}, error) {
	args, err := ctx.Args()
	if err != nil {
		return nil, err
	}
	return api.build(ctx, args, ctx.Options())
}

func (api *restAPI) BuildFromBody(ctx *context, in interface{}) (interface{}, error) {
	req, valid := in.(restdata.BuildRequest)
	if !valid {
		return nil, errUnmarshal
	}
	if err := validate.Struct(req); err != nil {
		return nil, restdata.ErrBadRequest{Err: err}
	}
	return api.build(ctx, req.Args, req.Options)
}

func (api *restAPI) build(ctx *context, args []string, options map[string]interface{}) (interface{}, error) {
	d, err := api.Builder.Build(ctx.Resource, ctx.Operation, args, options)
	if err != nil {
		resp := restdata.ErrorResponse{Error: "error"}
		resp.FromError(err)
		buildFailures.WithLabelValues(resp.Error).Inc()
		return nil, err
	}
	descriptorsBuilt.WithLabelValues(string(d.Resource), ctx.Operation, string(d.Method)).Inc()
	ctx.Log.WithFields(logrus.Fields{
		"request_id": ctx.RequestID,
		"resource":   d.Resource,
		"operation":  ctx.Operation,
		"method":     d.Method,
	}).Debug("built descriptor")
	return d, nil
}
