// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package linreq prints LinkedIn v1 API request descriptors from the
// command line.
//
//	linreq build --opt count=5 groups posts 547033
//	linreq --format http build people profile
//	linreq --backend http://localhost:5990/ list
package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/mantacode/lin/api"
	"github.com/mantacode/lin/api/v1"
	"github.com/mantacode/lin/backend"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// DefaultBase is the LinkedIn v1 API root.
const DefaultBase = "https://api.linkedin.com/v1/"

type request struct {
	Backend backend.Backend
	Builder api.Builder
	Format  string
	Base    *url.URL
	Out     io.Writer
}

func (r *request) list(c *cli.Context) error {
	ops, err := r.Builder.Operations()
	if err != nil {
		return err
	}
	if r.Format == "text" {
		for _, op := range ops {
			fmt.Fprintf(r.Out, "%-8s %s.%s", op.Method, op.Resource, op.Name)
			for _, arg := range op.Args {
				fmt.Fprintf(r.Out, " <%s>", arg)
			}
			if len(op.Options) > 0 {
				fmt.Fprintf(r.Out, " [%s]", strings.Join(op.Options, " "))
			}
			fmt.Fprintln(r.Out)
		}
		return nil
	}
	return writeValue(r.Out, r.Format, ops)
}

func (r *request) build(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("usage: linreq build <resource> <operation> [args...]")
	}
	options, err := parseOptions(c.StringSlice("opt"), c.String("json"))
	if err != nil {
		return err
	}
	args := c.Args()
	d, err := r.Builder.Build(args.Get(0), args.Get(1), args[2:], options)
	if err != nil {
		return err
	}
	return writeDescriptor(r.Out, r.Format, r.Base, d)
}

func (r *request) unwrapImage(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("usage: linreq unwrap-image <url>")
	}
	_, err := fmt.Fprintln(r.Out, v1.UnwrapImageURL(c.Args().First()))
	return err
}

func newApp(out io.Writer) *cli.App {
	r := &request{
		Backend: backend.Backend{Implementation: "local"},
		Out:     out,
	}

	app := cli.NewApp()
	app.Name = "linreq"
	app.Usage = "describe LinkedIn v1 API requests"
	app.Writer = out
	app.Flags = []cli.Flag{
		cli.GenericFlag{
			Name:  "backend",
			Value: &r.Backend,
			Usage: "impl[:address] of the descriptor builder",
		},
		cli.StringFlag{
			Name:  "format",
			Value: "json",
			Usage: "output format: json, yaml, http, or text (list only)",
		},
		cli.StringFlag{
			Name:  "base",
			Value: DefaultBase,
			Usage: "API root for http output",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log builder setup",
		},
	}
	app.Before = func(c *cli.Context) (err error) {
		if c.Bool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		r.Format = c.String("format")
		switch r.Format {
		case "json", "yaml", "http", "text":
		default:
			return fmt.Errorf("unknown format %q", r.Format)
		}
		r.Base, err = url.Parse(c.String("base"))
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"backend": r.Backend.String(),
		}).Debug("creating builder")
		r.Builder, err = r.Backend.Builder()
		return err
	}
	app.Commands = []cli.Command{
		{
			Name:   "list",
			Usage:  "list the known operations",
			Action: r.list,
		},
		{
			Name:      "build",
			Usage:     "print the descriptor for one operation",
			ArgsUsage: "<resource> <operation> [args...]",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "opt",
					Usage: "key=value option; repeat for lists, headers.{name}=value for headers",
				},
				cli.StringFlag{
					Name:  "json",
					Usage: "options as a JSON object, merged under --opt",
				},
			},
			Action: r.build,
		},
		{
			Name:      "unwrap-image",
			Usage:     "recover the original URL from a media.linkedin.com proxy URL",
			ArgsUsage: "<url>",
			Action:    r.unwrapImage,
		},
	}
	return app
}

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Error("linreq failed")
		os.Exit(1)
	}
}
