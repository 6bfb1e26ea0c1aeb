package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "jsondiff").
		WithSynopsis("jsondiff [opts] <actual> <expected>").
		WithDescription("jsondiff compares two json or yaml documents and prints every path where they differ. " +
			"exits 0 when the documents match, 1 when they differ and 2 when a document can't be loaded. " +
			"use - to read a document from stdin.").
		WithOpts(opts...).
		WithExit(exitCode).
		WithRun(func(cc *cli.Context, args []string) error {
			return jsondiffMain(cfg, cc, args)
		})
}
