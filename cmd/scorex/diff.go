package main

import (
	"context"
	"fmt"

	"github.com/signadot/scorex/libdiff"
	"github.com/signadot/scorex/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	pOpts := []parse.ParseOption{parse.ParseWhitespace(false)}
	a, err := getDoc(context.Background(), cc, args[0], pOpts...)
	if err != nil {
		return err
	}
	b, err := getDoc(context.Background(), cc, args[1], pOpts...)
	if err != nil {
		return err
	}
	lines, err := libdiff.Docs(a, b)
	if err != nil {
		return err
	}
	if !libdiff.Changed(lines) {
		return nil
	}
	if err := libdiff.Write(cc.Out, lines, cfg.colors(cc.Out), cfg.Context); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
