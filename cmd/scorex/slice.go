package main

import (
	"context"
	"fmt"

	"github.com/signadot/scorex"
	"github.com/signadot/scorex/encode"

	"github.com/scott-cotton/cli"
)

func slice(cfg *SliceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Slice.Parse(cc, args)
	if err != nil {
		return err
	}
	src, err := oneArg("slice", args)
	if err != nil {
		return err
	}
	doc, err := getDoc(context.Background(), cc, src)
	if err != nil {
		return err
	}
	if err := scorex.Slice(doc, cfg.Flags.sliceOpts()...); err != nil {
		return fmt.Errorf("error slicing %s: %w", src, err)
	}
	return encode.Encode(doc, cc.Out, encodeOpts(cfg.Tabs)...)
}
