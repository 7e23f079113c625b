package main

import (
	"context"
	"fmt"

	"github.com/signadot/scorex"
	"github.com/signadot/scorex/encode"

	"github.com/scott-cotton/cli"
)

func optimize(cfg *OptimizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Optimize.Parse(cc, args)
	if err != nil {
		return err
	}
	src, err := oneArg("optimize", args)
	if err != nil {
		return err
	}
	settings, err := cfg.loadSettings()
	if err != nil {
		return err
	}
	policy, err := settings.Policy()
	if err != nil {
		return err
	}
	doc, err := getDoc(context.Background(), cc, src)
	if err != nil {
		return err
	}
	err = scorex.Optimize(doc,
		scorex.ResetPositioning(cfg.Reset),
		scorex.AlignDynamics(cfg.Align),
		scorex.RemovePartGroups(cfg.RemoveGroups),
		scorex.WithPolicy(policy))
	if err != nil {
		return fmt.Errorf("error optimizing %s: %w", src, err)
	}
	return encode.Encode(doc, cc.Out, encodeOpts(cfg.Tabs)...)
}
