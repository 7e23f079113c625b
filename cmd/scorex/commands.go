package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "scorex").
		WithSynopsis("scorex [opts] command [opts]").
		WithDescription("scorex cuts, cleans up and renders excerpts of MusicXML scores.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return scorexMain(cfg, cc, args)
		}).
		WithSubs(
			ExcerptCommand(cfg),
			SliceCommand(cfg),
			OptimizeCommand(cfg),
			RenderCommand(cfg),
			InfoCommand(cfg),
			DiffCommand(cfg))
}

func ExcerptCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExcerptConfig{MainConfig: mainCfg, Flags: &SliceFlags{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	fOpts, err := cfg.Flags.opts()
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Excerpt, "excerpt").
		WithAliases("x").
		WithSynopsis("excerpt [-start n] [-end n] [-part id] [-staff n] [-xml f] [-svg f] [-png f] <source>").
		WithDescription("slice, optimize and render an excerpt of a score file, url or - for stdin").
		WithOpts(append(opts, fOpts...)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return excerpt(cfg, cc, args)
		})
}

func SliceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SliceConfig{MainConfig: mainCfg, Flags: &SliceFlags{}}
	fOpts, err := cfg.Flags.opts()
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Slice, "slice").
		WithAliases("s").
		WithSynopsis("slice [-start n] [-end n] [-part id] [-staff n] <source>").
		WithDescription("narrow a score to a part, staff and measure window").
		WithOpts(fOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return slice(cfg, cc, args)
		})
}

func OptimizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OptimizeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Optimize, "optimize").
		WithAliases("opt").
		WithSynopsis("optimize [-reset] [-align] [-remove-groups] <source>").
		WithDescription("clean up a score for rendering").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return optimize(cfg, cc, args)
		})
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Render, "render").
		WithAliases("r").
		WithSynopsis("render [-png f] <source>").
		WithDescription("render the first page of a score to svg").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return renderCmd(cfg, cc, args)
		})
}

func InfoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InfoConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Info, "info").
		WithAliases("i").
		WithSynopsis("info <source>...").
		WithDescription("list the parts of scores").
		WithRun(func(cc *cli.Context, args []string) error {
			return info(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("show the differences between two scores, exiting 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
