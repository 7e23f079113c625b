package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/signadot/scorex/render"

	"github.com/scott-cotton/cli"
)

func renderCmd(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	src, err := oneArg("render", args)
	if err != nil {
		return err
	}
	settings, err := cfg.loadSettings()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d, err := loadSource(ctx, cc, src)
	if err != nil {
		return err
	}
	v := render.NewVerovio(settings.Verovio, cfg.logger())
	svg, err := v.Render(ctx, d, settings.RenderOptions())
	if err != nil {
		return fmt.Errorf("error rendering %s: %w", src, err)
	}
	if cfg.PNG != "" {
		return writePNG(cfg.PNG, svg, pngWidth(cfg.PNGWidth, settings))
	}
	_, err = cc.Out.Write(svg)
	return err
}
