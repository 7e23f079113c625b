package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/signadot/scorex"
	"github.com/signadot/scorex/config"
	"github.com/signadot/scorex/render"

	"github.com/scott-cotton/cli"
)

func excerpt(cfg *ExcerptConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Excerpt.Parse(cc, args)
	if err != nil {
		return err
	}
	src, err := oneArg("excerpt", args)
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
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d, err := loadSource(ctx, cc, src)
	if err != nil {
		return err
	}
	var renderer render.Renderer
	if cfg.SVG != "" || cfg.PNG != "" {
		renderer = render.NewVerovio(settings.Verovio, cfg.logger())
	}
	x := scorex.NewExcerpt(cfg.Flags.params(), policy, renderer)
	x.Slice = cfg.Flags.sliceOpts()
	x.Encode = encodeOpts(cfg.Tabs, x.Encode...)
	x.RenderOptions = settings.RenderOptions()
	x.Logger = cfg.logger()
	res, err := x.Run(ctx, d)
	if err != nil {
		return fmt.Errorf("error processing %s: %w", src, err)
	}

	xmlPath := cfg.xmlPath()
	if xmlPath != "" {
		if err := writeFile(xmlPath, res.XML); err != nil {
			return err
		}
	} else if _, err := cc.Out.Write(res.XML); err != nil {
		return err
	}
	if cfg.SVG != "" {
		if err := writeFile(cfg.SVG, res.SVG); err != nil {
			return err
		}
	}
	if cfg.PNG != "" {
		if err := writePNG(cfg.PNG, res.SVG, pngWidth(cfg.PNGWidth, settings)); err != nil {
			return err
		}
	}
	cfg.logger().Debug("excerpt done", "source", src, "xml", xmlPath, "svg", cfg.SVG, "png", cfg.PNG)
	return nil
}

func pngWidth(flag int, settings *config.Config) int {
	if flag > 0 {
		return flag
	}
	return settings.PNGWidth
}

func writePNG(path string, svg []byte, width int) error {
	buf := bytes.NewBuffer(nil)
	if err := render.WritePNG(buf, svg, width); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}
