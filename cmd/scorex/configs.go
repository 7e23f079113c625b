package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/signadot/scorex"
	"github.com/signadot/scorex/config"
	"github.com/signadot/scorex/encode"
	"github.com/signadot/scorex/libdiff"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Verbose bool   `cli:"name=v aliases=verbose desc='log debug messages'"`
	Color   bool   `cli:"name=color desc='color diff output'"`
	Gops    bool   `cli:"name=gops desc='start a gops diagnostics agent'"`
	Config  string `cli:"name=config aliases=c desc='policy and rendering config (.toml, .yaml)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command

	log      *slog.Logger
	settings *config.Config
}

func (cfg *MainConfig) logger() *slog.Logger {
	if cfg.log == nil {
		cfg.log = newLogger(os.Stderr, cfg.Verbose)
	}
	return cfg.log
}

func (cfg *MainConfig) loadSettings() (*config.Config, error) {
	if cfg.settings != nil {
		return cfg.settings, nil
	}
	s, err := config.Load(cfg.Config)
	if err != nil {
		return nil, err
	}
	cfg.settings = s
	return s, nil
}

func (cfg *MainConfig) colors(w io.Writer) *libdiff.Colors {
	if cfg.Color {
		return libdiff.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return libdiff.NewColors()
	}
	return nil
}

// SliceFlags are the slicer options shared by excerpt and slice.
type SliceFlags struct {
	Start, End *int

	Part         string `cli:"name=part aliases=p desc='keep only the part with this id'"`
	Staff        int    `cli:"name=staff desc='keep only this staff, counting from 1'"`
	Carry        bool   `cli:"name=carry desc='carry clef, key and time into the first kept measure'"`
	AllowMissing bool   `cli:"name=allow-missing desc='keep going when -part names no part'"`
}

func (f *SliceFlags) params() scorex.SliceParams {
	return scorex.SliceParams{
		Start:  f.Start,
		End:    f.End,
		PartID: f.Part,
		Staff:  f.Staff,
		Carry:  f.Carry,
	}
}

func (f *SliceFlags) sliceOpts() []scorex.SliceOption {
	opts := f.params().SliceOptions()
	if f.AllowMissing {
		opts = append(opts, scorex.AllowMissingPart(true))
	}
	return opts
}

func (f *SliceFlags) opts() ([]*cli.Opt, error) {
	opts, err := cli.StructOpts(f)
	if err != nil {
		return nil, err
	}
	return append(opts,
		&cli.Opt{
			Name:        "start",
			Aliases:     []string{"s"},
			Description: "first measure number to keep",
			Type:        cli.NamedFuncOpt(intPtrOpt(&f.Start), "(measure)"),
		},
		&cli.Opt{
			Name:        "end",
			Aliases:     []string{"e"},
			Description: "last measure number to keep",
			Type:        cli.NamedFuncOpt(intPtrOpt(&f.End), "(measure)"),
		}), nil
}

func intPtrOpt(p **int) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*p = &n
		return n, nil
	})
}

type ExcerptConfig struct {
	*MainConfig
	Flags *SliceFlags

	XML      string `cli:"name=xml desc='write the optimized MusicXML here (default: beside -svg or -png, else standard output)'"`
	SVG      string `cli:"name=svg desc='write the rendered SVG here'"`
	PNG      string `cli:"name=png desc='write a PNG preview here'"`
	PNGWidth int    `cli:"name=png-width desc='PNG preview width in pixels (default from config)'"`
	Tabs     bool   `cli:"name=tabs desc='indent the MusicXML with tabs'"`

	Excerpt *cli.Command
}

// xmlPath is where the optimized MusicXML goes, "" meaning standard
// output. Rendered excerpts keep their XML beside the image.
func (cfg *ExcerptConfig) xmlPath() string {
	switch {
	case cfg.XML != "":
		return cfg.XML
	case cfg.SVG != "":
		return withExt(cfg.SVG, ".musicxml")
	case cfg.PNG != "":
		return withExt(cfg.PNG, ".musicxml")
	}
	return ""
}

func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func encodeOpts(tabs bool, opts ...encode.EncodeOption) []encode.EncodeOption {
	if tabs {
		return append(opts, encode.EncodeTabs(true))
	}
	return opts
}

type SliceConfig struct {
	*MainConfig
	Flags *SliceFlags
	Tabs  bool `cli:"name=tabs desc='re-indent the output with tabs'"`

	Slice *cli.Command
}

type OptimizeConfig struct {
	*MainConfig

	Reset        bool `cli:"name=reset desc='reset layout and direction positions'"`
	Align        bool `cli:"name=align desc='align dynamics to the first sounding note'"`
	RemoveGroups bool `cli:"name=remove-groups desc='remove part groups instead of adding a brace'"`
	Tabs         bool `cli:"name=tabs desc='re-indent the output with tabs'"`

	Optimize *cli.Command
}

type RenderConfig struct {
	*MainConfig

	PNG      string `cli:"name=png desc='write a PNG preview here'"`
	PNGWidth int    `cli:"name=png-width desc='PNG preview width in pixels (default from config)'"`

	Render *cli.Command
}

type InfoConfig struct {
	*MainConfig

	Info *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Context int `cli:"name=context aliases=U desc='unchanged lines shown around changes, -1 for all' default=3"`

	Diff *cli.Command
}
