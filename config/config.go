package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/signadot/scorex"
	"github.com/signadot/scorex/ir"
	"github.com/signadot/scorex/render"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

var ErrConfig = errors.New("config error")

type Config struct {
	Verovio   string `toml:"verovio" yaml:"verovio"`
	Scale     int    `toml:"scale" yaml:"scale"`
	PageWidth int    `toml:"page_width" yaml:"page_width"`
	PNGWidth  int    `toml:"png_width" yaml:"png_width"`
	// StripDynamics is a part condition, see scorex.CompilePartCondition.
	// Nil uses scorex.DefaultStripDynamics, empty keeps all dynamics.
	StripDynamics     *string     `toml:"strip_dynamics" yaml:"strip_dynamics"`
	DefaultStyleRules *bool       `toml:"default_style_rules" yaml:"default_style_rules"`
	StyleRules        []StyleRule `toml:"style_rules" yaml:"style_rules"`
}

type StyleRule struct {
	Name           string            `toml:"name" yaml:"name"`
	Contains       string            `toml:"contains" yaml:"contains"`
	IgnoreCase     bool              `toml:"ignore_case" yaml:"ignore_case"`
	Set            map[string]string `toml:"set" yaml:"set"`
	SetUnlessReset map[string]string `toml:"set_unless_reset" yaml:"set_unless_reset"`
}

func Default() *Config {
	return &Config{
		Verovio:   render.DefaultVerovio,
		Scale:     100,
		PageWidth: 2100,
		PNGWidth:  1200,
	}
}

// Load reads the file at path over the defaults. The format follows the
// extension: .toml, or .yaml and .yml. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(d))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", ErrConfig, path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(d, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %w", ErrConfig, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown config format %q", ErrConfig, ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive, got %d", ErrConfig, c.Scale)
	}
	if c.PageWidth <= 0 {
		return fmt.Errorf("%w: page_width must be positive, got %d", ErrConfig, c.PageWidth)
	}
	if c.PNGWidth <= 0 {
		return fmt.Errorf("%w: png_width must be positive, got %d", ErrConfig, c.PNGWidth)
	}
	for i, r := range c.StyleRules {
		if strings.TrimSpace(r.Contains) == "" {
			return fmt.Errorf("%w: style rule %d (%s) has no contains", ErrConfig, i, r.Name)
		}
		for _, m := range []map[string]string{r.Set, r.SetUnlessReset} {
			for k := range m {
				if strings.TrimSpace(k) == "" {
					return fmt.Errorf("%w: style rule %d (%s) sets an empty attribute", ErrConfig, i, r.Name)
				}
			}
		}
	}
	return nil
}

// Policy builds the optimizer policy described by c.
func (c *Config) Policy() (*scorex.Policy, error) {
	res := &scorex.Policy{}
	if c.DefaultStyleRules == nil || *c.DefaultStyleRules {
		res.StyleRules = append(res.StyleRules, scorex.DefaultStyleRules...)
	}
	for _, r := range c.StyleRules {
		res.StyleRules = append(res.StyleRules, scorex.StyleRule{
			Name:           r.Name,
			Contains:       r.Contains,
			IgnoreCase:     r.IgnoreCase,
			Set:            attrs(r.Set),
			SetUnlessReset: attrs(r.SetUnlessReset),
		})
	}
	cond := scorex.DefaultStripDynamics
	if c.StripDynamics != nil {
		cond = strings.TrimSpace(*c.StripDynamics)
	}
	if cond == "" {
		return res, nil
	}
	pred, err := scorex.CompilePartCondition(cond)
	if err != nil {
		return nil, fmt.Errorf("%w: strip_dynamics: %w", ErrConfig, err)
	}
	res.StripDynamics = pred
	return res, nil
}

func (c *Config) RenderOptions() render.Options {
	res := render.DefaultOptions()
	res.Scale = c.Scale
	res.PageWidth = c.PageWidth
	return res
}

// attrs orders m by attribute name.
func attrs(m map[string]string) []ir.Attr {
	if len(m) == 0 {
		return nil
	}
	res := make([]ir.Attr, 0, len(m))
	for k, v := range m {
		res = append(res, ir.Attr{Name: k, Value: v})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}
