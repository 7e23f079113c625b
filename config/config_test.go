package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/scorex"
	"github.com/signadot/scorex/config"
	"github.com/signadot/scorex/ir"

	"github.com/google/go-cmp/cmp"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

const tomlConfig = `
verovio = "/opt/verovio/bin/verovio"
scale = 60
strip_dynamics = 'id == "P2"'
default_style_rules = false

[[style_rules]]
name = "dolce"
contains = "dolce"
ignore_case = true
set = { font-style = "italic", font-weight = "normal" }
set_unless_reset = { relative-y = "10" }
`

const yamlConfig = `
verovio: /opt/verovio/bin/verovio
scale: 60
strip_dynamics: 'id == "P2"'
default_style_rules: false
style_rules:
  - name: dolce
    contains: dolce
    ignore_case: true
    set:
      font-style: italic
      font-weight: normal
    set_unless_reset:
      relative-y: "10"
`

func TestLoad(t *testing.T) {
	for _, p := range []string{
		write(t, "scorex.toml", tomlConfig),
		write(t, "scorex.yaml", yamlConfig),
	} {
		t.Run(filepath.Ext(p), func(t *testing.T) {
			cfg, err := config.Load(p)
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Verovio != "/opt/verovio/bin/verovio" || cfg.Scale != 60 {
				t.Errorf("unexpected config %+v", cfg)
			}
			if cfg.PageWidth != config.Default().PageWidth || cfg.PNGWidth != config.Default().PNGWidth {
				t.Errorf("defaults lost: %+v", cfg)
			}
			ro := cfg.RenderOptions()
			if ro.Scale != 60 || ro.Header || !ro.AdjustPageHeight {
				t.Errorf("render options %+v", ro)
			}
			policy, err := cfg.Policy()
			if err != nil {
				t.Fatal(err)
			}
			want := []scorex.StyleRule{{
				Name:       "dolce",
				Contains:   "dolce",
				IgnoreCase: true,
				Set: []ir.Attr{
					{Name: "font-style", Value: "italic"},
					{Name: "font-weight", Value: "normal"},
				},
				SetUnlessReset: []ir.Attr{{Name: "relative-y", Value: "10"}},
			}}
			if diff := cmp.Diff(want, policy.StyleRules); diff != "" {
				t.Errorf("rules (-want +got):\n%s", diff)
			}
			strip, err := policy.StripDynamics(scorex.PartInfo{Index: 0, ID: "P2"})
			if err != nil || !strip {
				t.Errorf("strip_dynamics on P2: %t %v", strip, err)
			}
		})
	}
}

func TestDefaultPolicy(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	policy, err := cfg.Policy()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(scorex.DefaultStyleRules, policy.StyleRules); diff != "" {
		t.Errorf("rules (-want +got):\n%s", diff)
	}
	for i, want := range []bool{false, true, false} {
		got, err := policy.StripDynamics(scorex.PartInfo{Index: i})
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("part %d: strip %t", i, got)
		}
	}
}

func TestKeepDynamics(t *testing.T) {
	p := write(t, "scorex.toml", `strip_dynamics = ""`)
	cfg, err := config.Load(p)
	if err != nil {
		t.Fatal(err)
	}
	policy, err := cfg.Policy()
	if err != nil {
		t.Fatal(err)
	}
	if policy.StripDynamics != nil {
		t.Error("expected no dynamics policy")
	}
	if len(policy.StyleRules) != len(scorex.DefaultStyleRules) {
		t.Errorf("%d rules", len(policy.StyleRules))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, file, content string
	}{
		{"format", "scorex.json", `{}`},
		{"toml syntax", "scorex.toml", `scale = `},
		{"unknown toml key", "scorex.toml", `colour = "red"`},
		{"unknown yaml key", "scorex.yml", "colour: red\n"},
		{"scale", "scorex.toml", `scale = 0`},
		{"rule", "scorex.yaml", "style_rules:\n  - name: empty\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(write(t, tt.file, tt.content))
			if !errors.Is(err, config.ErrConfig) {
				t.Errorf("expected ErrConfig, got %v", err)
			}
		})
	}
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, config.ErrConfig) {
		t.Errorf("expected ErrConfig for missing file, got %v", err)
	}
}

func TestPolicyError(t *testing.T) {
	p := write(t, "scorex.toml", `strip_dynamics = "index +"`)
	cfg, err := config.Load(p)
	if err != nil {
		t.Fatal(err)
	}
	_, err = cfg.Policy()
	if !errors.Is(err, config.ErrConfig) || !errors.Is(err, scorex.ErrInvalid) {
		t.Errorf("expected ErrConfig and ErrInvalid, got %v", err)
	}
}
