package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pthm-cable/grayscott/reaction"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Derived.Low != reaction.Classic || cfg.Derived.High != reaction.Blobby {
		t.Fatalf("unexpected default presets %+v / %+v", cfg.Derived.Low, cfg.Derived.High)
	}
	if cfg.Derived.GridW != 400 || cfg.Derived.GridH != 300 {
		t.Fatalf("expected 400x300 grid, got %dx%d", cfg.Derived.GridW, cfg.Derived.GridH)
	}
	if cfg.Seed.Threshold != 0.55 || cfg.Seed.Scale != 0.04 {
		t.Fatalf("unexpected seed defaults %+v", cfg.Seed)
	}
	if cfg.Derived.BrushFade != 1500*time.Millisecond {
		t.Fatalf("unexpected brush fade %v", cfg.Derived.BrushFade)
	}
	if cfg.Render.Cosine.Phase[0] != 1.468 {
		t.Fatalf("cosine coefficients not loaded: %+v", cfg.Render.Cosine)
	}

	p := cfg.Params()
	if p.DiffusionA != 1 || p.DiffusionB != 0.5 || p.Blend != 0.55 || p.TimeStep != 1 {
		t.Fatalf("unexpected params %+v", p)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.yaml")
	data := []byte(`
reaction:
  low: coral
  blend: 1
  presets:
    - {name: coral, feed: 0.0545, kill: 0.062}
grid:
  width: 64
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Derived.Low.Name != "coral" || cfg.Derived.Low.Feed != 0.0545 {
		t.Fatalf("custom preset not resolved: %+v", cfg.Derived.Low)
	}
	if cfg.Derived.High != reaction.Blobby {
		t.Fatal("untouched keys should keep their defaults")
	}
	if cfg.Derived.GridW != 64 || cfg.Derived.GridH != 300 {
		t.Fatalf("expected 64x300 grid, got %dx%d", cfg.Derived.GridW, cfg.Derived.GridH)
	}
	if len(cfg.Derived.Presets) != len(reaction.Presets())+1 {
		t.Fatalf("expected custom preset appended, got %d presets", len(cfg.Derived.Presets))
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	bad := *cfg
	bad.Reaction.Blend = 1.5
	if err := bad.Validate(); err == nil {
		t.Fatal("expected blend out of range to fail")
	}

	bad = *cfg
	bad.Reaction.High = "nonexistent"
	if err := bad.Validate(); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}

	bad = *cfg
	bad.Grid.CellSize = 0
	bad.Brush.MinRadius = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected invalid cell size and brush to fail")
	}

	bad = *cfg
	bad.Grid.Width = 2
	if err := bad.Validate(); err == nil {
		t.Fatal("expected a fixed grid without interior to fail")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestGridForHasInterior(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if w, h := cfg.GridFor(1, 1); w != 3 || h != 3 {
		t.Fatalf("expected minimum 3x3 grid, got %dx%d", w, h)
	}
	if w, h := cfg.GridFor(1024, 768); w != 512 || h != 384 {
		t.Fatalf("expected 512x384, got %dx%d", w, h)
	}
}

func TestGridForKeepsConfiguredSize(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Grid.Width = 64
	if w, h := cfg.GridFor(1024, 768); w != 64 || h != 384 {
		t.Fatalf("expected configured width with derived height, got %dx%d", w, h)
	}
	cfg.Grid.Height = 48
	if w, h := cfg.GridFor(1920, 1080); w != 64 || h != 48 {
		t.Fatalf("expected fixed 64x48 grid on resize, got %dx%d", w, h)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Reaction.Blend = 0.8
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.Reaction.Blend != 0.8 {
		t.Fatalf("expected blend 0.8 after reload, got %g", back.Reaction.Blend)
	}
}

func TestMustInitAndCfg(t *testing.T) {
	MustInit("")
	if Cfg().Screen.Width != 800 {
		t.Fatalf("unexpected screen width %d", Cfg().Screen.Width)
	}
}

func TestRefreshRederivesPresets(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Reaction.Presets = append(cfg.Reaction.Presets, reaction.Rates{Name: "Tuned", Feed: 0.03, Kill: 0.06})
	cfg.Reaction.Low = "tuned"
	if err := cfg.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if cfg.Derived.Low.Feed != 0.03 {
		t.Fatalf("expected derived low feed 0.03, got %g", cfg.Derived.Low.Feed)
	}

	cfg.Reaction.High = "missing"
	if err := cfg.Refresh(); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
}
