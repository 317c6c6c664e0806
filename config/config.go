// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/grayscott/palette"
	"github.com/pthm-cable/grayscott/reaction"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrUnknownPreset is returned when a rate preset name cannot be resolved.
var ErrUnknownPreset = errors.New("unknown preset")

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Reaction  ReactionConfig  `yaml:"reaction"`
	Seed      SeedConfig      `yaml:"seed"`
	Brush     BrushConfig     `yaml:"brush"`
	Emitters  EmittersConfig  `yaml:"emitters"`
	Render    RenderConfig    `yaml:"render"`
	Workers   WorkersConfig   `yaml:"workers"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// GridConfig maps screen pixels to simulation cells.
type GridConfig struct {
	CellSize int `yaml:"cell_size"` // screen pixels per cell
	Width    int `yaml:"width"`     // 0 = screen width / cell size
	Height   int `yaml:"height"`    // 0 = screen height / cell size
}

// ReactionConfig holds the Gray-Scott parameters.
type ReactionConfig struct {
	DiffusionA    float64          `yaml:"diffusion_a"`
	DiffusionB    float64          `yaml:"diffusion_b"`
	TimeStep      float64          `yaml:"time_step"`
	Low           string           `yaml:"low"`   // preset at the top row
	High          string           `yaml:"high"`  // preset approached towards the bottom row
	Blend         float64          `yaml:"blend"` // how far down the gradient the bottom row reaches
	StepsPerFrame int              `yaml:"steps_per_frame"`
	Presets       []reaction.Rates `yaml:"presets"` // extra presets, appended to the built-ins
}

// SeedConfig holds initial pattern parameters.
type SeedConfig struct {
	Threshold    float64 `yaml:"threshold"`
	Scale        float64 `yaml:"scale"`
	SizeFraction float64 `yaml:"size_fraction"` // seed square side as a fraction of grid height
	Noise        string  `yaml:"noise"`
	NoiseSeed    int64   `yaml:"noise_seed"`
	Octaves      int     `yaml:"octaves"`
	Falloff      float64 `yaml:"falloff"`
}

// BrushConfig holds pointer painting parameters (screen pixels).
type BrushConfig struct {
	Radius       float64 `yaml:"radius"`
	MinRadius    float64 `yaml:"min_radius"`
	MaxRadius    float64 `yaml:"max_radius"`
	WheelStep    float64 `yaml:"wheel_step"`
	InjectFactor float64 `yaml:"inject_factor"` // injected square side = radius * this
	FadeSeconds  float64 `yaml:"fade_seconds"`  // cursor hidden after this long idle
}

// EmittersConfig holds persistent source parameters.
type EmittersConfig struct {
	Max   int `yaml:"max"`
	TTL   int `yaml:"ttl"`   // ticks; negative = until cleared
	Every int `yaml:"every"` // inject once every N ticks
	Size  int `yaml:"size"`  // cells
}

// RenderConfig holds colour mapping and output parameters.
type RenderConfig struct {
	Palette       string         `yaml:"palette"`
	PaletteSize   int            `yaml:"palette_size"`
	TintOffset    float64        `yaml:"tint_offset"`
	CycleSpeed    float64        `yaml:"cycle_speed"` // palette entries per frame
	Cosine        palette.Cosine `yaml:"cosine"`
	SnapshotScale int            `yaml:"snapshot_scale"`
	VideoFPS      int            `yaml:"video_fps"`
	VideoQuality  int            `yaml:"video_quality"`
}

// WorkersConfig holds stepper parallelism settings.
type WorkersConfig struct {
	Count           int `yaml:"count"`             // 0 = GOMAXPROCS
	MinParallelRows int `yaml:"min_parallel_rows"` // below this the step runs inline
}

// TelemetryConfig holds telemetry and logging parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"` // ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"`
	BookmarkHistory     int `yaml:"bookmark_history"` // windows kept for bookmark detection
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	GridW, GridH int
	Low, High    reaction.Rates
	Presets      []reaction.Rates // built-ins followed by Reaction.Presets
	BrushFade    time.Duration
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// Validate checks ranges and preset names. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen: dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Grid.CellSize > 0, "grid.cell_size must be positive, got %d", c.Grid.CellSize)
	fixed := func(n int) bool { return n == 0 || n >= 3 }
	check(fixed(c.Grid.Width) && fixed(c.Grid.Height), "grid: dimensions must be 0 or at least 3, got %dx%d", c.Grid.Width, c.Grid.Height)
	check(c.Reaction.DiffusionA >= 0 && c.Reaction.DiffusionB >= 0, "reaction: diffusion rates must not be negative")
	check(c.Reaction.TimeStep >= 0, "reaction.time_step must not be negative")
	check(c.Reaction.Blend >= 0 && c.Reaction.Blend <= 1, "reaction.blend must be in [0,1], got %g", c.Reaction.Blend)
	check(c.Reaction.StepsPerFrame >= 1, "reaction.steps_per_frame must be at least 1")
	check(c.Seed.SizeFraction >= 0 && c.Seed.SizeFraction <= 1, "seed.size_fraction must be in [0,1]")
	check(c.Brush.MinRadius > 0 && c.Brush.MinRadius <= c.Brush.MaxRadius, "brush: need 0 < min_radius <= max_radius")
	check(c.Render.PaletteSize >= 2, "render.palette_size must be at least 2")
	check(c.Workers.Count >= 0, "workers.count must not be negative")

	presets := c.allPresets()
	for _, name := range []string{c.Reaction.Low, c.Reaction.High} {
		if _, ok := reaction.PresetByName(presets, name); !ok {
			errs = append(errs, fmt.Errorf("reaction preset %q: %w", name, ErrUnknownPreset))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Refresh re-validates c and recomputes Derived after it was edited in code.
func (c *Config) Refresh() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

func (c *Config) allPresets() []reaction.Rates {
	return append(reaction.Presets(), c.Reaction.Presets...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.GridW, c.Derived.GridH = c.GridFor(c.Screen.Width, c.Screen.Height)

	c.Derived.Presets = c.allPresets()
	c.Derived.Low, _ = reaction.PresetByName(c.Derived.Presets, c.Reaction.Low)
	c.Derived.High, _ = reaction.PresetByName(c.Derived.Presets, c.Reaction.High)
	c.Derived.BrushFade = time.Duration(c.Brush.FadeSeconds * float64(time.Second))
}

// GridFor returns the grid dimensions for a screen of w x h pixels. A
// non-zero grid.width or grid.height is used as is; the other axis covers
// the screen at cell_size pixels per cell, never below 3 cells so there is
// always an interior.
func (c *Config) GridFor(w, h int) (int, int) {
	gw, gh := c.Grid.Width, c.Grid.Height
	if gw == 0 {
		gw = max(w/c.Grid.CellSize, 3)
	}
	if gh == 0 {
		gh = max(h/c.Grid.CellSize, 3)
	}
	return gw, gh
}

// Params builds the stepper parameters from the reaction section.
func (c *Config) Params() reaction.Params {
	return reaction.Params{
		DiffusionA: c.Reaction.DiffusionA,
		DiffusionB: c.Reaction.DiffusionB,
		Low:        c.Derived.Low,
		High:       c.Derived.High,
		Blend:      c.Reaction.Blend,
		TimeStep:   c.Reaction.TimeStep,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
