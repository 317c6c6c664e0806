package main

import (
	"github.com/pthm-cable/grayscott/config"
	"github.com/pthm-cable/grayscott/reaction"
)

// tunedPreset names the regime the tuner writes into the config.
const tunedPreset = "Tuned"

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "feed", Path: "reaction.presets[Tuned].feed", Min: 0.01, Max: 0.10, Default: reaction.Classic.Feed},
			{Name: "kill", Path: "reaction.presets[Tuned].kill", Min: 0.045, Max: 0.07, Default: reaction.Classic.Kill},
			{Name: "diffusion_b", Path: "reaction.diffusion_b", Min: 0.3, Max: 0.6, Default: 0.5},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = max(spec.Min, min(spec.Max, v[i]))
	}
	return clamped
}

// ApplyToConfig installs the values as a uniform "Tuned" regime: both
// bands use it, so the whole grid runs the candidate rates.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) error {
	clamped := pv.Clamp(values)

	tuned := reaction.Rates{Name: tunedPreset, Feed: clamped[0], Kill: clamped[1]}
	presets := make([]reaction.Rates, 0, len(cfg.Reaction.Presets)+1)
	for _, p := range cfg.Reaction.Presets {
		if p.Name != tunedPreset {
			presets = append(presets, p)
		}
	}
	cfg.Reaction.Presets = append(presets, tuned)
	cfg.Reaction.Low = tunedPreset
	cfg.Reaction.High = tunedPreset
	cfg.Reaction.DiffusionB = clamped[2]

	return cfg.Refresh()
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Derived.Low.Feed,
		cfg.Derived.Low.Kill,
		cfg.Reaction.DiffusionB,
	}
}
