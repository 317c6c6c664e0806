package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/grayscott/field"
)

// CoverageThreshold is the B concentration above which a cell counts as
// part of the pattern.
const CoverageThreshold = 0.2

// FieldSummary describes the chemical distribution at one instant.
type FieldSummary struct {
	MeanA, StdA float64
	MeanB, StdB float64
	MinB, MaxB  float64
	P50B, P90B  float64
	Coverage    float64 // fraction of cells with B above CoverageThreshold
}

// SummarizeField computes concentration statistics over every cell of f.
func SummarizeField(f *field.Field) FieldSummary {
	cells := f.Cells()
	a := make([]float64, len(cells))
	b := make([]float64, len(cells))
	covered := 0
	for i, c := range cells {
		a[i] = c.A
		b[i] = c.B
		if c.B > CoverageThreshold {
			covered++
		}
	}

	var s FieldSummary
	s.MeanA, s.StdA = stat.MeanStdDev(a, nil)
	s.MeanB, s.StdB = stat.MeanStdDev(b, nil)
	s.MinB = floats.Min(b)
	s.MaxB = floats.Max(b)
	sort.Float64s(b)
	s.P50B = Percentile(b, 0.5)
	s.P90B = Percentile(b, 0.9)
	s.Coverage = float64(covered) / float64(len(cells))
	return s
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	idx := p * float64(n-1)
	lo := int(idx)
	if lo+1 >= n {
		return sorted[n-1]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick int32  `csv:"-"`
	WindowEndTick   int32  `csv:"window_end"`
	Generation      uint64 `csv:"generation"`

	GridW int `csv:"grid_w"`
	GridH int `csv:"grid_h"`

	// Active regime
	LowPreset  string  `csv:"low"`
	HighPreset string  `csv:"high"`
	Blend      float64 `csv:"blend"`

	// Events during window
	InjectedCells int `csv:"injected_cells"`
	EmittedCells  int `csv:"emitted_cells"`
	Reseeds       int `csv:"reseeds"`
	Resizes       int `csv:"resizes"`
	Emitters      int `csv:"emitters"`

	// Field distribution at window end
	MeanA    float64 `csv:"mean_a"`
	StdA     float64 `csv:"std_a"`
	MeanB    float64 `csv:"mean_b"`
	StdB     float64 `csv:"std_b"`
	MinB     float64 `csv:"min_b"`
	MaxB     float64 `csv:"max_b"`
	P50B     float64 `csv:"p50_b"`
	P90B     float64 `csv:"p90_b"`
	Coverage float64 `csv:"coverage"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Uint64("generation", s.Generation),
		slog.Int("grid_w", s.GridW),
		slog.Int("grid_h", s.GridH),
		slog.String("low", s.LowPreset),
		slog.String("high", s.HighPreset),
		slog.Float64("blend", s.Blend),
		slog.Int("injected_cells", s.InjectedCells),
		slog.Int("emitted_cells", s.EmittedCells),
		slog.Int("reseeds", s.Reseeds),
		slog.Int("resizes", s.Resizes),
		slog.Int("emitters", s.Emitters),
		slog.Float64("mean_b", s.MeanB),
		slog.Float64("std_b", s.StdB),
		slog.Float64("max_b", s.MaxB),
		slog.Float64("coverage", s.Coverage),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "stats", s)
}
