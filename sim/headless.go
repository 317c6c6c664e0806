package sim

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/grayscott/config"
	"github.com/pthm-cable/grayscott/frames"
	"github.com/pthm-cable/grayscott/palette"
	"github.com/pthm-cable/grayscott/telemetry"
)

// NewRasterizer builds the configured palette mapping at scale output
// pixels per cell. The window renderer uses scale 1.
func NewRasterizer(cfg *config.Config, scale int) (*frames.Rasterizer, error) {
	lut, err := palette.New(cfg.Render.Palette, cfg.Render.PaletteSize, cfg.Render.Cosine)
	if err != nil {
		return nil, fmt.Errorf("building palette: %w", err)
	}
	return &frames.Rasterizer{
		LUT:   lut,
		Tint:  cfg.Render.TintOffset,
		Cycle: cfg.Render.CycleSpeed,
		Scale: max(scale, 1),
	}, nil
}

// UpdateHeadless runs StepsPerUpdate ticks and writes any due snapshot or
// video frame.
func (s *Simulation) UpdateHeadless() {
	for i := 0; i < s.stepsPerUpdate; i++ {
		s.perf.StartTick()
		s.advance()
		s.captureFrame()
		s.perf.EndTick()
	}
}

func (s *Simulation) captureFrame() {
	snapshotDue := s.snapshotDir != "" && s.snapshotEvery > 0 && s.tick%int32(s.snapshotEvery) == 0
	if !snapshotDue && s.recorder == nil {
		return
	}

	s.perf.StartPhase(telemetry.PhaseRender)
	pm := s.raster.Render(s.pair.Current(), uint64(s.tick))
	frames.Stamp(pm, fmt.Sprintf("t=%d %s/%s", s.tick, s.params.Low.Name, s.params.High.Name))

	if s.recorder != nil {
		if err := s.recorder.AddFrame(pm); err != nil {
			slog.Error("failed to record frame", "error", err, "tick", s.tick)
		}
	}
	if snapshotDue {
		path, err := frames.SavePNG(pm, s.snapshotDir, frames.SnapshotName(s.tick))
		if err != nil {
			slog.Error("failed to save snapshot", "error", err)
		} else {
			slog.Info("snapshot written", "path", path, "tick", s.tick)
		}
	}
}

// Snapshot renders the current field and writes it as PNG into dir. Used
// by interactive hosts on demand.
func (s *Simulation) Snapshot(dir string) (string, error) {
	if s.raster == nil {
		raster, err := NewRasterizer(s.cfg, s.cfg.Render.SnapshotScale)
		if err != nil {
			return "", err
		}
		s.raster = raster
	}
	pm := s.raster.Render(s.pair.Current(), uint64(s.tick))
	path, err := frames.SavePNG(pm, dir, frames.SnapshotName(s.tick))
	if err != nil {
		return "", err
	}
	slog.Info("snapshot written", "path", path, "tick", s.tick)
	return path, nil
}
