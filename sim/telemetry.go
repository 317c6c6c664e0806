package sim

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/grayscott/frames"
	"github.com/pthm-cable/grayscott/telemetry"
)

// flushTelemetry emits a stats window once enough ticks have passed.
func (s *Simulation) flushTelemetry() {
	if !s.collector.ShouldFlush(s.tick) {
		return
	}

	stats := s.collector.Flush(s.tick, s.pair.Generation(), s.pair.Current(), telemetry.Regime{
		Low:      s.params.Low.Name,
		High:     s.params.High.Name,
		Blend:    s.params.Blend,
		Emitters: s.emitters.Count(),
	})
	perfStats := s.perf.Stats()

	if s.statsCallback != nil {
		s.statsCallback(stats)
	}

	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if s.outputManager != nil {
		if err := s.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := s.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	// Check for bookmarks
	for _, bm := range s.bookmarkDetector.Check(stats) {
		if s.logStats {
			bm.LogBookmark()
		}
		if s.bookmarkCallback != nil {
			s.bookmarkCallback(bm)
		}
		if s.outputManager != nil {
			if err := s.outputManager.WriteBookmark(bm); err != nil {
				slog.Error("failed to write bookmark", "error", err)
			}
		}
		if s.snapshotDir != "" && s.raster != nil {
			s.saveBookmarkFrame(bm)
		}
	}
}

// saveBookmarkFrame writes a PNG of the field at the moment bm fired.
func (s *Simulation) saveBookmarkFrame(bm telemetry.Bookmark) {
	pm := s.raster.Render(s.pair.Current(), uint64(s.tick))
	name := fmt.Sprintf("bookmark_%06d_%s.png", bm.Tick, bm.Type)
	path, err := frames.SavePNG(pm, s.snapshotDir, name)
	if err != nil {
		slog.Error("failed to save bookmark frame", "error", err)
		return
	}
	slog.Info("snapshot written", "path", path, "tick", s.tick, "bookmark", string(bm.Type))
}
