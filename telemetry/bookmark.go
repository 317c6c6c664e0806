package telemetry

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkExtinction    BookmarkType = "pattern_extinct"
	BookmarkTakeover      BookmarkType = "pattern_takeover"
	BookmarkCollapse      BookmarkType = "coverage_collapse"
	BookmarkGrowthSpurt   BookmarkType = "growth_spurt"
	BookmarkStablePattern BookmarkType = "stable_pattern"
)

// TakeoverCoverage is the coverage at which a takeover bookmark fires.
const TakeoverCoverage = 0.9

// Detection thresholds, all in coverage units.
const (
	collapseDrop     = 0.30 // fraction lost from the recent peak
	collapseMinDelta = 0.05
	spurtFactor      = 2.0
	spurtMinCoverage = 0.05
	stableMaxCV2     = 0.0004 // squared coefficient of variation (CV < 2%)
	stableWindows    = 5
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in a pattern's evolution.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	recentPeak         float64 // peak coverage since the last collapse
	stableWindowsCount int     // consecutive windows with steady coverage
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5 // minimum for stable pattern detection
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.historyFull || bd.historyIdx > 0 {
		for _, check := range []func(WindowStats) *Bookmark{
			bd.checkExtinction,
			bd.checkTakeover,
			bd.checkCollapse,
			bd.checkGrowthSpurt,
			bd.checkStablePattern,
		} {
			if b := check(stats); b != nil {
				bookmarks = append(bookmarks, *b)
			}
		}
	}

	bd.addToHistory(stats)
	if stats.Coverage > bd.recentPeak {
		bd.recentPeak = stats.Coverage
	}

	return bookmarks
}

// Reset forgets all history, e.g. after a reseed or clear.
func (bd *BookmarkDetector) Reset() {
	bd.historyIdx = 0
	bd.historyFull = false
	bd.recentPeak = 0
	bd.stableWindowsCount = 0
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// getHistory returns past windows oldest first.
func (bd *BookmarkDetector) getHistory() []WindowStats {
	if !bd.historyFull {
		return bd.history[:bd.historyIdx]
	}
	out := make([]WindowStats, 0, bd.historySize)
	out = append(out, bd.history[bd.historyIdx:]...)
	return append(out, bd.history[:bd.historyIdx]...)
}

func (bd *BookmarkDetector) previous() WindowStats {
	i := bd.historyIdx - 1
	if i < 0 {
		i = bd.historySize - 1
	}
	return bd.history[i]
}

func (bd *BookmarkDetector) checkExtinction(stats WindowStats) *Bookmark {
	prev := bd.previous()
	if stats.Coverage > 0 || prev.Coverage == 0 {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkExtinction,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Pattern died out (coverage was %.3f)", prev.Coverage),
	}
}

func (bd *BookmarkDetector) checkTakeover(stats WindowStats) *Bookmark {
	prev := bd.previous()
	if stats.Coverage < TakeoverCoverage || prev.Coverage >= TakeoverCoverage {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkTakeover,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("Pattern covers %.0f%% of the grid", stats.Coverage*100),
	}
}

func (bd *BookmarkDetector) checkCollapse(stats WindowStats) *Bookmark {
	if bd.recentPeak == 0 || stats.Coverage == 0 {
		return nil
	}

	drop := 1.0 - stats.Coverage/bd.recentPeak
	if drop > collapseDrop && bd.recentPeak-stats.Coverage > collapseMinDelta {
		// Reset peak after collapse
		oldPeak := bd.recentPeak
		bd.recentPeak = stats.Coverage

		return &Bookmark{
			Type:        BookmarkCollapse,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Coverage fell %.0f%% from peak %.3f to %.3f", drop*100, oldPeak, stats.Coverage),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkGrowthSpurt(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.Coverage
	}
	avg := total / float64(len(history))
	if avg == 0 {
		return nil
	}

	if stats.Coverage > avg*spurtFactor && stats.Coverage >= spurtMinCoverage {
		return &Bookmark{
			Type:        BookmarkGrowthSpurt,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Coverage %.3f is %.1fx average (%.3f)", stats.Coverage, stats.Coverage/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkStablePattern(stats WindowStats) *Bookmark {
	if stats.Coverage == 0 {
		bd.stableWindowsCount = 0
		return nil
	}

	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	recent := make([]float64, 0, 4)
	for _, h := range history[len(history)-3:] {
		recent = append(recent, h.Coverage)
	}
	recent = append(recent, stats.Coverage)

	mean, variance := stat.PopMeanVariance(recent, nil)
	if mean > 0 && variance/(mean*mean) < stableMaxCV2 {
		bd.stableWindowsCount++
	} else {
		bd.stableWindowsCount = 0
	}

	if bd.stableWindowsCount == stableWindows { // trigger once per stable stretch
		return &Bookmark{
			Type:        BookmarkStablePattern,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Coverage steady at %.3f over %d+ windows", stats.Coverage, stableWindows),
		}
	}
	return nil
}
