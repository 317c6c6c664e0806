package telemetry

import "testing"

func feed(bd *BookmarkDetector, coverage ...float64) []Bookmark {
	var last []Bookmark
	for i, c := range coverage {
		last = bd.Check(WindowStats{WindowEndTick: int32(i * 100), Coverage: c})
	}
	return last
}

func hasBookmark(bookmarks []Bookmark, want BookmarkType) bool {
	for _, bm := range bookmarks {
		if bm.Type == want {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_Extinction(t *testing.T) {
	bd := NewBookmarkDetector(10)
	got := feed(bd, 0.2, 0.2, 0.2, 0)
	if !hasBookmark(got, BookmarkExtinction) {
		t.Errorf("expected %s, got %+v", BookmarkExtinction, got)
	}
	if hasBookmark(got, BookmarkCollapse) {
		t.Error("extinction should not also report a collapse")
	}
}

func TestBookmarkDetector_Takeover(t *testing.T) {
	bd := NewBookmarkDetector(10)
	if got := feed(bd, 0.5, 0.5, 0.95); !hasBookmark(got, BookmarkTakeover) {
		t.Errorf("expected %s, got %+v", BookmarkTakeover, got)
	}
	// Staying above the threshold does not re-trigger.
	if got := bd.Check(WindowStats{WindowEndTick: 400, Coverage: 0.96}); hasBookmark(got, BookmarkTakeover) {
		t.Error("takeover fired twice")
	}
}

func TestBookmarkDetector_Collapse(t *testing.T) {
	bd := NewBookmarkDetector(10)
	if got := feed(bd, 0.4, 0.4, 0.4, 0.4, 0.4, 0.2); !hasBookmark(got, BookmarkCollapse) {
		t.Errorf("expected %s, got %+v", BookmarkCollapse, got)
	}
}

func TestBookmarkDetector_GrowthSpurt(t *testing.T) {
	bd := NewBookmarkDetector(10)
	if got := feed(bd, 0.05, 0.05, 0.05, 0.05, 0.2); !hasBookmark(got, BookmarkGrowthSpurt) {
		t.Errorf("expected %s, got %+v", BookmarkGrowthSpurt, got)
	}
}

func TestBookmarkDetector_StablePatternFiresOnce(t *testing.T) {
	bd := NewBookmarkDetector(10)
	fired := 0
	for i := 0; i < 12; i++ {
		for _, bm := range bd.Check(WindowStats{WindowEndTick: int32(i * 100), Coverage: 0.3}) {
			if bm.Type == BookmarkStablePattern {
				fired++
			}
		}
	}
	if fired != 1 {
		t.Fatalf("expected stable_pattern exactly once, got %d", fired)
	}
}

func TestBookmarkDetector_Reset(t *testing.T) {
	bd := NewBookmarkDetector(10)
	feed(bd, 0.3, 0.3)
	bd.Reset()
	if got := bd.Check(WindowStats{Coverage: 0}); len(got) != 0 {
		t.Fatalf("expected no bookmarks after reset, got %+v", got)
	}
}
