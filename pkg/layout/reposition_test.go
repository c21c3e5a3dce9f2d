package layout

import (
	"math/rand"
	"testing"

	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/item"
)

func seedLike() []item.Item {
	return []item.Item{
		item.New(1, "2021-01-14", "2021-01-22", "Recruit translators", category.HR),
		item.New(3, "2021-02-05", "2021-02-13", "Translate phrases for lesson 1", category.Translation),
		item.New(16, "2021-05-01", "2021-05-01", "Launch day", category.Management),
	}
}

func TestResolveRepositionOneDay(t *testing.T) {
	items := seedLike()
	w := ComputeViewWindow(items, 1)
	width := 1000.0
	track := NewTrack(w, width)

	moved := ResolveReposition(items[1], track.PixelsPerDay(), w.Start, w.TotalDays, width)
	if got := moved.Start.String(); got != "2021-02-06" {
		t.Fatalf("expected start 2021-02-06, got %s", got)
	}
	if got := moved.End.String(); got != "2021-02-14" {
		t.Fatalf("expected end 2021-02-14, got %s", got)
	}
	if moved.ID != 3 || moved.Name != items[1].Name || moved.Category != category.Translation {
		t.Fatalf("identity changed: %+v", moved)
	}

	back := ResolveReposition(moved, -track.PixelsPerDay(), w.Start, w.TotalDays, width)
	if !back.Start.Equal(items[1].Start.Time) {
		t.Fatalf("expected move back to %s, got %s", items[1].Start, back.Start)
	}
}

func TestResolveRepositionZeroDelta(t *testing.T) {
	items := seedLike()
	w := ComputeViewWindow(items, 1)
	for _, it := range items {
		got := ResolveReposition(it, 0, w.Start, w.TotalDays, 733)
		if !got.Start.Equal(it.Start.Time) || !got.End.Equal(it.End.Time) {
			t.Fatalf("item %d moved without a drag: %s..%s", it.ID, got.Start, got.End)
		}
	}
}

func TestResolveRepositionClampsToTrack(t *testing.T) {
	items := seedLike()
	w := ComputeViewWindow(items, 1)
	width := 1000.0

	left := ResolveReposition(items[1], -1e6, w.Start, w.TotalDays, width)
	if !left.Start.Equal(w.Start) {
		t.Fatalf("expected clamp to window start %v, got %v", w.Start, left.Start)
	}

	right := ResolveReposition(items[1], 1e6, w.Start, w.TotalDays, width)
	track := NewTrack(w, width)
	if track.DateToPixel(right.End.Time) > width+1e-6 {
		t.Fatalf("item dropped past the track end: %s", right.End)
	}
	if right.Duration() != items[1].Duration() {
		t.Fatalf("duration changed")
	}
}

func TestResolveRepositionKeepsShortItemOnTrack(t *testing.T) {
	items := []item.Item{
		item.New(1, "2021-01-10", "2021-01-10", "Milestone", category.Management),
		item.New(2, "2021-01-05", "2021-02-03", "Build", category.Development),
		item.New(3, "2021-01-01", "2021-01-03", "Kickoff", category.General),
	}
	w := ComputeViewWindow(items, 2)
	if got := w.End.Format("2006-01-02"); got != "2021-01-16" || w.End.Hour() != 0 {
		t.Fatalf("expected window ending at midnight 2021-01-16, got %v", w.End)
	}
	width := 1000.0

	moved := ResolveReposition(items[0], 1e6, w.Start, w.TotalDays, width)
	if !moved.Start.Before(w.End) {
		t.Fatalf("dropped start %s is not before window end %s", moved.Start, w.End)
	}
	p := Place(w, moved)
	if right := p.LeftPct + p.WidthPct; right > 100+1e-9 {
		t.Fatalf("drawn item ends at %.2f%% of the track", right)
	}

	items[0] = moved
	visible := FilterVisible(items, w.Start, w.End, nil)
	if _, ok := Find(visible, 1); !ok {
		t.Fatalf("dropped item %s..%s vanished from the window", moved.Start, moved.End)
	}
}

func TestResolveRepositionPreservesDuration(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	items := seedLike()
	for round := 0; round < 500; round++ {
		it := items[r.Intn(len(items))]
		zoom := MinZoom + r.Float64()*(MaxZoom-MinZoom)
		w := ComputeViewWindow(items, zoom)
		width := 200 + r.Float64()*1800
		delta := (r.Float64() - 0.5) * 2 * width

		got := ResolveReposition(it, delta, w.Start, w.TotalDays, width)
		if got.Duration() != it.Duration() {
			t.Fatalf("round %d: duration %v -> %v", round, it.Duration(), got.Duration())
		}
		if got.Start.Hour() != 0 || got.Start.Minute() != 0 || got.Start.Nanosecond() != 0 {
			t.Fatalf("round %d: start not truncated to a calendar day: %v", round, got.Start)
		}
	}
}

func TestResolveRepositionDegenerateWidth(t *testing.T) {
	it := seedLike()[0]
	w := ComputeViewWindow(seedLike(), 1)
	got := ResolveReposition(it, 50, w.Start, w.TotalDays, 0)
	if !got.Start.Equal(it.Start.Time) {
		t.Fatalf("expected item unchanged for zero width")
	}
	got = ResolveReposition(it, 0, w.Start, 0, 500)
	if got.Duration() != it.Duration() {
		t.Fatalf("duration changed with zero total days")
	}
}

func TestDragDelta(t *testing.T) {
	d := Drag{StartX: 120, CurrentX: 180, ScrollDelta: -15}
	if got := d.DeltaX(); got != 45 {
		t.Fatalf("expected 45, got %v", got)
	}
}
