package layout

import (
	"math"
	"testing"
	"time"

	"tableflip.dev/timeline/pkg/item"
)

func fixedClock() time.Time {
	return time.Date(2026, time.October, 17, 15, 30, 0, 0, time.UTC)
}

func TestComputeViewWindowEmpty(t *testing.T) {
	w := ComputeViewWindow(nil, 1, WithClock(fixedClock))
	wantStart := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2026, time.December, 17, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
		t.Fatalf("expected [%v, %v], got [%v, %v]", wantStart, wantEnd, w.Start, w.End)
	}
	if w.TotalDays != 61 {
		t.Fatalf("expected 61 days, got %v", w.TotalDays)
	}
}

func TestComputeViewWindowPadding(t *testing.T) {
	items := []item.Item{
		item.New(1, "2021-01-14", "2021-01-22", "a", ""),
		item.New(2, "2021-03-30", "2021-05-01", "b", ""),
	}
	w := ComputeViewWindow(items, 1)
	if got := w.Start.Format("2006-01-02"); got != "2020-12-14" {
		t.Fatalf("unexpected start %s", got)
	}
	if got := w.End.Format("2006-01-02"); got != "2021-06-01" {
		t.Fatalf("unexpected end %s", got)
	}
	if w.TotalDays != 169 {
		t.Fatalf("expected 169 days, got %v", w.TotalDays)
	}
}

func TestComputeViewWindowZoomPinsLeftEdge(t *testing.T) {
	items := []item.Item{item.New(1, "2021-01-14", "2021-05-01", "a", "")}
	base := ComputeViewWindow(items, 1)
	zoomed := ComputeViewWindow(items, 2)
	if !zoomed.Start.Equal(base.Start) {
		t.Fatalf("zoom moved the left edge")
	}
	if math.Abs(zoomed.TotalDays-base.TotalDays/2) > 1e-9 {
		t.Fatalf("expected half the days, got %v of %v", zoomed.TotalDays, base.TotalDays)
	}
}

func TestComputeViewWindowClampsZoom(t *testing.T) {
	items := []item.Item{item.New(1, "2021-01-14", "2021-05-01", "a", "")}
	base := ComputeViewWindow(items, 1)
	cases := []struct {
		zoom float64
		want float64
	}{
		{zoom: 100, want: MaxZoom},
		{zoom: 0.01, want: MinZoom},
		{zoom: 0, want: DefaultZoom},
		{zoom: -3, want: DefaultZoom},
		{zoom: math.NaN(), want: DefaultZoom},
		{zoom: math.Inf(1), want: DefaultZoom},
	}
	for _, tc := range cases {
		w := ComputeViewWindow(items, tc.zoom)
		if w.Zoom != tc.want {
			t.Fatalf("zoom %v: expected clamp to %v, got %v", tc.zoom, tc.want, w.Zoom)
		}
		if math.Abs(w.TotalDays-base.TotalDays/tc.want) > 1e-9 {
			t.Fatalf("zoom %v: unexpected days %v", tc.zoom, w.TotalDays)
		}
	}
}

func TestComputeViewWindowNeverBelowOneDay(t *testing.T) {
	w := ComputeViewWindow(nil, MaxZoom, WithClock(fixedClock))
	if w.TotalDays < MinWindowDays {
		t.Fatalf("window collapsed to %v days", w.TotalDays)
	}
}

func TestZoomSteps(t *testing.T) {
	if got := ZoomIn(1); got != 1.25 {
		t.Fatalf("expected 1.25, got %v", got)
	}
	if got := ZoomOut(1); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
	if got := ZoomIn(MaxZoom); got != MaxZoom {
		t.Fatalf("expected max zoom, got %v", got)
	}
	if got := ZoomOut(MinZoom); got != MinZoom {
		t.Fatalf("expected min zoom, got %v", got)
	}
	if got := ZoomIn(1.1); got != 1.25 {
		t.Fatalf("expected off-grid zoom to snap to 1.25, got %v", got)
	}
}
