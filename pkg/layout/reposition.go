package layout

import (
	"math"
	"time"

	"tableflip.dev/timeline/pkg/item"
	"tableflip.dev/timeline/pkg/timeutil"
)

// Drag is a completed horizontal drag gesture on the track. StartX and
// CurrentX are pointer positions in pixels; ScrollDelta is how far the track
// scrolled horizontally while the gesture was active.
type Drag struct {
	StartX      float64 `json:"startX"`
	CurrentX    float64 `json:"currentX"`
	ScrollDelta float64 `json:"scrollDelta,omitempty"`
}

// DeltaX is the distance the item moved along the track.
func (d Drag) DeltaX() float64 {
	return d.CurrentX - d.StartX + d.ScrollDelta
}

// ResolveReposition converts a drag of pixelDeltaX pixels into new dates for
// it. The item keeps its identity, name, category and exact duration. The
// candidate left edge is clamped so the item as drawn, at least MinWidthPct
// of the track wide, stays fully inside the track. The new start is truncated
// to its calendar day and always falls before the window end.
//
// A track width that is not positive leaves the item where it is.
func ResolveReposition(it item.Item, pixelDeltaX float64, windowStart time.Time, totalDays, trackWidthPx float64) item.Item {
	out := it
	out.Lane = 0
	if trackWidthPx <= 0 || math.IsNaN(trackWidthPx) || math.IsInf(trackWidthPx, 0) {
		return out
	}
	if totalDays <= 0 || math.IsNaN(totalDays) || math.IsInf(totalDays, 0) {
		totalDays = MinWindowDays
	}
	if math.IsNaN(pixelDeltaX) {
		pixelDeltaX = 0
	}

	track := Track{WidthPx: trackWidthPx, WindowStart: windowStart, TotalDays: totalDays}
	duration := it.Duration()

	left := track.DateToPixel(it.Start.Time)
	itemWidth := math.Max(
		timeutil.Days(it.Start.Time, it.End.Time)*track.PixelsPerDay(),
		MinWidthPct/100*trackWidthPx,
	)
	maxLeft := math.Max(0, trackWidthPx-itemWidth)
	candidate := math.Min(maxLeft, math.Max(0, left+pixelDeltaX))

	start := timeutil.StartOfDay(track.PixelToDate(candidate))
	if end := track.PixelToDate(trackWidthPx); !start.Before(end) {
		start = timeutil.StartOfDay(end.Add(-time.Nanosecond))
	}
	out.Start = item.Date{Time: start}
	out.End = item.Date{Time: start.Add(duration)}
	return out
}

// Track maps between dates and horizontal pixel positions for a window
// rendered at a given width.
type Track struct {
	WidthPx     float64
	WindowStart time.Time
	TotalDays   float64
}

// NewTrack builds a Track for w at widthPx.
func NewTrack(w Window, widthPx float64) Track {
	return Track{WidthPx: widthPx, WindowStart: w.Start, TotalDays: w.TotalDays}
}

// PixelsPerDay is the width of one day on the track.
func (t Track) PixelsPerDay() float64 {
	return t.WidthPx / math.Max(MinWindowDays, t.TotalDays)
}

// DaysPerPixel is the number of days covered by one pixel.
func (t Track) DaysPerPixel() float64 {
	if t.WidthPx <= 0 {
		return 0
	}
	return math.Max(MinWindowDays, t.TotalDays) / t.WidthPx
}

// DateToPixel returns the pixel offset of d from the window start.
func (t Track) DateToPixel(d time.Time) float64 {
	return timeutil.Days(t.WindowStart, d) * t.PixelsPerDay()
}

// PixelToDate returns the instant at pixel offset px from the window start.
func (t Track) PixelToDate(px float64) time.Time {
	return timeutil.AddDays(t.WindowStart, px*t.DaysPerPixel())
}

// ShiftPixels converts a day span into the equivalent pixel delta.
func (t Track) ShiftPixels(span time.Duration) float64 {
	return float64(span) / float64(timeutil.Day) * t.PixelsPerDay()
}
