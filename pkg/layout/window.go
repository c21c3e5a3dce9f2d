package layout

import (
	"math"
	"time"

	"tableflip.dev/timeline/pkg/item"
	"tableflip.dev/timeline/pkg/timeutil"
)

const (
	// MinZoom and MaxZoom bound the zoom factor.
	MinZoom = 0.5
	MaxZoom = 4.0
	// ZoomStep is the increment used by the zoom control.
	ZoomStep = 0.25
	// DefaultZoom shows the whole padded range.
	DefaultZoom = 1.0

	// MinWindowDays keeps the day count usable as a divisor.
	MinWindowDays = 1.0

	// PaddingMonths is added before the earliest start and after the latest end.
	PaddingMonths = 1
	// EmptyWindowMonths is the length of the window shown for an empty item set.
	EmptyWindowMonths = 2
)

// Window is the date range currently rendered.
type Window struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	TotalDays float64   `json:"totalDays"`
	Zoom      float64   `json:"zoom"`
}

// WindowOption customises ComputeViewWindow.
type WindowOption func(*windowOptions)

type windowOptions struct {
	now func() time.Time
}

// WithClock overrides the clock used for the empty-set default window.
func WithClock(now func() time.Time) WindowOption {
	return func(opts *windowOptions) {
		if now != nil {
			opts.now = now
		}
	}
}

// ClampZoom bounds z to [MinZoom, MaxZoom]. Values that cannot be used as a
// divisor (NaN, infinities, zero or negative) fall back to DefaultZoom.
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) || math.IsInf(z, 0) || z <= 0 {
		return DefaultZoom
	}
	return math.Min(MaxZoom, math.Max(MinZoom, z))
}

// ZoomIn steps z up by ZoomStep.
func ZoomIn(z float64) float64 {
	return ClampZoom(snapZoom(ClampZoom(z) + ZoomStep))
}

// ZoomOut steps z down by ZoomStep.
func ZoomOut(z float64) float64 {
	return ClampZoom(snapZoom(ClampZoom(z) - ZoomStep))
}

func snapZoom(z float64) float64 {
	return math.Round(z/ZoomStep) * ZoomStep
}

// ComputeViewWindow derives the visible window from the full item set and a
// zoom factor. The base range is the item extent padded by PaddingMonths on
// each side; zoom narrows it while keeping the left edge pinned.
func ComputeViewWindow(items []item.Item, zoom float64, opts ...WindowOption) Window {
	config := &windowOptions{now: time.Now}
	for _, opt := range opts {
		opt(config)
	}

	z := ClampZoom(zoom)

	var baseStart, baseEnd time.Time
	if len(items) == 0 {
		baseStart = timeutil.StartOfDay(config.now())
		baseEnd = baseStart.AddDate(0, EmptyWindowMonths, 0)
	} else {
		minStart, maxEnd := extent(items)
		baseStart = minStart.AddDate(0, -PaddingMonths, 0)
		baseEnd = maxEnd.AddDate(0, PaddingMonths, 0)
	}

	baseDays := timeutil.Days(baseStart, baseEnd)
	viewDays := math.Max(MinWindowDays, baseDays/z)

	return Window{
		Start:     baseStart,
		End:       timeutil.AddDays(baseStart, viewDays),
		TotalDays: viewDays,
		Zoom:      z,
	}
}

func extent(items []item.Item) (time.Time, time.Time) {
	minStart := items[0].Start.Time
	maxEnd := items[0].End.Time
	for _, it := range items[1:] {
		if it.Start.Before(minStart) {
			minStart = it.Start.Time
		}
		if it.End.After(maxEnd) {
			maxEnd = it.End.Time
		}
	}
	return minStart, maxEnd
}
