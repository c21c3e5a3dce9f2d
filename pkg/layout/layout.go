package layout

import (
	"math"
	"time"

	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/item"
	"tableflip.dev/timeline/pkg/timeutil"
)

// MinWidthPct is the narrowest an item may be drawn, as a percentage of the
// window, so single-day items stay visible.
const MinWidthPct = 2.0

// View holds the user-controlled inputs of a layout pass.
type View struct {
	Zoom       float64             `json:"zoom"`
	Categories []category.Category `json:"categories,omitempty"`
}

// Placement positions an item horizontally as a percentage of the window.
type Placement struct {
	ID       int     `json:"id"`
	Lane     int     `json:"lane"`
	LeftPct  float64 `json:"leftPct"`
	WidthPct float64 `json:"widthPct"`
}

// Result is one full layout pass.
type Result struct {
	Window     Window      `json:"window"`
	Items      []item.Item `json:"items"`
	LaneCount  int         `json:"laneCount"`
	Placements []Placement `json:"placements"`
}

// Compute runs the layout pipeline over a snapshot of the item store: the
// window is derived from the full set, then items are filtered to the window
// and active categories, then packed into lanes.
func Compute(items []item.Item, view View, opts ...WindowOption) Result {
	w := ComputeViewWindow(items, view.Zoom, opts...)
	visible := FilterVisible(items, w.Start, w.End, view.Categories)
	assigned, lanes := AssignLanes(visible)

	placements := make([]Placement, len(assigned))
	for i, it := range assigned {
		placements[i] = Place(w, it)
	}

	return Result{
		Window:     w,
		Items:      assigned,
		LaneCount:  lanes,
		Placements: placements,
	}
}

// Place computes the horizontal placement of it within w.
func Place(w Window, it item.Item) Placement {
	total := math.Max(MinWindowDays, w.TotalDays)
	return Placement{
		ID:       it.ID,
		Lane:     it.Lane,
		LeftPct:  percent(w.Start, it.Start.Time, total),
		WidthPct: math.Max(MinWidthPct, percent(it.Start.Time, it.End.Time, total)),
	}
}

func percent(from, to time.Time, total float64) float64 {
	return timeutil.Days(from, to) / total * 100
}

// Find returns the item with id from items.
func Find(items []item.Item, id int) (item.Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return item.Item{}, false
}
