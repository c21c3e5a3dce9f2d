// Package layout computes timeline layout decisions: lane assignment, the
// visible date window, visibility filtering and drag repositioning. Every
// function takes a snapshot and returns a new value; nothing here mutates
// caller-owned data.
package layout

import (
	"sort"
	"time"

	"tableflip.dev/timeline/pkg/item"
)

// AssignLanes packs items into lanes with first-fit greedy interval
// partitioning and returns a copy of the items sorted by start date with Lane
// populated, along with the number of lanes used.
//
// Items with equal start dates keep their input order. An item may only join a
// lane whose last item ended strictly before it starts, so an item starting on
// the day another one ends goes to a different lane.
func AssignLanes(items []item.Item) ([]item.Item, int) {
	if len(items) == 0 {
		return []item.Item{}, 0
	}

	sorted := item.Clone(items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start.Time)
	})

	// lastEnd[i] is the end of the last item placed in lane i.
	var lastEnd []time.Time
	for i := range sorted {
		placed := false
		for lane, end := range lastEnd {
			if sorted[i].Start.After(end) {
				sorted[i].Lane = lane
				lastEnd[lane] = sorted[i].End.Time
				placed = true
				break
			}
		}
		if !placed {
			sorted[i].Lane = len(lastEnd)
			lastEnd = append(lastEnd, sorted[i].End.Time)
		}
	}
	return sorted, len(lastEnd)
}

// Lanes groups an assigned item list by lane index.
func Lanes(assigned []item.Item, laneCount int) [][]item.Item {
	out := make([][]item.Item, laneCount)
	for _, it := range assigned {
		if it.Lane < 0 || it.Lane >= laneCount {
			continue
		}
		out[it.Lane] = append(out[it.Lane], it)
	}
	return out
}
