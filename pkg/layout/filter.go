package layout

import (
	"time"

	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/item"
)

// FilterVisible returns the items that intersect (windowStart, windowEnd) and
// whose effective category is active. An empty active list disables category
// filtering. The overlap test is strict: an item ending exactly at
// windowStart or starting exactly at windowEnd is dropped.
func FilterVisible(items []item.Item, windowStart, windowEnd time.Time, active []category.Category) []item.Item {
	var set category.Set
	if len(active) > 0 {
		set = category.NewSet(active...)
	}

	out := make([]item.Item, 0, len(items))
	for _, it := range items {
		if !it.Start.Before(windowEnd) || !it.End.After(windowStart) {
			continue
		}
		if set != nil && !set.Has(it.Category) {
			continue
		}
		out = append(out, it)
	}
	return out
}
