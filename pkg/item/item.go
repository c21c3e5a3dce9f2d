// Package item defines the timeline item record shared by every layer.
package item

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/timeline/pkg/category"
)

var (
	// ErrInvalidRange is returned for items whose end precedes their start.
	ErrInvalidRange = errors.New("item: end date before start date")
	// ErrInvalidID is returned for non-positive identifiers.
	ErrInvalidID = errors.New("item: id must be positive")
)

// Item is a date-ranged entry on the timeline. Start and End are inclusive
// calendar days. Lane is derived by the lane assigner and is never
// authoritative.
type Item struct {
	ID       int               `json:"id" yaml:"id"`
	Start    Date              `json:"start" yaml:"start"`
	End      Date              `json:"end" yaml:"end"`
	Name     string            `json:"name" yaml:"name"`
	Category category.Category `json:"category,omitempty" yaml:"category,omitempty"`
	Lane     int               `json:"lane" yaml:"-"`
}

// New builds an item from date strings. It panics on unparsable dates and is
// meant for tests and built-in seed data.
func New(id int, start, end, name string, c category.Category) Item {
	return Item{
		ID:       id,
		Start:    MustDate(start),
		End:      MustDate(end),
		Name:     name,
		Category: c,
	}
}

// Validate checks the boundary invariants of an item.
func (i Item) Validate() error {
	if i.ID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, i.ID)
	}
	if i.Start.IsZero() || i.End.IsZero() {
		return fmt.Errorf("item %d: start and end are required", i.ID)
	}
	if i.End.Before(i.Start.Time) {
		return fmt.Errorf("item %d: %w (%s > %s)", i.ID, ErrInvalidRange, i.Start, i.End)
	}
	if !i.Category.Valid() {
		return fmt.Errorf("item %d: unknown category %q", i.ID, string(i.Category))
	}
	return nil
}

// Duration is End minus Start.
func (i Item) Duration() time.Duration {
	return i.End.Sub(i.Start.Time)
}

// Overlaps reports whether two items share at least one calendar day.
func (i Item) Overlaps(o Item) bool {
	return !i.End.Before(o.Start.Time) && !o.End.Before(i.Start.Time)
}

func (i Item) String() string {
	return fmt.Sprintf("#%d %s [%s..%s] %s", i.ID, i.Name, i.Start, i.End, i.Category)
}

// Clone returns a copy of items.
func Clone(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
