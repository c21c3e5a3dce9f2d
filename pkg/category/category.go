// Package category defines the closed set of timeline item categories and
// their display metadata.
package category

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Category tags a timeline item. The empty value means Default.
type Category string

const (
	// General is used for items that carry no category.
	General     Category = "General"
	HR          Category = "HR"
	Education   Category = "Education"
	Translation Category = "Translation"
	Design      Category = "Design"
	Development Category = "Development"
	QA          Category = "QA"
	Management  Category = "Management"
)

// Default is the effective category of an item without one.
const Default = General

// Meta is the display metadata for a category.
type Meta struct {
	Key   Category `json:"key"`
	Label string   `json:"label"`
	Color string   `json:"color"`
}

var palette = []Meta{
	{Key: HR, Label: "HR", Color: "#F87171"},
	{Key: Education, Label: "Education", Color: "#60A5FA"},
	{Key: Translation, Label: "Translation", Color: "#34D399"},
	{Key: Design, Label: "Design", Color: "#FBBF24"},
	{Key: Development, Label: "Development", Color: "#A78BFA"},
	{Key: QA, Label: "QA", Color: "#F472B6"},
	{Key: Management, Label: "Management", Color: "#6EE7B7"},
	{Key: General, Label: "General", Color: "#9CA3AF"},
}

// All returns the categories in legend order.
func All() []Category {
	out := make([]Category, len(palette))
	for i, m := range palette {
		out[i] = m.Key
	}
	return out
}

// Palette returns a copy of the display metadata in legend order.
func Palette() []Meta {
	out := make([]Meta, len(palette))
	copy(out, palette)
	return out
}

// Parse converts a string to a Category. Matching is case-insensitive and an
// empty string yields Default.
func Parse(raw string) (Category, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Default, nil
	}
	for _, m := range palette {
		if strings.EqualFold(string(m.Key), trimmed) {
			return m.Key, nil
		}
	}
	return Default, fmt.Errorf("category: unknown category %q", raw)
}

// ParseList parses every entry of raw, dropping duplicates.
func ParseList(raw []string) ([]Category, error) {
	seen := make(map[Category]struct{}, len(raw))
	out := make([]Category, 0, len(raw))
	for _, r := range raw {
		c, err := Parse(r)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

// Effective resolves the empty category to Default.
func (c Category) Effective() Category {
	if c == "" {
		return Default
	}
	return c
}

// Valid reports whether c is empty or a member of the palette.
func (c Category) Valid() bool {
	if c == "" {
		return true
	}
	for _, m := range palette {
		if m.Key == c {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c.Effective())
}

// Lookup returns the metadata for c; unknown categories fall back to Default.
func Lookup(c Category) Meta {
	c = c.Effective()
	for _, m := range palette {
		if m.Key == c {
			return m
		}
	}
	return Lookup(Default)
}

// Color returns the parsed palette color for c.
func Color(c Category) (colorful.Color, error) {
	m := Lookup(c)
	col, err := colorful.Hex(m.Color)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("category: %s: %w", m.Key, err)
	}
	return col, nil
}

// Contrast returns a readable text color ("#000000" or "#ffffff") for a
// swatch painted in the category color.
func Contrast(c Category) string {
	col, err := Color(c)
	if err != nil {
		return "#000000"
	}
	l, _, _ := col.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

// Set is a membership lookup built from a category list.
type Set map[Category]struct{}

// NewSet builds a Set from the effective value of each category.
func NewSet(cs ...Category) Set {
	s := make(Set, len(cs))
	for _, c := range cs {
		s[c.Effective()] = struct{}{}
	}
	return s
}

// Has reports whether the effective value of c is in the set.
func (s Set) Has(c Category) bool {
	_, ok := s[c.Effective()]
	return ok
}
