// Package mcp provides the Model Context Protocol server for the timeline.
package mcp

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/timeline/pkg/app"
	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/item"
	"tableflip.dev/timeline/pkg/layout"
	"tableflip.dev/timeline/pkg/timeutil"
)

// Service exposes the pure layout operations plus the stateful operations of
// the server's own item store.
type Service struct {
	App *app.Service
	// TrackWidth is the pixel width assumed when a move does not name one.
	TrackWidth float64
	// Now overrides the clock for empty-set windows computed from arguments.
	Now func() time.Time
}

// ErrNotConfigured is returned by stateful operations when no store is held.
var ErrNotConfigured = errors.New("timeline store is not configured")

// ItemDTO is a transport-friendly projection of an item.
type ItemDTO struct {
	ID            int    `json:"id"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	CategoryColor string `json:"categoryColor"`
	Days          int    `json:"days"`
	Lane          int    `json:"lane"`
}

// WindowDTO is a transport-friendly view window.
type WindowDTO struct {
	Start     string  `json:"start"`
	End       string  `json:"end"`
	TotalDays float64 `json:"totalDays"`
	Zoom      float64 `json:"zoom"`
}

// LanesDTO is the output of a lane assignment.
type LanesDTO struct {
	LaneCount int       `json:"laneCount"`
	Items     []ItemDTO `json:"items"`
}

// LayoutDTO is a full layout pass.
type LayoutDTO struct {
	Window     WindowDTO          `json:"window"`
	LaneCount  int                `json:"laneCount"`
	Items      []ItemDTO          `json:"items"`
	Placements []layout.Placement `json:"placements"`
	Categories []string           `json:"activeCategories"`
}

// MoveDTO is the result of a committed move.
type MoveDTO struct {
	Before ItemDTO   `json:"before"`
	After  ItemDTO   `json:"after"`
	DeltaX float64   `json:"deltaX"`
	Layout LayoutDTO `json:"layout"`
}

// CategoryDTO describes one palette entry.
type CategoryDTO struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Active bool   `json:"active"`
}

// NewService wraps a.
func NewService(a *app.Service) *Service {
	return &Service{App: a, TrackWidth: app.DefaultTrackWidth}
}

func (s *Service) windowOptions() []layout.WindowOption {
	if s.Now == nil {
		return nil
	}
	return []layout.WindowOption{layout.WithClock(s.Now)}
}

// NormalizeItems validates items passed as arguments and resolves category
// names case-insensitively.
func NormalizeItems(items []item.Item) ([]item.Item, error) {
	out := make([]item.Item, len(items))
	seen := make(map[int]struct{}, len(items))
	for i, it := range items {
		if it.Category != "" {
			c, err := category.Parse(string(it.Category))
			if err != nil {
				return nil, fmt.Errorf("items[%d]: %w", i, err)
			}
			it.Category = c
		}
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("items[%d]: duplicate id %d", i, it.ID)
		}
		seen[it.ID] = struct{}{}
		it.Lane = 0
		out[i] = it
	}
	return out, nil
}

// AssignLanes packs items into lanes.
func (s *Service) AssignLanes(items []item.Item) (LanesDTO, error) {
	norm, err := NormalizeItems(items)
	if err != nil {
		return LanesDTO{}, err
	}
	assigned, count := layout.AssignLanes(norm)
	return LanesDTO{LaneCount: count, Items: toDTOs(assigned)}, nil
}

// ComputeViewWindow derives the window for items at zoom.
func (s *Service) ComputeViewWindow(items []item.Item, zoom float64) (WindowDTO, error) {
	norm, err := NormalizeItems(items)
	if err != nil {
		return WindowDTO{}, err
	}
	return toWindowDTO(layout.ComputeViewWindow(norm, zoom, s.windowOptions()...)), nil
}

// FilterVisible keeps the items intersecting the window and active categories.
func (s *Service) FilterVisible(items []item.Item, windowStart, windowEnd string, active []string) ([]ItemDTO, error) {
	norm, err := NormalizeItems(items)
	if err != nil {
		return nil, err
	}
	start, err := timeutil.ParseDate(windowStart)
	if err != nil {
		return nil, fmt.Errorf("window_start: %w", err)
	}
	end, err := timeutil.ParseDate(windowEnd)
	if err != nil {
		return nil, fmt.Errorf("window_end: %w", err)
	}
	cs, err := category.ParseList(active)
	if err != nil {
		return nil, err
	}
	return toDTOs(layout.FilterVisible(norm, start, end, cs)), nil
}

// ResolveReposition computes new dates for it after a drag of deltaX pixels.
func (s *Service) ResolveReposition(it item.Item, deltaX float64, windowStart string, totalDays, trackWidth float64) (ItemDTO, error) {
	norm, err := NormalizeItems([]item.Item{it})
	if err != nil {
		return ItemDTO{}, err
	}
	start, err := timeutil.ParseDate(windowStart)
	if err != nil {
		return ItemDTO{}, fmt.Errorf("window_start: %w", err)
	}
	return toDTO(layout.ResolveReposition(norm[0], deltaX, start, totalDays, trackWidth)), nil
}

// Items returns every item in the server's store.
func (s *Service) Items() ([]ItemDTO, error) {
	if s.App == nil || s.App.Items == nil {
		return nil, ErrNotConfigured
	}
	return toDTOs(s.App.Items.Snapshot()), nil
}

// Item returns one item from the server's store.
func (s *Service) Item(id int) (ItemDTO, error) {
	if s.App == nil || s.App.Items == nil {
		return ItemDTO{}, ErrNotConfigured
	}
	it, err := s.App.Items.Get(id)
	if err != nil {
		return ItemDTO{}, err
	}
	return toDTO(it), nil
}

// Layout runs the full pipeline over the server's store.
func (s *Service) Layout() (LayoutDTO, error) {
	if s.App == nil {
		return LayoutDTO{}, ErrNotConfigured
	}
	res, err := s.App.Layout()
	if err != nil {
		return LayoutDTO{}, err
	}
	return s.toLayoutDTO(res), nil
}

// MoveItem commits a drag on the server's store.
func (s *Service) MoveItem(opts app.MoveOptions) (MoveDTO, error) {
	if s.App == nil {
		return MoveDTO{}, ErrNotConfigured
	}
	res, err := s.App.Move(opts)
	if err != nil {
		return MoveDTO{}, err
	}
	return MoveDTO{
		Before: toDTO(res.Before),
		After:  toDTO(res.After),
		DeltaX: res.DeltaX,
		Layout: s.toLayoutDTO(res.Layout),
	}, nil
}

// EditItem applies a field edit on the server's store.
func (s *Service) EditItem(id int, opts app.EditOptions) (ItemDTO, error) {
	if s.App == nil {
		return ItemDTO{}, ErrNotConfigured
	}
	if opts.Empty() {
		return ItemDTO{}, errors.New("nothing to edit")
	}
	it, err := s.App.Edit(id, opts)
	if err != nil {
		return ItemDTO{}, err
	}
	return toDTO(it), nil
}

// SetZoom sets the server's zoom factor.
func (s *Service) SetZoom(z float64) (WindowDTO, error) {
	if s.App == nil {
		return WindowDTO{}, ErrNotConfigured
	}
	if _, err := s.App.SetZoom(z); err != nil {
		return WindowDTO{}, err
	}
	w, err := s.App.Window()
	if err != nil {
		return WindowDTO{}, err
	}
	return toWindowDTO(w), nil
}

// SetCategories sets the server's active category filter.
func (s *Service) SetCategories(names []string) ([]CategoryDTO, error) {
	if s.App == nil {
		return nil, ErrNotConfigured
	}
	cs, err := category.ParseList(names)
	if err != nil {
		return nil, err
	}
	if err := s.App.SetCategories(cs); err != nil {
		return nil, err
	}
	return s.Categories(), nil
}

// Categories lists the palette with the server's active filter applied.
func (s *Service) Categories() []CategoryDTO {
	var active category.Set
	if s.App != nil && s.App.View != nil {
		active = category.NewSet(s.App.View.Categories()...)
	}
	palette := category.Palette()
	out := make([]CategoryDTO, 0, len(palette))
	for _, m := range palette {
		out = append(out, CategoryDTO{
			Key:    string(m.Key),
			Label:  m.Label,
			Color:  m.Color,
			Active: len(active) == 0 || active.Has(m.Key),
		})
	}
	return out
}

func (s *Service) toLayoutDTO(res layout.Result) LayoutDTO {
	active := []string{}
	if s.App != nil && s.App.View != nil {
		for _, c := range s.App.View.Categories() {
			active = append(active, string(c.Effective()))
		}
	}
	return LayoutDTO{
		Window:     toWindowDTO(res.Window),
		LaneCount:  res.LaneCount,
		Items:      toDTOs(res.Items),
		Placements: res.Placements,
		Categories: active,
	}
}

func toWindowDTO(w layout.Window) WindowDTO {
	return WindowDTO{
		Start:     w.Start.Format(timeutil.LayoutISO),
		End:       w.End.Format(timeutil.LayoutISO),
		TotalDays: w.TotalDays,
		Zoom:      w.Zoom,
	}
}

func toDTO(it item.Item) ItemDTO {
	meta := category.Lookup(it.Category)
	return ItemDTO{
		ID:            it.ID,
		Start:         it.Start.String(),
		End:           it.End.String(),
		Name:          it.Name,
		Category:      string(meta.Key),
		CategoryColor: meta.Color,
		Days:          int(it.Duration()/timeutil.Day) + 1,
		Lane:          it.Lane,
	}
}

func toDTOs(items []item.Item) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toDTO(it))
	}
	return out
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q", raw)
	}
	return id, nil
}
