// Package app ties the item store, view state and layout pipeline together so
// the CLI, the watch loop and the MCP server share one set of operations.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/item"
	"tableflip.dev/timeline/pkg/layout"
	"tableflip.dev/timeline/pkg/logger"
	"tableflip.dev/timeline/pkg/seed"
	"tableflip.dev/timeline/pkg/store"
)

// DefaultTrackWidth is used when a caller does not know the rendered width.
const DefaultTrackWidth = 1000

// Service provides the high-level timeline operations.
type Service struct {
	Items *store.Items
	View  store.ViewState
	// Now overrides the clock for the empty-set window.
	Now func() time.Time
}

var errNoItems = errors.New("app: no item store configured")

// New loads the seed at seedPath into a fresh store. A nil view keeps view
// state in memory.
func New(seedPath string, view store.ViewState) (*Service, error) {
	items, err := seed.Load(seedPath)
	if err != nil {
		return nil, err
	}
	s, err := store.NewItems(items...)
	if err != nil {
		return nil, err
	}
	if view == nil {
		view = store.NewMemoryViewState()
	}
	return &Service{Items: s, View: view}, nil
}

func (s *Service) windowOptions() []layout.WindowOption {
	if s.Now == nil {
		return nil
	}
	return []layout.WindowOption{layout.WithClock(s.Now)}
}

func (s *Service) view() layout.View {
	if s.View == nil {
		return layout.View{Zoom: layout.DefaultZoom}
	}
	return s.View.View()
}

// Layout runs the full pipeline over the current items and view.
func (s *Service) Layout() (layout.Result, error) {
	if s.Items == nil {
		return layout.Result{}, errNoItems
	}
	view := s.view()
	res := layout.Compute(s.Items.Snapshot(), view, s.windowOptions()...)
	logger.L().Debug("layout.computed",
		"zoom", res.Window.Zoom,
		"visible", len(res.Items),
		"lanes", res.LaneCount,
		"categories", len(view.Categories))
	return res, nil
}

// Lanes assigns lanes over every item, ignoring the window and filter.
func (s *Service) Lanes() ([]item.Item, int, error) {
	if s.Items == nil {
		return nil, 0, errNoItems
	}
	assigned, count := layout.AssignLanes(s.Items.Snapshot())
	return assigned, count, nil
}

// Window computes the view window at the current zoom.
func (s *Service) Window() (layout.Window, error) {
	if s.Items == nil {
		return layout.Window{}, errNoItems
	}
	return layout.ComputeViewWindow(s.Items.Snapshot(), s.view().Zoom, s.windowOptions()...), nil
}

// MoveOptions describes a horizontal drag. Span, when set, is converted to
// pixels on the current track and added to DeltaX.
type MoveOptions struct {
	ID     int
	DeltaX float64
	Span   time.Duration
	Width  float64
}

// MoveResult is the outcome of a committed move.
type MoveResult struct {
	Before item.Item     `json:"before"`
	After  item.Item     `json:"after"`
	DeltaX float64       `json:"deltaX"`
	Layout layout.Result `json:"layout"`
}

// Move resolves a drag against the current window and writes the result back
// into the store.
func (s *Service) Move(opts MoveOptions) (MoveResult, error) {
	if s.Items == nil {
		return MoveResult{}, errNoItems
	}
	width := opts.Width
	if width == 0 {
		width = DefaultTrackWidth
	}

	w, err := s.Window()
	if err != nil {
		return MoveResult{}, err
	}
	delta := opts.DeltaX
	if opts.Span != 0 {
		delta += layout.NewTrack(w, width).ShiftPixels(opts.Span)
	}

	var before item.Item
	after, err := s.Items.Update(opts.ID, func(cur item.Item) (item.Item, error) {
		before = cur
		return layout.ResolveReposition(cur, delta, w.Start, w.TotalDays, width), nil
	})
	if err != nil {
		return MoveResult{}, err
	}
	logger.L().Info("item.moved",
		"id", after.ID,
		"deltaX", delta,
		"from", before.Start.String(),
		"to", after.Start.String())

	res, err := s.Layout()
	if err != nil {
		return MoveResult{}, err
	}
	before.Lane = 0
	return MoveResult{Before: before, After: after, DeltaX: delta, Layout: res}, nil
}

// EditOptions lists the fields to change. Nil fields keep their value.
type EditOptions struct {
	Name     *string
	Start    *item.Date
	End      *item.Date
	Category *category.Category
}

// Empty reports whether no field is set.
func (o EditOptions) Empty() bool {
	return o.Name == nil && o.Start == nil && o.End == nil && o.Category == nil
}

// Edit replaces the item with id by a copy carrying the changed fields.
func (s *Service) Edit(id int, opts EditOptions) (item.Item, error) {
	if s.Items == nil {
		return item.Item{}, errNoItems
	}
	it, err := s.Items.Update(id, func(it item.Item) (item.Item, error) {
		if opts.Name != nil {
			it.Name = strings.TrimSpace(*opts.Name)
		}
		if opts.Start != nil {
			it.Start = *opts.Start
		}
		if opts.End != nil {
			it.End = *opts.End
		}
		if opts.Category != nil {
			it.Category = *opts.Category
		}
		return it, nil
	})
	if err != nil {
		return item.Item{}, err
	}
	logger.L().Info("item.edited", "id", id)
	return it, nil
}

// SetZoom stores a new zoom factor and returns the clamped value.
func (s *Service) SetZoom(z float64) (float64, error) {
	if s.View == nil {
		return layout.DefaultZoom, errors.New("app: no view state configured")
	}
	return s.View.SetZoom(z)
}

// SetCategories stores the active category filter. Empty clears it.
func (s *Service) SetCategories(cs []category.Category) error {
	if s.View == nil {
		return errors.New("app: no view state configured")
	}
	return s.View.SetCategories(cs)
}

// Reload replaces every item with the contents of the seed at path. The store
// is left as it was when the seed cannot be read.
func (s *Service) Reload(path string) error {
	if s.Items == nil {
		return errNoItems
	}
	items, err := seed.Load(path)
	if err != nil {
		return err
	}
	if err := s.Items.Reset(items); err != nil {
		return fmt.Errorf("app: reload %s: %w", path, err)
	}
	logger.L().Info("seed.reloaded", "path", path, "items", len(items))
	return nil
}
