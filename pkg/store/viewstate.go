package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/layout"
)

const (
	zoomKey       = "zoom"
	categoriesKey = "categories"
)

// ViewState persists the user's view controls between invocations. It never
// holds items.
type ViewState interface {
	Zoom() float64
	SetZoom(z float64) (float64, error)
	Categories() []category.Category
	SetCategories(cs []category.Category) error
	View() layout.View
}

// LoadViewState opens the diskv store under cfg's state path.
func LoadViewState(cfg Config) (ViewState, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	base := cfg.StatePath()
	if base == "" {
		return nil, errors.New("store: state path unknown")
	}
	return &viewState{d: diskv.New(diskv.Options{
		BasePath:     base,
		Transform:    flatTransform,
		CacheSizeMax: 64 * 1024,
	})}, nil
}

func flatTransform(string) []string { return []string{} }

type viewState struct {
	d *diskv.Diskv
}

func (v *viewState) read(key string, target interface{}) (bool, error) {
	if !v.d.Has(key) {
		return false, nil
	}
	raw, err := v.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("store: read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("store: decode %s: %w", key, err)
	}
	return true, nil
}

func (v *viewState) write(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := v.d.Write(key, raw); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Zoom returns the stored zoom, clamped. Missing or unreadable state yields
// the default.
func (v *viewState) Zoom() float64 {
	var z float64
	ok, err := v.read(zoomKey, &z)
	if err != nil || !ok {
		return layout.DefaultZoom
	}
	return layout.ClampZoom(z)
}

// SetZoom clamps and stores z, returning the value kept.
func (v *viewState) SetZoom(z float64) (float64, error) {
	z = layout.ClampZoom(z)
	if err := v.write(zoomKey, z); err != nil {
		return layout.DefaultZoom, err
	}
	return z, nil
}

// Categories returns the active category filter. Empty means every category.
func (v *viewState) Categories() []category.Category {
	var raw []string
	ok, err := v.read(categoriesKey, &raw)
	if err != nil || !ok {
		return nil
	}
	cs, err := category.ParseList(raw)
	if err != nil {
		return nil
	}
	return cs
}

func (v *viewState) SetCategories(cs []category.Category) error {
	if len(cs) == 0 {
		if v.d.Has(categoriesKey) {
			if err := v.d.Erase(categoriesKey); err != nil {
				return fmt.Errorf("store: erase %s: %w", categoriesKey, err)
			}
		}
		return nil
	}
	raw := make([]string, 0, len(cs))
	for _, c := range cs {
		raw = append(raw, string(c.Effective()))
	}
	return v.write(categoriesKey, raw)
}

func (v *viewState) View() layout.View {
	return layout.View{Zoom: v.Zoom(), Categories: v.Categories()}
}

// MemoryViewState keeps view controls in process, for the MCP server and
// tests.
type MemoryViewState struct {
	mu         sync.Mutex
	zoom       float64
	categories []category.Category
}

// NewMemoryViewState starts at the default zoom with no filter.
func NewMemoryViewState() *MemoryViewState {
	return &MemoryViewState{zoom: layout.DefaultZoom}
}

func (m *MemoryViewState) Zoom() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.zoom
}

func (m *MemoryViewState) SetZoom(z float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zoom = layout.ClampZoom(z)
	return m.zoom, nil
}

func (m *MemoryViewState) Categories() []category.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]category.Category(nil), m.categories...)
}

func (m *MemoryViewState) SetCategories(cs []category.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = append([]category.Category(nil), cs...)
	return nil
}

func (m *MemoryViewState) View() layout.View {
	return layout.View{Zoom: m.Zoom(), Categories: m.Categories()}
}
