package store

import (
	"math"
	"testing"

	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/layout"
)

func TestViewStateDefaults(t *testing.T) {
	vs, err := LoadViewState(StaticConfig("", t.TempDir(), 0))
	if err != nil {
		t.Fatalf("LoadViewState: %v", err)
	}
	if vs.Zoom() != layout.DefaultZoom {
		t.Fatalf("expected default zoom, got %v", vs.Zoom())
	}
	if len(vs.Categories()) != 0 {
		t.Fatalf("expected no filter, got %v", vs.Categories())
	}
}

func TestViewStatePersists(t *testing.T) {
	dir := t.TempDir()
	vs, _ := LoadViewState(StaticConfig("", dir, 0))

	got, err := vs.SetZoom(9)
	if err != nil {
		t.Fatalf("SetZoom: %v", err)
	}
	if got != layout.MaxZoom {
		t.Fatalf("expected clamped zoom %v, got %v", layout.MaxZoom, got)
	}
	if err := vs.SetCategories([]category.Category{category.QA, ""}); err != nil {
		t.Fatalf("SetCategories: %v", err)
	}

	reopened, _ := LoadViewState(StaticConfig("", dir, 0))
	view := reopened.View()
	if view.Zoom != layout.MaxZoom {
		t.Fatalf("expected persisted zoom, got %v", view.Zoom)
	}
	if len(view.Categories) != 2 || view.Categories[0] != category.QA || view.Categories[1] != category.General {
		t.Fatalf("unexpected categories %v", view.Categories)
	}

	if err := reopened.SetCategories(nil); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(reopened.Categories()) != 0 {
		t.Fatalf("expected cleared filter")
	}
}

func TestViewStateRequiresPath(t *testing.T) {
	if _, err := LoadViewState(StaticConfig("", "", 0)); err == nil {
		t.Fatalf("expected error for empty state path")
	}
}

func TestMemoryViewState(t *testing.T) {
	m := NewMemoryViewState()
	if z, _ := m.SetZoom(math.NaN()); z != layout.DefaultZoom {
		t.Fatalf("expected NaN to reset zoom, got %v", z)
	}
	_ = m.SetCategories([]category.Category{category.HR})
	if v := m.View(); len(v.Categories) != 1 {
		t.Fatalf("unexpected view %+v", v)
	}
}
