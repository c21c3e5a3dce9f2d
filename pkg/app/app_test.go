package app

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/item"
	"tableflip.dev/timeline/pkg/layout"
	"tableflip.dev/timeline/pkg/store"
	"tableflip.dev/timeline/pkg/timeutil"
)

func newService(t *testing.T, items ...item.Item) *Service {
	t.Helper()
	s, err := store.NewItems(items...)
	if err != nil {
		t.Fatalf("NewItems: %v", err)
	}
	return &Service{Items: s, View: store.NewMemoryViewState()}
}

func TestNewUsesDefaultSeed(t *testing.T) {
	svc, err := New("", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := svc.Layout()
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(res.Items) != 16 || res.LaneCount != 6 {
		t.Fatalf("expected 16 items in 6 lanes, got %d in %d", len(res.Items), res.LaneCount)
	}
}

func TestLayoutEmptyUsesClock(t *testing.T) {
	svc := newService(t)
	svc.Now = func() time.Time { return time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC) }
	w, err := svc.Window()
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if w.Start.Format(timeutil.LayoutISO) != "2026-10-17" || w.TotalDays != 61 {
		t.Fatalf("unexpected empty window %+v", w)
	}
}

func TestLayoutHonoursView(t *testing.T) {
	svc, _ := New("", nil)
	if err := svc.SetCategories([]category.Category{category.QA}); err != nil {
		t.Fatalf("SetCategories: %v", err)
	}
	res, _ := svc.Layout()
	if len(res.Items) != 2 || res.LaneCount != 1 {
		t.Fatalf("expected both QA items in one lane, got %d in %d", len(res.Items), res.LaneCount)
	}

	assigned, lanes, _ := svc.Lanes()
	if len(assigned) != 16 || lanes != 6 {
		t.Fatalf("lanes must ignore the filter, got %d in %d", len(assigned), lanes)
	}
}

func TestMoveOneDay(t *testing.T) {
	svc, _ := New("", nil)
	w, _ := svc.Window()
	oneDay := 1000 / w.TotalDays

	res, err := svc.Move(MoveOptions{ID: 3, DeltaX: oneDay, Width: 1000})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if res.After.Start.String() != "2021-02-06" || res.After.End.String() != "2021-02-14" {
		t.Fatalf("unexpected move %v", res.After)
	}
	stored, _ := svc.Items.Get(3)
	if !stored.Start.Equal(res.After.Start.Time) {
		t.Fatalf("move not written back: %v", stored)
	}
	if len(res.Layout.Items) != 16 {
		t.Fatalf("expected recomputed layout, got %d items", len(res.Layout.Items))
	}
}

func TestMoveBySpan(t *testing.T) {
	svc, _ := New("", nil)
	res, err := svc.Move(MoveOptions{ID: 1, Span: -7 * timeutil.Day, Width: 800})
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if res.After.Start.String() != "2021-01-07" || res.After.End.String() != "2021-01-15" {
		t.Fatalf("unexpected move %v", res.After)
	}
}

func TestMoveUnknown(t *testing.T) {
	svc := newService(t)
	if _, err := svc.Move(MoveOptions{ID: 42}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEdit(t *testing.T) {
	svc := newService(t, item.New(1, "2021-01-14", "2021-01-22", "Recruit translators", category.HR))

	name := "Hire translators"
	end := item.MustDate("2021-01-25")
	qa := category.QA
	got, err := svc.Edit(1, EditOptions{Name: &name, End: &end, Category: &qa})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if got.Name != name || got.End.String() != "2021-01-25" || got.Category != category.QA || got.Start.String() != "2021-01-14" {
		t.Fatalf("unexpected edit %v", got)
	}

	bad := item.MustDate("2021-01-01")
	if _, err := svc.Edit(1, EditOptions{End: &bad}); !errors.Is(err, item.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestEditSurvivesConcurrentMoves(t *testing.T) {
	svc, _ := New("", nil)
	name := "Hire translators"

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Move(MoveOptions{ID: 1, Width: 1000}); err != nil {
				t.Errorf("Move: %v", err)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := svc.Edit(1, EditOptions{Name: &name}); err != nil {
			t.Errorf("Edit: %v", err)
		}
	}()
	wg.Wait()

	got, _ := svc.Items.Get(1)
	if got.Name != name {
		t.Fatalf("expected edit to survive moves, got name %q", got.Name)
	}
	if got.Start.String() != "2021-01-14" || got.End.String() != "2021-01-22" {
		t.Fatalf("zero moves changed dates: %v", got)
	}
}

func TestLanesFollowSeedOrder(t *testing.T) {
	p := filepath.Join(t.TempDir(), "items.yaml")
	seedFile := "- {id: 2, start: 2021-01-10, end: 2021-01-12, name: X}\n- {id: 1, start: 2021-01-10, end: 2021-01-15, name: Y}\n"
	if err := os.WriteFile(p, []byte(seedFile), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	svc, err := New(p, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	assigned, lanes, err := svc.Lanes()
	if err != nil {
		t.Fatalf("Lanes: %v", err)
	}
	if lanes != 2 {
		t.Fatalf("expected 2 lanes, got %d", lanes)
	}
	for _, it := range assigned {
		want := map[string]int{"X": 0, "Y": 1}[it.Name]
		if it.Lane != want {
			t.Fatalf("item %s: expected lane %d, got %d", it.Name, want, it.Lane)
		}
	}
}

func TestSetZoomClamps(t *testing.T) {
	svc := newService(t)
	z, err := svc.SetZoom(0.1)
	if err != nil {
		t.Fatalf("SetZoom: %v", err)
	}
	if z != layout.MinZoom {
		t.Fatalf("expected min zoom, got %v", z)
	}
}

func TestReload(t *testing.T) {
	svc, _ := New("", nil)
	p := filepath.Join(t.TempDir(), "items.yaml")
	if err := os.WriteFile(p, []byte("- {id: 7, start: 2021-01-01, end: 2021-01-03, name: only}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := svc.Reload(p); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if ids := svc.Items.IDs(); len(ids) != 1 || ids[0] != 7 {
		t.Fatalf("unexpected ids %v", ids)
	}

	if err := os.WriteFile(p, []byte("not: [valid"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := svc.Reload(p); err == nil {
		t.Fatalf("expected reload error")
	}
	if svc.Items.Len() != 1 {
		t.Fatalf("failed reload changed the store")
	}
}
