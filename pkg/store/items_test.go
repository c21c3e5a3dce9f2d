package store

import (
	"errors"
	"sync"
	"testing"

	"tableflip.dev/timeline/pkg/category"
	"tableflip.dev/timeline/pkg/item"
)

func sample() []item.Item {
	return []item.Item{
		item.New(3, "2021-02-05", "2021-02-13", "Translate phrases for lesson 1", category.Translation),
		item.New(1, "2021-01-14", "2021-01-22", "Recruit translators", category.HR),
		item.New(2, "2021-01-17", "2021-01-31", "Create lesson plan 1", category.Education),
	}
}

func TestNewItemsSnapshotKeepsLoadOrder(t *testing.T) {
	s, err := NewItems(sample()...)
	if err != nil {
		t.Fatalf("NewItems: %v", err)
	}
	snap := s.Snapshot()
	want := []int{3, 1, 2}
	if len(snap) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(snap))
	}
	for i, it := range snap {
		if it.ID != want[i] {
			t.Fatalf("expected id %d at %d, got %d", want[i], i, it.ID)
		}
	}

	snap[0].Name = "mutated"
	if got, _ := s.Get(3); got.Name == "mutated" {
		t.Fatalf("snapshot aliases store state")
	}
}

func TestNewItemsRejectsInvalid(t *testing.T) {
	bad := item.New(1, "2021-02-01", "2021-01-01", "reversed", "")
	if _, err := NewItems(bad); !errors.Is(err, item.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	dup := sample()
	dup[1].ID = 3
	if _, err := NewItems(dup...); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestNewItemsClearsLane(t *testing.T) {
	it := item.New(1, "2021-01-01", "2021-01-02", "a", "")
	it.Lane = 4
	s, err := NewItems(it)
	if err != nil {
		t.Fatalf("NewItems: %v", err)
	}
	if got, _ := s.Get(1); got.Lane != 0 {
		t.Fatalf("expected lane reset, got %d", got.Lane)
	}
}

func TestReplace(t *testing.T) {
	s, _ := NewItems(sample()...)

	moved := item.New(3, "2021-02-06", "2021-02-14", "Translate phrases for lesson 1", category.Translation)
	if err := s.Replace(3, moved); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	got, err := s.Get(3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Start.String() != "2021-02-06" || got.End.String() != "2021-02-14" {
		t.Fatalf("unexpected replacement %v", got)
	}
	if first := s.Snapshot()[0]; first.ID != 3 {
		t.Fatalf("expected replaced item to keep its position, got id %d first", first.ID)
	}
}

func TestUpdate(t *testing.T) {
	s, _ := NewItems(sample()...)

	got, err := s.Update(1, func(it item.Item) (item.Item, error) {
		it.Name = "Hire translators"
		it.Lane = 2
		return it, nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Name != "Hire translators" || got.Lane != 0 {
		t.Fatalf("unexpected update result %+v", got)
	}

	boom := errors.New("boom")
	if _, err := s.Update(1, func(it item.Item) (item.Item, error) {
		it.Name = "lost"
		return it, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if _, err := s.Update(42, func(it item.Item) (item.Item, error) { return it, nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Update(1, func(it item.Item) (item.Item, error) {
		it.End = it.Start.AddDays(-1)
		return it, nil
	}); !errors.Is(err, item.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if cur, _ := s.Get(1); cur.Name != "Hire translators" || cur.End.String() != "2021-01-22" {
		t.Fatalf("failed update changed the store: %+v", cur)
	}
}

func TestUpdateDoesNotLoseConcurrentWrites(t *testing.T) {
	s, _ := NewItems(sample()...)
	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.Update(1, func(it item.Item) (item.Item, error) {
				it.Name += "a"
				return it, nil
			})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Update(1, func(it item.Item) (item.Item, error) {
				it.End = it.End.AddDays(1)
				return it, nil
			})
		}()
	}
	wg.Wait()

	got, _ := s.Get(1)
	if want := len("Recruit translators") + n; len(got.Name) != want {
		t.Fatalf("expected name length %d, got %d", want, len(got.Name))
	}
	if want := item.MustDate("2021-01-22").AddDays(n); !got.End.Equal(want.Time) {
		t.Fatalf("expected end %s, got %s", want, got.End)
	}
}

func TestReplaceErrors(t *testing.T) {
	s, _ := NewItems(sample()...)

	if err := s.Replace(9, item.New(9, "2021-01-01", "2021-01-02", "x", "")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.Replace(1, item.New(2, "2021-01-01", "2021-01-02", "x", "")); !errors.Is(err, ErrIDMismatch) {
		t.Fatalf("expected ErrIDMismatch, got %v", err)
	}
	if err := s.Replace(1, item.New(1, "2021-01-05", "2021-01-02", "x", "")); !errors.Is(err, item.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
	if got, _ := s.Get(1); got.Name != "Recruit translators" {
		t.Fatalf("failed replace changed the store: %v", got)
	}
}

func TestResetKeepsStateOnError(t *testing.T) {
	s, _ := NewItems(sample()...)
	err := s.Reset([]item.Item{item.New(1, "2021-01-01", "2021-01-02", "a", ""), {ID: 0}})
	if err == nil {
		t.Fatalf("expected error")
	}
	if s.Len() != 3 {
		t.Fatalf("expected original 3 items, got %d", s.Len())
	}

	if err := s.Reset(nil); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(s.IDs()) != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s, _ := NewItems(sample()...)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
		go func(n int) {
			defer wg.Done()
			it, _ := s.Get(1)
			it.End = it.End.AddDays(n)
			_ = s.Replace(1, it)
		}(i)
	}
	wg.Wait()
	if s.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", s.Len())
	}
}
