package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"tableflip.dev/timeline/pkg/item"
)

var (
	// ErrNotFound is returned when no item carries the requested id.
	ErrNotFound = errors.New("store: item not found")
	// ErrIDMismatch is returned when a replacement changes the item id.
	ErrIDMismatch = errors.New("store: replacement id does not match")
)

// Items is the single owned container of timeline items. Readers get copies;
// writes replace whole items. Items keep the order they were loaded in.
type Items struct {
	mu    sync.RWMutex
	items map[int]item.Item
	order []int
}

// NewItems validates items and returns a store holding them.
func NewItems(items ...item.Item) (*Items, error) {
	s := &Items{}
	if err := s.Reset(items); err != nil {
		return nil, err
	}
	return s, nil
}

// Len reports how many items are held.
func (s *Items) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Snapshot returns a copy of every item in load order.
func (s *Items) Snapshot() []item.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]item.Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Get returns the item with id.
func (s *Items) Get(id int) (item.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		return item.Item{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return it, nil
}

// Replace swaps the item with id for it. The id must match and the new item
// must be valid. The item keeps its position.
func (s *Items) Replace(id int, it item.Item) error {
	_, err := s.Update(id, func(item.Item) (item.Item, error) {
		return it, nil
	})
	return err
}

// Update applies fn to the current item with id and stores the result. The
// read and the write happen under one lock, so concurrent updates to the
// same item are never lost. fn must not call back into s.
func (s *Items) Update(id int, fn func(item.Item) (item.Item, error)) (item.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.items[id]
	if !ok {
		return item.Item{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	next, err := fn(cur)
	if err != nil {
		return item.Item{}, err
	}
	if next.ID != id {
		return item.Item{}, fmt.Errorf("%w: want %d, got %d", ErrIDMismatch, id, next.ID)
	}
	if err := next.Validate(); err != nil {
		return item.Item{}, fmt.Errorf("store: replace %d: %w", id, err)
	}
	next.Lane = 0
	s.items[id] = next
	return next, nil
}

// Reset replaces the whole set, as on seed reload. Nothing changes when any
// item is invalid.
func (s *Items) Reset(items []item.Item) error {
	next := make(map[int]item.Item, len(items))
	order := make([]int, 0, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return fmt.Errorf("store: %w", err)
		}
		if _, dup := next[it.ID]; dup {
			return fmt.Errorf("store: duplicate id %d", it.ID)
		}
		it.Lane = 0
		next[it.ID] = it
		order = append(order, it.ID)
	}

	s.mu.Lock()
	s.items = next
	s.order = order
	s.mu.Unlock()
	return nil
}

// IDs returns the held ids in ascending order.
func (s *Items) IDs() []int {
	s.mu.RLock()
	ids := make([]int, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Ints(ids)
	return ids
}
