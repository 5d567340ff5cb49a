// Package store provides the in-memory repository backing the resource
// services. Records live only in process memory; a restart discards them.
package store

import (
	"math/rand"
	"slices"
	"sync"
)

// Memory is a mutex-guarded collection keyed by positive integer id.
// Listings preserve insertion order so responses are deterministic.
type Memory[T any] struct {
	mu    sync.RWMutex
	items map[int]T
	order []int
}

// NewMemory creates an empty store.
func NewMemory[T any]() *Memory[T] {
	return &Memory[T]{items: make(map[int]T)}
}

// Get returns the record with the given id.
func (m *Memory[T]) Get(id int) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[id]
	return v, ok
}

// Exists reports whether a record with the given id is stored.
func (m *Memory[T]) Exists(id int) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.items[id]
	return ok
}

// List returns all records in insertion order.
func (m *Memory[T]) List() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.items[id])
	}
	return out
}

// Len returns the number of stored records.
func (m *Memory[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Insert stores a new record under a generated id. The build function
// receives the id so the record can embed it.
func (m *Memory[T]) Insert(build func(id int) T) T {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID()
	v := build(id)
	m.items[id] = v
	m.order = append(m.order, id)
	return v
}

// Put stores a record under an explicit id, replacing any previous record.
// Used for seeding demo data and tests.
func (m *Memory[T]) Put(id int, v T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		m.order = append(m.order, id)
	}
	m.items[id] = v
}

// Update replaces an existing record, reporting whether it was present.
func (m *Memory[T]) Update(id int, v T) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return false
	}
	m.items[id] = v
	return true
}

// Delete removes a record, reporting whether it was present.
func (m *Memory[T]) Delete(id int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return false
	}
	delete(m.items, id)
	m.order = slices.DeleteFunc(m.order, func(v int) bool { return v == id })
	return true
}

// nextID draws pseudo-random positive ids, retrying on collision and
// widening the range as the collection grows. Caller must hold the lock.
func (m *Memory[T]) nextID() int {
	limit := 1000
	for {
		for i := 0; i < 8; i++ {
			id := rand.Intn(limit) + 1
			if _, taken := m.items[id]; !taken {
				return id
			}
		}
		limit *= 2
	}
}
