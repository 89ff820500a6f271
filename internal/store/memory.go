package store

import "sync"

// Memory is the default Store backend: a guarded slice, newest first.
type Memory[T Entity] struct {
	mu   sync.RWMutex
	rows []T
}

// NewMemory returns an empty in-memory store.
func NewMemory[T Entity]() *Memory[T] {
	return &Memory[T]{}
}

// Seed appends fixture rows in order. Runtime additions are prepended, so
// seeds stay at the back in their fixture order.
func (m *Memory[T]) Seed(rows []T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, rows...)
	return nil
}

// List returns a copy of the rows, newest first.
func (m *Memory[T]) List() ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]T, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

// FindByID returns the row with the given id.
func (m *Memory[T]) FindByID(id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.rows {
		if r.RecordID() == id {
			return r, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Add prepends a new row.
func (m *Memory[T]) Add(item T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append([]T{item}, m.rows...)
	return nil
}

// Update replaces the row whose id matches item's, keeping its position.
func (m *Memory[T]) Update(item T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.RecordID() == item.RecordID() {
			m.rows[i] = item
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes the row with the given id.
func (m *Memory[T]) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.rows {
		if r.RecordID() == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Count returns the number of rows.
func (m *Memory[T]) Count() (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows), nil
}
