// Package store holds the process-local expense collection. One Store
// instance is created at startup and passed explicitly to the HTTP
// layer; there is no package-level state.
package store

import (
	"sync"
	"time"

	"expensed/internal/core"
)

// Store is an insertion-ordered, append-only expense collection guarded
// by a mutex. IDs are assigned monotonically and never reused.
type Store struct {
	mu     sync.Mutex
	items  []core.Expense
	nextID int64
}

// NewEmpty returns a store with no records and the counter at 1.
func NewEmpty() *Store {
	return &Store{nextID: 1}
}

// New returns a store preloaded with the standard seed records. The
// counter starts above the seeds.
func New() *Store {
	s := NewEmpty()
	s.Append(50.00, "Weekly groceries", "Food", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	s.Append(15.75, "Bus pass top-up", "Transport", time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC))
	return s
}

// ListAll returns every stored record in insertion order. The returned
// slice is a copy; callers cannot mutate the store through it.
func (s *Store) ListAll() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, len(s.items))
	copy(out, s.items)
	return out
}

// Append assigns the next id, canonicalizes the date and stores the
// record. Inputs must already have passed validation; Append never
// re-validates and never fails.
func (s *Store) Append(amount float64, description, category string, date time.Time) core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := core.Expense{
		ID:          s.nextID,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        core.CanonicalDate(date),
	}
	s.nextID++
	s.items = append(s.items, e)
	return e
}

// Len returns the current number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
