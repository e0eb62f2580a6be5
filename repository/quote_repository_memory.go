package repository

import (
	"sync"

	"mortgage-parser/domain"
)

// QuoteRepositoryMemory keeps the most recent quotes in memory, dropping the
// oldest once capacity is reached.
type QuoteRepositoryMemory struct {
	mu       sync.Mutex
	data     []domain.Quote
	capacity int
}

// NewQuoteRepositoryMemory creates a new in-memory quote history.
func NewQuoteRepositoryMemory(capacity int) *QuoteRepositoryMemory {
	if capacity <= 0 {
		capacity = 1
	}
	return &QuoteRepositoryMemory{
		data:     make([]domain.Quote, 0, capacity),
		capacity: capacity,
	}
}

// Save stores the quote in memory.
func (r *QuoteRepositoryMemory) Save(quote domain.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.data) == r.capacity {
		copy(r.data, r.data[1:])
		r.data = r.data[:len(r.data)-1]
	}
	r.data = append(r.data, quote)
	return nil
}

// Recent returns up to limit quotes, newest first. A non-positive limit
// returns everything held.
func (r *QuoteRepositoryMemory) Recent(limit int) ([]domain.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}

	recent := make([]domain.Quote, 0, limit)
	for i := len(r.data) - 1; i >= len(r.data)-limit; i-- {
		recent = append(recent, r.data[i])
	}
	return recent, nil
}
