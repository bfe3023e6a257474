package history

import (
	"sync"
	"time"

	"github.com/MALVIS-KAGIRI/traffic-severity-prediction/models"
)

// Store is the append-only prediction log for a single session. Insertion
// order is preserved; when the cap is reached the oldest record is dropped.
type Store struct {
	mu      sync.RWMutex
	limit   int
	records []models.PredictionRecord
}

// NewStore creates a store capped at limit records. limit <= 0 means
// unbounded.
func NewStore(limit int) *Store {
	return &Store{limit: limit}
}

func (s *Store) Append(rec models.PredictionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
	if s.limit > 0 && len(s.records) > s.limit {
		s.records = s.records[len(s.records)-s.limit:]
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Snapshot returns a copy of all records in insertion order.
func (s *Store) Snapshot() []models.PredictionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PredictionRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Page returns up to limit records newest first, skipping records at or
// after the before cursor. The second return reports whether older records
// remain.
func (s *Store) Page(limit int, before *time.Time) ([]models.PredictionRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.PredictionRecord, 0, limit)
	for i := len(s.records) - 1; i >= 0; i-- {
		rec := s.records[i]
		if before != nil && !rec.CreatedAt.Before(*before) {
			continue
		}
		if len(out) == limit {
			return out, true
		}
		out = append(out, rec)
	}
	return out, false
}
