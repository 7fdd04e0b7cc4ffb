package tracker

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/calev/grind/internal/blob"
)

// StorageKey is the blob key holding the serialized collection.
const StorageKey = "problem-tracker-data"

// Store owns the records collection and keeps it durable: the collection
// loads once on open and the full collection is rewritten after every
// successful mutation. Store errors are non-fatal: a missing or malformed
// blob degrades to an empty collection, and a failed write leaves the
// in-memory state as the source of truth until the next successful write.
type Store struct {
	mu     sync.Mutex
	blob   blob.Store
	logger *slog.Logger

	records Collection
}

// Open loads the collection from the blob store. An unreadable or
// malformed blob is reported and left in place; it is not overwritten
// until the next successful mutation.
func Open(b blob.Store, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store := &Store{blob: b, logger: logger}

	data, ok, err := b.Get(StorageKey)
	if err != nil {
		logger.Warn("failed to read stored records, starting empty", "key", StorageKey, "error", err)
		return store, nil
	}
	if !ok {
		return store, nil
	}

	records, diags, err := Decode(data)
	if err != nil {
		logger.Warn("stored records are malformed, starting empty", "key", StorageKey, "error", err)
		return store, nil
	}
	for _, diag := range diags {
		logger.Warn("dropped stored entry", "key", StorageKey, "error", diag)
	}
	if err := ValidateCollection(records); err != nil {
		logger.Warn("stored records violate invariants", "key", StorageKey, "error", err)
	}

	store.records = records
	return store, nil
}

// Records returns a snapshot of the collection.
func (s *Store) Records() Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records.Clone()
}

// FindProblem returns the problem with the given ID and its record's date.
func (s *Store) FindProblem(problemID string) (Problem, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records.FindProblem(problemID)
}

// Add records a new problem and persists the collection.
func (s *Store) Add(date time.Time, name string, difficulty Difficulty, tags []string) (Problem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, problem, err := s.records.Add(date, name, difficulty, tags)
	if err != nil {
		return Problem{}, err
	}

	s.records = next
	return problem, s.save()
}

// Edit updates a problem and persists the collection. Editing an unknown
// ID is a no-op and reports false.
func (s *Store) Edit(problemID, name string, difficulty Difficulty, tags []string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, edited, err := s.records.Edit(problemID, name, difficulty, tags)
	if err != nil {
		return false, err
	}
	if !edited {
		return false, nil
	}

	s.records = next
	return true, s.save()
}

// Delete removes a problem and persists the collection. Deleting an
// unknown ID is a no-op and reports false.
func (s *Store) Delete(problemID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, deleted := s.records.Delete(problemID)
	if !deleted {
		return false, nil
	}

	s.records = next
	return true, s.save()
}

// save writes the collection under the storage key. Called with the mutex
// held, so writes are serialized and the latest state always wins.
func (s *Store) save() error {
	data, err := Encode(s.records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	if err := s.blob.Set(StorageKey, data); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}
