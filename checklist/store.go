package checklist

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/calev/grind/internal/blob"
)

// StorageKey is the blob key holding the serialized checklists.
const StorageKey = "problem-checklists"

// Store owns the checklists and keeps them durable under a single blob
// key, with the same degradation contract as the tracker store: a missing
// or malformed blob loads as empty, and a failed write leaves the
// in-memory state authoritative until the next successful write.
type Store struct {
	mu     sync.Mutex
	blob   blob.Store
	logger *slog.Logger

	checklists []Checklist
}

// Open loads the checklists from the blob store. An unreadable or
// malformed blob is reported and left in place until the next successful
// mutation.
func Open(b blob.Store, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	store := &Store{blob: b, logger: logger}

	data, ok, err := b.Get(StorageKey)
	if err != nil {
		logger.Warn("failed to read stored checklists, starting empty", "key", StorageKey, "error", err)
		return store, nil
	}
	if !ok {
		return store, nil
	}

	checklists, diags, err := Decode(data)
	if err != nil {
		logger.Warn("stored checklists are malformed, starting empty", "key", StorageKey, "error", err)
		return store, nil
	}
	for _, diag := range diags {
		logger.Warn("dropped stored entry", "key", StorageKey, "error", diag)
	}

	store.checklists = checklists
	return store, nil
}

// List returns a snapshot of all checklists in creation order.
func (s *Store) List() []Checklist {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Checklist, len(s.checklists))
	for i, checklist := range s.checklists {
		out[i] = checklist.clone()
	}
	return out
}

// Get returns the checklist with the given ID.
func (s *Store) Get(checklistID string) (Checklist, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, checklist := range s.checklists {
		if checklist.ID == checklistID {
			return checklist.clone(), true
		}
	}
	return Checklist{}, false
}

// Create builds a new checklist and persists it.
func (s *Store) Create(title string, easy, medium, hard int) (Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	checklist, err := New(title, easy, medium, hard)
	if err != nil {
		return Checklist{}, err
	}
	checklist = ensureUniqueID(checklist, s.hasID)

	s.checklists = append(s.checklists, checklist)
	return checklist.clone(), s.save()
}

// Toggle flips an item's completed flag and persists. Unknown checklist
// or item IDs are a no-op and report false.
func (s *Store) Toggle(checklistID, itemID string) (bool, error) {
	return s.update(checklistID, func(c Checklist) (Checklist, bool) {
		return c.Toggle(itemID)
	})
}

// SetNotes overwrites an item's notes and persists. Unknown checklist or
// item IDs are a no-op and report false.
func (s *Store) SetNotes(checklistID, itemID, notes string) (bool, error) {
	return s.update(checklistID, func(c Checklist) (Checklist, bool) {
		return c.SetNotes(itemID, notes)
	})
}

// Delete removes a checklist and persists. Deleting an unknown ID is a
// no-op and reports false.
func (s *Store) Delete(checklistID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, checklist := range s.checklists {
		if checklist.ID != checklistID {
			continue
		}
		s.checklists = append(s.checklists[:i:i], s.checklists[i+1:]...)
		return true, s.save()
	}
	return false, nil
}

// hasID reports whether a checklist with the given ID exists. Called with
// the mutex held.
func (s *Store) hasID(id string) bool {
	for _, checklist := range s.checklists {
		if checklist.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) update(checklistID string, apply func(Checklist) (Checklist, bool)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, checklist := range s.checklists {
		if checklist.ID != checklistID {
			continue
		}
		next, changed := apply(checklist)
		if !changed {
			return false, nil
		}
		s.checklists[i] = next
		return true, s.save()
	}
	return false, nil
}

// save writes the checklists under the storage key. Called with the mutex
// held, so writes are serialized and the latest state always wins.
func (s *Store) save() error {
	data, err := Encode(s.checklists)
	if err != nil {
		return fmt.Errorf("encode checklists: %w", err)
	}
	if err := s.blob.Set(StorageKey, data); err != nil {
		return fmt.Errorf("save checklists: %w", err)
	}
	return nil
}
