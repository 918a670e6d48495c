// Package selection holds the seat selection state machine: an ordered
// set of selected seats with an availability gate, a hard size cap and
// best-effort persistence to external key-value storage.
package selection

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/iliyamo/venue-seat-selection/internal/model"
	"github.com/iliyamo/venue-seat-selection/internal/storage"
)

// MaxSeats is the hard cap on the number of selected seats.  A toggle
// that would exceed it is rejected silently; surfacing the cap to the
// user is the caller's job, not an error condition here.
const MaxSeats = 8

// Store is the selection state machine.  Seats are kept in insertion
// order (the order matters for display only) alongside a derived id
// set for O(1) membership tests, recomputed on every change.
//
// Every successful mutation is serialized and written to the key-value
// store under the configured key.  Storage failures never escape:
// a corrupted read falls back to an empty selection and deletes the
// bad entry, and a quota-exceeded write is retried exactly once after
// deleting the key.  If the retry fails too, the in-memory state stays
// correct and simply is not persisted.
//
// The mutex exists because the HTTP layer serves requests
// concurrently; the original interaction model was a single UI event
// loop, and the lock reproduces its one-mutation-at-a-time semantics.
type Store struct {
	mu    sync.Mutex
	kv    storage.KVStore // nil disables persistence
	key   string
	seats []model.Seat
	ids   map[string]struct{}
}

// NewStore creates a Store and restores any previously persisted
// selection.  A missing key, a storage error or an unparseable value
// all yield an empty selection; the unparseable case also deletes the
// offending entry so it cannot poison later startups.
func NewStore(ctx context.Context, kv storage.KVStore, key string) *Store {
	s := &Store{
		kv:  kv,
		key: key,
		ids: make(map[string]struct{}),
	}
	s.restore(ctx)
	return s
}

// restore loads the persisted selection, trusting the seat statuses
// captured at selection time.  Availability is not re-checked against
// the live venue; that staleness is a known property of the design.
func (s *Store) restore(ctx context.Context) {
	if s.kv == nil {
		return
	}
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return
	}
	var seats []model.Seat
	if err := json.Unmarshal([]byte(raw), &seats); err != nil {
		_ = s.kv.Remove(ctx, s.key)
		return
	}
	s.seats = seats
	s.reindex()
}

// Toggle flips the membership of seat and reports whether the
// selection changed.  A seat that is not available is ignored.  A seat
// already in the selection is removed.  Otherwise the seat is appended
// unless the selection is full, in which case nothing happens and no
// error is signaled.  The selection is persisted only after an actual
// change.
func (s *Store) Toggle(ctx context.Context, seat model.Seat) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !seat.Available() {
		return false
	}
	if _, selected := s.ids[seat.ID]; selected {
		kept := s.seats[:0]
		for _, m := range s.seats {
			if m.ID != seat.ID {
				kept = append(kept, m)
			}
		}
		s.seats = kept
		s.reindex()
		s.persist(ctx)
		return true
	}
	if len(s.seats) >= MaxSeats {
		return false
	}
	s.seats = append(s.seats, seat)
	s.reindex()
	s.persist(ctx)
	return true
}

// Clear empties the selection unconditionally and removes the
// persisted entry.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seats = nil
	s.reindex()
	if s.kv != nil {
		_ = s.kv.Remove(ctx, s.key)
	}
}

// IsSelected reports membership by seat id.
func (s *Store) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// Seats returns the current selection in insertion order.
func (s *Store) Seats() []model.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Seat, len(s.seats))
	copy(out, s.seats)
	return out
}

// Len returns the number of selected seats.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seats)
}

// reindex rebuilds the derived id set.  Called with the lock held.
func (s *Store) reindex() {
	s.ids = make(map[string]struct{}, len(s.seats))
	for _, m := range s.seats {
		s.ids[m.ID] = struct{}{}
	}
}

// persist writes the selection to storage.  On quota exhaustion the
// key is deleted and the write retried once; any failure after that is
// swallowed.  Called with the lock held.
func (s *Store) persist(ctx context.Context) {
	if s.kv == nil {
		return
	}
	payload, err := json.Marshal(s.seats)
	if err != nil {
		return
	}
	err = s.kv.Set(ctx, s.key, string(payload))
	if errors.Is(err, storage.ErrQuotaExceeded) {
		_ = s.kv.Remove(ctx, s.key)
		_ = s.kv.Set(ctx, s.key, string(payload))
	}
}
