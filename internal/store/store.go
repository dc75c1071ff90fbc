// Package store owns the in-memory entry collection. It is the single
// source of truth for the session: every mutation re-persists the full
// collection to the local cache and notifies change listeners, so displayed
// aggregates never drift from cached state.
package store

import (
	"context"
	"sync"

	"github.com/armanazij/mygp-survey/internal/logging"
	"github.com/armanazij/mygp-survey/internal/models"
)

// Persister saves the full collection durably. Satisfied by *cache.Store.
type Persister interface {
	Save(ctx context.Context, entries []models.Entry) error
}

// EntryStore holds the ordered entry collection. Insertion order is arrival
// order: chronological for locally created entries, endpoint-defined for a
// fetched snapshot.
type EntryStore struct {
	mu        sync.Mutex
	entries   []models.Entry
	cache     Persister
	log       logging.Logger
	listeners []func()
}

func New(cache Persister, log logging.Logger) *EntryStore {
	return &EntryStore{cache: cache, log: log}
}

// OnChange registers fn to run after every mutation. Listeners are invoked
// synchronously, outside the store lock, in registration order. They must
// not mutate the store.
func (s *EntryStore) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Seed installs the collection loaded from the cache at startup. Unlike
// ReplaceAll it does not write the cache back, but it does notify listeners
// so the first render reflects the cached data.
func (s *EntryStore) Seed(entries []models.Entry) {
	s.mu.Lock()
	s.entries = append([]models.Entry(nil), entries...)
	s.mu.Unlock()

	s.notify()
}

// Append adds one entry to the end of the collection. Duplicate gating is
// the caller's job; the store is a pure container.
func (s *EntryStore) Append(ctx context.Context, e models.Entry) {
	s.mu.Lock()
	s.entries = append(s.entries, e)
	snapshot := append([]models.Entry(nil), s.entries...)
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.notify()
}

// ReplaceAll swaps in a freshly fetched snapshot wholesale. Last fetch wins:
// locally appended entries not yet reflected remotely are discarded. That is
// the documented reconciliation policy, not an accident.
func (s *EntryStore) ReplaceAll(ctx context.Context, entries []models.Entry) {
	snapshot := append([]models.Entry(nil), entries...)

	s.mu.Lock()
	s.entries = snapshot
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.notify()
}

// Current returns a copy of the collection. Consumers can iterate freely
// without holding up mutations.
func (s *EntryStore) Current() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Entry(nil), s.entries...)
}

func (s *EntryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// persist writes the collection through to the cache. A failed write is
// logged and swallowed: in-memory state stays authoritative for the session.
func (s *EntryStore) persist(ctx context.Context, entries []models.Entry) {
	if err := s.cache.Save(ctx, entries); err != nil {
		s.log.Error(ctx, "failed to persist entries to local cache", "error", err, "count", len(entries))
	}
}

func (s *EntryStore) notify() {
	s.mu.Lock()
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
