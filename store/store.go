// Package store holds the shared state of a planning-poker session and
// notifies subscribed sinks whenever it is replaced.
// It performs no validation and derives nothing from the participants.
package store

import (
	"context"
	"log/slog"
	"planning-poker/contract"
	"slices"
	"sync"

	"github.com/samber/lo"
)

type subscription[P any] struct {
	id   uint64
	sink contract.StateSink[P]
}

// Store is the single owner of a session state.
// Both fields are replaced together by SetState, never merged.
//
// Store is safe for concurrent use. Calls to SetState are serialized,
// including the notification of sinks, so sinks observe updates in order.
type Store[P any] struct {
	log *slog.Logger

	publishMu sync.Mutex

	mu           sync.RWMutex
	participants map[string]P
	opened       bool
	sinks        []subscription[P]
	nextID       uint64
}

// New returns a store in its default state: no participants, not opened.
func New[P any](log *slog.Logger) *Store[P] {
	return &Store[P]{
		log:          log,
		participants: make(map[string]P),
		opened:       false,
	}
}

// SetState replaces the participants and the opened flag in one step, then
// notifies every sink synchronously with the new state.
// The map is copied, on the way in and for each sink; a nil map is stored
// as an empty one.
// Sinks must not call SetState on the store that notifies them.
func (s *Store[P]) SetState(ctx context.Context, participants map[string]P, opened bool) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()

	s.mu.Lock()
	s.opened = opened
	s.participants = lo.Assign(participants)
	current := s.participants
	sinks := slices.Clone(s.sinks)
	s.mu.Unlock()

	// current is only ever replaced, never written, so copying it unlocked is safe
	for _, sub := range sinks {
		state := contract.State[P]{Participants: lo.Assign(current), Opened: opened}
		if err := sub.sink.Consume(ctx, state); err != nil {
			s.log.Warn("State sink failed", "subscription", sub.id, "err", err)
		}
	}
}

// State returns a copy of the current state.
func (s *Store[P]) State() contract.State[P] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return contract.State[P]{
		Participants: lo.Assign(s.participants),
		Opened:       s.opened,
	}
}

// Subscribe registers a sink notified after every SetState, in subscription
// order. The returned func unsubscribes it and may be called more than once.
func (s *Store[P]) Subscribe(sink contract.StateSink[P]) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.sinks = append(s.sinks, subscription[P]{id: id, sink: sink})
	s.log.Debug("State sink subscribed", "subscription", id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.sinks = slices.DeleteFunc(s.sinks, func(sub subscription[P]) bool {
			return sub.id == id
		})
	}
}
