// Package projection keeps a local history of observed session states.
// Does not emit events or interact with the store beyond observing it.
package projection

import (
	"context"
	"planning-poker/contract"
	"sync"
)

// Timeline holds every state observed, oldest first
type Timeline[P any] struct {
	mu     sync.RWMutex
	states []contract.State[P]
}

func NewTimeline[P any]() *Timeline[P] {
	return &Timeline[P]{
		states: nil,
	}
}

func (t *Timeline[P]) Consume(_ context.Context, s contract.State[P]) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.states = append(t.states, s)
	return nil
}

func (t *Timeline[P]) States() []contract.State[P] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]contract.State[P](nil), t.states...)
}

// Openings counts the transitions from a closed to an opened session
func (t *Timeline[P]) Openings() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	wasOpened := false
	for _, s := range t.states {
		if s.Opened && !wasOpened {
			count++
		}
		wasOpened = s.Opened
	}
	return count
}
