//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
)

// Worker is a long-running loop such as the frame feed.
// It returns nil on a clean stop and leaves restarts to its caller.
type Worker interface {
	Run(ctx context.Context) error
}

// State is the shared state of one session: who takes part and whether
// the votes have been opened. Participant payloads are opaque to the holder.
type State[P any] struct {
	Participants map[string]P
	Opened       bool
}

// StateSink observes state changes. It must treat the received state as
// read-only and must not write back into the store it is subscribed to.
type StateSink[P any] interface {
	Consume(ctx context.Context, s State[P]) error
}

// SinkFunc adapts a plain function to a StateSink.
type SinkFunc[P any] func(ctx context.Context, s State[P]) error

func (f SinkFunc[P]) Consume(ctx context.Context, s State[P]) error {
	return f(ctx, s)
}

type IStore[P any] interface {
	SetState(ctx context.Context, participants map[string]P, opened bool)
	State() State[P]
	Subscribe(sink StateSink[P]) (unsubscribe func())
}
