package projection

import (
	"context"
	"log/slog"
	"planning-poker/contract"
	"planning-poker/store"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestTimeline_Consume_RecordsStatesInOrder(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline[string]()
	s := store.New[string](logs.GetLoggerFromLevel(slog.LevelDebug))
	s.Subscribe(timeline)
	ctx := context.Background()

	s.SetState(ctx, map[string]string{"alice": "Alice"}, true)
	s.SetState(ctx, map[string]string{}, false)

	states := timeline.States()
	req.Len(states, 2)
	req.Equal("Alice", states[0].Participants["alice"])
	req.True(states[0].Opened)
	req.Empty(states[1].Participants)
	req.False(states[1].Opened)
}

func TestTimeline_Openings(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline[string]()
	ctx := context.Background()

	for _, opened := range []bool{false, true, true, false, true} {
		req.NoError(timeline.Consume(ctx, contractState(opened)))
	}

	req.Equal(2, timeline.Openings())
}

func TestTimeline_States_DoesNotExposeStoreState(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline[string]()
	s := store.New[string](logs.GetLoggerFromLevel(slog.LevelDebug))
	s.Subscribe(timeline)

	s.SetState(context.Background(), map[string]string{"alice": "Alice"}, true)

	// When a reader of the history writes into a recorded state
	timeline.States()[0].Participants["mallory"] = "injected"

	// Then the store keeps its own state
	req.Equal(map[string]string{"alice": "Alice"}, s.State().Participants)
}

func contractState(opened bool) contract.State[string] {
	return contract.State[string]{Participants: map[string]string{}, Opened: opened}
}
