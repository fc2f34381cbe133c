package sink

import (
	"context"
	"log/slog"
	"planning-poker/contract"
)

// LogSink logs every state replacement
type LogSink[P any] struct {
	log *slog.Logger
}

func NewLogSink[P any](log *slog.Logger) *LogSink[P] {
	return &LogSink[P]{log: log}
}

func (s *LogSink[P]) Consume(_ context.Context, state contract.State[P]) error {
	s.log.Info("Session state updated",
		"participants", len(state.Participants),
		"opened", state.Opened)
	return nil
}
