package sink

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"planning-poker/contract"
	"planning-poker/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableSink_Consume_ClosedSessionHidesVotes(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	s := NewTableSink(&out, false)

	state := contract.State[domain.Participant]{
		Participants: map[string]domain.Participant{
			"b2": {UserName: "Bob"},
			"a1": {UserName: "Alice", Points: domain.Hidden()},
		},
		Opened: false,
	}

	err := s.Consume(context.Background(), state)

	req.NoError(err)
	rendered := out.String()
	req.Contains(rendered, "Session CLOSED, 2 participant(s)")
	req.Contains(rendered, voteHidden)
	req.Contains(rendered, voteMissing)
	// Rows are sorted by participant id
	req.Less(strings.Index(rendered, "Alice"), strings.Index(rendered, "Bob"))
}

func TestTableSink_Consume_OpenedSessionShowsVotes(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	s := NewTableSink(&out, false)

	state := contract.State[domain.Participant]{
		Participants: map[string]domain.Participant{
			"a1": {UserName: "Alice", Points: domain.Revealed(13)},
		},
		Opened: true,
	}

	req.NoError(s.Consume(context.Background(), state))
	req.Contains(out.String(), "Session OPENED, 1 participant(s)")
	req.Contains(out.String(), "13")
	req.NotContains(out.String(), voteHidden)
}

func TestTableSink_Consume_EmptySession(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	s := NewTableSink(&out, false)

	req.NoError(s.Consume(context.Background(), contract.State[domain.Participant]{}))
	req.Contains(out.String(), "Session CLOSED, 0 participant(s)")
}

func TestLogSink_Consume(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(&out, nil))
	s := NewLogSink[domain.Participant](log)

	err := s.Consume(context.Background(), contract.State[domain.Participant]{
		Participants: map[string]domain.Participant{"a1": {}},
		Opened:       true,
	})

	req.NoError(err)
	req.Contains(out.String(), "participants=1")
	req.Contains(out.String(), "opened=true")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, fmt.Errorf("terminal gone")
}

func TestTableSink_Consume_WriterFails(t *testing.T) {
	req := require.New(t)
	s := NewTableSink(brokenWriter{}, false)

	err := s.Consume(context.Background(), contract.State[domain.Participant]{Opened: true})

	req.Error(err)
	req.Contains(err.Error(), "writing header")
	req.Contains(err.Error(), "terminal gone")
}
