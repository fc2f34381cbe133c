// Package feed turns a stream of server broadcasts into state updates.
// It owns no state itself: every accepted frame replaces the store's state.
package feed

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"planning-poker/contract"
	"planning-poker/domain"
	"planning-poker/errors"
	"sync/atomic"
)

// maxFrameSize bounds a single broadcast line
const maxFrameSize = 1 << 20

// Feed reads newline-delimited JSON frames and applies them to a store.
// Malformed lines are logged and skipped, a rejection frame stops the feed.
type Feed struct {
	log     *slog.Logger
	reader  io.Reader
	store   contract.IStore[domain.Participant]
	applied atomic.Int64
}

func NewFeed(log *slog.Logger, reader io.Reader, store contract.IStore[domain.Participant]) *Feed {
	return &Feed{log: log, reader: reader, store: store}
}

// Run blocks until the reader is exhausted, the context is cancelled or the
// server rejects the viewer. Reaching the end of the stream is not an error.
// A reader that is also an io.Closer is closed on cancellation to unblock a
// pending read; any other reader is only checked between frames.
func (f *Feed) Run(ctx context.Context) error {
	if closer, ok := f.reader.(io.Closer); ok {
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				_ = closer.Close()
			case <-done:
			}
		}()
	}

	scanner := bufio.NewScanner(f.reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)

	line := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			f.log.Debug("Context done, stopping feed")
			return nil
		}
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		var frame domain.Frame
		if err := json.Unmarshal(raw, &frame); err != nil {
			f.log.Error("Cannot unmarshal frame", "line", line, "err", err)
			continue
		}
		if frame.Error != "" {
			return fmt.Errorf("%w: %s", errors.ErrRejected, frame.Error)
		}

		f.store.SetState(ctx, frame.Participants, frame.Opened)
		applied := f.applied.Add(1)
		f.log.Debug("Frame applied",
			"line", line,
			"applied", applied,
			"participants", len(frame.Participants),
			"opened", frame.Opened)
	}
	if err := scanner.Err(); err != nil {
		if ctx.Err() != nil {
			f.log.Debug("Context done, feed reader closed")
			return nil
		}
		return fmt.Errorf("reading frames: %w", err)
	}
	return nil
}

// Applied returns how many frames reached the store so far.
func (f *Feed) Applied() int64 {
	return f.applied.Load()
}
