package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"planning-poker/contract"
	"planning-poker/domain"
	"planning-poker/feed"
	"planning-poker/projection"
	"planning-poker/sink"
	"planning-poker/store"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the viewer.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Viewer error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the session store to its feed and sinks, then waits for the
// feed to end or for a termination signal.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Frame source
	var reader io.Reader = os.Stdin
	if config.FeedPath != "" {
		file, err := os.Open(config.FeedPath)
		if err != nil {
			return exitRuntime, fmt.Errorf("opening feed %s: %w", config.FeedPath, err)
		}
		defer func() {
			_ = file.Close()
		}()
		reader = file
	}

	// 3. Store & Sinks
	session := store.New[domain.Participant](log)
	session.Subscribe(sink.NewLogSink[domain.Participant](log))
	session.Subscribe(sink.NewTableSink(os.Stdout, config.Colours))
	timeline := projection.NewTimeline[domain.Participant]()
	session.Subscribe(timeline)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var worker contract.Worker = feed.NewFeed(log, reader, session)
	errChan := make(chan error, 1)
	go func() {
		errChan <- worker.Run(ctx)
	}()

	// 5. Wait for Stop or End of feed
	select {
	case <-ctx.Done():
		log.Info("Stopping viewer...")
		return exitOK, nil
	case err := <-errChan:
		if err != nil {
			return exitRuntime, err
		}
	}

	state := session.State()
	log.Info("Feed ended",
		"updates", len(timeline.States()),
		"openings", timeline.Openings(),
		"participants", len(state.Participants),
		"opened", state.Opened)
	return exitOK, nil
}
