// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/cinematch/internal/supervisor"
)

type blockingService struct{}

func (blockingService) Serve(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (blockingService) String() string { return "blocking" }

func TestAwaitShutdown(t *testing.T) {
	t.Run("returns after signal with a real tree", func(t *testing.T) {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
		tree, err := supervisor.NewSupervisorTree(logger, supervisor.TreeConfig{ShutdownTimeout: time.Second})
		if err != nil {
			t.Fatalf("NewSupervisorTree: %v", err)
		}
		tree.AddAPIService(blockingService{})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		errCh := tree.ServeBackground(ctx)

		var stopped atomic.Bool
		stop := func() { stopped.Store(true) }

		done := make(chan error, 1)
		go func() { done <- awaitShutdown(ctx, stop, errCh) }()

		time.Sleep(50 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			if err != nil {
				t.Errorf("awaitShutdown() = %v, want nil", err)
			}
		case <-time.After(3 * time.Second):
			t.Fatal("awaitShutdown still blocked after the tree stopped")
		}
		if !stopped.Load() {
			t.Error("signal handler was not released")
		}
	})

	t.Run("returns tree failure without a signal", func(t *testing.T) {
		boom := errors.New("boom")
		errCh := make(chan error, 1)
		errCh <- boom

		var stopped atomic.Bool
		stop := func() { stopped.Store(true) }

		done := make(chan error, 1)
		go func() { done <- awaitShutdown(context.Background(), stop, errCh) }()

		select {
		case err := <-done:
			if !errors.Is(err, boom) {
				t.Errorf("awaitShutdown() = %v, want %v", err, boom)
			}
		case <-time.After(time.Second):
			t.Fatal("awaitShutdown blocked on an unclosed channel")
		}
		if !stopped.Load() {
			t.Error("signal handler was not released")
		}
	})
}
