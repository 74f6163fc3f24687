// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestSlogHandler(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { Init(DefaultConfig()) })

	tests := []struct {
		name string
		log  func(l *slog.Logger)
		want []string
	}{
		{
			name: "plain attrs",
			log:  func(l *slog.Logger) { l.Info("service started", "service", "http", "restarts", 2) },
			want: []string{`"message":"service started"`, `"service":"http"`, `"restarts":2`},
		},
		{
			name: "grouped attrs",
			log:  func(l *slog.Logger) { l.WithGroup("supervisor").Warn("backoff", "failures", 3) },
			want: []string{`"level":"warn"`, `"supervisor.failures":3`},
		},
		{
			name: "preset attrs",
			log:  func(l *slog.Logger) { l.With("tree", "root").Error("panic") },
			want: []string{`"level":"error"`, `"tree":"root"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(NewSlogHandlerWithLogger(NewTestLogger(&buf)))
			tt.log(logger)

			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("expected %s in output: %s", w, out)
				}
			}
		})
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
