// Cinematch - Movie Recommendations with Franchise Awareness
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// MockService is a suture.Service that fails a configurable number of times
// and then blocks until its context is canceled.
type MockService struct {
	name       string
	startCount atomic.Int32
	failCount  atomic.Int32
	maxFails   atomic.Int32
}

func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

func (m *MockService) Serve(ctx context.Context) error {
	m.startCount.Add(1)

	if maxFails := m.maxFails.Load(); maxFails > 0 {
		if m.failCount.Add(1) <= maxFails {
			return errors.New("simulated failure")
		}
	}

	<-ctx.Done()
	return ctx.Err()
}

// SetFailCount makes the next n calls to Serve fail immediately.
func (m *MockService) SetFailCount(n int) {
	m.maxFails.Store(int32(n))
}

func (m *MockService) StartCount() int32 {
	return m.startCount.Load()
}

func (m *MockService) String() string {
	return m.name
}
