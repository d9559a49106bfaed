// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker counts Run calls and waits for cancellation.
type blockingWorker struct {
	runs atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.runs.Add(1)
	<-ctx.Done()
	return nil
}

type failingWorker struct {
	err error
}

func (f *failingWorker) Run(context.Context) error {
	return f.err
}

func TestWorkers_Run_AllWorkersStopOnCancel(t *testing.T) {
	w1, w2 := &blockingWorker{}, &blockingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- ws.Run(ctx) }()

	cancel()
	require.NoError(t, <-result)
	assert.Equal(t, int32(1), w1.runs.Load())
	assert.Equal(t, int32(1), w2.runs.Load())
}

func TestWorkers_Run_FailureCancelsOthers(t *testing.T) {
	boom := errors.New("boom")
	blocking := &blockingWorker{}
	ws := &Workers{workers: []Worker{blocking, &failingWorker{err: boom}}, logger: logger.Nop()}

	err := ws.Run(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	assert.NoError(t, ws.Run(context.Background()))
}

func TestNewWorkers(t *testing.T) {
	services := &service.Services{SecretsCleaner: &fakeCleaner{}}

	ws := NewWorkers(services, config.ServerHTTP{CleanupSchedule: "@hourly"}, logger.Nop())

	require.Len(t, ws.workers, 1)
	cleanup, ok := ws.workers[0].(*secretsCleanupWorker)
	require.True(t, ok)
	assert.Equal(t, "@hourly", cleanup.schedule)
}
