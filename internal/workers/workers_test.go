// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/mock"
	"github.com/MKhiriev/go-case-vault/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount atomic.Int32
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &mockWorker{}, &mockWorker{}, &mockWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.runCount.Load() == 1 && w2.runCount.Load() == 1 && w3.runCount.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not block or panic on empty workers list
	NewWorkers().Run(context.Background())
	(&Workers{}).Run(context.Background())
}

// ---- health probe ----

type recordedStatus struct {
	status models.HealthStatus
	err    error
}

type statusRecorder struct {
	mu   sync.Mutex
	seen []recordedStatus
}

func (r *statusRecorder) report(status models.HealthStatus, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, recordedStatus{status, err})
}

func (r *statusRecorder) snapshot() []recordedStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recordedStatus(nil), r.seen...)
}

func TestHealthProbe_ReportsImmediatelyAndOnTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockBlobStoreAdapter(ctrl)

	ok := models.HealthStatus{Status: "ok", Service: "case-vault-proxy"}
	checker.EXPECT().Health(gomock.Any()).Return(ok, nil).Times(1)
	checker.EXPECT().Health(gomock.Any()).Return(models.HealthStatus{}, errors.New("connection refused")).MinTimes(1)

	rec := &statusRecorder{}
	probe := NewHealthProbe(checker, rec.report, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		probe.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return len(rec.snapshot()) >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	seen := rec.snapshot()
	assert.Equal(t, ok, seen[0].status)
	assert.NoError(t, seen[0].err)
	assert.Error(t, seen[1].err)
}

func TestHealthProbe_DefaultInterval(t *testing.T) {
	probe := NewHealthProbe(nil, func(models.HealthStatus, error) {}, 0, logger.Nop())
	assert.Equal(t, DefaultProbeInterval, probe.interval)
}

func TestHealthProbe_NoReportAfterCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockBlobStoreAdapter(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	checker.EXPECT().Health(gomock.Any()).DoAndReturn(func(context.Context) (models.HealthStatus, error) {
		cancel()
		return models.HealthStatus{}, context.Canceled
	})

	rec := &statusRecorder{}
	NewHealthProbe(checker, rec.report, time.Hour, logger.Nop()).Run(ctx)

	assert.Empty(t, rec.snapshot())
}
