package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeMarker struct {
	mu    sync.Mutex
	calls []time.Time
	n     int
	err   error
}

func (f *fakeMarker) MarkDueFollowUps(_ context.Context, now time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, now)
	return f.n, f.err
}

func (f *fakeMarker) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestMarkDue_PassesClock(t *testing.T) {
	fixed := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := &fakeMarker{n: 2}
	w := NewFollowUpDueWorker(repo, time.Minute)
	w.now = func() time.Time { return fixed }

	assert.Equal(t, 2, w.markDue(context.Background()))
	assert.Equal(t, []time.Time{fixed}, repo.calls)
}

func TestMarkDue_ErrorIsSwallowed(t *testing.T) {
	w := NewFollowUpDueWorker(&fakeMarker{err: errors.New("db down")}, time.Minute)
	assert.Equal(t, 0, w.markDue(context.Background()))
}

func TestNewFollowUpDueWorker_DefaultTick(t *testing.T) {
	w := NewFollowUpDueWorker(&fakeMarker{}, 0)
	assert.Equal(t, DefaultTickInterval, w.tickInterval)
}

func TestStart_RunsImmediatelyAndStopsOnCancel(t *testing.T) {
	repo := &fakeMarker{}
	w := NewFollowUpDueWorker(repo, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return repo.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
