// Copyright 2025 Tickwell
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tickwell/pacer"
	"github.com/tickwell/pacer/errorx"
	"github.com/tickwell/pacer/utils/log"
)

func newTestSource(t *testing.T, frequency int32, opts ...Options) *WallClockSource {
	t.Helper()

	sc, err := NewSamplingCondition(SamplingConfig{Frequency: frequency})
	require.NoError(t, err)

	src, err := NewWallClockSource(sc, opts...)
	require.NoError(t, err)

	return src
}

func TestTimekeeperLifecycle(t *testing.T) {
	src := newTestSource(t, 200)
	assert.False(t, src.Running())
	assert.Equal(t, pacer.Idle, src.State())

	src.RegisteredCallback(1)
	assert.True(t, src.Running())
	assert.Equal(t, pacer.Running, src.State())

	// Only the 0->1 and 1->0 transitions touch the timekeeper.
	src.RegisteredCallback(2)
	src.UnregisteredCallback(1)
	assert.True(t, src.Running())

	src.UnregisteredCallback(0)
	assert.False(t, src.Running())
	assert.Equal(t, pacer.Idle, src.State())
}

func TestStartTimekeeperTwice(t *testing.T) {
	src := newTestSource(t, 200)

	require.NoError(t, src.startTimekeeper())
	assert.ErrorIs(t, src.startTimekeeper(), errorx.ErrTimekeeperRunning)
	require.NoError(t, src.stopTimekeeper())
}

func TestStopTimekeeperIdle(t *testing.T) {
	src := newTestSource(t, 200)
	assert.NoError(t, src.stopTimekeeper())
}

func TestSignal(t *testing.T) {
	src := newTestSource(t, 100)
	assert.Equal(t, pacer.SignalSample, src.Signal())
}

func TestRegisterWorkerConcurrent(t *testing.T) {
	src := newTestSource(t, 100)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			src.RegisterWorker(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, src.WorkerCount())
}

func TestDisableEventsKeepsTicking(t *testing.T) {
	clk := newStepClock()
	src := newTestSource(t, 100, WithClock(clk))
	w := src.RegisterWorker(1)
	defer w.Close()

	src.EnableEvents()
	require.NoError(t, src.startTimekeeper())

	require.Eventually(t, func() bool {
		select {
		case <-w.Events():
			return true
		default:
			return false
		}
	}, time.Second, time.Millisecond, "no event while enabled")

	src.DisableEvents()
	clk.step(t) // let an in-flight cycle drain
	select {
	case <-w.Events():
	default:
	}

	before := src.CurrentTick()
	for i := 0; i < 3; i++ {
		clk.step(t)
	}
	require.Eventually(t, func() bool {
		return src.CurrentTick() >= before+3
	}, time.Second, time.Millisecond, "tick counter stalled while disabled")
	assert.Zero(t, len(w.Events()), "event delivered while disabled")

	// Re-enabling resumes delivery to the same handle.
	src.EnableEvents()
	clk.step(t)
	require.Eventually(t, func() bool {
		select {
		case <-w.Events():
			return true
		default:
			return false
		}
	}, time.Second, time.Millisecond, "no event after re-enable")

	require.NoError(t, src.stopTimekeeper())
}

func TestClosedWorkerPruned(t *testing.T) {
	clk := newStepClock()
	src := newTestSource(t, 100, WithClock(clk))
	w1 := src.RegisterWorker(1)
	defer w1.Close()
	w2 := src.RegisterWorker(1)
	require.Equal(t, 2, src.WorkerCount())

	src.EnableEvents()
	require.NoError(t, src.startTimekeeper())

	w2.Close()
	for i := 0; i < 3; i++ {
		clk.step(t)
	}
	require.Eventually(t, func() bool {
		return src.WorkerCount() == 1
	}, time.Second, time.Millisecond, "closed worker never pruned")

	// The survivor keeps receiving.
	clk.step(t)
	require.Eventually(t, func() bool {
		select {
		case <-w1.Events():
			return true
		default:
			return false
		}
	}, time.Second, time.Millisecond)

	require.NoError(t, src.stopTimekeeper())
}

type faultyNotifier struct {
	err error
}

func (f *faultyNotifier) deliver() error {
	return f.err
}

func TestDeliveryFailureSkipsEntry(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	src := newTestSource(t, 100, WithLogger(log.NewZapAdapter(zap.New(obs))))

	w := src.RegisterWorker(1)
	defer w.Close()
	src.mu.Lock()
	src.workers[^uint64(0)] = &faultyNotifier{err: errors.New("target unreachable")}
	src.mu.Unlock()

	src.broadcast()

	// The live worker was still delivered to.
	select {
	case <-w.Events():
	default:
		t.Fatal("healthy worker missed its notification")
	}

	// The failing entry stays registered and the failure is logged.
	assert.Equal(t, 2, src.WorkerCount())
	assert.Equal(t, 1, logs.FilterMessage("cannot deliver sample event").Len())
}

func TestFrequencyUpdateRetunesInterval(t *testing.T) {
	clk := newStepClock()
	sc, err := NewSamplingCondition(SamplingConfig{Frequency: 100})
	require.NoError(t, err)
	src, err := NewWallClockSource(sc, WithClock(clk))
	require.NoError(t, err)

	require.NoError(t, src.startTimekeeper())
	require.NoError(t, sc.UpdateConfig(SamplingConfig{Frequency: 1000}))

	// One step to run the cycle that observes the change, one more so the
	// first is known to have completed.
	clk.step(t)
	clk.step(t)

	require.NoError(t, src.stopTimekeeper())
	assert.Equal(t, time.Millisecond, src.interval)
}

func TestResetRestart(t *testing.T) {
	src := newTestSource(t, 500)
	w := src.RegisterWorker(1)
	defer w.Close()

	src.EnableEvents()
	src.RegisteredCallback(1)
	require.True(t, src.Running())

	src.Reset()
	require.False(t, src.Running())

	// Reset also disabled events, so the restarted timekeeper ticks
	// without delivering until the handler re-enables them.
	src.RegisteredCallback(1)
	require.True(t, src.Running())

	before := src.CurrentTick()
	require.Eventually(t, func() bool {
		return src.CurrentTick() > before
	}, time.Second, time.Millisecond)

	src.EnableEvents()
	require.Eventually(t, func() bool {
		select {
		case <-w.Events():
			return true
		default:
			return false
		}
	}, time.Second, time.Millisecond, "no delivery after restart")

	// Registration survived the reset, no re-registration was needed.
	assert.Equal(t, 1, src.WorkerCount())

	src.UnregisteredCallback(0)
	require.False(t, src.Running())
}

func TestEndToEndSampling(t *testing.T) {
	src := newTestSource(t, 100)
	w := src.RegisterWorker(1)
	defer w.Close()

	src.EnableEvents()
	src.RegisteredCallback(1)

	var notifications int
	var ticks uint32
	deadline := time.After(120 * time.Millisecond)
loop:
	for {
		select {
		case <-w.Events():
			notifications++
			ticks += w.TicksSinceLastCall()
		case <-deadline:
			break loop
		}
	}

	src.UnregisteredCallback(0)

	// Account for a notification that was pending when the deadline hit.
	select {
	case <-w.Events():
		notifications++
		ticks += w.TicksSinceLastCall()
	default:
	}

	assert.GreaterOrEqual(t, notifications, 3)
	assert.InDelta(t, float64(src.CurrentTick()), float64(ticks), 1,
		"tick sum drifted from intervals elapsed")
}

func TestOptionsValidation(t *testing.T) {
	sc, err := NewSamplingCondition(SamplingConfig{Frequency: 100})
	require.NoError(t, err)

	testCases := []struct {
		name string
		opt  Options
	}{
		{name: "nil logger", opt: WithLogger(nil)},
		{name: "nil clock", opt: WithClock(nil)},
		{name: "non-positive join timeout", opt: WithJoinTimeout(0)},
		{name: "unknown collector", opt: WithMetrics(pacer.CollectorType(99))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWallClockSource(sc, tc.opt)
			assert.Error(t, err)
		})
	}
}

func TestWithMetrics(t *testing.T) {
	sc, err := NewSamplingCondition(SamplingConfig{Frequency: 100})
	require.NoError(t, err)

	src, err := NewWallClockSource(sc, WithMetrics(pacer.PrometheusCollector))
	require.NoError(t, err)
	assert.NotNil(t, src.mc)
}
