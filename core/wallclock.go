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
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tickwell/pacer"
	"github.com/tickwell/pacer/errorx"
	"github.com/tickwell/pacer/metrics"
	"github.com/tickwell/pacer/utils/atomicx"
	"github.com/tickwell/pacer/utils/log"
	"go.uber.org/zap"
)

const defaultJoinTimeout = 5 * time.Second

var _ pacer.EventSource = (*WallClockSource)(nil)

// WallClockSource notifies every registered worker at fixed wall-clock
// intervals from a dedicated background timekeeper.
//
// The hot path is split in two: tick advancement is a single atomic
// increment with exactly one writer (the timekeeper), so readers never
// block; notification delivery walks the worker registry under a mutex,
// which only the timekeeper traverses while any number of workers add
// themselves concurrently. Workers that exited without deregistering are
// found during delivery and reaped there, the registry needs no separate
// liveness tracking.
//
// Events are suppressed until EnableEvents is called, so a handler can
// finish its own setup before the first notification lands.
type WallClockSource struct {
	sc       *SamplingCondition
	scNotify <-chan struct{}
	// Wake interval derived from the sampling frequency. Written at start
	// and by the timekeeper when the config changes; never shared.
	interval time.Duration
	// Shared tick counter. Single writer, wraparound tolerated by readers.
	tick    *atomicx.Uint32
	enabled *atomicx.Bool
	running *atomicx.Bool
	stop    chan struct{}
	wg      sync.WaitGroup
	// Guards the worker registry.
	mu      sync.Mutex
	workers map[uint64]notifier
	nextID  atomic.Uint64
	l       log.Logger
	clock   Clock
	mc      metrics.BatchCollector
	// How long a stop waits for the timekeeper before declaring it wedged.
	joinTimeout time.Duration
}

func NewWallClockSource(sc *SamplingCondition, opts ...Options) (*WallClockSource, error) {
	s := &WallClockSource{
		sc:          sc,
		scNotify:    sc.register(),
		tick:        atomicx.NewUint32(0),
		enabled:     atomicx.NewBool(),
		running:     atomicx.NewBool(),
		workers:     make(map[uint64]notifier),
		l:           log.NewZapAdapter(zap.NewNop()),
		clock:       NewRealClock(),
		mc:          metrics.NewBatchCollector(metrics.NewPrometheus()),
		joinTimeout: defaultJoinTimeout,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// RegisterWorker adds the calling goroutine to the notification registry.
// Safe to call concurrently from many workers; duplicate registration just
// yields an independent handle.
func (s *WallClockSource) RegisterWorker(_ int) pacer.Worker {
	w := newWorker(s.nextID.Add(1), s)

	s.mu.Lock()
	s.workers[w.id] = w
	size := len(s.workers)
	s.mu.Unlock()

	s.mc.RecordRegistrySize(int64(size))
	s.l.Debug("registered worker", log.Uint64Field("worker", w.id))

	return w
}

func (s *WallClockSource) Signal() pacer.Signal {
	return pacer.SignalSample
}

func (s *WallClockSource) EnableEvents() {
	s.enabled.SetTrue()
}

func (s *WallClockSource) DisableEvents() {
	s.enabled.SetFalse()
}

// RegisteredCallback starts the timekeeper on the transition to the first
// callback. A start that fails is fatal: a profiler that cannot install its
// clock must not run silently under-sampled.
func (s *WallClockSource) RegisteredCallback(newCallbackCount int) {
	if newCallbackCount != 1 {
		return
	}

	if err := s.startTimekeeper(); err != nil {
		s.l.Fatal("cannot start timekeeper", log.ErrorField(err))
	}
}

func (s *WallClockSource) UnregisteredCallback(newCallbackCount int) {
	if newCallbackCount != 0 {
		return
	}

	if err := s.stopTimekeeper(); err != nil {
		s.l.Fatal("cannot stop timekeeper", log.ErrorField(err))
	}
}

// Reset returns the source to its just-constructed state: timekeeper
// stopped and joined, events disabled. Registered workers survive a reset;
// they are re-notified as soon as a fresh timekeeper starts delivering.
func (s *WallClockSource) Reset() {
	if err := s.stopTimekeeper(); err != nil {
		s.l.Fatal("cannot stop timekeeper", log.ErrorField(err))
	}

	s.enabled.SetFalse()
}

func (s *WallClockSource) State() pacer.SourceState {
	if s.running.Load() {
		return pacer.Running
	}
	return pacer.Idle
}

func (s *WallClockSource) Running() bool {
	return s.running.Load()
}

// WorkerCount reports the registry size, including workers that exited but
// have not been reaped yet.
func (s *WallClockSource) WorkerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.workers)
}

// CurrentTick exposes the shared counter for handlers that timestamp
// samples with the interval ordinal.
func (s *WallClockSource) CurrentTick() uint32 {
	return s.tick.Load()
}

func (s *WallClockSource) startTimekeeper() error {
	if !s.running.CompareAndSwap(false, true) {
		return errorx.ErrTimekeeperRunning
	}

	if s.Signal() != pacer.SignalSample {
		s.running.SetFalse()
		return errorx.ErrSignalMismatch
	}

	cfg := s.sc.GetConfig()
	s.interval = cfg.Interval()
	s.stop = make(chan struct{})

	s.mc.Start()
	s.mc.RecordRunning(true)

	s.wg.Add(1)
	go s.run()

	s.l.Info("timekeeper started",
		log.IntField("frequency", int(cfg.Frequency)),
		log.DurationField("interval", s.interval))

	return nil
}

// run is the timekeeping loop. Stopping is cooperative: the stop channel is
// checked at the top of every cycle and while sleeping, so a stop request
// takes effect within one wake interval.
func (s *WallClockSource) run() {
	defer s.wg.Done()

	// A dedicated OS thread is the closest Go gets to elevating the
	// timekeeper's scheduling priority; late wake-ups bias every sample.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		select {
		case <-s.stop:
			return
		default:
		}

		select {
		case <-s.scNotify:
			s.interval = s.sc.GetConfig().Interval()
		default:
		}

		s.tick.Inc()
		s.mc.RecordTick()

		if s.enabled.Load() {
			s.broadcast()
		}

		slept := s.clock.Now()
		select {
		case <-s.stop:
			return
		case <-s.clock.After(s.interval):
			if over := s.clock.Now().Sub(slept) - s.interval; over > 0 {
				s.mc.RecordWakeJitter(over)
			}
		}
	}
}

// broadcast delivers the pending tick to every registered worker. A worker
// that no longer exists is pruned on the spot; any other delivery failure
// is logged and skipped so one bad target never stops sampling of the rest.
func (s *WallClockSource) broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, w := range s.workers {
		err := w.deliver()
		if err == nil {
			continue
		}

		if errors.Is(err, errorx.ErrWorkerGone) {
			delete(s.workers, id)
			s.mc.RecordPrune()
			continue
		}

		s.mc.RecordDelivery(false, err)
		s.l.Warn("cannot deliver sample event",
			log.Uint64Field("worker", id), log.ErrorField(err))
	}

	s.mc.RecordRegistrySize(int64(len(s.workers)))
}

// stopTimekeeper requests a cooperative stop and joins the timekeeper. A
// join that outlasts the timeout means the loop is wedged on something it
// should never block on, which is unrecoverable.
func (s *WallClockSource) stopTimekeeper() error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}

	close(s.stop)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(s.joinTimeout):
		return errorx.ErrTimekeeperJoin
	}

	s.mc.RecordRunning(false)
	s.mc.Stop()

	s.l.Info("timekeeper stopped")
	return nil
}
