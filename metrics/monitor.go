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

package metrics

import (
	"sync"
	"time"

	"github.com/panjf2000/ants"
	"github.com/tickwell/pacer/utils/atomicx"
	"github.com/tickwell/pacer/utils/log"
	"golang.org/x/net/context"
)

const (
	collectInterval = 5 * time.Second
	reportInterval  = 5 * time.Second
)

type Options func(*Monitor)

func WithTimeoutController(ctrl TimeoutController) Options {
	return func(m *Monitor) {
		m.timeoutCtrl = ctrl
	}
}

func WithCollectInterval(interval time.Duration) Options {
	return func(m *Monitor) {
		m.collectInterval = interval
	}
}

const (
	workerPoolSize = 4
	workers        = 3
	mod            = 5
)

// Monitor periodically samples the environment the profiler runs in and fans
// the snapshot out to observers. Wall-clock sampling assumes the timekeeper
// wakes on schedule; host CPU saturation, memory pressure and GC pauses all
// break that assumption, so they are worth watching while profiling.
type Monitor struct {
	collectInterval   time.Duration
	reportInterval    time.Duration
	observers         []Observer
	cpuCollector      *CPUCollector
	memCollector      *MemoryCollector
	runtimesCollector *RuntimesCollector
	ctx               context.Context
	cancelFunc        context.CancelFunc
	metrics           Metrics
	meta              Meta
	wg                sync.WaitGroup
	mu                sync.RWMutex
	pool              *ants.Pool
	timeoutCtrl       TimeoutController
	state             *atomicx.Bool
	l                 log.Logger
}

func NewMonitor(l log.Logger, opts ...Options) (*Monitor, error) {
	m := &Monitor{
		collectInterval:   collectInterval,
		reportInterval:    reportInterval,
		observers:         []Observer{},
		cpuCollector:      newCPUCollector(),
		memCollector:      newMemoryCollector(),
		runtimesCollector: newRuntimesCollector(),
		timeoutCtrl:       newAdaptiveTimeout(defaultTimeoutFactor, l),
		state:             atomicx.NewBool(),
		l:                 l,
	}

	const taskExpireDuration = 60 * time.Second
	pool, err := ants.NewPool(workerPoolSize,
		ants.WithExpiryDuration(taskExpireDuration),
		ants.WithPreAlloc(true),
		ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}
	m.pool = pool

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

func (m *Monitor) Register(observer Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.observers = append(m.observers, observer)
}

func (m *Monitor) Unregister(observer Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, ob := range m.observers {
		if ob == observer {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

func (m *Monitor) NotifyAll() {
	m.mu.Lock()
	copyObservers := make([]Observer, len(m.observers))
	copy(copyObservers, m.observers)
	m.mu.Unlock()

	for _, observer := range copyObservers {
		observer.Update(m.metrics)
	}
}

func (m *Monitor) Start(ctx context.Context) {
	if !m.state.CompareAndSwap(false, true) {
		return
	}

	m.ctx, m.cancelFunc = context.WithCancel(ctx)
	m.wg.Add(1)
	go m.runCollector()
}

func (m *Monitor) runCollector() {
	defer m.wg.Done()
	ticker := time.NewTicker(m.collectInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := m.collectAllMetrics()
			if err != nil {
				continue
			}

			m.NotifyAll()
		case <-m.ctx.Done():
			return
		}
	}
}

func (m *Monitor) collectAllMetrics() error {
	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(workers)
	_ = m.pool.Submit(func() { defer wg.Done(); m.metrics.CPU = m.cpuCollector.Collect() })
	_ = m.pool.Submit(func() { defer wg.Done(); m.metrics.Memory = m.memCollector.Collect() })
	_ = m.pool.Submit(func() { defer wg.Done(); m.metrics.Runtime = m.runtimesCollector.Collect() })

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		m.mu.Lock()
		defer m.mu.Unlock()
		timeTaken := time.Since(start).Milliseconds()
		m.metrics.Timestamp = time.Now().Unix()
		m.meta.TimeTakenQueue = append(m.meta.TimeTakenQueue, timeTaken)
		m.meta.SuccessCount++
		if m.meta.SuccessCount%mod == 0 {
			var totalDuration int64
			l := len(m.meta.TimeTakenQueue)
			for _, duration := range m.meta.TimeTakenQueue {
				totalDuration += duration
			}
			m.meta.AverageTimeTaken = totalDuration / int64(l)
		}
		m.meta.LastCollectTime = time.Now()
		m.timeoutCtrl.Recover()

		return nil
	case <-time.After(m.timeoutCtrl.Timeout(m.collectInterval)):
		m.mu.Lock()
		defer m.mu.Unlock()
		m.meta.ErrCount++
		m.meta.LastCollectTime = time.Now()
		m.timeoutCtrl.HandleTimeout("collector", workers, time.Since(start))
		return context.DeadlineExceeded
	}
}

func (m *Monitor) Stop() {
	if !m.state.CompareAndSwap(true, false) {
		return
	}
	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	m.pool.Release()
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-time.After(m.timeoutCtrl.Timeout(m.reportInterval)):
		m.l.Warn("monitor collector did not stop in time")
		return
	}
}
