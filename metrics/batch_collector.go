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
	"sync/atomic"
	"time"
)

// BatchCollector batches per-cycle observations from the timekeeper and
// flushes them to the underlying Collector on a ticker. The timekeeper's hot
// loop only ever pays for plain atomic adds.
type BatchCollector interface {
	Controller
	Recorder
}

// Recorder is the write side handed to the event source.
type Recorder interface {
	RecordTick()
	RecordDelivery(coalesced bool, err error)
	RecordPrune()
	RecordRegistrySize(size int64)
	RecordWakeJitter(d time.Duration)
	RecordRunning(running bool)
}

// Controller drives the asynchronous flush cycle.
type Controller interface {
	Start()
	Stop()
	Flush()
}

// Ticks groups tick counter observations between flushes.
type Ticks struct {
	ticks int64
}

func (t *Ticks) Reset() {
	atomic.StoreInt64(&t.ticks, 0)
}

// Delivery groups notification delivery outcomes between flushes.
type Delivery struct {
	delivered int64
	coalesced int64
	errors    int64
}

func (d *Delivery) Reset() {
	atomic.StoreInt64(&d.delivered, 0)
	atomic.StoreInt64(&d.coalesced, 0)
	atomic.StoreInt64(&d.errors, 0)
}

// Registry groups registry observations between flushes.
type Registry struct {
	size        int64
	pruned      int64
	jitterNanos int64 // last observed wake overshoot
	jitterSeen  int64
}

func (r *Registry) Reset() {
	atomic.StoreInt64(&r.pruned, 0)
	atomic.StoreInt64(&r.jitterNanos, 0)
	atomic.StoreInt64(&r.jitterSeen, 0)
}

var _ Recorder = (*BatchCollectImpl)(nil)

type BatchCollectImpl struct {
	tk      *Ticks
	dl      *Delivery
	rg      *Registry
	running int64
	mc      Collector
	mu      sync.Mutex
	sem     chan struct{}
	started bool
}

func NewBatchCollector(mc Collector) *BatchCollectImpl {
	b := &BatchCollectImpl{
		tk: &Ticks{},
		dl: &Delivery{},
		rg: &Registry{},
		mc: mc,
	}

	b.mc.CollectSwitcher(true)

	return b
}

func (b *BatchCollectImpl) RecordTick() {
	atomic.AddInt64(&b.tk.ticks, 1)
}

func (b *BatchCollectImpl) RecordDelivery(coalesced bool, err error) {
	if err != nil {
		atomic.AddInt64(&b.dl.errors, 1)
		return
	}

	if coalesced {
		atomic.AddInt64(&b.dl.coalesced, 1)
		return
	}

	atomic.AddInt64(&b.dl.delivered, 1)
}

func (b *BatchCollectImpl) RecordPrune() {
	atomic.AddInt64(&b.rg.pruned, 1)
}

func (b *BatchCollectImpl) RecordRegistrySize(size int64) {
	atomic.StoreInt64(&b.rg.size, size)
}

func (b *BatchCollectImpl) RecordWakeJitter(d time.Duration) {
	atomic.StoreInt64(&b.rg.jitterNanos, d.Nanoseconds())
	atomic.AddInt64(&b.rg.jitterSeen, 1)
}

func (b *BatchCollectImpl) RecordRunning(running bool) {
	if running {
		atomic.StoreInt64(&b.running, 1)
	} else {
		atomic.StoreInt64(&b.running, 0)
	}
	b.mc.SetRunning(running)
}

// Start launches the flush worker. Safe to call again after Stop, the event
// source restarts the cycle with every timekeeper start.
func (b *BatchCollectImpl) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started {
		return
	}

	b.started = true
	b.sem = make(chan struct{})
	go b.asyncWorker(b.sem)
}

func (b *BatchCollectImpl) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.started {
		return
	}

	b.started = false
	close(b.sem)
}

func (b *BatchCollectImpl) Flush() {
	b.report()
}

func (b *BatchCollectImpl) asyncWorker(sem chan struct{}) {
	const flushInterval = 5 * time.Second
	t := time.NewTicker(flushInterval)
	defer t.Stop()

	for {
		select {
		case <-sem:
			b.report()
			return
		case <-t.C:
			b.report()
		}
	}
}

func (b *BatchCollectImpl) report() {
	b.mc.ObserveTicks(float64(atomic.LoadInt64(&b.tk.ticks)))
	b.tk.Reset()

	b.mc.ObserveDeliveries(float64(atomic.LoadInt64(&b.dl.delivered)),
		float64(atomic.LoadInt64(&b.dl.coalesced)),
		float64(atomic.LoadInt64(&b.dl.errors)))
	b.dl.Reset()

	b.mc.ObserveRegistry(float64(atomic.LoadInt64(&b.rg.size)),
		float64(atomic.LoadInt64(&b.rg.pruned)))
	if atomic.LoadInt64(&b.rg.jitterSeen) > 0 {
		b.mc.ObserveWakeJitter(time.Duration(atomic.LoadInt64(&b.rg.jitterNanos)).Seconds())
	}
	b.rg.Reset()
}
