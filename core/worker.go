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
	"github.com/tickwell/pacer"
	"github.com/tickwell/pacer/errorx"
	"github.com/tickwell/pacer/utils/atomicx"
)

// notifier is the registry's view of a delivery target. The timekeeper only
// ever talks to this interface during a delivery cycle.
type notifier interface {
	deliver() error
}

var _ pacer.Worker = (*Worker)(nil)

// Worker is one registered goroutine's notification handle. The events
// channel has capacity one: delivery is at-most-one-pending, and a send that
// finds the slot occupied coalesces into the pending notification. lastTick
// belongs to the worker goroutine alone, which is what makes
// TicksSinceLastCall lock-free.
type Worker struct {
	id       uint64
	events   chan struct{}
	done     chan struct{}
	closed   *atomicx.Bool
	lastTick uint32
	src      *WallClockSource
}

func newWorker(id uint64, src *WallClockSource) *Worker {
	return &Worker{
		id:     id,
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
		closed: atomicx.NewBool(),
		src:    src,
	}
}

func (w *Worker) Events() <-chan struct{} {
	return w.events
}

// TicksSinceLastCall reports the intervals elapsed since this worker's
// previous call. The zero last-tick means the worker was never sampled
// before; that first observation counts as exactly one tick because there is
// no baseline to subtract from. Otherwise the result is the absolute
// difference of the two readings, which stays well defined when the shared
// counter wraps around.
func (w *Worker) TicksSinceLastCall() uint32 {
	current := w.src.tick.Load()
	previous := w.lastTick

	var ticks uint32
	switch {
	case previous == 0:
		ticks = 1
	case current >= previous:
		ticks = current - previous
	default:
		ticks = previous - current
	}

	w.lastTick = current
	return ticks
}

// Close marks the worker as gone. The registry is not touched here; the
// next delivery cycle discovers the closed handle and prunes it, the same
// way an exited thread is discovered by a failed signal send.
func (w *Worker) Close() {
	if !w.closed.CompareAndSwap(false, true) {
		return
	}

	close(w.done)
}

func (w *Worker) deliver() error {
	select {
	case <-w.done:
		return errorx.ErrWorkerGone
	default:
	}

	select {
	case w.events <- struct{}{}:
		w.src.mc.RecordDelivery(false, nil)
	default:
		// A notification is already pending; the worker will account for
		// the extra interval through TicksSinceLastCall.
		w.src.mc.RecordDelivery(true, nil)
	}

	return nil
}
