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

// Package pacer defines the contract between a sampling profiler's handler
// and the strategies that decide when a sample should be taken.
//
// A sampling profiler periodically captures the state of the program and
// expects the samples to statistically approximate its full behaviour. There
// are many ways to decide when to capture: regular CPU-time intervals,
// regular wall-clock intervals, hardware performance events, or user-defined
// events. EventSource separates the sampling event (the "when") from the
// sampling action (the "what"): the handler records the sample, an
// EventSource instance says when to record it.
//
// The wall-clock strategy lives in the core package. For an I/O bound
// program, knowing where wall-clock time goes matters more than where CPU
// time goes, so that strategy notifies every registered worker at fixed
// wall-clock intervals regardless of how much CPU the worker consumed.
package pacer

// EventSource is the capability set every sampling strategy exposes to the
// handler. Implementations should only be driven by the handler; calling
// methods out of order can cause unexpected behaviour.
type EventSource interface {
	// RegisterWorker registers the calling goroutine with the event source
	// and returns its notification handle. Any per-worker setup happens
	// here. Registering the same logical worker twice is tolerated; each
	// call yields an independent handle.
	RegisterWorker(callbackCount int) Worker

	// RegisteredCallback is called after a sampling callback is added,
	// with the new total callback count. A high-impact strategy starts its
	// machinery on the transition to one callback.
	RegisteredCallback(newCallbackCount int)

	// UnregisteredCallback is called after a sampling callback is removed.
	// A high-impact strategy stops its machinery on the transition to zero.
	UnregisteredCallback(newCallbackCount int)

	// Reset restores the strategy to its just-constructed state, releasing
	// anything started by RegisteredCallback.
	Reset()

	// Signal names the logical notification channel the handler should arm
	// its dispatch on, or NoSignal if the strategy raises no events.
	Signal() Signal

	// EnableEvents and DisableEvents are best-effort suppression of event
	// delivery while the handler's internal state is changing. They must be
	// cheap and non-blocking: suppress events, don't tear the source down.
	// Tearing down belongs in UnregisteredCallback.
	EnableEvents()
	DisableEvents()
}

// Worker is the per-goroutine registration handle returned by
// RegisterWorker. The receiving side of Events carries the signal-handler
// constraints of the platform: the dispatch code must not block and must not
// assume more than one pending notification.
type Worker interface {
	// Events is the notification channel. Delivery is asynchronous,
	// non-queued and at-most-one-pending; missed intervals are recovered
	// through TicksSinceLastCall.
	Events() <-chan struct{}

	// TicksSinceLastCall reports how many sampling intervals elapsed since
	// this worker's previous call, so a single coalesced notification can
	// still carry the weight of every interval it covers. The first call
	// on a worker returns exactly 1. Must be called from the worker's own
	// goroutine.
	TicksSinceLastCall() uint32

	// Close marks the worker as gone. A worker that exits without closing
	// its handle is reaped lazily by the next delivery cycle; closing is
	// still the polite way out.
	Close()
}
