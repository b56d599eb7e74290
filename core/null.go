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

import "github.com/tickwell/pacer"

var _ pacer.EventSource = (*NullSource)(nil)

// NullSource is the cheap end of the strategy family: it raises no events
// and owns no resources. Handlers use it when sampling is configured off but
// the surrounding wiring still expects an event source.
type NullSource struct{}

func NewNullSource() *NullSource {
	return &NullSource{}
}

func (n *NullSource) RegisterWorker(_ int) pacer.Worker {
	return &nullWorker{}
}

func (n *NullSource) RegisteredCallback(_ int) {}

func (n *NullSource) UnregisteredCallback(_ int) {}

func (n *NullSource) Reset() {}

func (n *NullSource) Signal() pacer.Signal {
	return pacer.NoSignal
}

func (n *NullSource) EnableEvents() {}

func (n *NullSource) DisableEvents() {}

type nullWorker struct{}

// Events returns a nil channel; receives block forever, which is exactly
// "no events" to a select-based dispatcher.
func (w *nullWorker) Events() <-chan struct{} {
	return nil
}

func (w *nullWorker) TicksSinceLastCall() uint32 {
	return 1
}

func (w *nullWorker) Close() {}
