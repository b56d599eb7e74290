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

package pacer

// Signal identifies the logical notification channel a strategy raises its
// events on. The numeric value of SignalSample mirrors SIGPROF so handlers
// bridging to OS-level delivery agree on the channel.
type Signal int

const (
	NoSignal     Signal = 0
	SignalSample Signal = 27
)

func (s Signal) String() string {
	switch s {
	case NoSignal:
		return "none"
	case SignalSample:
		return "sample"
	default:
		return "unknown"
	}
}

func (s Signal) Validate() bool {
	switch s {
	case NoSignal, SignalSample:
		return true
	default:
		return false
	}
}

type CollectorType int

const (
	PrometheusCollector CollectorType = iota
	OpenTelemetryCollector
)

func (c CollectorType) String() string {
	switch c {
	case PrometheusCollector:
		return "Prometheus"
	case OpenTelemetryCollector:
		return "OpenTelemetry"
	default:
		return "unknown"
	}
}

func (c CollectorType) Validate() bool {
	switch c {
	case PrometheusCollector, OpenTelemetryCollector:
		return true
	default:
		return false
	}
}

// SourceState is the lifecycle state of an event source's background task.
type SourceState int

const (
	Idle SourceState = iota
	Running
)

func (s SourceState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}
