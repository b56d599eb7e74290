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
	"time"

	"github.com/tickwell/pacer"
	"github.com/tickwell/pacer/metrics"
	"github.com/tickwell/pacer/utils/log"
)

type Options func(*WallClockSource) error

// WithMetrics enables metric collection and selects the collector type.
func WithMetrics(collector pacer.CollectorType) Options {
	return func(s *WallClockSource) error {
		if !collector.Validate() {
			return errors.New("invalid metrics collector")
		}

		switch collector {
		case pacer.PrometheusCollector:
			s.mc = metrics.NewBatchCollector(metrics.NewPrometheus())
		case pacer.OpenTelemetryCollector:
		}

		return nil
	}
}

func WithLogger(l log.Logger) Options {
	return func(s *WallClockSource) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}

		s.l = l
		return nil
	}
}

// WithClock swaps the timekeeper's clock, mainly for deterministic tests.
func WithClock(c Clock) Options {
	return func(s *WallClockSource) error {
		if c == nil {
			return errors.New("clock must not be nil")
		}

		s.clock = c
		return nil
	}
}

func WithJoinTimeout(d time.Duration) Options {
	return func(s *WallClockSource) error {
		if d <= 0 {
			return errors.New("join timeout must be positive")
		}

		s.joinTimeout = d
		return nil
	}
}
