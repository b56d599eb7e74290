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
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tickwell/pacer/utils/log"
)

func snapshot() Metrics {
	return Metrics{
		Timestamp: 1700000000,
		CPU:       CPUStates{Usage: 42.5, Load1: 1.25},
		Memory:    MemoryStates{UsedPercent: 63.2},
		Runtime:   RuntimeStates{Goroutines: 12, GCPause: 120000},
	}
}

func TestPrometheusObserverUpdate(t *testing.T) {
	obs := NewPrometheusObserver(getLog())
	obs.Update(snapshot())

	assert.Equal(t, 42.5, testutil.ToFloat64(obs.cpuUsage))
	assert.Equal(t, 1.25, testutil.ToFloat64(obs.cpuLoad1))
	assert.Equal(t, 63.2, testutil.ToFloat64(obs.memUsage))
	assert.Equal(t, float64(12), testutil.ToFloat64(obs.goroutines))
	assert.Equal(t, float64(120000), testutil.ToFloat64(obs.gcPause))
	assert.NotNil(t, obs.Registry())
}

func TestConsoleObserverUpdate(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	obs := NewConsoleObserver(log.NewZapAdapter(zap.New(core)))

	obs.Update(snapshot())

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Contains(t, entries[0].Message, "[SkewMonitor]")
	assert.Contains(t, entries[0].Message, "42.5%")
}
