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
	"encoding/json"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tickwell/pacer/utils/log"
)

type ConsoleObserver struct {
	l log.Logger
}

func NewConsoleObserver(l log.Logger) *ConsoleObserver {
	return &ConsoleObserver{l: l}
}

func (c *ConsoleObserver) Update(metrics Metrics) {
	summary := fmt.Sprintf(
		"[SkewMonitor] Timestamp: %d | CPU: %.1f%% | Load1: %.2f | Memory: %.1f%% | Goroutines: %d | GCPause: %dns",
		metrics.Timestamp,
		metrics.CPU.Usage,
		metrics.CPU.Load1,
		metrics.Memory.UsedPercent,
		metrics.Runtime.Goroutines,
		metrics.Runtime.GCPause,
	)
	c.l.Info(summary)

	if data, err := json.Marshal(metrics); err == nil {
		c.l.Debug(string(data))
	}
}

// PrometheusObserver exports the skew snapshot as gauges so sampling skew
// can be correlated with the profile that was captured under it.
type PrometheusObserver struct {
	cpuUsage   prometheus.Gauge
	cpuLoad1   prometheus.Gauge
	memUsage   prometheus.Gauge
	goroutines prometheus.Gauge
	gcPause    prometheus.Gauge
	registry   *prometheus.Registry
	l          log.Logger
}

func NewPrometheusObserver(l log.Logger) *PrometheusObserver {
	reg := prometheus.NewRegistry()
	observer := &PrometheusObserver{
		registry: reg,
		cpuUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Current CPU usage in percent",
		}),
		cpuLoad1: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "system_load1",
			Help: "One minute load average",
		}),
		memUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "system_memory_usage_percent",
			Help: "Current memory usage in percent",
		}),
		goroutines: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "runtime_goroutines",
			Help: "Number of active goroutines",
		}),
		gcPause: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "runtime_gc_pause_ns",
			Help: "Duration of the most recent GC pause",
		}),
		l: l,
	}

	reg.MustRegister(
		observer.cpuUsage,
		observer.cpuLoad1,
		observer.memUsage,
		observer.goroutines,
		observer.gcPause,
	)

	return observer
}

func (p *PrometheusObserver) Update(metric Metrics) {
	p.cpuUsage.Set(metric.CPU.Usage)
	p.cpuLoad1.Set(metric.CPU.Load1)
	p.memUsage.Set(metric.Memory.UsedPercent)
	p.goroutines.Set(float64(metric.Runtime.Goroutines))
	p.gcPause.Set(float64(metric.Runtime.GCPause))
}

func (p *PrometheusObserver) Registry() *prometheus.Registry {
	return p.registry
}
