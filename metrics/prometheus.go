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
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	mc       *Prometheus
	registry *prometheus.Registry
)

// GetHandler returns the HTTP handler exposing the event source metrics.
func GetHandler() http.Handler {
	return promhttp.HandlerFor(
		registry,
		promhttp.HandlerOpts{EnableOpenMetrics: true},
	)
}

var _ Collector = (*Prometheus)(nil)

type Prometheus struct {
	enabled         bool
	ticksTotal      prometheus.Counter     // intervals counted by the timekeeper
	deliveriesTotal *prometheus.CounterVec // notification sends by result
	deliveryErrors  prometheus.Counter     // failed sends that were not prunes
	prunedTotal     prometheus.Counter     // workers reaped after exiting
	registeredGauge prometheus.Gauge       // current registry size
	timekeeperUp    prometheus.Gauge       // 1 while the timekeeper runs
	wakeJitter      prometheus.Histogram   // sleep overshoot per cycle
}

func NewPrometheus() *Prometheus {
	mc = &Prometheus{}
	registry = prometheus.NewRegistry()
	return mc.register()
}

func (p *Prometheus) register() *Prometheus {
	const namespace = "pacer"
	p.ticksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ticks_total",
		Help:      "Number of sampling intervals counted by the timekeeper.",
	})
	registry.MustRegister(p.ticksTotal)

	p.deliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deliveries_total",
		Help:      "Number of notification deliveries by result.",
	}, []string{"result"})
	registry.MustRegister(p.deliveriesTotal)

	p.deliveryErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "delivery_errors_total",
		Help:      "Number of delivery attempts that failed for a live worker.",
	})
	registry.MustRegister(p.deliveryErrors)

	p.prunedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pruned_workers_total",
		Help:      "Number of exited workers reaped from the registry.",
	})
	registry.MustRegister(p.prunedTotal)

	p.registeredGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "registered_workers",
		Help:      "Number of workers currently registered.",
	})
	registry.MustRegister(p.registeredGauge)

	p.timekeeperUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "timekeeper_up",
		Help:      "Whether the timekeeper task is running.",
	})
	registry.MustRegister(p.timekeeperUp)

	p.wakeJitter = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "wake_jitter_seconds",
		Help:      "Overshoot of the timekeeper's interval sleep.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
	})
	registry.MustRegister(p.wakeJitter)

	return p
}

func (p *Prometheus) CollectSwitcher(enable bool) {
	p.enabled = enable
}

func (p *Prometheus) ObserveTicks(counts float64) {
	if !p.enabled {
		return
	}

	p.ticksTotal.Add(counts)
}

func (p *Prometheus) ObserveDeliveries(delivered, coalesced, errors float64) {
	if !p.enabled {
		return
	}

	p.deliveriesTotal.With(prometheus.Labels{"result": "delivered"}).Add(delivered)
	p.deliveriesTotal.With(prometheus.Labels{"result": "coalesced"}).Add(coalesced)
	p.deliveryErrors.Add(errors)
}

func (p *Prometheus) ObserveRegistry(size, pruned float64) {
	if !p.enabled {
		return
	}

	p.registeredGauge.Set(size)
	p.prunedTotal.Add(pruned)
}

func (p *Prometheus) ObserveWakeJitter(seconds float64) {
	if !p.enabled {
		return
	}

	p.wakeJitter.Observe(seconds)
}

func (p *Prometheus) SetRunning(running bool) {
	if !p.enabled {
		return
	}

	if running {
		p.timekeeperUp.Set(1)
	} else {
		p.timekeeperUp.Set(0)
	}
}
