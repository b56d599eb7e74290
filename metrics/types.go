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

//go:generate mockgen -source=types.go -destination=mocks/collector.mock.go -package=mocks

// Collector is the sink for event source metrics.
type Collector interface {
	CollectSwitcher(enable bool)
	TickMetrics
	DeliveryMetrics
	RegistryMetrics
	TimekeeperMetrics
}

// TickMetrics counts advancement of the shared tick counter.
type TickMetrics interface {
	ObserveTicks(counts float64)
}

// DeliveryMetrics reports notification delivery outcomes. A coalesced
// delivery found the worker's notification slot still occupied.
type DeliveryMetrics interface {
	ObserveDeliveries(delivered, coalesced, errors float64)
}

// RegistryMetrics reports worker registry size and lazy pruning.
type RegistryMetrics interface {
	ObserveRegistry(size, pruned float64)
}

// TimekeeperMetrics reports timekeeper health. Wake jitter is the overshoot
// of an interval sleep; sustained jitter biases the sampling distribution.
type TimekeeperMetrics interface {
	ObserveWakeJitter(seconds float64)
	SetRunning(running bool)
}
