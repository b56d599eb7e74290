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
	"time"

	"github.com/tickwell/pacer/utils/log"
)

const (
	defaultTimeoutFactor = 1.5
	maxTimeoutFactor     = 4.0
	timeoutFactorStep    = 0.5
)

var _ TimeoutController = (*adaptiveTimeout)(nil)

// adaptiveTimeout scales the collection deadline off the collect interval
// and backs off after consecutive timeouts so a briefly overloaded host does
// not flood the log.
type adaptiveTimeout struct {
	base   float64
	factor float64
	l      log.Logger
	mu     sync.Mutex
}

func newAdaptiveTimeout(factor float64, l log.Logger) TimeoutController {
	if factor <= 0 {
		factor = defaultTimeoutFactor
	}

	return &adaptiveTimeout{
		base:   factor,
		factor: factor,
		l:      l,
	}
}

func (a *adaptiveTimeout) Timeout(collectInterval time.Duration) time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()

	return time.Duration(float64(collectInterval) * a.factor)
}

func (a *adaptiveTimeout) HandleTimeout(component string, collected int, latency time.Duration) {
	a.mu.Lock()
	if a.factor < maxTimeoutFactor {
		a.factor += timeoutFactorStep
	}
	factor := a.factor
	a.mu.Unlock()

	a.l.Warn("metrics collection timed out",
		log.StringField("component", component),
		log.IntField("collected", collected),
		log.DurationField("latency", latency),
		log.Field{Key: "factor", Val: factor})
}

func (a *adaptiveTimeout) Recover() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.factor = a.base
}
