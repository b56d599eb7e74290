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
	"sync"
	"testing"
	"time"
)

// stepClock drives the timekeeper one interval at a time. Every call to
// After parks the caller on a channel; step releases exactly one parked
// sleeper, so each step corresponds to one timekeeping cycle.
type stepClock struct {
	mu      sync.Mutex
	now     time.Time
	waiters []chan time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Unix(0, 0)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *stepClock) After(_ time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	c.mu.Lock()
	c.waiters = append(c.waiters, ch)
	c.mu.Unlock()

	return ch
}

// step waits for the timekeeper to reach its sleep and then wakes it.
func (c *stepClock) step(t *testing.T) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		if len(c.waiters) > 0 {
			ch := c.waiters[0]
			c.waiters = c.waiters[1:]
			c.now = c.now.Add(time.Millisecond)
			now := c.now
			c.mu.Unlock()
			ch <- now
			return
		}
		c.mu.Unlock()

		time.Sleep(time.Millisecond)
	}

	t.Fatal("timekeeper never reached its sleep")
}
