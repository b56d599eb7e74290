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
	"time"

	"github.com/tickwell/pacer/errorx"
)

// SamplingConfig carries the sampling rate as samples per second. The wake
// interval is derived from it, never configured directly.
type SamplingConfig struct {
	version   int64
	Frequency int32
}

// Interval is the wake interval corresponding to the configured frequency.
func (c SamplingConfig) Interval() time.Duration {
	return time.Duration(int64(time.Second) / int64(c.Frequency))
}

// SamplingCondition holds the validated sampling configuration and notifies
// the timekeeper when it changes, so the rate can be retuned without
// restarting the source.
type SamplingCondition struct {
	config  SamplingConfig
	notify  chan struct{}
	version int64
	mu      sync.RWMutex
}

func NewSamplingCondition(config SamplingConfig) (*SamplingCondition, error) {
	sc := &SamplingCondition{
		notify: make(chan struct{}, 1),
	}

	if err := sc.validate(config); err != nil {
		return nil, err
	}

	sc.version = 1
	config.version = 1
	sc.config = config
	sc.notify <- struct{}{}

	return sc, nil
}

func (s *SamplingCondition) validate(sc SamplingConfig) error {
	if sc.Frequency <= 0 {
		return errorx.ErrInvalidFrequency
	}

	return nil
}

func (s *SamplingCondition) register() <-chan struct{} {
	return s.notify
}

func (s *SamplingCondition) UpdateConfig(sc SamplingConfig) error {
	if err := s.validate(sc); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.version += 1
	s.config = sc
	s.config.version = s.version

	select {
	case s.notify <- struct{}{}:
	default:
	}

	return nil
}

func (s *SamplingCondition) GetConfig() SamplingConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.config
}
