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

package atomicx

import (
	"math"
	"sync"
	"testing"
)

func TestUint32(t *testing.T) {
	t.Run("Basic operations", func(t *testing.T) {
		v := NewUint32(10)

		if got := v.Load(); got != 10 {
			t.Errorf("Load() = %v, want 10", got)
		}

		v.Store(20)
		if got := v.Load(); got != 20 {
			t.Errorf("Store() failed, got %v, want 20", got)
		}

		if got := v.Add(5); got != 25 {
			t.Errorf("Add() = %v, want 25", got)
		}

		if got := v.Swap(30); got != 25 {
			t.Errorf("Swap() = %v, want 25", got)
		}

		if !v.CompareAndSwap(30, 35) {
			t.Error("CAS should have succeeded")
		}

		if v.CompareAndSwap(30, 40) {
			t.Error("CAS should have failed")
		}

		if got := v.Inc(); got != 36 {
			t.Errorf("Inc() = %v, want 36", got)
		}
	})

	t.Run("Wraparound", func(t *testing.T) {
		v := NewUint32(math.MaxUint32)

		if got := v.Inc(); got != 0 {
			t.Errorf("Inc() at max = %v, want 0", got)
		}

		if got := v.Dec(); got != math.MaxUint32 {
			t.Errorf("Dec() at zero = %v, want %v", got, uint32(math.MaxUint32))
		}
	})

	t.Run("Single writer many readers", func(t *testing.T) {
		const increments = 10000

		v := NewUint32(0)
		var wg sync.WaitGroup

		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < increments; i++ {
				v.Inc()
			}
		}()

		for r := 0; r < 4; r++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				prev := uint32(0)
				for i := 0; i < increments; i++ {
					cur := v.Load()
					if cur < prev {
						t.Errorf("counter went backwards: %v -> %v", prev, cur)
						return
					}
					prev = cur
				}
			}()
		}

		wg.Wait()

		if got := v.Load(); got != increments {
			t.Errorf("final value = %v, want %v", got, increments)
		}
	})
}

func TestBool(t *testing.T) {
	v := NewBool()

	if got := v.Load(); got != false {
		t.Errorf("Load() = %v, want false", got)
	}

	v.SetTrue()
	if got := v.Load(); got != true {
		t.Errorf("SetTrue() failed, got %v, want true", got)
	}

	v.SetFalse()
	if got := v.Load(); got != false {
		t.Errorf("SetFalse() failed, got %v, want false", got)
	}

	v.Store(true)
	if !v.CompareAndSwap(true, false) {
		t.Error("CAS should have succeeded")
	}

	if v.CompareAndSwap(true, true) {
		t.Error("CAS should have failed")
	}

	if v.Swap(true) {
		t.Error("Swap should have returned the old value false")
	}
}
