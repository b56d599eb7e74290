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

import "sync/atomic"

// Uint32 wraps a uint32 with atomic access. Arithmetic wraps around on
// overflow, which callers doing tick accounting rely on.
type Uint32 struct {
	value uint32
}

func NewUint32(val uint32) *Uint32 {
	return &Uint32{value: val}
}

func (u *Uint32) Load() uint32 {
	return atomic.LoadUint32(&u.value)
}

func (u *Uint32) Store(val uint32) {
	atomic.StoreUint32(&u.value, val)
}

func (u *Uint32) Add(delta uint32) uint32 {
	return atomic.AddUint32(&u.value, delta)
}

func (u *Uint32) Inc() uint32 {
	return atomic.AddUint32(&u.value, 1)
}

func (u *Uint32) Dec() uint32 {
	return atomic.AddUint32(&u.value, ^uint32(0))
}

func (u *Uint32) Swap(newVal uint32) uint32 {
	return atomic.SwapUint32(&u.value, newVal)
}

func (u *Uint32) CompareAndSwap(oldVal, newVal uint32) bool {
	return atomic.CompareAndSwapUint32(&u.value, oldVal, newVal)
}
