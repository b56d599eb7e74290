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

package errorx

import (
	"errors"
)

var (
	ErrTimekeeperRunning = errors.New("timekeeper is already running")
	ErrTimekeeperJoin    = errors.New("timekeeper did not stop within the join timeout")
	ErrSignalMismatch    = errors.New("registered signal is not the sampling signal")
)

var (
	ErrWorkerGone = errors.New("worker no longer exists")
)

var (
	ErrInvalidFrequency = errors.New("sampling frequency must be a positive integer")
)
