// Copyright (c) 2025, Terrapin Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package attestor

import (
	"fmt"

	"github.com/fkautz/terrapin/pkg/errors"
	"github.com/fkautz/terrapin/pkg/gitoid"
)

// WindowSize is the fixed span of stream bytes hashed as one attestation
// window. It is independent of the chunk size callers use to feed data in.
const WindowSize = 2 * 1024 * 1024

// ErrSealed is returned by Add once the attestor has been finalized.
var ErrSealed = errors.New(errors.ErrCodeSealed, "attestor already finalized")

// Attestor accumulates stream bytes into fixed-size windows and records the
// digest of each completed window. The digest sequence depends only on the
// total byte content fed in, never on how Add calls were batched.
//
// An Attestor is a single-threaded state machine; each instance belongs to
// exactly one logical pass and is not safe for concurrent use.
type Attestor struct {
	attestations Sequence
	buffer       []byte
	finalized    bool
}

// New creates an empty, unsealed Attestor.
func New() *Attestor {
	return &Attestor{
		buffer: make([]byte, 0, WindowSize),
	}
}

// Add absorbs data into the current window, hashing and clearing the window
// each time it exactly fills. Returns ErrSealed after Finalize; the
// attestation state is left untouched in that case.
func (a *Attestor) Add(data []byte) error {
	if a.finalized {
		return ErrSealed
	}

	for len(data) > 0 {
		toCopy := min(len(data), WindowSize-len(a.buffer))
		a.buffer = append(a.buffer, data[:toCopy]...)
		data = data[toCopy:]

		if len(a.buffer) > WindowSize {
			// Unreachable given the copy bound above.
			panic(fmt.Sprintf("attestor: window buffer grew to %d bytes (cap %d)", len(a.buffer), WindowSize))
		}
		if len(a.buffer) == WindowSize {
			a.flush()
		}
	}

	return nil
}

// Finalize hashes any non-empty remainder, seals the attestor, and returns a
// copy of the attestation sequence. Repeated calls are idempotent reads: no
// rehashing, no state change, identical sequence.
func (a *Attestor) Finalize() Sequence {
	if !a.finalized {
		a.flush()
		a.finalized = true
	}
	return a.attestations.Clone()
}

// Finalized reports whether the attestor has been sealed.
func (a *Attestor) Finalized() bool {
	return a.finalized
}

// flush hashes the buffered window, appends the digest, and resets the
// buffer. Empty buffers produce nothing.
func (a *Attestor) flush() {
	if len(a.buffer) == 0 {
		return
	}
	a.attestations = append(a.attestations, gitoid.Sum(a.buffer))
	a.buffer = a.buffer[:0]
	windowsHashed.Inc()
}
