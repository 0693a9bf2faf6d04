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

// Package attestor computes windowed attestations over byte streams.
//
// An Attestor absorbs arbitrary byte batches and emits one GitOID digest per
// completed 2 MiB accumulation window; the trailing partial window, if any,
// is hashed at Finalize. The digest sequence depends only on the total byte
// content, so any batching of Add calls yields the same attestations.
//
//	a := attestor.New()
//	if err := a.Add(data); err != nil { ... }
//	seq := a.Finalize()
//
// Generate drives a whole stream through a fresh Attestor; GenerateParallel
// hashes distinct windows on concurrent workers and reassembles the digests
// in window order, producing a byte-identical sequence. Sequence is the
// ordered digest run and its raw artifact encoding (concatenated 32-byte
// digests, index i attesting bytes [i*WindowSize, (i+1)*WindowSize)).
package attestor
