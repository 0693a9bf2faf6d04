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

// Package validator checks byte ranges of a stream against previously
// stored attestations.
//
// A requested range is rounded outward to whole 2 MiB accumulation windows
// (digests can only be recomputed for complete windows), clamped to the
// stream length, re-hashed through a fresh attestor, and compared
// element-wise against the corresponding slice of the stored sequence.
// Match and Mismatch are typed outcomes in the ValidationResult; errors are
// reserved for invalid requests, ranges outside the attested span, and I/O
// failures.
package validator
