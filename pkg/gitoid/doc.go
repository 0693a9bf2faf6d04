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

// Package gitoid computes SHA-256 GitOIDs, the digest primitive used for
// terrapin attestations.
//
// A GitOID is the hash of a byte sequence framed as a git blob object:
//
//	sha256("blob " + decimal(len(data)) + "\x00" + data)
//
// The same content therefore hashes to the same id git itself would assign
// the blob, which makes attestations comparable with artifact ids from other
// GitOID-based tooling.
package gitoid
