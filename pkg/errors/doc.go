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

// Package errors provides structured error types shared across terrapin
// packages.
//
// Errors carry an ErrorCode for programmatic handling, a human-readable
// message, an optional wrapped cause, and optional context values. They
// support errors.Is and errors.As through Unwrap, so sentinel errors built
// from this package (for example attestor.ErrSealed) can be compared with
// the standard library helpers:
//
//	if errors.Is(err, attestor.ErrSealed) {
//	    // the attestor was already finalized
//	}
package errors
