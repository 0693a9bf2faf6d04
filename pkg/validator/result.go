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

package validator

import (
	"time"

	"github.com/fkautz/terrapin/pkg/header"
)

// Status represents the outcome of comparing recomputed digests against
// stored attestations.
type Status string

const (
	// StatusMatch indicates every recomputed window digest equals its stored
	// attestation.
	StatusMatch Status = "match"

	// StatusMismatch indicates at least one window digest differs.
	StatusMismatch Status = "mismatch"
)

// ValidationResult represents the complete outcome of one range validation.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Input is the path/URI of the validated stream.
	Input string `json:"input,omitempty" yaml:"input,omitempty"`

	// AttestationSource is the path/URI of the stored attestation artifact.
	AttestationSource string `json:"attestationSource,omitempty" yaml:"attestationSource,omitempty"`

	// Requested is the byte range the caller asked to validate.
	Requested Range `json:"requested" yaml:"requested"`

	// Aligned is the validated span after outward window alignment and
	// clamping to the stream length.
	Aligned Range `json:"aligned" yaml:"aligned"`

	// Summary contains aggregate validation statistics.
	Summary Summary `json:"summary" yaml:"summary"`

	// Mismatches lists the windows whose digests differ, with expected and
	// actual digests in OCI notation. Empty on a match.
	Mismatches []WindowValidation `json:"mismatches,omitempty" yaml:"mismatches,omitempty"`
}

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int64 `json:"start" yaml:"start"`
	End   int64 `json:"end" yaml:"end"`
}

// Summary contains aggregate statistics about the validation.
type Summary struct {
	// Status is the overall validation outcome.
	Status Status `json:"status" yaml:"status"`

	// Windows is the number of accumulation windows validated.
	Windows int `json:"windows" yaml:"windows"`

	// Mismatched is the number of windows whose digests differ.
	Mismatched int `json:"mismatched" yaml:"mismatched"`

	// Bytes is the number of stream bytes read during validation.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// Duration is how long the validation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// WindowValidation describes a single mismatched accumulation window.
type WindowValidation struct {
	// Index is the absolute window index in the original stream.
	Index int `json:"index" yaml:"index"`

	// Expected is the stored attestation digest, empty if the stream holds
	// more windows than the artifact.
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`

	// Actual is the recomputed digest, empty if the stream ended before
	// this window.
	Actual string `json:"actual,omitempty" yaml:"actual,omitempty"`
}

// NewValidationResult creates a ValidationResult with initialized slices.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Mismatches: make([]WindowValidation, 0),
	}
}
