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
	"time"

	"github.com/fkautz/terrapin/pkg/header"
)

// APIVersion is the API version for attestation reports.
const APIVersion = "terrapin.dev/v1"

// Report summarizes one attestation run for structured output.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Input is the path of the attested stream.
	Input string `json:"input,omitempty" yaml:"input,omitempty"`

	// Artifact is the path the attestation artifact was written to, empty
	// when the artifact went to stdout.
	Artifact string `json:"artifact,omitempty" yaml:"artifact,omitempty"`

	// Top is the single root digest in OCI notation, set only for layered
	// attestations.
	Top string `json:"top,omitempty" yaml:"top,omitempty"`

	// Summary contains aggregate attestation statistics.
	Summary ReportSummary `json:"summary" yaml:"summary"`
}

// ReportSummary contains aggregate statistics about an attestation run.
type ReportSummary struct {
	// Mode is the generation mode, sequential or parallel.
	Mode string `json:"mode" yaml:"mode"`

	// Windows is the number of accumulation windows in the bottom layer.
	Windows int `json:"windows" yaml:"windows"`

	// Layers is the number of attestation layers, 1 unless layered.
	Layers int `json:"layers" yaml:"layers"`

	// Bytes is the input stream length in bytes.
	Bytes int64 `json:"bytes" yaml:"bytes"`

	// Duration is how long the attestation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// NewReport creates an initialized attestation report.
func NewReport(version string) *Report {
	r := &Report{}
	r.Init(header.KindAttestReport, APIVersion, version)
	return r
}
