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
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fkautz/terrapin/pkg/attestor"
	"github.com/fkautz/terrapin/pkg/chunker"
	"github.com/fkautz/terrapin/pkg/errors"
	"github.com/fkautz/terrapin/pkg/header"
)

// APIVersion is the API version for validation results.
const APIVersion = "terrapin.dev/v1"

// Validator re-derives window digests for an aligned byte range and compares
// them against stored attestations. Each Validate call drives its own
// transient Attestor; nothing is shared across calls.
type Validator struct {
	chunkSize int
	maxBPS    int
	sink      io.Writer
	version   string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithChunkSize sets the read granularity. It is independent of the
// accumulation window size and does not affect the outcome.
func WithChunkSize(n int) Option {
	return func(v *Validator) {
		v.chunkSize = n
	}
}

// WithRateLimit caps read throughput at bytesPerSecond. Zero or negative
// disables the limit.
func WithRateLimit(bytesPerSecond int) Option {
	return func(v *Validator) {
		v.maxBPS = bytesPerSecond
	}
}

// WithSink returns an Option that tees every chunk read during validation to
// w, in stream order. The sink receives the full aligned span.
func WithSink(w io.Writer) Option {
	return func(v *Validator) {
		v.sink = w
	}
}

// WithVersion returns an Option that sets the version recorded in result
// headers (typically the CLI version).
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.version = version
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{
		chunkSize: attestor.DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// AlignRange rounds [start, end) outward to whole accumulation windows and
// clamps the result to size. Digests can only be recomputed for complete
// windows, so the validated span always covers the request.
func AlignRange(start, end, size int64) Range {
	alignedStart := start / attestor.WindowSize * attestor.WindowSize
	alignedEnd := (end + attestor.WindowSize - 1) / attestor.WindowSize * attestor.WindowSize

	alignedStart = min(alignedStart, size)
	alignedEnd = min(alignedEnd, size)
	return Range{Start: alignedStart, End: alignedEnd}
}

// Validate checks the byte range [start, end) of rs against stored. size is
// the total stream length in bytes. The outcome (Match or Mismatch) is part
// of the result; errors are reserved for invalid requests and I/O failures.
func (v *Validator) Validate(ctx context.Context, rs io.ReadSeeker, size int64, stored attestor.Sequence, start, end int64) (*ValidationResult, error) {
	began := time.Now()

	if start < 0 || end < start {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"byte range must satisfy 0 <= start <= end",
			map[string]any{"start": start, "end": end})
	}

	requested := Range{Start: start, End: end}

	// A zero-length request validates the window containing start, wherever
	// start falls within it.
	if end == start {
		end = start + 1
	}

	aligned := AlignRange(start, end, size)

	// The first index comes from the request, not the clamped span, so a
	// range past the attested span surfaces as OUT_OF_RANGE rather than a
	// vacuous mismatch. The last index follows the clamped end so boundary
	// truncation shrinks the checked span instead of inventing windows.
	firstWindow := int(start / attestor.WindowSize)
	lastWindow := int((aligned.End + attestor.WindowSize - 1) / attestor.WindowSize)

	// An empty stream carries an empty artifact; a request anchored at zero
	// has nothing to compare.
	var expected attestor.Sequence
	if size > 0 || len(stored) > 0 || start > 0 {
		var err error
		expected, err = stored.Slice(firstWindow, lastWindow)
		if err != nil {
			return nil, err
		}
	}

	if _, err := rs.Seek(aligned.Start, io.SeekStart); err != nil {
		validationTotal.WithLabelValues("error").Inc()
		return nil, errors.WrapWithContext(errors.ErrCodeIO, "seeking to aligned start", err,
			map[string]any{"offset": aligned.Start})
	}

	computed, bytesRead, err := v.rehash(ctx, io.LimitReader(rs, aligned.End-aligned.Start))
	if err != nil {
		validationTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	result := NewValidationResult()
	result.Init(header.KindValidationResult, APIVersion, v.version)
	result.Requested = requested
	result.Aligned = aligned
	result.Summary.Windows = len(expected)
	result.Summary.Bytes = bytesRead

	for i := 0; i < max(len(expected), len(computed)); i++ {
		wv := WindowValidation{Index: firstWindow + i}
		if i < len(expected) {
			wv.Expected = expected[i].OCI().String()
		}
		if i < len(computed) {
			wv.Actual = computed[i].OCI().String()
		}
		if wv.Expected != wv.Actual {
			result.Mismatches = append(result.Mismatches, wv)
		}
	}

	result.Summary.Mismatched = len(result.Mismatches)
	if result.Summary.Mismatched == 0 {
		result.Summary.Status = StatusMatch
	} else {
		result.Summary.Status = StatusMismatch
	}
	result.Summary.Duration = time.Since(began)

	validationTotal.WithLabelValues(string(result.Summary.Status)).Inc()
	validationDuration.Observe(result.Summary.Duration.Seconds())

	slog.Debug("validation completed",
		"status", result.Summary.Status,
		"windows", result.Summary.Windows,
		"mismatched", result.Summary.Mismatched,
		"bytes", result.Summary.Bytes,
		"duration", result.Summary.Duration)

	return result, nil
}

// rehash drives a chunk source over r through a fresh attestor, teeing each
// chunk to the sink in order when one is configured.
func (v *Validator) rehash(ctx context.Context, r io.Reader) (attestor.Sequence, int64, error) {
	var chunkOpts []chunker.Option
	if v.maxBPS > 0 {
		chunkOpts = append(chunkOpts, chunker.WithRateLimit(v.maxBPS))
	}
	src, err := chunker.New(r, v.chunkSize, chunkOpts...)
	if err != nil {
		return nil, 0, err
	}

	a := attestor.New()
	var total int64
	for {
		select {
		case <-ctx.Done():
			return nil, total, ctx.Err()
		default:
		}

		chunk, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, total, err
		}

		if err := a.Add(chunk); err != nil {
			return nil, total, err
		}
		if v.sink != nil {
			if _, err := v.sink.Write(chunk); err != nil {
				return nil, total, errors.Wrap(errors.ErrCodeIO, "writing to sink", err)
			}
		}
		total += int64(len(chunk))
	}

	return a.Finalize(), total, nil
}
