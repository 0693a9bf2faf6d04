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

package chunker

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/fkautz/terrapin/pkg/errors"
)

// ErrInvalidChunkSize is returned when a Chunker is constructed with a
// non-positive chunk size. No reads occur on failed construction.
var ErrInvalidChunkSize = errors.New(errors.ErrCodeInvalidRequest, "chunk size must be greater than zero")

// Chunker turns a byte stream into a lazy, finite, non-restartable sequence
// of fixed-size chunks. Reading is strictly sequential and stateful:
// consuming the sequence advances the underlying stream permanently.
type Chunker struct {
	reader    io.Reader
	buf       []byte
	limiter   *rate.Limiter
	exhausted bool
}

// Option is a functional option for configuring Chunker instances.
type Option func(*Chunker)

// WithRateLimit returns an Option that caps read throughput at bytesPerSecond.
// Useful when attesting very large files on shared storage. Values <= 0
// leave the chunker unthrottled.
func WithRateLimit(bytesPerSecond int) Option {
	return func(c *Chunker) {
		if bytesPerSecond <= 0 {
			return
		}
		// Burst covers at least one full chunk so a single Next can
		// always proceed.
		c.limiter = rate.NewLimiter(rate.Limit(bytesPerSecond), max(bytesPerSecond, cap(c.buf)))
	}
}

// New creates a Chunker over r producing chunks of chunkSize bytes. Only the
// final chunk of the stream may be shorter, and it is never empty unless the
// stream itself was empty.
func New(r io.Reader, chunkSize int, opts ...Option) (*Chunker, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}

	c := &Chunker{
		reader: r,
		buf:    make([]byte, chunkSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Next returns the next chunk of the stream, reading up to the configured
// chunk size. The returned slice is owned by the Chunker and only valid
// until the following call. io.EOF is returned once the stream is exhausted
// with no bytes read.
func (c *Chunker) Next(ctx context.Context) ([]byte, error) {
	if c.exhausted {
		return nil, io.EOF
	}

	n, err := io.ReadFull(c.reader, c.buf)
	switch err {
	case nil:
	case io.ErrUnexpectedEOF:
		// Short final chunk; the stream ends here.
		c.exhausted = true
	case io.EOF:
		c.exhausted = true
		return nil, io.EOF
	default:
		return nil, errors.Wrap(errors.ErrCodeIO, "reading chunk", err)
	}

	if c.limiter != nil {
		if waitErr := c.limiter.WaitN(ctx, n); waitErr != nil {
			return nil, fmt.Errorf("rate limit wait: %w", waitErr)
		}
	}

	return c.buf[:n], nil
}
