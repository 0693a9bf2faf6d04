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
	"bytes"
	"context"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/fkautz/terrapin/pkg/chunker"
	"github.com/fkautz/terrapin/pkg/errors"
	"github.com/fkautz/terrapin/pkg/gitoid"
)

// DefaultChunkSize is the read granularity used when no chunk size is
// configured. It has no effect on the resulting digests.
const DefaultChunkSize = 64 * 1024

type generateConfig struct {
	chunkSize int
	workers   int
	rateBPS   int
}

// GenerateOption is a functional option for the Generate family.
type GenerateOption func(*generateConfig)

// WithChunkSize sets the read granularity for sequential generation.
func WithChunkSize(n int) GenerateOption {
	return func(c *generateConfig) {
		c.chunkSize = n
	}
}

// WithWorkers sets the number of concurrent hash workers for
// GenerateParallel. Defaults to GOMAXPROCS.
func WithWorkers(n int) GenerateOption {
	return func(c *generateConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithRateLimit caps read throughput at bytesPerSecond.
func WithRateLimit(bytesPerSecond int) GenerateOption {
	return func(c *generateConfig) {
		c.rateBPS = bytesPerSecond
	}
}

func newGenerateConfig(opts []GenerateOption) generateConfig {
	cfg := generateConfig{
		chunkSize: DefaultChunkSize,
		workers:   runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Generate produces the full attestation sequence for a stream: every chunk
// is fed into a fresh Attestor in stream order, then the attestor is
// finalized.
func Generate(ctx context.Context, r io.Reader, opts ...GenerateOption) (Sequence, error) {
	cfg := newGenerateConfig(opts)
	start := time.Now()

	var chunkOpts []chunker.Option
	if cfg.rateBPS > 0 {
		chunkOpts = append(chunkOpts, chunker.WithRateLimit(cfg.rateBPS))
	}

	src, err := chunker.New(r, cfg.chunkSize, chunkOpts...)
	if err != nil {
		return nil, err
	}

	a := New()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		chunk, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			generateTotal.WithLabelValues("sequential", "error").Inc()
			return nil, err
		}
		if err := a.Add(chunk); err != nil {
			generateTotal.WithLabelValues("sequential", "error").Inc()
			return nil, err
		}
	}

	seq := a.Finalize()
	generateTotal.WithLabelValues("sequential", "success").Inc()
	generateDuration.WithLabelValues("sequential").Observe(time.Since(start).Seconds())

	slog.Debug("attestation generation completed",
		"mode", "sequential",
		"windows", len(seq),
		"duration", time.Since(start))

	return seq, nil
}

// GenerateParallel produces the same sequence as Generate by hashing
// distinct accumulation windows on concurrent workers. Windows are read
// sequentially and tagged with their index before dispatch, and the results
// are assembled in strictly increasing index order, so the output is
// byte-identical to the sequential path. Any worker or read failure aborts
// the whole generation.
func GenerateParallel(ctx context.Context, r io.Reader, opts ...GenerateOption) (Sequence, error) {
	cfg := newGenerateConfig(opts)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	// Bounds both concurrency and in-flight window buffers (one per slot).
	g.SetLimit(cfg.workers)

	// Throttling applies to the single reader, not the hash workers. Burst
	// covers at least one full window so a window read can always proceed.
	var limiter *rate.Limiter
	if cfg.rateBPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.rateBPS), max(cfg.rateBPS, WindowSize))
	}

	var (
		mu      sync.Mutex
		digests []gitoid.Digest
	)

	index := 0
	readErr := func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			window := make([]byte, WindowSize)
			n, err := io.ReadFull(r, window)
			if err == io.EOF {
				return nil
			}
			if err != nil && err != io.ErrUnexpectedEOF {
				return errors.Wrap(errors.ErrCodeIO, "reading window", err)
			}

			if limiter != nil {
				if waitErr := limiter.WaitN(ctx, n); waitErr != nil {
					return waitErr
				}
			}

			i, buf := index, window[:n]
			index++

			g.Go(func() error {
				d := gitoid.Sum(buf)
				mu.Lock()
				if i >= len(digests) {
					digests = append(digests, make([]gitoid.Digest, i+1-len(digests))...)
				}
				digests[i] = d
				mu.Unlock()
				windowsHashed.Inc()
				return nil
			})

			// A short window is the final one.
			if err == io.ErrUnexpectedEOF {
				return nil
			}
		}
	}()

	if waitErr := g.Wait(); waitErr != nil {
		generateTotal.WithLabelValues("parallel", "error").Inc()
		return nil, waitErr
	}
	if readErr != nil {
		generateTotal.WithLabelValues("parallel", "error").Inc()
		return nil, readErr
	}

	generateTotal.WithLabelValues("parallel", "success").Inc()
	generateDuration.WithLabelValues("parallel").Observe(time.Since(start).Seconds())

	slog.Debug("attestation generation completed",
		"mode", "parallel",
		"workers", cfg.workers,
		"windows", len(digests),
		"duration", time.Since(start))

	return Sequence(digests), nil
}

// GenerateLayers attests the stream, then re-attests each resulting artifact
// until a layer is a single digest, returning layers with the top (single
// digest) first. Layer n+1 attests the artifact bytes of layer n.
func GenerateLayers(ctx context.Context, r io.Reader, opts ...GenerateOption) ([]Sequence, error) {
	layers := make([]Sequence, 0, 2)

	seq, err := Generate(ctx, r, opts...)
	if err != nil {
		return nil, err
	}
	layers = append(layers, seq)

	for len(seq) > 1 {
		seq, err = Generate(ctx, bytes.NewReader(seq.Bytes()), opts...)
		if err != nil {
			return nil, err
		}
		layers = append(layers, seq)
	}

	// Top layer first.
	for i, j := 0, len(layers)-1; i < j; i, j = i+1, j-1 {
		layers[i], layers[j] = layers[j], layers[i]
	}
	return layers, nil
}
