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
	"io"
	"os"

	"github.com/fkautz/terrapin/pkg/errors"
	"github.com/fkautz/terrapin/pkg/gitoid"
)

// ErrRangeOutOfBounds is returned when a requested window range lies
// entirely outside the span covered by the sequence. It is a request error,
// never a Mismatch.
var ErrRangeOutOfBounds = errors.New(errors.ErrCodeOutOfRange, "requested range is outside the attested span")

// Sequence is an ordered run of window digests. Index i attests byte window
// [i*WindowSize, (i+1)*WindowSize) of the original stream.
type Sequence []gitoid.Digest

// ParseSequence decodes the artifact format: a raw concatenation of 32-byte
// digests in window order.
func ParseSequence(raw []byte) (Sequence, error) {
	if len(raw)%gitoid.Size != 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"attestation artifact is not a whole number of digests",
			map[string]any{"bytes": len(raw), "digestSize": gitoid.Size})
	}

	seq := make(Sequence, 0, len(raw)/gitoid.Size)
	for off := 0; off < len(raw); off += gitoid.Size {
		d, _ := gitoid.FromBytes(raw[off : off+gitoid.Size])
		seq = append(seq, d)
	}
	return seq, nil
}

// LoadSequence reads and decodes an attestation artifact file.
func LoadSequence(path string) (Sequence, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		code := errors.ErrCodeIO
		if os.IsNotExist(err) {
			code = errors.ErrCodeNotFound
		}
		return nil, errors.Wrap(code, fmt.Sprintf("reading attestations %q", path), err)
	}
	return ParseSequence(raw)
}

// Bytes encodes the sequence in artifact format.
func (s Sequence) Bytes() []byte {
	out := make([]byte, 0, len(s)*gitoid.Size)
	for _, d := range s {
		out = append(out, d[:]...)
	}
	return out
}

// WriteTo writes the artifact encoding to w.
func (s Sequence) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	if err != nil {
		return int64(n), errors.Wrap(errors.ErrCodeIO, "writing attestations", err)
	}
	return int64(n), nil
}

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Equal reports element-wise, order-sensitive equality.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Span returns the number of stream bytes the sequence can attest: one full
// window per digest. The final window of the original stream may have been
// shorter, so Span is an upper bound.
func (s Sequence) Span() int64 {
	return int64(len(s)) * WindowSize
}

// Window returns the digest of window i. An index outside the stored span
// is ErrRangeOutOfBounds.
func (s Sequence) Window(i int) (gitoid.Digest, error) {
	if i < 0 || i >= len(s) {
		return gitoid.Digest{}, ErrRangeOutOfBounds
	}
	return s[i], nil
}

// Slice returns the digests for windows [from, to). The range is clamped to
// the sequence length; a range entirely outside it is ErrRangeOutOfBounds.
func (s Sequence) Slice(from, to int) (Sequence, error) {
	if from < 0 || from >= len(s) || to <= from {
		return nil, ErrRangeOutOfBounds
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to].Clone(), nil
}
