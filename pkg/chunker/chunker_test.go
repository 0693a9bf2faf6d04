package chunker

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	terrerrors "github.com/fkautz/terrapin/pkg/errors"
)

func TestNewRejectsInvalidChunkSize(t *testing.T) {
	for _, size := range []int{0, -1, -1024} {
		_, err := New(bytes.NewReader([]byte("data")), size)
		assert.ErrorIs(t, err, ErrInvalidChunkSize, "size %d", size)
	}
}

func TestNextChunkSizes(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		chunkSize int
		wantLens  []int
	}{
		{
			name:      "exact multiple",
			data:      bytes.Repeat([]byte{0xab}, 12),
			chunkSize: 4,
			wantLens:  []int{4, 4, 4},
		},
		{
			name:      "short final chunk",
			data:      bytes.Repeat([]byte{0xcd}, 10),
			chunkSize: 4,
			wantLens:  []int{4, 4, 2},
		},
		{
			name:      "single short chunk",
			data:      []byte("abc"),
			chunkSize: 1024,
			wantLens:  []int{3},
		},
		{
			name:      "empty stream yields no chunks",
			data:      nil,
			chunkSize: 8,
			wantLens:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(bytes.NewReader(tt.data), tt.chunkSize)
			require.NoError(t, err)

			var gotLens []int
			var reassembled []byte
			for {
				chunk, err := c.Next(context.Background())
				if errors.Is(err, io.EOF) {
					break
				}
				require.NoError(t, err)
				require.NotEmpty(t, chunk, "chunks are never empty")
				gotLens = append(gotLens, len(chunk))
				reassembled = append(reassembled, chunk...)
			}

			assert.Equal(t, tt.wantLens, gotLens)
			assert.Equal(t, tt.data, reassembled)
		})
	}
}

func TestNextAfterExhaustion(t *testing.T) {
	c, err := New(bytes.NewReader([]byte("ab")), 2)
	require.NoError(t, err)

	_, err = c.Next(context.Background())
	require.NoError(t, err)

	for range 3 {
		_, err = c.Next(context.Background())
		assert.ErrorIs(t, err, io.EOF)
	}
}

// errReader fails after an initial successful read.
type errReader struct {
	data []byte
	read bool
}

func (r *errReader) Read(p []byte) (int, error) {
	if r.read {
		return 0, errors.New("disk on fire")
	}
	r.read = true
	return copy(p, r.data), nil
}

func TestNextPropagatesReadError(t *testing.T) {
	c, err := New(&errReader{data: []byte("1234")}, 4)
	require.NoError(t, err)

	_, err = c.Next(context.Background())
	require.NoError(t, err)

	_, err = c.Next(context.Background())
	require.Error(t, err)

	var structured *terrerrors.StructuredError
	require.ErrorAs(t, err, &structured)
	assert.Equal(t, terrerrors.ErrCodeIO, structured.Code)
}

func TestRateLimitOption(t *testing.T) {
	data := bytes.Repeat([]byte{0x01}, 64)

	// A generous limit should not block the read path.
	c, err := New(bytes.NewReader(data), 16, WithRateLimit(1<<20))
	require.NoError(t, err)

	var total int
	for {
		chunk, err := c.Next(context.Background())
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		total += len(chunk)
	}
	assert.Equal(t, len(data), total)

	// Non-positive rates are ignored.
	c, err = New(bytes.NewReader(data), 16, WithRateLimit(0))
	require.NoError(t, err)
	_, err = c.Next(context.Background())
	require.NoError(t, err)
}
