package attestor

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkautz/terrapin/pkg/errors"
	"github.com/fkautz/terrapin/pkg/gitoid"
)

func testSequence(n int) Sequence {
	seq := make(Sequence, 0, n)
	for i := range n {
		seq = append(seq, gitoid.Sum([]byte{byte(i)}))
	}
	return seq
}

func TestSequenceRoundTrip(t *testing.T) {
	seq := testSequence(3)

	parsed, err := ParseSequence(seq.Bytes())
	require.NoError(t, err)
	assert.True(t, seq.Equal(parsed))
}

func TestParseSequenceRejectsPartialDigest(t *testing.T) {
	raw := testSequence(2).Bytes()
	_, err := ParseSequence(raw[:len(raw)-5])
	assert.Error(t, err)
}

func TestParseSequenceEmpty(t *testing.T) {
	seq, err := ParseSequence(nil)
	require.NoError(t, err)
	assert.Empty(t, seq)
}

func TestLoadSequence(t *testing.T) {
	seq := testSequence(4)
	path := filepath.Join(t.TempDir(), "data.att")
	require.NoError(t, os.WriteFile(path, seq.Bytes(), 0o644))

	loaded, err := LoadSequence(path)
	require.NoError(t, err)
	assert.True(t, seq.Equal(loaded))

	_, err = LoadSequence(filepath.Join(t.TempDir(), "missing.att"))
	require.Error(t, err)
	var structured *errors.StructuredError
	require.ErrorAs(t, err, &structured)
	assert.Equal(t, errors.ErrCodeNotFound, structured.Code)
}

func TestWriteTo(t *testing.T) {
	seq := testSequence(2)
	var buf bytes.Buffer

	n, err := seq.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(2*gitoid.Size), n)
	assert.Equal(t, seq.Bytes(), buf.Bytes())
}

func TestSequenceEqual(t *testing.T) {
	a := testSequence(3)
	b := testSequence(3)
	assert.True(t, a.Equal(b))

	// Order matters.
	b[0], b[1] = b[1], b[0]
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(testSequence(2)))
	assert.True(t, Sequence{}.Equal(Sequence{}))
}

func TestSequenceClone(t *testing.T) {
	a := testSequence(2)
	c := a.Clone()
	c[0] = gitoid.Sum([]byte("mutated"))
	assert.NotEqual(t, a[0], c[0])

	var nilSeq Sequence
	assert.Nil(t, nilSeq.Clone())
}

func TestSequenceSpan(t *testing.T) {
	assert.Equal(t, int64(0), Sequence{}.Span())
	assert.Equal(t, int64(3*WindowSize), testSequence(3).Span())
}

func TestSequenceWindow(t *testing.T) {
	seq := testSequence(3)

	for i := range 3 {
		got, err := seq.Window(i)
		require.NoError(t, err)
		assert.Equal(t, seq[i], got)
	}

	for _, i := range []int{-1, 3, 100} {
		_, err := seq.Window(i)
		assert.ErrorIs(t, err, ErrRangeOutOfBounds, "index %d", i)
	}

	_, err := Sequence{}.Window(0)
	assert.ErrorIs(t, err, ErrRangeOutOfBounds)
}

func TestSequenceSlice(t *testing.T) {
	seq := testSequence(5)

	tests := []struct {
		name    string
		from    int
		to      int
		wantLen int
		wantErr bool
	}{
		{name: "full range", from: 0, to: 5, wantLen: 5},
		{name: "inner range", from: 1, to: 3, wantLen: 2},
		{name: "end clamped", from: 3, to: 9, wantLen: 2},
		{name: "start past end", from: 5, to: 6, wantErr: true},
		{name: "negative start", from: -1, to: 2, wantErr: true},
		{name: "empty range", from: 2, to: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := seq.Slice(tt.from, tt.to)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRangeOutOfBounds)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, seq[tt.from], got[0])
		})
	}
}
