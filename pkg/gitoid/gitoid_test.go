package gitoid

import (
	"crypto/sha256"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refSum recomputes the GitOID the obvious way for cross-checking.
func refSum(data []byte) Digest {
	framed := fmt.Sprintf("blob %d\x00", len(data))
	return Digest(sha256.Sum256(append([]byte(framed), data...)))
}

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "short", data: []byte("hello world")},
		{name: "binary", data: []byte{0x00, 0xff, 0x10, 0x00, 0x7f}},
		{name: "larger", data: make([]byte, 4096)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, refSum(tt.data), Sum(tt.data))
		})
	}
}

func TestSumEmptyBlob(t *testing.T) {
	// git hash-object --stdin </dev/null with sha256 object format.
	const want = "473a0f4c3be8a93681a267e3b1e9a7dcda1185436fe141f7749120a303721813"
	assert.Equal(t, want, Sum(nil).String())
}

func TestSumDiffersFromPlainSHA256(t *testing.T) {
	data := []byte("content")
	plain := sha256.Sum256(data)
	assert.NotEqual(t, Digest(plain), Sum(data), "blob framing must affect the digest")
}

func TestOCI(t *testing.T) {
	d := Sum([]byte("abc"))
	oci := d.OCI()
	assert.Equal(t, "sha256:"+d.String(), oci.String())
	require.NoError(t, oci.Validate())
}

func TestFromBytes(t *testing.T) {
	d := Sum([]byte("round trip"))

	got, ok := FromBytes(d[:])
	require.True(t, ok)
	assert.Equal(t, d, got)

	_, ok = FromBytes(d[:Size-1])
	assert.False(t, ok)

	_, ok = FromBytes(nil)
	assert.False(t, ok)
}
