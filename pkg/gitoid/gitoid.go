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

package gitoid

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	ocidigest "github.com/opencontainers/go-digest"
)

// Size is the length in bytes of a Digest.
const Size = sha256.Size

// Digest is the SHA-256 GitOID of a byte sequence. It is immutable once
// produced.
type Digest [Size]byte

// blobPrefix is the git object framing written ahead of the content:
// "blob <decimal length>\x00".
var blobPrefix = []byte("blob ")

// Sum returns the GitOID digest of data: the SHA-256 of the git blob object
// framing followed by the data itself.
func Sum(data []byte) Digest {
	h := sha256.New()
	h.Write(blobPrefix)
	h.Write(strconv.AppendInt(nil, int64(len(data)), 10))
	h.Write([]byte{0})
	h.Write(data)

	var d Digest
	h.Sum(d[:0])
	return d
}

// String returns the lowercase hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// OCI renders the digest in OCI digest notation ("sha256:<hex>") for use in
// reports and logs.
func (d Digest) OCI() ocidigest.Digest {
	return ocidigest.NewDigestFromBytes(ocidigest.SHA256, d[:])
}

// FromBytes copies a raw 32-byte digest. ok is false if b has the wrong
// length.
func FromBytes(b []byte) (d Digest, ok bool) {
	if len(b) != Size {
		return Digest{}, false
	}
	copy(d[:], b)
	return d, true
}
