// Package sha256 implements the SHA-256 hash algorithm as defined in
// FIPS 180-4 in pure Go.
package sha256

import "github.com/zeebo/sha256/internal/consts"

// Size is the number of bytes in a SHA-256 digest.
const Size = consts.Size

// BlockSize is the number of bytes SHA-256 compresses at a time.
const BlockSize = consts.BlockLen

// Hasher is a hash.Hash for SHA-256. It is not safe for concurrent use.
type Hasher struct {
	h hasher
}

// New returns a new Hasher.
func New() *Hasher {
	h := new(Hasher)
	h.h.reset()
	return h
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// WriteString is like Write but specialized to strings to avoid allocations.
func (h *Hasher) WriteString(p string) (int, error) {
	n := len(p)
	for len(p) > 0 {
		var buf [1024]byte
		m := copy(buf[:], p)
		h.h.update(buf[:m])
		p = p[m:]
	}
	return n, nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Clone returns a new Hasher with the same internal state.
//
// Modifying the resulting Hasher will not modify the original Hasher, and vice versa.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{h: h.h}
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it.
func (h *Hasher) Sum(b []byte) []byte {
	var tmp [Size]byte
	h.h.finalize(&tmp)
	return append(b, tmp[:]...)
}

// Digest returns the digest of everything written so far. Writes may
// continue afterwards.
func (h *Hasher) Digest() (d Digest) {
	h.h.finalize((*[Size]byte)(&d))
	return d
}

// Sum256 returns the SHA-256 digest of the data.
func Sum256(data []byte) (d Digest) {
	var h hasher
	h.reset()
	h.update(data)
	h.finalize((*[Size]byte)(&d))
	return d
}
