package sha256

import (
	"encoding/hex"
	"fmt"
)

// Digest is a SHA-256 digest.
type Digest [Size]byte

// String returns the digest as lowercase hex.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// Bytes returns a copy of the digest as a slice.
func (d Digest) Bytes() []byte { return append([]byte(nil), d[:]...) }

// MarshalText implements encoding.TextMarshaler.
func (d Digest) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDigest parses a hex encoded digest. Upper and lower case are both
// accepted.
func ParseDigest(s string) (d Digest, err error) {
	if len(s) != 2*Size {
		return Digest{}, fmt.Errorf("%w: expected %d hex characters, got %d", ErrInvalidDigest, 2*Size, len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return Digest{}, fmt.Errorf("%w: %w", ErrInvalidDigest, err)
	}
	return d, nil
}
