package sha256

import (
	"fmt"
	"io"
	"os"
)

const readBufferSize = 32 * 1024

// ReadFrom implements io.ReaderFrom. It writes everything r produces until
// io.EOF into the Hasher and returns the number of bytes absorbed. Bytes
// read before an error are still absorbed.
func (h *Hasher) ReadFrom(r io.Reader) (n int64, err error) {
	buf := make([]byte, readBufferSize)
	for {
		m, err := r.Read(buf)
		if m > 0 {
			h.h.update(buf[:m])
			n += int64(m)
		}
		switch {
		case err == io.EOF:
			return n, nil
		case err != nil:
			return n, err
		}
	}
}

// SumReader returns the SHA-256 digest of everything read from r until
// io.EOF. Any other read error is returned wrapped with ErrRead and no
// digest is produced.
func SumReader(r io.Reader) (Digest, error) {
	h := New()
	if _, err := h.ReadFrom(r); err != nil {
		return Digest{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return h.Digest(), nil
}

// SumFile returns the SHA-256 digest of the regular file at path, streaming
// its contents. It fails with ErrNotRegularFile if path does not exist or is
// not a regular file, ErrOpen if it cannot be opened, and ErrRead if reading
// it fails.
func SumFile(path string) (Digest, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Digest{}, fmt.Errorf("%w: %w", ErrNotRegularFile, err)
	}
	if !info.Mode().IsRegular() {
		return Digest{}, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}

	fh, err := os.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() { _ = fh.Close() }()

	return SumReader(fh)
}
