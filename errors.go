package sha256

import "errors"

var (
	// ErrNotRegularFile is returned when a path is missing or does not name
	// a regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrOpen is returned when a regular file could not be opened.
	ErrOpen = errors.New("open failed")

	// ErrRead is returned when the source fails while being read. The
	// underlying error is wrapped alongside it.
	ErrRead = errors.New("read failed")

	// ErrInvalidDigest is returned when parsing a malformed hex digest.
	ErrInvalidDigest = errors.New("invalid digest")
)
