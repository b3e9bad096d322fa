package cli

import (
	"errors"

	"github.com/zeebo/sha256"
)

var (
	// ErrUsage indicates the command was invoked incorrectly.
	ErrUsage = errors.New("usage error")

	// ErrMismatch indicates the file does not match the expected digest.
	ErrMismatch = errors.New("checksum mismatch")
)

// Exit codes. Usage, not-a-file and open failures keep the values older
// versions of the tool used.
const (
	ExitOK = iota
	ExitUsage
	ExitNotRegularFile
	ExitOpen
	ExitRead
	ExitMismatch
)

// ExitCode maps an error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, sha256.ErrNotRegularFile):
		return ExitNotRegularFile
	case errors.Is(err, sha256.ErrOpen):
		return ExitOpen
	case errors.Is(err, sha256.ErrRead):
		return ExitRead
	case errors.Is(err, ErrMismatch):
		return ExitMismatch
	default:
		// anything else, such as failing to write output, is a general failure
		return ExitUsage
	}
}
