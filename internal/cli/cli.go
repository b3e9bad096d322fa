// Package cli implements the sha256sum command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/zeebo/sha256"
)

const name = "sha256sum"

// Command hashes the file named by its single argument.
type Command struct {
	out    io.Writer
	logger *log.Logger
}

// New returns a Command printing results to out and diagnostics to errOut.
func New(out, errOut io.Writer) *Command {
	return &Command{
		out: out,
		logger: log.NewWithOptions(errOut, log.Options{
			Prefix:          name,
			ReportTimestamp: false,
			ReportCaller:    false,
		}),
	}
}

// NewOS returns a Command wired to the process standard streams.
func NewOS() *Command {
	return New(os.Stdout, os.Stderr)
}

// Run executes the command with args (excluding the program name) and
// returns the process exit code.
func (c *Command) Run(args []string) int {
	err := c.run(args)
	if err != nil && !errors.Is(err, ErrMismatch) {
		c.logger.Error("failed", "err", err)
	}
	return ExitCode(err)
}

func (c *Command) run(args []string) error {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	check := flags.StringP("check", "c", "", "compare the file against this hex digest instead of printing it")
	help := flags.BoolP("help", "h", false, "show help")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if *help {
		return c.printHelp(flags)
	}

	rest := flags.Args()
	if len(rest) != 1 {
		_ = c.printHelp(flags)
		return fmt.Errorf("%w: expected exactly one file argument, got %d", ErrUsage, len(rest))
	}
	path := rest[0]

	var expected sha256.Digest
	if *check != "" {
		parsed, err := sha256.ParseDigest(*check)
		if err != nil {
			return fmt.Errorf("%w: --check: %w", ErrUsage, err)
		}
		expected = parsed
	}

	digest, err := sha256.SumFile(path)
	if err != nil {
		return err
	}
	c.logger.Debug("hashed", "path", path, "digest", digest)

	if *check == "" {
		return c.printf("%s\n", digest)
	}
	if digest != expected {
		if err := c.printf("%s: FAILED\n", path); err != nil {
			return err
		}
		return fmt.Errorf("%w: %s", ErrMismatch, path)
	}
	return c.printf("%s: OK\n", path)
}

func (c *Command) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (c *Command) printHelp(flags *pflag.FlagSet) error {
	return c.printf("Print the SHA-256 digest of FILE.\n\nUsage:\n  %s [flags] FILE\n\nFlags:\n%s", name, flags.FlagUsages())
}
