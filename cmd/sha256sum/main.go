// Command sha256sum prints the SHA-256 digest of a file as lowercase hex.
package main

import (
	"os"

	"github.com/zeebo/sha256/internal/cli"
)

func main() {
	os.Exit(cli.NewOS().Run(os.Args[1:]))
}
