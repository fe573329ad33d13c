package app

import (
	"fmt"
	"io"
)

// Version is the application version. It is overridden at build time via
// -ldflags "-X github.com/agbru/fibmemo/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether the argument list requests the version.
//
// Parameters:
//   - args: The command-line arguments, excluding the program name.
//
// Returns:
//   - bool: true if -version or --version is present.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
//
// Parameters:
//   - out: The writer for standard output.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "fibmemo %s\n", Version)
}
