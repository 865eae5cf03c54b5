// Package printer formats vtfp's CLI output: plain result lines on stdout,
// colored diagnostics on stderr.
package printer

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	// Color definitions
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

// Result prints a machine-readable result line to stdout. Fingerprint URNs
// and track listings go through here so they stay pipeable.
func Result(format string, a ...any) {
	fmt.Printf(format, a...)
}

// Warning prints a warning message in yellow to stderr.
func Warning(format string, a ...any) {
	yellow.Fprintf(os.Stderr, "⚠ %s", fmt.Sprintf(format, a...))
}

// Error prints a formatted error with optional suggestions to stderr and
// returns a plain error for Cobra (which has SilenceErrors set).
func Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(os.Stderr, "%s\n", title)

	if explanation != "" {
		fmt.Fprintf(os.Stderr, "\n%s\n", explanation)
	}

	if len(suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "\n")
		for _, suggestion := range suggestions {
			fmt.Fprintf(os.Stderr, "  %s\n", suggestion)
		}
	}

	return fmt.Errorf("%s", title)
}
