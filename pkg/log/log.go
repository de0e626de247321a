// Package log is the program logger. Library packages do not log, only
// the command does.
package log

import (
	"fmt"
	stdlog "log"
	"os"
)

// F is the verbose log function, a no-op unless Set enables it.
var F = func(string, ...any) {}

// exit is replaced in tests.
var exit = os.Exit

// Set configures verbose logging and the stdlib log flags.
func Set(verbose bool, flag int) {
	if verbose {
		F = Debugf
	}
	stdlog.SetFlags(flag)
}

// Debugf prints debug log.
func Debugf(f string, v ...any) {
	stdlog.Output(2, fmt.Sprintf(f, v...))
}

// Fatalf logs at the caller's position and exits with status 1.
func Fatalf(f string, v ...any) {
	stdlog.Output(2, fmt.Sprintf(f, v...))
	exit(1)
}
