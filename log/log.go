// Package log provides the shared file-backed loggers. Navigation commands
// run as short-lived processes bound to tmux keys, so logs go to a file
// rather than stderr, which would bleed into the user's terminal.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/kastheco/tabhop/internal/sentry"
)

const logFlags = log.LstdFlags | log.Lshortfile

// The loggers start out discarding so code that runs before Initialize, such
// as config loading, can log without a nil check. Initialize swaps in the
// file-backed writers.
var (
	InfoLog    = log.New(io.Discard, "INFO: ", logFlags)
	WarningLog = log.New(io.Discard, "WARNING: ", logFlags)
	ErrorLog   = log.New(io.Discard, "ERROR: ", logFlags)
)

var logFile *os.File

// Initialize sets up the global loggers writing to tabhop.log in the user's
// temp directory. When telemetry is enabled, warning and error lines are
// also forwarded to Sentry as breadcrumbs and events.
func Initialize(telemetry ...bool) {
	path := filepath.Join(os.TempDir(), "tabhop.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// Fall back to discarding logs rather than failing the command.
		fmt.Fprintf(os.Stderr, "could not open log file %s: %v\n", path, err)
		f = nil
	}
	logFile = f

	var base io.Writer = io.Discard
	if f != nil {
		base = f
	}

	infoWriter := base
	warnWriter := base
	errorWriter := base
	if len(telemetry) > 0 && telemetry[0] {
		warnWriter = sentry.NewWriter(base, sentry.LevelWarning)
		errorWriter = sentry.NewWriter(base, sentry.LevelError)
	}

	InfoLog = log.New(infoWriter, "INFO: ", logFlags)
	WarningLog = log.New(warnWriter, "WARNING: ", logFlags)
	ErrorLog = log.New(errorWriter, "ERROR: ", logFlags)
}

// Close flushes and closes the log file. Safe to call when Initialize
// failed or was never called.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
