package sentry

import (
	"runtime"
	"time"

	gosentry "github.com/getsentry/sentry-go"
)

// dsn is injected at release build time via -ldflags. Empty means crash
// reporting stays off regardless of the telemetry setting; development
// builds never report.
var dsn = ""

// enabled tracks whether sentry was successfully initialized.
var enabled bool

// Init initializes the Sentry SDK. When telemetryEnabled is false or no DSN
// was baked in, it no-ops silently; all other functions in this package
// become safe no-ops.
func Init(version string, telemetryEnabled bool) error {
	if !telemetryEnabled || dsn == "" {
		enabled = false
		return nil
	}

	err := gosentry.Init(gosentry.ClientOptions{
		Dsn:              dsn,
		Release:          "tabhop@" + version,
		AttachStacktrace: true,
		SampleRate:       1.0,
	})
	if err != nil {
		return err
	}

	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTag("os", runtime.GOOS)
		scope.SetTag("arch", runtime.GOARCH)
		scope.SetTag("go_version", runtime.Version())
		scope.SetTag("version", version)
	})

	enabled = true
	return nil
}

// IsEnabled returns whether sentry is active.
func IsEnabled() bool {
	return enabled
}

// SetContext records the host backend and entry surface on the scope so
// crash reports say how the command was invoked.
func SetContext(host string, interactive bool) {
	if !enabled {
		return
	}
	surface := "command"
	if interactive {
		surface = "interactive"
	}
	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTag("host", host)
		scope.SetTag("surface", surface)
	})
}

// Flush waits up to 2 seconds for buffered events to be sent.
func Flush() {
	if !enabled {
		return
	}
	gosentry.Flush(2 * time.Second)
}

// RecoverPanic reports a panic to Sentry and re-panics so the process still
// crashes visibly. Intended as a deferred call at the top of main.
func RecoverPanic() {
	if r := recover(); r != nil {
		if enabled {
			gosentry.CurrentHub().Recover(r)
			gosentry.Flush(2 * time.Second)
		}
		panic(r)
	}
}
