// File: logging.go
// Role: nil-safe access to the host's log facility.
//
// place and legalise accept a *zerolog.Logger parameter everywhere they
// need to emit informational or fatal lines; NopLogger gives callers that
// don't care about logging a zero-cost default instead of a nil check at
// every call site.
package devmodel

import "github.com/rs/zerolog"

// NopLogger returns a logger that discards everything, for callers that
// pass nil where a *zerolog.Logger is expected.
func NopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// Logger returns l if non-nil, otherwise NopLogger(). Every exported entry
// point in place and legalise routes its logger argument through this so
// internal code never has to nil-check.
func Logger(l *zerolog.Logger) *zerolog.Logger {
	if l == nil {
		return NopLogger()
	}

	return l
}
