// SPDX-License-Identifier: MIT

// Package monitoring routes resolver progress lines to a single swappable
// sink. The CLI points it at stderr under --verbose and silences it otherwise.
package monitoring

import (
	"io"
	"log"
)

// Logf receives every progress line. Printf-shaped so log.Printf and
// testing.T.Logf both fit.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger installs f as the sink; nil discards all lines.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetOutput writes timestamped lines to w, each starting with prefix.
func SetOutput(w io.Writer, prefix string) {
	SetLogger(log.New(w, prefix, log.LstdFlags).Printf)
}
