// Package diag carries the recoverable diagnostics of an assembly run.
package diag

import (
	"github.com/ezrec/microrom/translate"
)

var f = translate.From

// Warning is a recoverable problem found while building a ROM.
type Warning struct {
	Source string // Name of the input document, if known.
	LineNo int    // Line of the input document, or 0.
	Err    error  // Cause of the warning.
}

func (w Warning) Error() string {
	switch {
	case len(w.Source) != 0 && w.LineNo != 0:
		return f("%v:%d: %v", w.Source, w.LineNo, w.Err)
	case len(w.Source) != 0:
		return f("%v: %v", w.Source, w.Err)
	case w.LineNo != 0:
		return f("line %d %v", w.LineNo, w.Err)
	}
	return w.Err.Error()
}

func (w Warning) Unwrap() error {
	return w.Err
}
