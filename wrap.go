package base65536

import (
	"fmt"

	"github.com/nuew/base65536/errs"
)

// DefaultEOL is the separator used by WrapAt.
const DefaultEOL = "\n"

// WrapPolicy controls line wrapping of encoded text.
//
// The zero value is NoWrap. Wrapping is presentational only: a strict decoder
// rejects the separators, while a decoder that ignores garbage skips them.
type WrapPolicy struct {
	columns int
	eol     string
	enabled bool
}

// NoWrap emits all code points on a single line.
var NoWrap = WrapPolicy{}

// WrapAt inserts "\n" after every columns code points.
func WrapAt(columns int) WrapPolicy {
	return WrapAtWith(columns, DefaultEOL)
}

// WrapAtWith inserts eol after every columns code points.
//
// A separator is never written before the first code point or after the
// last one. columns must be greater than zero; see Validate.
func WrapAtWith(columns int, eol string) WrapPolicy {
	return WrapPolicy{columns: columns, eol: eol, enabled: true}
}

// Enabled reports whether separators are inserted at all.
func (w WrapPolicy) Enabled() bool {
	return w.enabled
}

// Columns returns the number of code points per line, or 0 for NoWrap.
func (w WrapPolicy) Columns() int {
	if !w.enabled {
		return 0
	}

	return w.columns
}

// EOL returns the line separator, or "" for NoWrap.
func (w WrapPolicy) EOL() string {
	if !w.enabled {
		return ""
	}

	return w.eol
}

// Validate reports errs.ErrInvalidWrapColumns for a wrapping policy with a
// non-positive column count.
func (w WrapPolicy) Validate() error {
	if w.enabled && w.columns <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidWrapColumns, w.columns)
	}

	return nil
}

func (w WrapPolicy) String() string {
	if !w.enabled {
		return "NoWrap"
	}
	if w.eol == DefaultEOL {
		return fmt.Sprintf("WrapAt(%d)", w.columns)
	}

	return fmt.Sprintf("WrapAtWith(%d, %q)", w.columns, w.eol)
}

// separators returns how many separators wrap a run of n code points.
func (w WrapPolicy) separators(n int) int {
	if !w.enabled || n == 0 {
		return 0
	}

	return (n - 1) / w.columns
}
