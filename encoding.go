package base65536

import (
	"fmt"

	"github.com/nuew/base65536/internal/options"
)

// Encoding is a base65536 configuration: how encoded text is wrapped and how
// strictly text is decoded.
//
// An Encoding is immutable once created and safe for concurrent use.
type Encoding struct {
	wrap          WrapPolicy
	ignoreGarbage bool
}

var (
	// StdEncoding emits unwrapped text and rejects anything that is not a
	// base65536 code point when decoding.
	StdEncoding = &Encoding{}

	// IgnoreGarbageEncoding emits unwrapped text and skips foreign code points
	// (whitespace, line breaks, quotes, ...) when decoding.
	IgnoreGarbageEncoding = &Encoding{ignoreGarbage: true}
)

// Option is a functional option for configuring an Encoding.
type Option = options.Option[*Encoding]

// WithWrap sets the line wrapping applied by the encoder. Default is NoWrap.
func WithWrap(wrap WrapPolicy) Option {
	return options.New(func(e *Encoding) error {
		if err := wrap.Validate(); err != nil {
			return err
		}
		e.wrap = wrap

		return nil
	})
}

// WithIgnoreGarbage makes the decoder skip code points outside every block
// instead of failing. Default is false.
func WithIgnoreGarbage(ignore bool) Option {
	return options.NoError(func(e *Encoding) {
		e.ignoreGarbage = ignore
	})
}

// NewEncoding creates an Encoding from opts.
//
// Returns an error wrapping errs.ErrInvalidWrapColumns when a wrap policy has
// a non-positive column count.
//
// Example:
//
//	enc, err := base65536.NewEncoding(
//	    base65536.WithWrap(base65536.WrapAtWith(140, "\r\n")),
//	    base65536.WithIgnoreGarbage(true),
//	)
func NewEncoding(opts ...Option) (*Encoding, error) {
	return options.Build(&Encoding{}, (*Encoding).validate, opts...)
}

// MustNewEncoding is like NewEncoding but panics on an invalid configuration.
func MustNewEncoding(opts ...Option) *Encoding {
	enc, err := NewEncoding(opts...)
	if err != nil {
		panic(fmt.Sprintf("base65536: %v", err))
	}

	return enc
}

// Wrap returns the encoder's wrap policy.
func (e *Encoding) Wrap() WrapPolicy {
	return e.wrap
}

// IgnoresGarbage reports whether the decoder skips foreign code points.
func (e *Encoding) IgnoresGarbage() bool {
	return e.ignoreGarbage
}

func (e *Encoding) validate() error {
	return e.wrap.Validate()
}

// policyEncoding builds a throwaway Encoding for the package-level helpers.
// An invalid wrap policy is a programming error and panics.
func policyEncoding(wrap WrapPolicy, ignoreGarbage bool) *Encoding {
	if err := wrap.Validate(); err != nil {
		panic(fmt.Sprintf("base65536: %v", err))
	}

	return &Encoding{wrap: wrap, ignoreGarbage: ignoreGarbage}
}
