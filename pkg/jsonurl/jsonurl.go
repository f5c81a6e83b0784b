// Package jsonurl implements a bidirectional codec for JSONURL, a
// URL-safe textual encoding of the JSON data model (see jsonurl.org).
//
// Basic usage:
//
//	v, err := jsonurl.Decode(`(a:1,b:(2,3))`)
//	text, err := jsonurl.Encode(v)
//
//	// Address-bar Query-string Friendly quoting, for values embedded in
//	// a URL query component where a user agent might mangle "'":
//	v, err := jsonurl.Decode(text, jsonurl.WithAQF())
//
// The API is deliberately small: a Value tree, an Option set, and the
// two entry points Encode and Decode.
package jsonurl

import (
	"github.com/cdleonard/jsonurl-go/internal/model"
	"github.com/cdleonard/jsonurl-go/internal/parser"
	"github.com/cdleonard/jsonurl-go/internal/writer"
)

// Option is a functional option for configuring a Decode or Encode call.
type Option func(*model.Options)

// WithImpliedList treats the top level as the inside of a list: no
// enclosing parens, and empty input/output is the empty list.
func WithImpliedList() Option {
	return func(o *model.Options) { o.ImpliedList = true }
}

// WithImpliedDict treats the top level as the inside of a mapping: no
// enclosing parens, and empty input/output is the empty mapping.
func WithImpliedDict() Option {
	return func(o *model.Options) { o.ImpliedDict = true }
}

// WithAQF selects Address-bar Query-string Friendly quoting: "!"-escapes
// replace the "'"-quoting discipline so the text never needs a literal
// "'" character.
func WithAQF() Option {
	return func(o *model.Options) { o.AQF = true }
}

// WithDistinguishEmptyListDict makes "()" denote the empty list and
// "(:)" denote the empty dict, instead of "()" always denoting the
// empty dict.
func WithDistinguishEmptyListDict() Option {
	return func(o *model.Options) { o.DistinguishEmptyListDict = true }
}

// WithSafe marks additional bytes safe to leave unencoded on output.
// Each call replaces any safe set from an earlier WithSafe in the same
// option list. Only the characters "!$*/;?@" may be marked safe, plus
// "'" under WithAQF; see model.Options.Validate.
func WithSafe(chars string) Option {
	return func(o *model.Options) { o.Safe = chars }
}

func buildOptions(opts []Option) model.Options {
	var o model.Options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// Decode parses JSONURL text into a Value under the given options.
func Decode(text string, opts ...Option) (Value, error) {
	return parser.Parse(text, buildOptions(opts))
}

// Encode renders a Value as JSONURL text under the given options.
func Encode(v Value, opts ...Option) (string, error) {
	return writer.Write(v, buildOptions(opts))
}
