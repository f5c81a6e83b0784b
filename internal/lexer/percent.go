package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/cdleonard/jsonurl-go/internal/model"
)

const hexDigits = "0123456789ABCDEF"

// DecodePercentRun decodes the maximal run of consecutive "%HH" triples
// starting at pos (s[pos] must be '%') into the UTF-8 text it represents,
// per spec.md §4.A. It returns the decoded text and the position just
// past the run.
func DecodePercentRun(s string, pos int) (string, int, *model.ParseError) {
	start := pos
	var raw []byte
	for pos < len(s) && s[pos] == '%' {
		if pos+2 >= len(s) {
			return "", 0, model.NewParseError(model.ErrUnterminatedPercent, pos,
				"percent escape needs two hex digits")
		}
		hi, lo := s[pos+1], s[pos+2]
		if !IsHexDigit(hi) {
			return "", 0, model.NewParseError(model.ErrInvalidHexDigit, pos+1,
				"invalid hex digit %q", hi)
		}
		if !IsHexDigit(lo) {
			return "", 0, model.NewParseError(model.ErrInvalidHexDigit, pos+2,
				"invalid hex digit %q", lo)
		}
		raw = append(raw, byte(HexDigitValue(hi)*16+HexDigitValue(lo)))
		pos += 3
	}
	if !utf8.Valid(raw) {
		return "", 0, model.NewParseError(model.ErrInvalidUTF8, start,
			"percent-decoded bytes are not valid UTF-8")
	}
	return string(raw), pos, nil
}

// EncodeByte renders a single byte as an uppercase "%HH" triple.
func EncodeByte(b byte) string {
	return string([]byte{'%', hexDigits[b>>4], hexDigits[b&0xf]})
}

// SafePredicate reports whether a byte may be written literally.
type SafePredicate func(b byte) bool

// EncodePercent percent-encodes s, byte by byte, leaving bytes that
// satisfy safe unencoded and rendering a literal space as "+" (spec.md
// §4.A). It operates on the raw UTF-8 bytes of s, so multi-byte runes are
// encoded one byte at a time as the grammar requires.
func EncodePercent(s string, safe SafePredicate) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			b.WriteByte('+')
		case safe(c):
			b.WriteByte(c)
		default:
			b.WriteString(EncodeByte(c))
		}
	}
	return b.String()
}
