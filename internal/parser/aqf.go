package parser

import (
	"strings"

	"github.com/cdleonard/jsonurl-go/internal/lexer"
	"github.com/cdleonard/jsonurl-go/internal/model"
)

// aqfEscapeChars is the full set of characters a "!" may escape in AQF
// text (spec.md §4.E.2). Unlike the reference implementation this
// includes "+", so "!+" always means a literal plus rather than falling
// through to the separate space-substitution rule.
const aqfEscapeChars = "(),:!0123456789+-fnt"

func isAQFEscapeChar(b byte) bool {
	return strings.IndexByte(aqfEscapeChars, b) >= 0
}

// partialPreDecodeAQF performs step 1 of the AQF lexer (spec.md §4.E):
// it percent-decodes only those "%HH" triples whose hex digits name one
// of the five structural/sigil bytes "(", ")", ",", ":", "!", turning
// them into their literal, still-meaningful form before grammar parsing
// begins. Every other percent run is left untouched for the atom reader
// to decode later, since decoding it early would make a percent-encoded
// letter indistinguishable from one that was never encoded.
func partialPreDecodeAQF(text string) (string, error) {
	var b strings.Builder
	pos := 0
	for pos < len(text) {
		c := text[pos]
		if c != '%' {
			b.WriteByte(c)
			pos++
			continue
		}
		if pos+2 >= len(text) || !lexer.IsHexDigit(text[pos+1]) || !lexer.IsHexDigit(text[pos+2]) {
			return "", model.NewParseError(model.ErrUnterminatedPercent, pos,
				"percent escape needs two hex digits")
		}
		decoded := byte(lexer.HexDigitValue(text[pos+1])*16 + lexer.HexDigitValue(text[pos+2]))
		if lexer.IsStructural(decoded) || decoded == '!' {
			b.WriteByte(decoded)
		} else {
			b.WriteString(text[pos : pos+3])
		}
		pos += 3
	}
	return b.String(), nil
}

// unquoteAQF resolves the "!"-escapes left in a decoded atom once it has
// been classified as a string (spec.md §4.E.2). s must not be the "!e"
// sentinel for empty string; callers check that separately.
func unquoteAQF(s string, startOffset int) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '!' {
			b.WriteByte(c)
			continue
		}
		if i == len(s)-1 {
			return "", model.NewParseError(model.ErrTrailingBang, startOffset+i,
				"trailing ! in atom")
		}
		next := s[i+1]
		if !isAQFEscapeChar(next) {
			return "", model.NewParseError(model.ErrInvalidEscape, startOffset+i,
				"invalid escape !%c", next)
		}
		b.WriteByte(next)
		i++
	}
	return b.String(), nil
}
