package writer

import "github.com/cdleonard/jsonurl-go/internal/lexer"

// aqfStructural is the set of characters the AQF writer escapes as
// "!x" wherever they occur in a string body (spec.md §4.E.4).
const aqfStructural = "(),:!"

func isAQFStructural(b byte) bool {
	for i := 0; i < len(aqfStructural); i++ {
		if aqfStructural[i] == b {
			return true
		}
	}
	return false
}

// writeAQFString renders s as an AQF atom: the empty string as "!e", a
// leading "!" prefix when s would otherwise misread as a keyword or
// number, "!x" escapes for any structural/bang byte, "+" for a literal
// space, and percent-encoding for anything else outside the safe set
// (spec.md §4.E.4).
func (w *writer) writeAQFString(s string) {
	if s == "" {
		w.b.WriteString("!e")
		return
	}
	if looksReserved(s) {
		w.b.WriteByte('!')
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isAQFStructural(c):
			w.b.WriteByte('!')
			w.b.WriteByte(c)
		case c == ' ':
			w.b.WriteByte('+')
		case w.isDefaultSafe(c):
			w.b.WriteByte(c)
		default:
			w.b.WriteString(lexer.EncodeByte(c))
		}
	}
}
