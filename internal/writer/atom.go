package writer

import (
	"strconv"

	"github.com/cdleonard/jsonurl-go/internal/lexer"
	"github.com/cdleonard/jsonurl-go/internal/model"
)

func (w *writer) writeAtom(v model.Value) error {
	switch val := v.(type) {
	case model.NullValue:
		w.b.WriteString("null")
		return nil
	case model.BoolValue:
		if val {
			w.b.WriteString("true")
		} else {
			w.b.WriteString("false")
		}
		return nil
	case model.IntValue:
		w.b.WriteString(strconv.FormatInt(int64(val), 10))
		return nil
	case model.FloatValue:
		w.b.WriteString(strconv.FormatFloat(float64(val), 'g', -1, 64))
		return nil
	case model.StringValue:
		if w.opts.AQF {
			w.writeAQFString(string(val))
		} else {
			w.writeClassicString(string(val))
		}
		return nil
	default:
		return model.NewEncodeError(model.ErrUnsupportedValueKind, "cannot write %s as an atom", v.Kind())
	}
}

// looksReserved reports whether s, written bare and unquoted, would be
// read back as something other than itself: one of the three keywords,
// the empty string, or a number (spec.md §4.C).
func looksReserved(s string) bool {
	if s == "" || s == "null" || s == "true" || s == "false" {
		return true
	}
	_, ok := lexer.ScanNumber(s)
	return ok
}

// isDefaultSafe reports whether b may be left unencoded in either
// writer mode, independent of any AQF structural-escape handling:
// letters, digits, the always-safe punctuation, and the caller's safe
// set (spec.md §4.B).
func (w *writer) isDefaultSafe(b byte) bool {
	if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || lexer.IsDigit(b) {
		return true
	}
	if lexer.IsAlwaysSafe(b) {
		return true
	}
	return w.opts.IsSafe(b)
}

// writeClassicString renders s as a bare atom when it is unambiguous, or
// as a "'...'"-quoted atom when it would otherwise be misread (spec.md
// §4.C).
func (w *writer) writeClassicString(s string) {
	if !looksReserved(s) {
		w.writePercent(s)
		return
	}
	w.b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'':
			w.b.WriteString("''")
		case c == ' ':
			w.b.WriteByte('+')
		case w.isDefaultSafe(c) || lexer.IsStructural(c):
			w.b.WriteByte(c)
		default:
			w.b.WriteString(lexer.EncodeByte(c))
		}
	}
	w.b.WriteByte('\'')
}

// writePercent percent-encodes s against the writer's default safe set,
// translating a literal space to "+".
func (w *writer) writePercent(s string) {
	w.b.WriteString(lexer.EncodePercent(s, w.isDefaultSafe))
}
