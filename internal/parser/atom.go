package parser

import (
	"strconv"

	"github.com/cdleonard/jsonurl-go/internal/lexer"
	"github.com/cdleonard/jsonurl-go/internal/model"
)

// readAtom reads one atom at the cursor: a quoted string (non-AQF only),
// or a run of unencoded/percent/escaped characters classified afterward
// as null, a boolean, a number, or a string (spec.md §4.C).
//
// It maintains two accumulators side by side: decoded, the atom's actual
// text, and raw, the atom's literal source text. raw is only used to
// decide whether the atom looks like a keyword or a number; the moment a
// percent escape is consumed, raw stops tracking the text exactly (a
// percent-decoded letter could turn "tru%65" into something that reads
// like "true" without meaning it) and is abandoned, forcing the atom to
// string-classify instead.
func (p *parser) readAtom() (model.Value, error) {
	start := p.pos
	if !p.opts.AQF && !p.atEnd() && p.peek() == '\'' {
		return p.readQuotedString()
	}

	if p.atEnd() || lexer.IsStructural(p.peek()) {
		return nil, model.NewParseError(model.ErrEmptyValue, p.pos, "empty value")
	}

	var decoded []byte
	var raw []byte
	rawValid := true

	for !p.atEnd() {
		c := p.peek()
		switch {
		case c == '%':
			text, newPos, err := lexer.DecodePercentRun(p.text, p.pos)
			if err != nil {
				return nil, err
			}
			decoded = append(decoded, text...)
			rawValid = false
			p.pos = newPos

		case c == '+':
			decoded = append(decoded, ' ')
			if rawValid {
				raw = append(raw, '+')
			}
			p.pos++

		case p.opts.AQF && c == '!':
			decoded = append(decoded, '!')
			if rawValid {
				raw = append(raw, '!')
			}
			p.pos++
			if !p.atEnd() {
				next := p.peek()
				if next == '(' || next == ')' || next == ',' || next == ':' || next == '!' || next == '+' {
					decoded = append(decoded, next)
					if rawValid {
						raw = append(raw, next)
					}
					p.pos++
				}
			}

		case lexer.IsUnencoded(c):
			decoded = append(decoded, c)
			if rawValid {
				raw = append(raw, c)
			}
			p.pos++

		default:
			goto done
		}
	}
done:

	if len(decoded) == 0 {
		return nil, model.NewParseError(model.ErrEmptyValue, start, "empty value")
	}

	if rawValid {
		if v, ok := classifyKeyword(raw); ok {
			return v, nil
		}
		if v, ok := classifyNumber(raw); ok {
			return v, nil
		}
	}

	decodedStr := string(decoded)
	if !p.opts.AQF {
		return model.Str(decodedStr), nil
	}
	if decodedStr == "!e" {
		return model.Str(""), nil
	}
	unquoted, err := unquoteAQF(decodedStr, start)
	if err != nil {
		return nil, err
	}
	return model.Str(unquoted), nil
}

// readQuotedString reads a "'...'"-quoted string in classic (non-AQF)
// mode (spec.md §4.C): the leading quote forces string classification
// regardless of content, and the first unescaped "'" ends the atom.
// Only unencoded and structural characters may appear unescaped between
// the quotes; anything else (a bare space, "=", etc.) is an error.
func (p *parser) readQuotedString() (model.Value, error) {
	start := p.pos
	p.pos++ // consume opening '

	var decoded []byte
	for {
		if p.atEnd() {
			return nil, model.NewParseError(model.ErrUnterminatedQuotedString, start,
				"unterminated quoted string")
		}
		c := p.peek()
		switch {
		case c == '\'':
			p.pos++
			return model.Str(string(decoded)), nil

		case c == '%':
			text, newPos, err := lexer.DecodePercentRun(p.text, p.pos)
			if err != nil {
				return nil, err
			}
			decoded = append(decoded, text...)
			p.pos = newPos

		case c == '+':
			decoded = append(decoded, ' ')
			p.pos++

		case lexer.IsUnencoded(c) || lexer.IsStructural(c):
			decoded = append(decoded, c)
			p.pos++

		default:
			return nil, model.NewParseError(model.ErrUnexpectedChar, p.pos,
				"unexpected %q inside quoted string", c)
		}
	}
}

// classifyKeyword reports whether raw is exactly one of the three
// reserved keywords.
func classifyKeyword(raw []byte) (model.Value, bool) {
	switch string(raw) {
	case "null":
		return model.Null, true
	case "true":
		return model.Bool(true), true
	case "false":
		return model.Bool(false), true
	default:
		return nil, false
	}
}

// classifyNumber reports whether raw matches the JSONURL number grammar
// (spec.md §4.C), returning an Int when there is no fraction or exponent
// and a Float otherwise.
func classifyNumber(raw []byte) (model.Value, bool) {
	s := string(raw)
	isFloat, ok := lexer.ScanNumber(s)
	if !ok {
		return nil, false
	}

	if !isFloat {
		iv, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			fv, ferr := strconv.ParseFloat(s, 64)
			if ferr != nil {
				return nil, false
			}
			return model.Float(fv), true
		}
		return model.Int(iv), true
	}

	fv, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return model.Float(fv), true
}
