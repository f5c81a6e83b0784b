// Package parser implements the decode half of the atom, composite and
// AQF layers (spec.md §4.C, §4.D, §4.E): it turns JSONURL text into a
// model.Value tree.
package parser

import (
	"github.com/cdleonard/jsonurl-go/internal/model"
)

// MaxNestingDepth bounds composite recursion (spec.md §9: "an
// implementation language without guaranteed tail-call handling should
// accept bounded recursion depth (say 1024) and raise NestingTooDeep
// beyond it").
const MaxNestingDepth = 1024

// parser holds the single-pass parse state: the source text, a byte
// cursor, the active Options, and the current composite nesting depth.
// It dies with the call to Parse; nothing here is retained afterward.
type parser struct {
	text  string
	pos   int
	opts  model.Options
	depth int
}

// Parse decodes text into a Value under opts. It implements the implied
// forms (spec.md §4.D) and, for AQF, the structural partial pre-decode
// (spec.md §4.E step 1) before any grammar-level parsing begins.
func Parse(text string, opts model.Options) (model.Value, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.AQF {
		decoded, err := partialPreDecodeAQF(text)
		if err != nil {
			return nil, err
		}
		text = decoded
	}

	p := &parser{text: text, opts: opts}

	switch {
	case opts.ImpliedList:
		return p.parseListBody()
	case opts.ImpliedDict:
		return p.parseDictBody()
	default:
		if len(text) == 0 {
			return nil, model.NewParseError(model.ErrEmptyValue, 0, "empty input")
		}
		v, err := p.parseAny()
		if err != nil {
			return nil, err
		}
		if p.pos != len(p.text) {
			return nil, model.NewParseError(model.ErrTrailingInput, p.pos,
				"unexpected trailing input %q", p.text[p.pos:])
		}
		return v, nil
	}
}

func (p *parser) atEnd() bool { return p.pos >= len(p.text) }

func (p *parser) peek() byte { return p.text[p.pos] }

// parseAny parses a composite or an atom at the current position —
// the "any" production of the wire grammar.
func (p *parser) parseAny() (model.Value, error) {
	if p.atEnd() {
		return nil, model.NewParseError(model.ErrEmptyValue, p.pos, "unexpected end of input")
	}
	if p.peek() == '(' {
		return p.parseComposite()
	}
	return p.readAtom()
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > MaxNestingDepth {
		return model.NewParseError(model.ErrNestingTooDeep, p.pos,
			"composite nesting exceeds %d levels", MaxNestingDepth)
	}
	return nil
}

func (p *parser) leave() { p.depth-- }
