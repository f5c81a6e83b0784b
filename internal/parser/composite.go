package parser

import (
	"github.com/cdleonard/jsonurl-go/internal/lexer"
	"github.com/cdleonard/jsonurl-go/internal/model"
)

// readDictKey reads an atom in a position where only a mapping key is
// grammatically possible, raising the more specific ErrMissingKey
// instead of readAtom's generic ErrEmptyValue when nothing is there.
func (p *parser) readDictKey() (model.Value, error) {
	if p.atEnd() || lexer.IsStructural(p.peek()) {
		return nil, model.NewParseError(model.ErrMissingKey, p.pos, "missing key")
	}
	return p.readAtom()
}

// parseDictValue parses an "any" in a position where only a mapping
// value is grammatically possible, raising the more specific
// ErrMissingValue instead of parseAny's generic ErrEmptyValue when
// nothing is there.
func (p *parser) parseDictValue() (model.Value, error) {
	if p.atEnd() || (p.peek() != '(' && lexer.IsStructural(p.peek())) {
		return nil, model.NewParseError(model.ErrMissingValue, p.pos, "missing value")
	}
	return p.parseAny()
}

// atEndOfBody reports whether the cursor has reached the terminator for
// the composite currently being parsed: ")" for a parenthesized
// composite, or end of input for an implied top-level body.
func (p *parser) atEndOfBody(parenthesized bool) bool {
	if parenthesized {
		return p.atEnd() || p.peek() == ')'
	}
	return p.atEnd()
}

// parseComposite parses a full "(" composite-body ")" per spec.md §4.D,
// disambiguating list vs. mapping vs. the distinguish_empty_list_dict
// empty forms by looking one token ahead.
func (p *parser) parseComposite() (model.Value, error) {
	openPos := p.pos
	p.pos++ // consume '('
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.atEnd() {
		return nil, model.NewParseError(model.ErrUnterminatedComposite, openPos, "unterminated composite")
	}

	switch p.peek() {
	case ')':
		p.pos++
		if p.opts.DistinguishEmptyListDict {
			return model.NewList(), nil
		}
		return model.NewDict(), nil

	case ':':
		if !p.opts.DistinguishEmptyListDict {
			return nil, model.NewParseError(model.ErrUnexpectedChar, p.pos, "unexpected ':'")
		}
		p.pos++
		if p.atEnd() || p.peek() != ')' {
			return nil, model.NewParseError(model.ErrUnterminatedComposite, openPos, "unterminated composite")
		}
		p.pos++
		return model.NewDict(), nil

	case '(':
		first, err := p.parseAny()
		if err != nil {
			return nil, err
		}
		list, err := p.parseListTail(true, first)
		if err != nil {
			return nil, err
		}
		return list, nil
	}

	key, err := p.readAtom()
	if err != nil {
		return nil, err
	}
	if p.atEnd() {
		return nil, model.NewParseError(model.ErrUnterminatedComposite, openPos, "unterminated composite")
	}
	switch p.peek() {
	case ':':
		p.pos++
		value, err := p.parseDictValue()
		if err != nil {
			return nil, err
		}
		return p.parseDictTail(true, key, value)
	case ',', ')':
		return p.parseListTail(true, key)
	default:
		return nil, model.NewParseError(model.ErrUnexpectedChar, p.pos, "unexpected %q", p.peek())
	}
}

// parseListTail consumes the trailing ("," any)* of a list and the
// closing ")" (when parenthesized), given the already-parsed first
// element.
func (p *parser) parseListTail(parenthesized bool, first model.Value) (model.Value, error) {
	items := []model.Value{first}
	for {
		if p.atEndOfBody(parenthesized) {
			break
		}
		if p.atEnd() || p.peek() != ',' {
			return nil, model.NewParseError(model.ErrUnexpectedChar, p.pos, "expected ',' or ')'")
		}
		p.pos++
		v, err := p.parseAny()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if parenthesized {
		if p.atEnd() {
			return nil, model.NewParseError(model.ErrUnterminatedComposite, p.pos, "unterminated composite")
		}
		p.pos++ // consume ')'
	}
	return model.NewList(items...), nil
}

// parseDictTail consumes the trailing ("," atom ":" any)* of a mapping
// and the closing ")" (when parenthesized), given the already-parsed
// first key/value pair.
func (p *parser) parseDictTail(parenthesized bool, firstKey, firstValue model.Value) (model.Value, error) {
	d := model.NewDict()
	d.Set(firstKey, firstValue)
	for {
		if p.atEndOfBody(parenthesized) {
			break
		}
		if p.atEnd() || p.peek() != ',' {
			return nil, model.NewParseError(model.ErrUnexpectedChar, p.pos, "expected ',' or ')'")
		}
		p.pos++
		key, err := p.readDictKey()
		if err != nil {
			return nil, err
		}
		if p.atEnd() || p.peek() != ':' {
			return nil, model.NewParseError(model.ErrMissingColon, p.pos, "expected ':' after key")
		}
		p.pos++
		value, err := p.parseDictValue()
		if err != nil {
			return nil, err
		}
		d.Set(key, value)
	}
	if parenthesized {
		if p.atEnd() {
			return nil, model.NewParseError(model.ErrUnterminatedComposite, p.pos, "unterminated composite")
		}
		p.pos++ // consume ')'
	}
	return d, nil
}

// parseListBody parses an implied-list top-level body (spec.md §4.D):
// no surrounding parens, terminated by end of input, empty input is [].
func (p *parser) parseListBody() (model.Value, error) {
	if p.atEnd() {
		return model.NewList(), nil
	}
	first, err := p.parseAny()
	if err != nil {
		return nil, err
	}
	return p.parseListTail(false, first)
}

// parseDictBody parses an implied-dict top-level body (spec.md §4.D):
// no surrounding parens, terminated by end of input, empty input is {}.
func (p *parser) parseDictBody() (model.Value, error) {
	if p.atEnd() {
		return model.NewDict(), nil
	}
	key, err := p.readDictKey()
	if err != nil {
		return nil, err
	}
	if p.atEnd() || p.peek() != ':' {
		return nil, model.NewParseError(model.ErrMissingColon, p.pos, "expected ':' after key")
	}
	p.pos++
	value, err := p.parseDictValue()
	if err != nil {
		return nil, err
	}
	return p.parseDictTail(false, key, value)
}
