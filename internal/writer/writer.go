// Package writer implements the encode half of the atom, composite and
// AQF layers (spec.md §4.C, §4.D, §4.E): it renders a model.Value tree
// as JSONURL text.
package writer

import (
	"strings"

	"github.com/cdleonard/jsonurl-go/internal/model"
)

// Write renders v as JSONURL text under opts.
func Write(v model.Value, opts model.Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	w := &writer{b: &b, opts: opts}

	switch {
	case opts.ImpliedList:
		list, ok := model.AsList(v)
		if !ok {
			return "", model.NewEncodeError(model.ErrUnsupportedValueKind,
				"implied_list requires a list value, got %s", v.Kind())
		}
		if err := w.writeListBody(list); err != nil {
			return "", err
		}
	case opts.ImpliedDict:
		d, ok := model.AsDict(v)
		if !ok {
			return "", model.NewEncodeError(model.ErrUnsupportedValueKind,
				"implied_dict requires a dict value, got %s", v.Kind())
		}
		if err := w.writeDictBody(d); err != nil {
			return "", err
		}
	default:
		if err := w.writeAny(v); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// writer holds the encode-side state: the output builder and the active
// Options. Unlike the parser it carries no cursor or depth counter —
// recursion depth is bounded only by the input value's own shape, which
// the caller controls.
type writer struct {
	b    *strings.Builder
	opts model.Options
}

func (w *writer) writeAny(v model.Value) error {
	switch v.Kind() {
	case model.KindList:
		list, _ := model.AsList(v)
		return w.writeList(list)
	case model.KindDict:
		d, _ := model.AsDict(v)
		return w.writeDict(d)
	default:
		return w.writeAtom(v)
	}
}
