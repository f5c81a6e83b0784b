package writer

import "github.com/cdleonard/jsonurl-go/internal/model"

// writeList renders a full "(" e1,e2,... ")" list, using "()" for the
// empty case (spec.md §4.D).
func (w *writer) writeList(items []model.Value) error {
	w.b.WriteByte('(')
	if err := w.writeListItems(items); err != nil {
		return err
	}
	w.b.WriteByte(')')
	return nil
}

// writeDict renders a full "(" k1:v1,k2:v2,... ")" mapping. The empty
// case writes "(:)" under distinguish_empty_list_dict and "()"
// otherwise, since without the option "()" already means empty dict.
func (w *writer) writeDict(d *model.Dict) error {
	if d.Len() == 0 {
		if w.opts.DistinguishEmptyListDict {
			w.b.WriteString("(:)")
		} else {
			w.b.WriteString("()")
		}
		return nil
	}
	w.b.WriteByte('(')
	if err := w.writeDictEntries(d); err != nil {
		return err
	}
	w.b.WriteByte(')')
	return nil
}

// writeListBody renders the comma-joined elements of an implied-list
// top level, with no surrounding parens (spec.md §4.D).
func (w *writer) writeListBody(items []model.Value) error {
	return w.writeListItems(items)
}

// writeDictBody renders the comma-joined "key:value" pairs of an
// implied-dict top level, with no surrounding parens.
func (w *writer) writeDictBody(d *model.Dict) error {
	return w.writeDictEntries(d)
}

func (w *writer) writeListItems(items []model.Value) error {
	for i, item := range items {
		if i > 0 {
			w.b.WriteByte(',')
		}
		if err := w.writeAny(item); err != nil {
			return err
		}
	}
	return nil
}

func (w *writer) writeDictEntries(d *model.Dict) error {
	for i, e := range d.Entries() {
		if i > 0 {
			w.b.WriteByte(',')
		}
		if err := w.writeAtom(e.Key); err != nil {
			return err
		}
		w.b.WriteByte(':')
		if err := w.writeAny(e.Value); err != nil {
			return err
		}
	}
	return nil
}
