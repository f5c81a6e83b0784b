package jsonadapter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cdleonard/jsonurl-go/internal/model"
)

// ToJSON renders a Value as a JSON document. An empty indent produces
// compact output; any other indent string (e.g. two spaces) produces
// json.MarshalIndent-style pretty output with that indent per level.
func ToJSON(v model.Value, indent string) ([]byte, error) {
	var b strings.Builder
	if err := writeJSON(&b, v, indent, 0); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func writeJSON(b *strings.Builder, v model.Value, indent string, depth int) error {
	switch v.Kind() {
	case model.KindNull:
		b.WriteString("null")
	case model.KindBool:
		bv, _ := model.AsBool(v)
		if bv {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case model.KindInt:
		i, _ := model.AsInt(v)
		b.WriteString(strconv.FormatInt(i, 10))
	case model.KindFloat:
		f, _ := model.AsFloat(v)
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case model.KindString:
		s, _ := model.AsString(v)
		encoded, err := json.Marshal(s)
		if err != nil {
			return err
		}
		b.Write(encoded)
	case model.KindList:
		items, _ := model.AsList(v)
		return writeJSONArray(b, items, indent, depth)
	case model.KindDict:
		d, _ := model.AsDict(v)
		return writeJSONObject(b, d, indent, depth)
	default:
		return fmt.Errorf("jsonadapter: unsupported value kind %s", v.Kind())
	}
	return nil
}

func writeJSONArray(b *strings.Builder, items []model.Value, indent string, depth int) error {
	if len(items) == 0 {
		b.WriteString("[]")
		return nil
	}
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		writeNewlineIndent(b, indent, depth+1)
		if err := writeJSON(b, item, indent, depth+1); err != nil {
			return err
		}
	}
	writeNewlineIndent(b, indent, depth)
	b.WriteByte(']')
	return nil
}

func writeJSONObject(b *strings.Builder, d *model.Dict, indent string, depth int) error {
	entries := d.Entries()
	if len(entries) == 0 {
		b.WriteString("{}")
		return nil
	}
	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteByte(',')
		}
		writeNewlineIndent(b, indent, depth+1)
		key, err := jsonKeyText(e.Key)
		if err != nil {
			return err
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return err
		}
		b.Write(encodedKey)
		b.WriteByte(':')
		if indent != "" {
			b.WriteByte(' ')
		}
		if err := writeJSON(b, e.Value, indent, depth+1); err != nil {
			return err
		}
	}
	writeNewlineIndent(b, indent, depth)
	b.WriteByte('}')
	return nil
}

func writeNewlineIndent(b *strings.Builder, indent string, depth int) {
	if indent == "" {
		return
	}
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
}

// jsonKeyText renders a Dict key atom as the string a JSON object key
// must be, since JSON keys are always strings even though a JSONURL
// dict key may be any atom.
func jsonKeyText(key model.Value) (string, error) {
	switch key.Kind() {
	case model.KindNull:
		return "null", nil
	case model.KindBool:
		b, _ := model.AsBool(key)
		if b {
			return "true", nil
		}
		return "false", nil
	case model.KindInt:
		i, _ := model.AsInt(key)
		return strconv.FormatInt(i, 10), nil
	case model.KindFloat:
		f, _ := model.AsFloat(key)
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case model.KindString:
		s, _ := model.AsString(key)
		return s, nil
	default:
		return "", fmt.Errorf("jsonadapter: value of kind %s cannot be a dict key", key.Kind())
	}
}
