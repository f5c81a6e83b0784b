// Package jsonadapter bridges the JSON data model's standard-library
// representation and the jsonurl Value tree the codec operates on. It
// exists because encoding/json's default decoding into interface{}
// collapses objects into map[string]interface{}, losing key order —
// order the JSONURL Dict type is required to preserve.
package jsonadapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cdleonard/jsonurl-go/internal/model"
)

// FromJSON parses a JSON document into a Value, preserving object key
// order via a Dict rather than collapsing into an unordered map.
func FromJSON(data []byte) (model.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("jsonadapter: trailing data after JSON value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (model.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (model.Value, error) {
	switch t := tok.(type) {
	case nil:
		return model.Null, nil
	case bool:
		return model.Bool(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return model.Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("jsonadapter: invalid number %q: %w", t.String(), err)
		}
		return model.Float(f), nil
	case string:
		return model.Str(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		default:
			return nil, fmt.Errorf("jsonadapter: unexpected delimiter %q", t)
		}
	default:
		return nil, fmt.Errorf("jsonadapter: unsupported JSON token %T", tok)
	}
}

func decodeArray(dec *json.Decoder) (model.Value, error) {
	items := []model.Value{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return model.NewList(items...), nil
}

func decodeObject(dec *json.Decoder) (model.Value, error) {
	d := model.NewDict()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("jsonadapter: object key is not a string: %v", keyTok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		d.Set(model.Str(key), value)
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return d, nil
}
