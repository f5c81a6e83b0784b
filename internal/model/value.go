package model

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant of the JSON data model a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the tagged union at the core of the JSON data model: exactly one
// of Null, Bool, Int, Float, Str, List or *Dict implements it at a time.
// Callers exhaustively switch on Kind() rather than type-asserting blindly.
type Value interface {
	Kind() Kind

	// canonicalKey returns the tagged text form used to index a Dict entry.
	// Only atoms (every Kind but List/Dict) can appear as a key, since the
	// grammar only ever parses an atom on the key side of "atom : any".
	canonicalKey() string
}

// NullValue represents the JSON null.
type NullValue struct{}

func (NullValue) Kind() Kind          { return KindNull }
func (NullValue) canonicalKey() string { return "n" }

// Null is the singleton null value.
var Null Value = NullValue{}

// BoolValue represents a JSON boolean.
type BoolValue bool

func (BoolValue) Kind() Kind { return KindBool }
func (b BoolValue) canonicalKey() string {
	if b {
		return "b:true"
	}
	return "b:false"
}

// Bool constructs a boolean Value.
func Bool(b bool) Value { return BoolValue(b) }

// IntValue represents a JSON integer.
type IntValue int64

func (IntValue) Kind() Kind              { return KindInt }
func (i IntValue) canonicalKey() string  { return "i:" + strconv.FormatInt(int64(i), 10) }

// Int constructs an integer Value.
func Int(i int64) Value { return IntValue(i) }

// FloatValue represents a JSON floating-point number.
type FloatValue float64

func (FloatValue) Kind() Kind { return KindFloat }
func (f FloatValue) canonicalKey() string {
	return "f:" + strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Float constructs a floating-point Value.
func Float(f float64) Value { return FloatValue(f) }

// StringValue represents a JSON string.
type StringValue string

func (StringValue) Kind() Kind            { return KindString }
func (s StringValue) canonicalKey() string { return "s:" + string(s) }

// Str constructs a string Value.
func Str(s string) Value { return StringValue(s) }

// ListValue represents an ordered sequence of Values.
type ListValue []Value

func (ListValue) Kind() Kind            { return KindList }
func (ListValue) canonicalKey() string  { panic("jsonurl: list cannot be used as a dict key") }

// NewList constructs a list Value from its elements.
func NewList(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return ListValue(items)
}

// IsNull, IsBool, ... are cheap Kind checks for callers that don't want to
// import the Kind constants directly.
func IsNull(v Value) bool   { return v.Kind() == KindNull }
func IsBool(v Value) bool   { return v.Kind() == KindBool }
func IsInt(v Value) bool    { return v.Kind() == KindInt }
func IsFloat(v Value) bool  { return v.Kind() == KindFloat }
func IsString(v Value) bool { return v.Kind() == KindString }
func IsList(v Value) bool   { return v.Kind() == KindList }
func IsDict(v Value) bool   { return v.Kind() == KindDict }

// AsBool, AsInt, ... are cheap accessors mirroring the Is* checks above,
// except that AsFloat also accepts an Int, widening it to float64.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(BoolValue)
	return bool(b), ok
}

func AsInt(v Value) (int64, bool) {
	i, ok := v.(IntValue)
	return int64(i), ok
}

func AsFloat(v Value) (float64, bool) {
	if f, ok := v.(FloatValue); ok {
		return float64(f), true
	}
	if i, ok := v.(IntValue); ok {
		return float64(i), true
	}
	return 0, false
}

func AsString(v Value) (string, bool) {
	s, ok := v.(StringValue)
	return string(s), ok
}

func AsList(v Value) ([]Value, bool) {
	l, ok := v.(ListValue)
	return []Value(l), ok
}

func AsDict(v Value) (*Dict, bool) {
	d, ok := v.(*Dict)
	return d, ok
}

// Equal reports value-model equality, used by the round-trip test suite
// (spec.md §8 invariant 1 treats mapping equality as order-insensitive).
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case NullValue:
		return true
	case BoolValue:
		return av == b.(BoolValue)
	case IntValue:
		return av == b.(IntValue)
	case FloatValue:
		return av == b.(FloatValue)
	case StringValue:
		return av == b.(StringValue)
	case ListValue:
		bv := b.(ListValue)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv := b.(*Dict)
		if av.Len() != bv.Len() {
			return false
		}
		for _, e := range av.entries {
			other, ok := bv.Get(e.Key)
			if !ok || !Equal(e.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
