package jsonurl

import "github.com/cdleonard/jsonurl-go/internal/model"

// Value is the tagged union at the core of the JSON data model: every
// value is exactly one of null, bool, int, float, string, list or dict.
type Value = model.Value

// Kind identifies which variant of the data model a Value holds.
type Kind = model.Kind

const (
	KindNull   = model.KindNull
	KindBool   = model.KindBool
	KindInt    = model.KindInt
	KindFloat  = model.KindFloat
	KindString = model.KindString
	KindList   = model.KindList
	KindDict   = model.KindDict
)

// Null is the singleton null Value.
var Null = model.Null

// Bool, Int, Float, Str construct atom Values.
func Bool(b bool) Value     { return model.Bool(b) }
func Int(i int64) Value     { return model.Int(i) }
func Float(f float64) Value { return model.Float(f) }
func Str(s string) Value    { return model.Str(s) }

// NewList constructs a list Value from its elements.
func NewList(items ...Value) Value { return model.NewList(items...) }

// Dict is an insertion-ordered mapping from an arbitrary atom Value to a
// Value: last write wins on value, first write wins on position.
type Dict = model.Dict

// DictEntry is one key/value pair of a Dict, in insertion order.
type DictEntry = model.DictEntry

// NewDict constructs an empty, insertion-ordered Dict.
func NewDict() *Dict { return model.NewDict() }

// IsNull, IsBool, ... are cheap Kind checks.
func IsNull(v Value) bool   { return model.IsNull(v) }
func IsBool(v Value) bool   { return model.IsBool(v) }
func IsInt(v Value) bool    { return model.IsInt(v) }
func IsFloat(v Value) bool  { return model.IsFloat(v) }
func IsString(v Value) bool { return model.IsString(v) }
func IsList(v Value) bool   { return model.IsList(v) }
func IsDict(v Value) bool   { return model.IsDict(v) }

// AsBool, AsInt, ... are cheap accessors mirroring the Is* checks above,
// except that AsFloat also accepts an Int, widening it to float64.
func AsBool(v Value) (bool, bool)       { return model.AsBool(v) }
func AsInt(v Value) (int64, bool)       { return model.AsInt(v) }
func AsFloat(v Value) (float64, bool)   { return model.AsFloat(v) }
func AsString(v Value) (string, bool)   { return model.AsString(v) }
func AsList(v Value) ([]Value, bool)    { return model.AsList(v) }
func AsDict(v Value) (*Dict, bool)      { return model.AsDict(v) }

// Equal reports value-model equality: lists compare element-wise in
// order, dicts compare by key/value pairs regardless of order.
func Equal(a, b Value) bool { return model.Equal(a, b) }
