package tomledit

import (
	"fmt"
	"strconv"
)

// ValueKind identifies which variant of the closed Value union a node is
// (§3.1).
type ValueKind int

const (
	KindString ValueKind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindDatetime
	KindArray
	KindInlineTable
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindDatetime:
		return "Datetime"
	case KindArray:
		return "Array"
	case KindInlineTable:
		return "InlineTable"
	default:
		return "Unknown"
	}
}

// Value is the closed tagged union of scalar and inline-composite values
// (§3.1). String, integer, float and datetime scalars carry Repr, the
// verbatim source literal, in addition to their parsed representation;
// booleans have no Repr and render from their parsed value. Array and
// InlineTable are composite and carry their own entries.
type Value interface {
	Kind() ValueKind
	Decor() *Decor
	render() string
}

// StringValue is a TOML string value.
type StringValue struct {
	Parsed string
	repr   Repr
	decor  Decor
}

// NewStringValue wraps a Go string with no source representation; render
// will synthesize a basic-string literal for it.
func NewStringValue(s string) *StringValue { return &StringValue{Parsed: s} }

func (v *StringValue) Kind() ValueKind { return KindString }
func (v *StringValue) Decor() *Decor   { return &v.decor }
func (v *StringValue) Repr() Repr      { return v.repr }
func (v *StringValue) SetRepr(r Repr)  { v.repr = r }
func (v *StringValue) render() string {
	if text, ok := v.repr.Text(); ok {
		return text
	}
	return quoteBasicString(v.Parsed)
}

// IntegerValue is a TOML integer value.
type IntegerValue struct {
	Parsed int64
	repr   Repr
	decor  Decor
}

func NewIntegerValue(i int64) *IntegerValue { return &IntegerValue{Parsed: i} }

func (v *IntegerValue) Kind() ValueKind  { return KindInteger }
func (v *IntegerValue) Decor() *Decor    { return &v.decor }
func (v *IntegerValue) Repr() Repr       { return v.repr }
func (v *IntegerValue) SetRepr(r Repr)   { v.repr = r }
func (v *IntegerValue) render() string {
	if text, ok := v.repr.Text(); ok {
		return text
	}
	return strconv.FormatInt(v.Parsed, 10)
}

// FloatValue is a TOML float value.
type FloatValue struct {
	Parsed float64
	repr   Repr
	decor  Decor
}

func NewFloatValue(f float64) *FloatValue { return &FloatValue{Parsed: f} }

func (v *FloatValue) Kind() ValueKind { return KindFloat }
func (v *FloatValue) Decor() *Decor   { return &v.decor }
func (v *FloatValue) Repr() Repr      { return v.repr }
func (v *FloatValue) SetRepr(r Repr)  { v.repr = r }
func (v *FloatValue) render() string {
	if text, ok := v.repr.Text(); ok {
		return text
	}
	return strconv.FormatFloat(v.Parsed, 'g', -1, 64)
}

// BooleanValue is a TOML boolean value.
type BooleanValue struct {
	Parsed bool
	decor  Decor
}

func NewBooleanValue(b bool) *BooleanValue { return &BooleanValue{Parsed: b} }

func (v *BooleanValue) Kind() ValueKind { return KindBoolean }
func (v *BooleanValue) Decor() *Decor   { return &v.decor }
func (v *BooleanValue) render() string {
	if v.Parsed {
		return "true"
	}
	return "false"
}

// DatetimeValue is a TOML offset/local date-time, local date, or local
// time value (§2, localtime.go).
type DatetimeValue struct {
	Parsed Datetime
	repr   Repr
	decor  Decor
}

func NewDatetimeValue(d Datetime) *DatetimeValue { return &DatetimeValue{Parsed: d} }

func (v *DatetimeValue) Kind() ValueKind { return KindDatetime }
func (v *DatetimeValue) Decor() *Decor   { return &v.decor }
func (v *DatetimeValue) Repr() Repr      { return v.repr }
func (v *DatetimeValue) SetRepr(r Repr)  { v.repr = r }
func (v *DatetimeValue) render() string {
	if text, ok := v.repr.Text(); ok {
		return text
	}
	return v.Parsed.String()
}

// NewValue wraps a native Go scalar into a Value with empty decor and no
// repr, to be synthesized at render time — the generic equivalent of
// picking the right NewXxxValue constructor by hand (§4.4 value(x)).
func NewValue(x interface{}) (Value, error) {
	return value(x)
}

// value is the internal entry point NewValue and GetOrInsert's default
// both funnel through.
func value(x interface{}) (Value, error) {
	switch v := x.(type) {
	case string:
		return NewStringValue(v), nil
	case int:
		return NewIntegerValue(int64(v)), nil
	case int64:
		return NewIntegerValue(v), nil
	case float64:
		return NewFloatValue(v), nil
	case bool:
		return NewBooleanValue(v), nil
	case Datetime:
		return NewDatetimeValue(v), nil
	case Value:
		return v, nil
	default:
		return nil, fmt.Errorf("tomledit: value: unsupported type %T", x)
	}
}

// Decorated attaches literal prefix/suffix trivia to a value and returns
// it, for fluent construction (§4.4): e.g.
// array.PushFormatted(Decorated(NewStringValue("x"), "  ", "")).
func Decorated(v Value, prefix, suffix string) Value {
	*v.Decor() = NewDecor(prefix, suffix)
	return v
}

// RenderValue returns v's canonical textual form — the same bytes
// rendering writes for `key = value` or an array/inline-table entry —
// without v's own leading/trailing Decor.
func RenderValue(v Value) string { return v.render() }

// sameKind reports whether two values share a variant tag, the basis of
// Array's homogeneity invariant (§3.1, §4.7).
func sameKind(a, b Value) bool { return a.Kind() == b.Kind() }
