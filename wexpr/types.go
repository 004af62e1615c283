package wexpr

import (
	"fmt"
	"math/big"
)

// Kind represents wexpr value kinds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindReal
	KindComplex
	KindStr
	KindList
	KindSet
	KindAssoc
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindComplex:
		return "complex"
	case KindStr:
		return "str"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindAssoc:
		return "assoc"
	default:
		return "invalid"
	}
}

// Value represents a wexpr value.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal bool
	intVal  int64
	bigVal  *big.Int // non-nil only for integers outside int64
	realVal float64
	cplxVal complex128
	strVal  string

	// Container values (listVal doubles for sets)
	listVal  []*Value
	assocVal []Entry
}

// Entry represents a key-value pair in an association.
// Keys are restricted to str, int and bool values.
type Entry struct {
	Key   *Value
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// BigInt creates an arbitrary-precision integer value.
// The argument is copied, so callers may keep mutating it.
func BigInt(v *big.Int) *Value {
	if v.IsInt64() {
		return Int(v.Int64())
	}
	return &Value{kind: KindInt, bigVal: new(big.Int).Set(v)}
}

// Real creates a real (floating point) value.
func Real(v float64) *Value {
	return &Value{kind: KindReal, realVal: v}
}

// Complex creates a complex value.
func Complex(v complex128) *Value {
	return &Value{kind: KindComplex, cplxVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindStr, strVal: v}
}

// List creates an ordered list value.
func List(values ...*Value) *Value {
	return &Value{kind: KindList, listVal: values}
}

// Set creates an unordered-collection value. Elements keep their insertion
// order on emission; uniqueness is the caller's concern.
func Set(values ...*Value) *Value {
	return &Value{kind: KindSet, listVal: values}
}

// Assoc creates an association from key-value entries, preserving order.
func Assoc(entries ...Entry) *Value {
	return &Value{kind: KindAssoc, assocVal: entries}
}

// Rule creates an association entry (a key -> value rule).
func Rule(key, value *Value) Entry {
	return Entry{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindInvalid
	}
	return v.kind
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil || v.kind != KindBool {
		return false, fmt.Errorf("wexpr: expected bool, got %s", v.Kind())
	}
	return v.boolVal, nil
}

// AsInt returns the integer value. Integers outside the int64 range
// report an error; use AsBigInt for those.
func (v *Value) AsInt() (int64, error) {
	if v == nil || v.kind != KindInt {
		return 0, fmt.Errorf("wexpr: expected int, got %s", v.Kind())
	}
	if v.bigVal != nil {
		return 0, fmt.Errorf("wexpr: integer %s overflows int64", v.bigVal)
	}
	return v.intVal, nil
}

// AsBigInt returns the integer value as a big.Int copy.
func (v *Value) AsBigInt() (*big.Int, error) {
	if v == nil || v.kind != KindInt {
		return nil, fmt.Errorf("wexpr: expected int, got %s", v.Kind())
	}
	if v.bigVal != nil {
		return new(big.Int).Set(v.bigVal), nil
	}
	return big.NewInt(v.intVal), nil
}

// AsReal returns the real value.
func (v *Value) AsReal() (float64, error) {
	if v == nil || v.kind != KindReal {
		return 0, fmt.Errorf("wexpr: expected real, got %s", v.Kind())
	}
	return v.realVal, nil
}

// AsComplex returns the complex value.
func (v *Value) AsComplex() (complex128, error) {
	if v == nil || v.kind != KindComplex {
		return 0, fmt.Errorf("wexpr: expected complex, got %s", v.Kind())
	}
	return v.cplxVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v == nil || v.kind != KindStr {
		return "", fmt.Errorf("wexpr: expected str, got %s", v.Kind())
	}
	return v.strVal, nil
}

// AsList returns the elements of a list or set value.
func (v *Value) AsList() ([]*Value, error) {
	if v == nil || (v.kind != KindList && v.kind != KindSet) {
		return nil, fmt.Errorf("wexpr: expected list or set, got %s", v.Kind())
	}
	return v.listVal, nil
}

// AsAssoc returns the entries of an association value.
func (v *Value) AsAssoc() ([]Entry, error) {
	if v == nil || v.kind != KindAssoc {
		return nil, fmt.Errorf("wexpr: expected assoc, got %s", v.Kind())
	}
	return v.assocVal, nil
}
