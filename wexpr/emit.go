package wexpr

import (
	"strings"
)

// DefaultPrecision is the number of fractional digits kept in scientific
// notation when the caller does not say otherwise.
const DefaultPrecision = 5

// Options configures the emitter.
type Options struct {
	// Precision is the number of fractional digits in scientific notation.
	Precision int

	// KeepIntegers emits integral reals (and integral complex components)
	// as plain integer literals instead of scientific notation.
	KeepIntegers bool

	// Symbols emits strings as bare symbols instead of quoted literals.
	// Strings that are not valid symbols become a SymbolError.
	Symbols bool

	// KeyOrder overrides the entry order of the top-level association.
	// It must be an exact permutation of that association's keys.
	// Nested associations always keep insertion order.
	KeyOrder []*Value
}

// DefaultOptions returns the standard emitter configuration.
func DefaultOptions() Options {
	return Options{
		Precision:    DefaultPrecision,
		KeepIntegers: true,
		Symbols:      false,
	}
}

// Emit converts a value to Wolfram notation using DefaultOptions.
func Emit(v *Value) (string, error) {
	return EmitWithOptions(v, DefaultOptions())
}

// EmitWithOptions converts a value to Wolfram notation. The whole tree is
// validated before the first byte is produced: on error the output is
// always empty, never partial.
func EmitWithOptions(v *Value, opts Options) (string, error) {
	if opts.Precision < 0 {
		opts.Precision = 0
	}
	if err := validate(v, opts); err != nil {
		return "", err
	}

	e := &emitter{opts: opts}
	if opts.KeyOrder != nil {
		e.emitAssocOrdered(v, opts.KeyOrder)
	} else {
		e.emit(v)
	}
	return e.sb.String(), nil
}

type emitter struct {
	sb   strings.Builder
	opts Options
}

func (e *emitter) emit(v *Value) {
	switch v.kind {
	case KindBool:
		e.sb.WriteString(canonBool(v.boolVal))

	case KindInt:
		e.sb.WriteString(canonInt(v))

	case KindReal:
		e.sb.WriteString(canonReal(v.realVal, e.opts.Precision, e.opts.KeepIntegers))

	case KindComplex:
		e.sb.WriteString(canonComplex(v.cplxVal, e.opts.Precision, e.opts.KeepIntegers))

	case KindStr:
		e.emitString(v.strVal)

	case KindList, KindSet:
		// Sets share list syntax; the notation has no unordered literal.
		e.emitList(v.listVal)

	case KindAssoc:
		e.emitEntries(v.assocVal)
	}
}

func (e *emitter) emitString(s string) {
	if e.opts.Symbols {
		e.sb.WriteString(s)
	} else {
		e.sb.WriteString(canonString(s))
	}
}

func (e *emitter) emitList(elems []*Value) {
	e.sb.WriteString("{")
	for i, elem := range elems {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.emit(elem)
	}
	e.sb.WriteString("}")
}

func (e *emitter) emitEntries(entries []Entry) {
	e.sb.WriteString("<|")
	for i, entry := range entries {
		if i > 0 {
			e.sb.WriteString(", ")
		}
		e.emitKey(entry.Key)
		e.sb.WriteString(" -> ")
		e.emit(entry.Value)
	}
	e.sb.WriteString("|>")
}

func (e *emitter) emitKey(k *Value) {
	switch k.kind {
	case KindStr:
		e.emitString(k.strVal)
	case KindInt:
		e.sb.WriteString(canonInt(k))
	case KindBool:
		e.sb.WriteString(canonBool(k.boolVal))
	}
}

// emitAssocOrdered emits the top-level association with its entries
// permuted into the explicit key order. Validation has already established
// that the order and the key set match exactly.
func (e *emitter) emitAssocOrdered(v *Value, order []*Value) {
	byID := make(map[string]Entry, len(v.assocVal))
	for _, entry := range v.assocVal {
		byID[keyID(entry.Key)] = entry
	}
	reordered := make([]Entry, 0, len(order))
	for _, k := range order {
		reordered = append(reordered, byID[keyID(k)])
	}
	e.emitEntries(reordered)
}
