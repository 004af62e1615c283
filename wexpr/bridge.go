package wexpr

import (
	"fmt"
	"math"
	"math/big"
	"sort"
)

// FromGo converts a native Go value into a wexpr value tree.
//
// Supported inputs: bool, all signed and unsigned integer widths, *big.Int,
// float32/float64, complex64/complex128, string, []any, map[string]any and
// []Entry (for order-sensitive associations). *Value passes through
// unchanged. map[string]any has no iteration order, so its keys are sorted
// for deterministic output; build the association from []Entry when
// insertion order matters.
//
// Anything else is an UnsupportedTypeError, reported before any emission
// can start.
func FromGo(v any) (*Value, error) {
	return fromGo(v, "$")
}

func fromGo(v any, path string) (*Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, &UnsupportedTypeError{Path: path, Got: "nil"}

	case *Value:
		return val, nil

	case bool:
		return Bool(val), nil

	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil

	case uint:
		return fromUint64(uint64(val)), nil
	case uint8:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case uint64:
		return fromUint64(val), nil

	case *big.Int:
		return BigInt(val), nil

	case float32:
		return Real(float64(val)), nil
	case float64:
		return Real(val), nil

	case complex64:
		return Complex(complex128(val)), nil
	case complex128:
		return Complex(val), nil

	case string:
		return Str(val), nil

	case []any:
		elems := make([]*Value, len(val))
		for i, elem := range val {
			gv, err := fromGo(elem, listPath(path, i))
			if err != nil {
				return nil, err
			}
			elems[i] = gv
		}
		return List(elems...), nil

	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			gv, err := fromGo(val[k], path+"."+k)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Rule(Str(k), gv))
		}
		return Assoc(entries...), nil

	case []Entry:
		return Assoc(val...), nil

	default:
		return nil, &UnsupportedTypeError{Path: path, Got: describeGo(v)}
	}
}

// fromUint64 keeps values above math.MaxInt64 exact instead of wrapping.
func fromUint64(v uint64) *Value {
	if v > math.MaxInt64 {
		return BigInt(new(big.Int).SetUint64(v))
	}
	return Int(int64(v))
}

func listPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func describeGo(v any) string {
	return fmt.Sprintf("Go value of type %T", v)
}
