package wexpr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
)

// FromJSON converts JSON bytes to a wexpr value.
//
// Numbers are decoded without a float round-trip: integer literals of any
// size stay exact integers, everything else becomes a real. JSON null has
// no counterpart in the notation and is rejected. Object keys are sorted
// (JSON objects carry no order of their own).
func FromJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("wexpr: JSON parse error: %w", err)
	}
	return fromJSONValue(v, "$")
}

func fromJSONValue(v any, path string) (*Value, error) {
	switch val := v.(type) {
	case nil:
		return nil, &UnsupportedTypeError{Path: path, Got: "JSON null"}

	case bool:
		return Bool(val), nil

	case json.Number:
		return fromJSONNumber(val, path)

	case string:
		return Str(val), nil

	case []any:
		elems := make([]*Value, len(val))
		for i, elem := range val {
			gv, err := fromJSONValue(elem, listPath(path, i))
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
			gv, err := fromJSONValue(val[k], path+"."+k)
			if err != nil {
				return nil, err
			}
			entries = append(entries, Rule(Str(k), gv))
		}
		return Assoc(entries...), nil

	default:
		return nil, &UnsupportedTypeError{Path: path, Got: describeGo(v)}
	}
}

func fromJSONNumber(n json.Number, path string) (*Value, error) {
	if i, ok := new(big.Int).SetString(n.String(), 10); ok {
		return BigInt(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, &UnsupportedTypeError{Path: path, Got: "unrepresentable number " + n.String()}
	}
	return Real(f), nil
}
