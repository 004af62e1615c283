package wexpr

import (
	"fmt"
	"math"
	"strings"
)

// UnsupportedTypeError reports a value outside the closed wexpr union,
// including non-finite reals, which the notation cannot represent.
type UnsupportedTypeError struct {
	Path string // path to the offending value, $ is the root
	Got  string // description of what was found
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("wexpr: unsupported value at %s: %s", e.Path, e.Got)
}

// KeyOrderMismatchError reports an explicit key order that is not an exact
// permutation of the association's key set.
type KeyOrderMismatchError struct {
	Missing []string // keys in the association but not in the order
	Extra   []string // keys in the order but not in the association
	Reason  string   // set when the mismatch is structural, not per-key
}

func (e *KeyOrderMismatchError) Error() string {
	if e.Reason != "" {
		return "wexpr: key order mismatch: " + e.Reason
	}
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "keys not in order: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "ordered keys not in association: "+strings.Join(e.Extra, ", "))
	}
	return "wexpr: key order mismatch: " + strings.Join(parts, "; ")
}

// SymbolError reports a string that cannot stand as a bare symbol while the
// Symbols option is active.
type SymbolError struct {
	Path  string
	Token string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("wexpr: %q at %s is not a valid bare symbol", e.Token, e.Path)
}

// validate walks the whole tree before any emission, so a bad value can
// never leave partial output behind.
func validate(v *Value, opts Options) error {
	if err := checkKeyOrder(v, opts.KeyOrder); err != nil {
		return err
	}
	return checkValue(v, opts, "$")
}

func checkValue(v *Value, opts Options, path string) error {
	if v == nil {
		return &UnsupportedTypeError{Path: path, Got: "nil value"}
	}

	switch v.kind {
	case KindBool, KindInt:
		return nil

	case KindReal:
		if !isFinite(v.realVal) {
			return &UnsupportedTypeError{Path: path, Got: "non-finite real"}
		}
		return nil

	case KindComplex:
		if !isFinite(real(v.cplxVal)) || !isFinite(imag(v.cplxVal)) {
			return &UnsupportedTypeError{Path: path, Got: "non-finite complex component"}
		}
		return nil

	case KindStr:
		if opts.Symbols && !isValidSymbol(v.strVal) {
			return &SymbolError{Path: path, Token: v.strVal}
		}
		return nil

	case KindList, KindSet:
		for i, elem := range v.listVal {
			if err := checkValue(elem, opts, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil

	case KindAssoc:
		seen := make(map[string]struct{}, len(v.assocVal))
		for i, entry := range v.assocVal {
			kpath := fmt.Sprintf("%s.<key %d>", path, i)
			if err := checkKey(entry.Key, opts, kpath); err != nil {
				return err
			}
			id := keyID(entry.Key)
			if _, dup := seen[id]; dup {
				return &UnsupportedTypeError{Path: kpath, Got: "duplicate key " + keyLabel(entry.Key)}
			}
			seen[id] = struct{}{}
			vpath := path + "." + keyLabel(entry.Key)
			if err := checkValue(entry.Value, opts, vpath); err != nil {
				return err
			}
		}
		return nil

	default:
		return &UnsupportedTypeError{Path: path, Got: "kind " + v.kind.String()}
	}
}

func checkKey(k *Value, opts Options, path string) error {
	if k == nil {
		return &UnsupportedTypeError{Path: path, Got: "nil key"}
	}
	switch k.kind {
	case KindStr:
		if opts.Symbols && !isValidSymbol(k.strVal) {
			return &SymbolError{Path: path, Token: k.strVal}
		}
		return nil
	case KindInt, KindBool:
		return nil
	default:
		return &UnsupportedTypeError{Path: path, Got: k.kind.String() + " key"}
	}
}

// checkKeyOrder enforces the explicit-order contract: the order must exist
// only alongside a top-level association, and its key set must equal the
// association's key set exactly. Implemented as a pre-pass set comparison so
// the caller gets one error, not a mid-traversal surprise.
func checkKeyOrder(v *Value, order []*Value) error {
	if order == nil {
		return nil
	}
	if v == nil || v.kind != KindAssoc {
		return &KeyOrderMismatchError{Reason: "explicit key order given for a non-association value"}
	}

	actual := make(map[string]struct{}, len(v.assocVal))
	for _, entry := range v.assocVal {
		if entry.Key == nil {
			continue // reported by checkValue
		}
		actual[keyID(entry.Key)] = struct{}{}
	}

	ordered := make(map[string]struct{}, len(order))
	var extra []string
	for _, k := range order {
		if k == nil {
			return &KeyOrderMismatchError{Reason: "nil key in explicit order"}
		}
		id := keyID(k)
		if _, dup := ordered[id]; dup {
			return &KeyOrderMismatchError{Reason: "duplicate key " + keyLabel(k) + " in explicit order"}
		}
		ordered[id] = struct{}{}
		if _, ok := actual[id]; !ok {
			extra = append(extra, keyLabel(k))
		}
	}

	var missing []string
	for _, entry := range v.assocVal {
		if entry.Key == nil {
			continue
		}
		if _, ok := ordered[keyID(entry.Key)]; !ok {
			missing = append(missing, keyLabel(entry.Key))
		}
	}

	if len(missing) > 0 || len(extra) > 0 {
		return &KeyOrderMismatchError{Missing: missing, Extra: extra}
	}
	return nil
}

// keyID is a kind-qualified identity for key comparison, so Int(1) and
// Str("1") stay distinct keys.
func keyID(k *Value) string {
	switch k.kind {
	case KindBool:
		return "b:" + canonBool(k.boolVal)
	case KindInt:
		return "i:" + canonInt(k)
	case KindStr:
		return "s:" + k.strVal
	default:
		return "?:" + k.kind.String()
	}
}

// keyLabel renders a key for error messages.
func keyLabel(k *Value) string {
	switch k.kind {
	case KindBool:
		return canonBool(k.boolVal)
	case KindInt:
		return canonInt(k)
	case KindStr:
		return canonString(k.strVal)
	default:
		return k.kind.String()
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
