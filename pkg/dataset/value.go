/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package dataset

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind is the semantic type tag of a cell value.
type Kind string

const (
	KindInteger   Kind = "integer"
	KindFloat     Kind = "float"
	KindString    Kind = "string"
	KindBoolean   Kind = "boolean"
	KindTimestamp Kind = "timestamp"
	KindNull      Kind = "null"
)

// Value is a single immutable cell in a dataset column. It carries one of the
// supported scalar kinds; use the constructor matching the native type.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
	t    time.Time
}

// Int returns an integer Value.
func Int(v int64) Value { return Value{kind: KindInteger, i: v} }

// Float returns a floating-point Value. NaN and infinities are representable;
// the validator treats NaN as a distinct mismatch case.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Str returns a string Value.
func Str(v string) Value { return Value{kind: KindString, s: v} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{kind: KindBoolean, b: v} }

// Time returns a timestamp Value.
func Time(v time.Time) Value { return Value{kind: KindTimestamp, t: v} }

// Null returns the null Value, representing an empty or missing cell.
func Null() Value { return Value{kind: KindNull} }

// Kind returns the semantic type tag of the value.
func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindNull
	}
	return v.kind
}

// IsNull reports whether the value is the null cell.
func (v Value) IsNull() bool { return v.Kind() == KindNull }

// IsNaN reports whether the value is a floating-point NaN.
func (v Value) IsNaN() bool { return v.kind == KindFloat && math.IsNaN(v.f) }

// Int64 returns the integer payload. The second return is false when the
// value is not an integer.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	return v.i, true
}

// Float64 returns the value as a float64, widening integers. The second
// return is false when the value is not numeric.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInteger:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Text returns the string payload. The second return is false when the value
// is not a string.
func (v Value) Text() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// Timestamp returns the time payload. The second return is false when the
// value is not a timestamp.
func (v Value) Timestamp() (time.Time, bool) {
	if v.kind != KindTimestamp {
		return time.Time{}, false
	}
	return v.t, true
}

// String renders the value for display. The rendering is deterministic and is
// the form used in violation report lines.
func (v Value) String() string {
	switch v.Kind() {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindTimestamp:
		return v.t.UTC().Format(time.RFC3339)
	default:
		return "null"
	}
}

// Equal reports raw equality: same kind and same payload. Integers never
// equal floats under raw equality, even when numerically identical. NaN
// equals NaN, so repeated NaN cells are detectable as duplicates.
func (v Value) Equal(o Value) bool {
	if v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case KindInteger:
		return v.i == o.i
	case KindFloat:
		if math.IsNaN(v.f) && math.IsNaN(o.f) {
			return true
		}
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindBoolean:
		return v.b == o.b
	case KindTimestamp:
		return v.t.Equal(o.t)
	default:
		return true // both null
	}
}

// Equivalent reports semantic equality: like Equal, but numeric values are
// compared by magnitude so Int(1) is equivalent to Float(1). This is the
// comparison used for allowed-set membership.
func (v Value) Equivalent(o Value) bool {
	if c, ok := Compare(v, o); ok {
		return c == 0
	}
	return v.Equal(o)
}

// Compare orders two values by their native ordering. It returns -1, 0 or 1
// and true when the values are comparable: both numeric, both strings, or
// both timestamps. NaN is never comparable.
func Compare(a, b Value) (int, bool) {
	if af, ok := a.Float64(); ok {
		bf, ok := b.Float64()
		if !ok || math.IsNaN(af) || math.IsNaN(bf) {
			return 0, false
		}
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	}
	if a.kind == KindString && b.kind == KindString {
		switch {
		case a.s < b.s:
			return -1, true
		case a.s > b.s:
			return 1, true
		default:
			return 0, true
		}
	}
	if a.kind == KindTimestamp && b.kind == KindTimestamp {
		switch {
		case a.t.Before(b.t):
			return -1, true
		case a.t.After(b.t):
			return 1, true
		default:
			return 0, true
		}
	}
	return 0, false
}

// FromAny classifies a native Go scalar into a Value. It accepts the types
// produced by encoding/json and gopkg.in/yaml.v3 unmarshalling into any.
//
// Whole-number float64 inputs are classified as integers, since JSON carries
// no integer/float distinction; callers that need a float from a whole-number
// literal should construct it with Float directly.
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case int:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return Value{}, fmt.Errorf("integer value %d overflows int64", v)
		}
		return Int(int64(v)), nil
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) && v >= math.MinInt64 && v <= math.MaxInt64 {
			return Int(int64(v)), nil
		}
		return Float(v), nil
	case string:
		return Str(v), nil
	case bool:
		return Bool(v), nil
	case time.Time:
		return Time(v), nil
	default:
		return Value{}, fmt.Errorf("unsupported scalar type %T", raw)
	}
}
