/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package contract

import (
	"regexp"

	"github.com/NVIDIA/datacontract/pkg/dataset"
)

// Type is the declared semantic type of a contract field.
type Type string

const (
	// TypeAny declares no type expectation; type checks are skipped.
	TypeAny Type = ""

	TypeInteger   Type = "integer"
	TypeFloat     Type = "float"
	TypeString    Type = "string"
	TypeBoolean   Type = "boolean"
	TypeTimestamp Type = "timestamp"
)

// IsValid reports whether t is a recognized type tag.
func (t Type) IsValid() bool {
	switch t {
	case TypeAny, TypeInteger, TypeFloat, TypeString, TypeBoolean, TypeTimestamp:
		return true
	}
	return false
}

// String returns the type tag, or "any" for the empty tag.
func (t Type) String() string {
	if t == TypeAny {
		return "any"
	}
	return string(t)
}

// SupportedTypes returns the non-empty type tags a contract may declare.
func SupportedTypes() []Type {
	return []Type{TypeInteger, TypeFloat, TypeString, TypeBoolean, TypeTimestamp}
}

// Conforms reports whether a cell value satisfies the type tag, and the type
// name to report when it does not.
//
// The widening policy is one-directional: integers satisfy the float tag,
// floats never satisfy the integer tag. NaN satisfies no tag, including
// float, so it can never slip into range comparisons. Null satisfies no tag.
func (t Type) Conforms(v dataset.Value) (bool, string) {
	if v.IsNaN() {
		return false, "NaN"
	}
	actual := string(v.Kind())
	switch t {
	case TypeAny:
		return true, actual
	case TypeInteger:
		return v.Kind() == dataset.KindInteger, actual
	case TypeFloat:
		return v.Kind() == dataset.KindFloat || v.Kind() == dataset.KindInteger, actual
	case TypeString:
		return v.Kind() == dataset.KindString, actual
	case TypeBoolean:
		return v.Kind() == dataset.KindBoolean, actual
	case TypeTimestamp:
		return v.Kind() == dataset.KindTimestamp, actual
	}
	return false, actual
}

// Field holds the constraints declared for one named column. Construct fields
// with NewField so that misconfigurations surface at contract definition time
// rather than mid-validation.
type Field struct {
	// Name is the column name, unique within a contract.
	Name string

	// Type is the expected element type; TypeAny skips type checking.
	Type Type

	// Required marks the column as mandatory in the dataset.
	Required bool

	// Min and Max are inclusive bounds, compared with the value's native
	// ordering. Nil means unbounded.
	Min *dataset.Value
	Max *dataset.Value

	// Allowed restricts values to an explicit set. Nil means unrestricted.
	// Declaration order is preserved for deterministic report rendering.
	Allowed []dataset.Value

	// Pattern is a regular expression string values must match.
	Pattern string

	// Unique requires every value in the column to be distinct.
	Unique bool

	re *regexp.Regexp
}

// MatchPattern reports whether s matches the field's compiled pattern.
// It returns true when no pattern is configured.
func (f *Field) MatchPattern(s string) bool {
	if f.re == nil {
		return true
	}
	return f.re.MatchString(s)
}

// Contract is an immutable, ordered set of field constraints for one dataset
// shape. A Contract is stateless between validations: many goroutines may
// validate different datasets against the same Contract concurrently.
type Contract struct {
	name   string
	fields []Field
}

// Name returns the contract name.
func (c *Contract) Name() string { return c.name }

// Fields returns the contract's fields in declaration order.
func (c *Contract) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Len returns the number of fields.
func (c *Contract) Len() int { return len(c.fields) }
