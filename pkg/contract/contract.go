/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package contract

import (
	"fmt"
	"regexp"

	"github.com/NVIDIA/datacontract/pkg/dataset"
)

// FieldOption is a functional option for configuring Field instances.
type FieldOption func(*Field)

// WithType returns an option that sets the field's expected element type.
func WithType(t Type) FieldOption {
	return func(f *Field) { f.Type = t }
}

// Required returns an option that marks the column as mandatory.
func Required() FieldOption {
	return func(f *Field) { f.Required = true }
}

// WithMin returns an option that sets the inclusive lower bound.
func WithMin(v dataset.Value) FieldOption {
	return func(f *Field) { f.Min = &v }
}

// WithMax returns an option that sets the inclusive upper bound.
func WithMax(v dataset.Value) FieldOption {
	return func(f *Field) { f.Max = &v }
}

// WithAllowed returns an option that restricts the column to the given set of
// values. The declaration order is kept for report rendering.
func WithAllowed(values ...dataset.Value) FieldOption {
	return func(f *Field) { f.Allowed = values }
}

// WithPattern returns an option that requires string values to match the
// given regular expression.
func WithPattern(pattern string) FieldOption {
	return func(f *Field) { f.Pattern = pattern }
}

// Unique returns an option that requires every value in the column to be
// distinct.
func Unique() FieldOption {
	return func(f *Field) { f.Unique = true }
}

// NewField builds a field constraint and fails fast on misconfiguration:
// empty name, unknown type tag, a pattern on a non-string field, an invalid
// regular expression, bounds on a non-orderable type, bounds whose type does
// not match the declared type, or an empty min..max interval. Contracts are
// defined once and reused, so catching these at construction avoids a
// confusing finding in the middle of a validation run.
func NewField(name string, opts ...FieldOption) (Field, error) {
	f := Field{Name: name}
	for _, opt := range opts {
		opt(&f)
	}

	if f.Name == "" {
		return Field{}, fmt.Errorf("field name cannot be empty")
	}
	if !f.Type.IsValid() {
		return Field{}, fmt.Errorf("field %q: unknown type %q, supported types: %v", f.Name, string(f.Type), SupportedTypes())
	}

	if f.Pattern != "" {
		if f.Type != TypeString {
			return Field{}, fmt.Errorf("field %q: pattern requires type string, declared type is %s", f.Name, f.Type)
		}
		re, err := regexp.Compile(f.Pattern)
		if err != nil {
			return Field{}, fmt.Errorf("field %q: invalid pattern: %w", f.Name, err)
		}
		f.re = re
	}

	if err := checkBound(f, "min", f.Min); err != nil {
		return Field{}, err
	}
	if err := checkBound(f, "max", f.Max); err != nil {
		return Field{}, err
	}
	if f.Min != nil && f.Max != nil {
		if c, ok := dataset.Compare(*f.Min, *f.Max); ok && c > 0 {
			return Field{}, fmt.Errorf("field %q: min %s exceeds max %s", f.Name, f.Min, f.Max)
		}
	}

	return f, nil
}

// checkBound verifies a bound is orderable and matches the declared type.
func checkBound(f Field, which string, bound *dataset.Value) error {
	if bound == nil {
		return nil
	}

	switch bound.Kind() {
	case dataset.KindInteger, dataset.KindFloat:
		if bound.IsNaN() {
			return fmt.Errorf("field %q: %s cannot be NaN", f.Name, which)
		}
		if f.Type == TypeString || f.Type == TypeBoolean || f.Type == TypeTimestamp {
			return fmt.Errorf("field %q: numeric %s is incompatible with type %s", f.Name, which, f.Type)
		}
	case dataset.KindString:
		if f.Type != TypeString && f.Type != TypeAny {
			return fmt.Errorf("field %q: string %s is incompatible with type %s", f.Name, which, f.Type)
		}
	case dataset.KindTimestamp:
		if f.Type != TypeTimestamp && f.Type != TypeAny {
			return fmt.Errorf("field %q: timestamp %s is incompatible with type %s", f.Name, which, f.Type)
		}
	default:
		return fmt.Errorf("field %q: %s of kind %s is not orderable", f.Name, which, bound.Kind())
	}

	return nil
}

// New builds a contract from fields in declaration order. Field names must be
// unique; duplicates are a caller error.
func New(name string, fields ...Field) (*Contract, error) {
	if name == "" {
		return nil, fmt.Errorf("contract name cannot be empty")
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			return nil, fmt.Errorf("contract %q: duplicate field %q", name, f.Name)
		}
		seen[f.Name] = true
	}

	c := &Contract{
		name:   name,
		fields: make([]Field, len(fields)),
	}
	copy(c.fields, fields)
	return c, nil
}
