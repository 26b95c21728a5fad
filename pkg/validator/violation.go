/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/datacontract/pkg/dataset"
)

// ViolationKind identifies which constraint a violation failed. The set is
// closed; the evaluator dispatches on it and the renderer has one line
// template per kind.
type ViolationKind string

const (
	ViolationMissingColumn   ViolationKind = "MissingColumn"
	ViolationTypeMismatch    ViolationKind = "TypeMismatch"
	ViolationBelowMin        ViolationKind = "BelowMin"
	ViolationAboveMax        ViolationKind = "AboveMax"
	ViolationNotAllowed      ViolationKind = "NotAllowed"
	ViolationPatternMismatch ViolationKind = "PatternMismatch"
	ViolationDuplicateValue  ViolationKind = "DuplicateValue"
)

// Violation is one detected constraint failure. It is immutable once emitted
// by the evaluator; rendering to a report line is a separate step (Message).
type Violation struct {
	// Column is the contract field name.
	Column string `json:"column" yaml:"column"`

	// Kind is the failed constraint kind.
	Kind ViolationKind `json:"kind" yaml:"kind"`

	// Row is the zero-based row locator. It is nil for dataset-wide
	// violations such as MissingColumn.
	Row *int `json:"row,omitempty" yaml:"row,omitempty"`

	// Value is the rendered offending value. Empty for MissingColumn.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`

	// Expected is the kind-specific expectation: the declared type for
	// TypeMismatch, the bound for BelowMin/AboveMax, the rendered allowed
	// set for NotAllowed, the pattern for PatternMismatch.
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`

	// Actual is the observed type tag, set for TypeMismatch only.
	Actual string `json:"actual,omitempty" yaml:"actual,omitempty"`

	// Hint carries an optional suggestion (e.g. a close column name for
	// MissingColumn). Hints appear in structured output only, never in the
	// fixed report line.
	Hint string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// Message renders the violation as one report line. The templates are a
// compatibility contract: anything parsing or displaying reports depends on
// this exact shape.
func (v Violation) Message() string {
	switch v.Kind {
	case ViolationMissingColumn:
		return fmt.Sprintf("Column '%s' missing required column.", v.Column)
	case ViolationTypeMismatch:
		return fmt.Sprintf("Column '%s' expected type %s, got %s (row %d, value=%s).",
			v.Column, v.Expected, v.Actual, v.row(), v.Value)
	case ViolationBelowMin:
		return fmt.Sprintf("Column '%s' below min %s (row %d, value=%s).",
			v.Column, v.Expected, v.row(), v.Value)
	case ViolationAboveMax:
		return fmt.Sprintf("Column '%s' above max %s (row %d, value=%s).",
			v.Column, v.Expected, v.row(), v.Value)
	case ViolationNotAllowed:
		return fmt.Sprintf("Column '%s' value not in allowed set %s (row %d, value=%s).",
			v.Column, v.Expected, v.row(), v.Value)
	case ViolationPatternMismatch:
		return fmt.Sprintf("Column '%s' does not match pattern %s (row %d, value=%s).",
			v.Column, v.Expected, v.row(), v.Value)
	case ViolationDuplicateValue:
		return fmt.Sprintf("Column '%s' duplicate value (row %d, value=%s).",
			v.Column, v.row(), v.Value)
	default:
		return fmt.Sprintf("Column '%s' unknown violation %s.", v.Column, v.Kind)
	}
}

func (v Violation) row() int {
	if v.Row == nil {
		return -1
	}
	return *v.Row
}

// renderSet renders an allowed-value set in declaration order, the form used
// inside NotAllowed report lines.
func renderSet(values []dataset.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
