/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package validator evaluates data contracts against in-memory tabular
// datasets and aggregates every finding into one ordered report.
//
// # Overview
//
// The validator runs each contract field's constraints against its dataset
// column and collects Violations rather than failing on the first one: the
// point of the engine is diagnosing every problem in a single pass instead of
// forcing repeated fix-and-rerun cycles.
//
// # Check Order
//
// Per field, in this fixed order:
//
//  1. Presence: a required column absent from the dataset yields exactly one
//     MissingColumn violation and no further checks for that field. An
//     optional absent column is skipped silently.
//  2. Type: every cell is checked against the declared type. Mismatched
//     cells (including NaN and null) are reported as TypeMismatch and
//     excluded from the range, set and pattern passes - one bad cell never
//     cascades into spurious range or category findings.
//  3. Min, then max: each a full pass in row order over the remaining
//     well-typed cells, using the value's native ordering.
//  4. Allowed set: membership by semantic equality (numeric widening).
//  5. Pattern: string cells against the field's compiled expression.
//  6. Uniqueness: over the full original column by raw equality, mismatched
//     cells included. The first occurrence of a value is never flagged;
//     every repeat is.
//
// # Report Ordering
//
// Violations keep (column declaration order, rule order, row order). The
// rendered report is byte-identical across repeated runs on the same inputs.
//
// # Usage
//
//	v := validator.New(validator.WithVersion("1.0.0"))
//	report, err := v.Validate(ctx, c, ds)
//	if err != nil {
//	    log.Fatal(err) // usage error, not a data finding
//	}
//	if !report.Passed() {
//	    fmt.Println(report.Render())
//	}
//
// Or, for pipeline chaining:
//
//	ds, err := validator.Enforce(ctx, c, ds)
//	var cerr *validator.ContractError
//	if errors.As(err, &cerr) {
//	    for _, viol := range cerr.Violations() {
//	        fmt.Println(viol.Message())
//	    }
//	}
//
// # Error Handling
//
// Usage errors (nil contract or dataset, cancelled context) are returned
// directly by Validate and are never mixed into a report. Data findings are
// never returned individually; they surface together as one *ContractError.
package validator
