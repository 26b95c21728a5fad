/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package dataset provides the in-memory tabular data model validated by the
// engine.
//
// # Overview
//
// A Dataset is an ordered set of named columns, each an ordered sequence of
// scalar Values indexed by row position. Values are tagged scalars (integer,
// float, string, boolean, timestamp, null); the tag is what the validator's
// type checks compare against a contract field's declared type.
//
// # Coercion Policy
//
// The numeric widening policy is explicit and one-directional:
//
//   - an integer value satisfies the float type tag (widening)
//   - a float value never satisfies the integer type tag, even when it holds
//     a whole number
//   - raw equality (Value.Equal), used for duplicate detection, never widens:
//     Int(5) and Float(5) are distinct
//   - semantic equality (Value.Equivalent), used for allowed-set membership,
//     compares numeric values by magnitude
//
// # Construction
//
// Datasets are built from column vectors (New), row records (FromRecords), or
// CSV input (FromCSV, FromCSVFile). Shape problems - ragged columns,
// duplicate column names - are caller errors reported at construction, never
// mixed into validation findings.
package dataset
