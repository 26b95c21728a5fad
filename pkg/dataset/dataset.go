/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package dataset

import (
	"fmt"
)

// Dataset is an in-memory tabular dataset: an ordered set of named columns of
// equal length. A Dataset is read-only once constructed; the validator never
// mutates it, so a single Dataset may be shared by concurrent validations as
// long as no other goroutine writes to it.
type Dataset struct {
	names []string
	cols  map[string][]Value
	rows  int
}

// New builds a Dataset from an ordered list of column names and their values.
// Every name must be unique and present in cols, and all columns must have
// the same length. Shape errors are caller errors, reported immediately.
func New(names []string, cols map[string][]Value) (*Dataset, error) {
	d := &Dataset{
		names: make([]string, 0, len(names)),
		cols:  make(map[string][]Value, len(names)),
	}

	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("column %d: name cannot be empty", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		seen[name] = true

		values, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("column %q has no values", name)
		}
		if i == 0 {
			d.rows = len(values)
		} else if len(values) != d.rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", name, len(values), d.rows)
		}

		d.names = append(d.names, name)
		d.cols[name] = values
	}

	if len(cols) != len(names) {
		return nil, fmt.Errorf("%d columns provided but only %d named", len(cols), len(names))
	}

	return d, nil
}

// FromRecords builds a Dataset from row-oriented records. The columns slice
// fixes the column order; a record key outside it is an error, and a cell
// absent from a record becomes null.
func FromRecords(columns []string, records []map[string]any) (*Dataset, error) {
	known := make(map[string]bool, len(columns))
	for _, name := range columns {
		known[name] = true
	}

	cols := make(map[string][]Value, len(columns))
	for _, name := range columns {
		cols[name] = make([]Value, len(records))
	}

	for i, rec := range records {
		for key, raw := range rec {
			if !known[key] {
				return nil, fmt.Errorf("record %d: unknown column %q", i, key)
			}
			val, err := FromAny(raw)
			if err != nil {
				return nil, fmt.Errorf("record %d, column %q: %w", i, key, err)
			}
			cols[key][i] = val
		}
		// Cells not present in the record stay as the zero Value, which is null.
	}

	return New(columns, cols)
}

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Column returns the values of the named column in row order, and whether the
// column exists. The returned slice is the dataset's own storage and must not
// be modified.
func (d *Dataset) Column(name string) ([]Value, bool) {
	values, ok := d.cols[name]
	return values, ok
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return d.rows }

// Width returns the number of columns.
func (d *Dataset) Width() int { return len(d.names) }
