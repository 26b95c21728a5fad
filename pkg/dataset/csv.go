/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// FromCSV reads a CSV document into a Dataset. The first record is the header
// row and becomes the column names. Each cell is classified by the first
// matching rule:
//
//   - empty cell          -> null
//   - base-10 integer     -> integer
//   - float literal       -> float
//   - "true" / "false"    -> boolean
//   - RFC 3339 timestamp  -> timestamp
//   - "2006-01-02" date   -> timestamp (midnight UTC)
//   - anything else       -> string
//
// All rows must have the same number of fields as the header.
func FromCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	names, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty csv input: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string][]Value, len(names))
	for _, name := range names {
		cols[name] = []Value{}
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		for i, name := range names {
			cols[name] = append(cols[name], classifyCell(rec[i]))
		}
	}

	return New(names, cols)
}

// FromCSVFile reads a Dataset from a CSV file on disk.
func FromCSVFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	ds, err := FromCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return ds, nil
}

func classifyCell(cell string) Value {
	if cell == "" {
		return Null()
	}
	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return Float(f)
	}
	if cell == "true" || cell == "false" {
		return Bool(cell == "true")
	}
	if t, err := time.Parse(time.RFC3339, cell); err == nil {
		return Time(t)
	}
	if t, err := time.Parse("2006-01-02", cell); err == nil {
		return Time(t)
	}
	return Str(cell)
}
