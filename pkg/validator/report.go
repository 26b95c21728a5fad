/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/NVIDIA/datacontract/pkg/header"
)

// Status is the overall outcome of one validation run.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Summary holds aggregate counts for one validation run.
type Summary struct {
	// Fields is the number of contract fields evaluated.
	Fields int `json:"fields" yaml:"fields"`

	// Rows is the dataset row count.
	Rows int `json:"rows" yaml:"rows"`

	// Violations is the total violation count.
	Violations int `json:"violations" yaml:"violations"`

	// Duration is the wall-clock evaluation time.
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Status is pass when the violation list is empty, fail otherwise.
	Status Status `json:"status" yaml:"status"`
}

// Report is the complete, ordered result of validating one dataset against
// one contract. Violations keep evaluation order - column declaration order,
// then rule order, then row order - and are never deduplicated, re-sorted or
// truncated. A Report is scoped to a single Validate call.
//
// Determinism covers Render and the violation list: identical inputs always
// produce identical rendered text. The header metadata (per-call report id)
// and Summary.Duration vary between calls, so serialized YAML/JSON output is
// not byte-stable across runs.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Contract is the validated contract's name.
	Contract string `json:"contract" yaml:"contract"`

	// Violations is the ordered violation list; empty means the dataset
	// conforms.
	Violations []Violation `json:"violations" yaml:"violations"`

	// Summary holds aggregate counts and the overall status.
	Summary Summary `json:"summary" yaml:"summary"`
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{Violations: []Violation{}}
}

// Init sets the report header fields.
func (r *Report) Init(kind, apiVersion, version string) {
	opts := []header.Option{
		header.WithKind(kind),
		header.WithAPIVersion(apiVersion),
	}
	if version != "" {
		opts = append(opts, header.WithMetadata("validator-version", version))
	}
	r.Header = *header.New(opts...)
}

// Passed reports whether the validation found no violations.
func (r *Report) Passed() bool { return len(r.Violations) == 0 }

// Render produces the human-readable multi-line report: a summary header
// followed by one line per violation in evaluation order. The output is
// byte-identical across repeated validations of the same inputs.
func (r *Report) Render() string {
	if r.Passed() {
		return fmt.Sprintf("contract '%s' validation passed", r.Contract)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "contract '%s' validation failed: %d violation(s)", r.Contract, len(r.Violations))
	for _, v := range r.Violations {
		b.WriteString("\n")
		b.WriteString(v.Message())
	}
	return b.String()
}

// Err returns nil when the report is clean, or a *ContractError carrying the
// report otherwise. Usage errors never travel this path; they are returned
// directly by Validate.
func (r *Report) Err() error {
	if r.Passed() {
		return nil
	}
	return &ContractError{Report: r}
}

// ContractError is the single aggregate error surfaced when a dataset fails
// its contract. It carries the full ordered violation list; its message text
// is the rendered report.
type ContractError struct {
	Report *Report
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return e.Report.Render()
}

// Violations returns the ordered violation list.
func (e *ContractError) Violations() []Violation {
	return e.Report.Violations
}
