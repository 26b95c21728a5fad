/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"github.com/NVIDIA/datacontract/pkg/contract"
	"github.com/NVIDIA/datacontract/pkg/dataset"
)

const (
	// APIVersion is the API version for validation reports.
	APIVersion = "datacontract.nvidia.com/v1alpha1"

	// Kind is the kind for validation reports.
	Kind = "ValidationReport"
)

// Validator evaluates contract fields against dataset columns. A Validator
// holds no per-run state; one instance may serve concurrent validations.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate evaluates every contract field against the dataset and returns the
// complete ordered report. It never stops at the first finding: the report
// lists every violation, in column declaration order, then rule order, then
// row order.
//
// The error return covers usage errors only (nil inputs, cancelled context).
// A dataset that fails its contract still yields a nil error here; call
// Report.Err or use Enforce to turn findings into an aggregate error.
func (v *Validator) Validate(ctx context.Context, c *contract.Contract, ds *dataset.Dataset) (*Report, error) {
	start := time.Now()

	if c == nil {
		return nil, fmt.Errorf("contract cannot be nil")
	}
	if ds == nil {
		return nil, fmt.Errorf("dataset cannot be nil")
	}

	report := NewReport()
	report.Init(Kind, APIVersion, v.Version)
	report.Contract = c.Name()
	report.Metadata["report-id"] = uuid.New().String()

	for _, field := range c.Fields() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		report.Violations = append(report.Violations, evaluateField(field, ds)...)
	}

	report.Summary.Fields = c.Len()
	report.Summary.Rows = ds.Len()
	report.Summary.Violations = len(report.Violations)
	report.Summary.Duration = time.Since(start)
	if report.Passed() {
		report.Summary.Status = StatusPass
	} else {
		report.Summary.Status = StatusFail
	}

	observeValidation(report)

	slog.Debug("validation completed",
		"contract", c.Name(),
		"fields", report.Summary.Fields,
		"rows", report.Summary.Rows,
		"violations", report.Summary.Violations,
		"status", report.Summary.Status,
		"duration", report.Summary.Duration)

	return report, nil
}

// Enforce validates the dataset and returns it unchanged on success, for use
// in pipeline chaining. On findings it returns a *ContractError carrying the
// full ordered violation list; on misuse it returns the usage error directly.
func Enforce(ctx context.Context, c *contract.Contract, ds *dataset.Dataset) (*dataset.Dataset, error) {
	report, err := New().Validate(ctx, c, ds)
	if err != nil {
		return nil, err
	}
	if err := report.Err(); err != nil {
		return nil, err
	}
	return ds, nil
}

// evaluateField runs one field's checks against its column. Check order is a
// design contract: type mismatches are detected first and excluded from the
// range, set and pattern passes, so one bad cell yields at most one primary
// violation instead of cascading. Uniqueness runs last over the full original
// column, mismatched cells included.
func evaluateField(f contract.Field, ds *dataset.Dataset) []Violation {
	col, ok := ds.Column(f.Name)
	if !ok {
		if !f.Required {
			return nil
		}
		viol := Violation{Column: f.Name, Kind: ViolationMissingColumn}
		if s := closestColumn(f.Name, ds.Columns()); s != "" {
			viol.Hint = fmt.Sprintf("did you mean %q?", s)
		}
		return []Violation{viol}
	}

	var out []Violation

	// Type pass. Cells that fail here are excluded from the range, set and
	// pattern passes below.
	wellTyped := make([]bool, len(col))
	for i := range wellTyped {
		wellTyped[i] = true
	}

	switch {
	case f.Type != contract.TypeAny:
		for i, val := range col {
			if ok, actual := f.Type.Conforms(val); !ok {
				out = append(out, typeMismatch(f.Name, f.Type.String(), actual, i, val))
				wellTyped[i] = false
			}
		}
	case f.Min != nil || f.Max != nil:
		// Type-agnostic field with bounds: NaN never satisfies a bound and is
		// reported as a mismatch rather than producing a platform-dependent
		// comparison result.
		for i, val := range col {
			if val.IsNaN() {
				out = append(out, typeMismatch(f.Name, "number", "NaN", i, val))
				wellTyped[i] = false
			}
		}
	}

	// Min pass.
	if f.Min != nil {
		for i, val := range col {
			if !wellTyped[i] {
				continue
			}
			if c, ok := dataset.Compare(val, *f.Min); ok && c < 0 {
				row := i
				out = append(out, Violation{
					Column:   f.Name,
					Kind:     ViolationBelowMin,
					Row:      &row,
					Value:    val.String(),
					Expected: f.Min.String(),
				})
			}
		}
	}

	// Max pass.
	if f.Max != nil {
		for i, val := range col {
			if !wellTyped[i] {
				continue
			}
			if c, ok := dataset.Compare(val, *f.Max); ok && c > 0 {
				row := i
				out = append(out, Violation{
					Column:   f.Name,
					Kind:     ViolationAboveMax,
					Row:      &row,
					Value:    val.String(),
					Expected: f.Max.String(),
				})
			}
		}
	}

	// Allowed-set pass.
	if f.Allowed != nil {
		set := renderSet(f.Allowed)
		for i, val := range col {
			if !wellTyped[i] {
				continue
			}
			if !allowedContains(f.Allowed, val) {
				row := i
				out = append(out, Violation{
					Column:   f.Name,
					Kind:     ViolationNotAllowed,
					Row:      &row,
					Value:    val.String(),
					Expected: set,
				})
			}
		}
	}

	// Pattern pass. Construction guarantees the field is string-typed, so
	// every well-typed cell is a string here.
	if f.Pattern != "" {
		for i, val := range col {
			if !wellTyped[i] {
				continue
			}
			s, ok := val.Text()
			if !ok {
				continue
			}
			if !f.MatchPattern(s) {
				row := i
				out = append(out, Violation{
					Column:   f.Name,
					Kind:     ViolationPatternMismatch,
					Row:      &row,
					Value:    val.String(),
					Expected: f.Pattern,
				})
			}
		}
	}

	// Uniqueness pass over the full original column, by raw equality. The
	// first occurrence is never flagged; every repeat is.
	if f.Unique {
		seen := make(map[string]bool, len(col))
		for i, val := range col {
			key := rawKey(val)
			if seen[key] {
				row := i
				out = append(out, Violation{
					Column: f.Name,
					Kind:   ViolationDuplicateValue,
					Row:    &row,
					Value:  val.String(),
				})
			} else {
				seen[key] = true
			}
		}
	}

	return out
}

func typeMismatch(column, expected, actual string, i int, val dataset.Value) Violation {
	row := i
	return Violation{
		Column:   column,
		Kind:     ViolationTypeMismatch,
		Row:      &row,
		Value:    val.String(),
		Expected: expected,
		Actual:   actual,
	}
}

// rawKey builds a duplicate-detection key implementing raw equality: values
// of different kinds never collide, and NaN collides with NaN. Timestamps use
// nanosecond rendering so instants inside the same second stay distinct.
// Negative zero renders as "-0" but equals positive zero under ==, so both
// map to the positive-zero key.
func rawKey(val dataset.Value) string {
	if t, ok := val.Timestamp(); ok {
		return string(val.Kind()) + "\x00" + t.UTC().Format(time.RFC3339Nano)
	}
	if val.Kind() == dataset.KindFloat {
		if f, ok := val.Float64(); ok && f == 0 {
			return string(val.Kind()) + "\x00" + "0"
		}
	}
	return string(val.Kind()) + "\x00" + val.String()
}

// allowedContains uses semantic equality, so Int(1) in the data matches a
// declared allowed value of Float(1) and vice versa.
func allowedContains(allowed []dataset.Value, val dataset.Value) bool {
	for _, a := range allowed {
		if val.Equivalent(a) {
			return true
		}
	}
	return false
}

// maxSuggestionDistance caps how far a column name may be from the missing
// field before the suggestion is more confusing than helpful.
const maxSuggestionDistance = 3

// closestColumn returns the dataset column name nearest to the missing field
// name, or "" when nothing is close enough. Ties keep the earlier column.
func closestColumn(name string, columns []string) string {
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, c := range columns {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}
