/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package contract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/datacontract/pkg/dataset"
	"github.com/NVIDIA/datacontract/pkg/header"
)

// Kind is the document kind for contract resources.
const Kind = "DataContract"

// Document is the on-disk representation of a contract, a Kubernetes-style
// resource file in YAML or JSON:
//
//	kind: DataContract
//	apiVersion: datacontract.nvidia.com/v1alpha1
//	metadata:
//	  name: users
//	spec:
//	  fields:
//	    - name: age
//	      type: integer
//	      required: true
//	      min: 0
//	      max: 120
type Document struct {
	header.Header `json:",inline" yaml:",inline"`

	Spec Spec `json:"spec" yaml:"spec"`
}

// Spec is the contract document spec body.
type Spec struct {
	Fields []FieldSpec `json:"fields" yaml:"fields"`
}

// FieldSpec is the document form of one field's constraints. Min, Max and
// Allowed entries are plain YAML/JSON scalars classified into typed values
// when the document is built into a Contract.
type FieldSpec struct {
	Name     string `json:"name" yaml:"name"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Min      any    `json:"min,omitempty" yaml:"min,omitempty"`
	Max      any    `json:"max,omitempty" yaml:"max,omitempty"`
	Allowed  []any  `json:"allowed,omitempty" yaml:"allowed,omitempty"`
	Pattern  string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Unique   bool   `json:"unique,omitempty" yaml:"unique,omitempty"`
}

// Build converts the field spec into a validated Field.
func (fs FieldSpec) Build() (Field, error) {
	opts := []FieldOption{WithType(Type(fs.Type))}

	if fs.Required {
		opts = append(opts, Required())
	}
	if fs.Min != nil {
		v, err := dataset.FromAny(fs.Min)
		if err != nil {
			return Field{}, fmt.Errorf("field %q: min: %w", fs.Name, err)
		}
		opts = append(opts, WithMin(v))
	}
	if fs.Max != nil {
		v, err := dataset.FromAny(fs.Max)
		if err != nil {
			return Field{}, fmt.Errorf("field %q: max: %w", fs.Name, err)
		}
		opts = append(opts, WithMax(v))
	}
	if fs.Allowed != nil {
		values := make([]dataset.Value, 0, len(fs.Allowed))
		for i, raw := range fs.Allowed {
			v, err := dataset.FromAny(raw)
			if err != nil {
				return Field{}, fmt.Errorf("field %q: allowed[%d]: %w", fs.Name, i, err)
			}
			values = append(values, v)
		}
		opts = append(opts, WithAllowed(values...))
	}
	if fs.Pattern != "" {
		opts = append(opts, WithPattern(fs.Pattern))
	}
	if fs.Unique {
		opts = append(opts, Unique())
	}

	return NewField(fs.Name, opts...)
}

// FromDocument builds a Contract from a parsed document, running all
// fail-fast construction checks.
func FromDocument(doc *Document) (*Contract, error) {
	if doc == nil {
		return nil, fmt.Errorf("document cannot be nil")
	}
	if !doc.MatchesKind(Kind) {
		return nil, fmt.Errorf("unexpected document kind %q, want %q", doc.Kind, Kind)
	}
	if len(doc.Spec.Fields) == 0 {
		return nil, fmt.Errorf("contract declares no fields")
	}

	name := doc.Name()
	if name == "" {
		name = "contract"
	}

	fields := make([]Field, 0, len(doc.Spec.Fields))
	for _, fs := range doc.Spec.Fields {
		f, err := fs.Build()
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return New(name, fields...)
}

// FromFile loads and validates a contract document from a YAML or JSON file.
// YAML is a superset of JSON here, so both parse through the same decoder.
func FromFile(path string) (*Contract, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contract file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}

	c, err := FromDocument(&doc)
	if err != nil {
		return nil, fmt.Errorf("contract %q: %w", path, err)
	}
	return c, nil
}
