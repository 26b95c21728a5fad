/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package contract defines data contracts: ordered, per-column constraint
// declarations for a tabular dataset shape.
//
// # Overview
//
// A Contract is an immutable, ordered list of Fields. Each Field names one
// column and declares its constraints: expected element type, presence,
// inclusive min/max bounds, an allowed-value set, a string pattern, and
// uniqueness. Contracts are built once - in code with New/NewField, or from a
// Kubernetes-style YAML/JSON document with FromFile - and then reused across
// any number of validations, including concurrent ones.
//
// # Fail-Fast Construction
//
// Misconfiguration is a caller error surfaced at construction, never during
// validation: an empty field name, an unknown type tag, a pattern on a
// non-string field, an invalid regular expression, bounds on a non-orderable
// type, or a bound whose type contradicts the declared column type all fail
// NewField immediately.
//
// # Document Format
//
//	kind: DataContract
//	apiVersion: datacontract.nvidia.com/v1alpha1
//	metadata:
//	  name: users
//	spec:
//	  fields:
//	    - name: user_id
//	      type: integer
//	      required: true
//	      unique: true
//	    - name: age
//	      type: integer
//	      min: 0
//	      max: 120
//	    - name: country
//	      type: string
//	      allowed: [US, UK, CA]
//	    - name: email
//	      type: string
//	      pattern: '^[^@]+@[^@]+$'
//
// Evaluation of a contract against a dataset lives in pkg/validator.
package contract
