package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/datacontract/pkg/dataset"
)

func TestNewField(t *testing.T) {
	f, err := NewField("age",
		WithType(TypeInteger),
		Required(),
		WithMin(dataset.Int(0)),
		WithMax(dataset.Int(120)),
	)
	require.NoError(t, err)

	assert.Equal(t, "age", f.Name)
	assert.Equal(t, TypeInteger, f.Type)
	assert.True(t, f.Required)
	require.NotNil(t, f.Min)
	assert.True(t, f.Min.Equal(dataset.Int(0)))
}

func TestNewFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		opts   []FieldOption
		errMsg string
	}{
		{
			name:   "empty name",
			field:  "",
			errMsg: "name cannot be empty",
		},
		{
			name:   "unknown type",
			field:  "x",
			opts:   []FieldOption{WithType("decimal")},
			errMsg: "unknown type",
		},
		{
			name:   "pattern on integer field",
			field:  "x",
			opts:   []FieldOption{WithType(TypeInteger), WithPattern("^a+$")},
			errMsg: "pattern requires type string",
		},
		{
			name:   "pattern without declared type",
			field:  "x",
			opts:   []FieldOption{WithPattern("^a+$")},
			errMsg: "pattern requires type string",
		},
		{
			name:   "invalid pattern",
			field:  "x",
			opts:   []FieldOption{WithType(TypeString), WithPattern("([")},
			errMsg: "invalid pattern",
		},
		{
			name:   "numeric bound on boolean field",
			field:  "x",
			opts:   []FieldOption{WithType(TypeBoolean), WithMin(dataset.Int(0))},
			errMsg: "incompatible with type boolean",
		},
		{
			name:   "boolean bound is not orderable",
			field:  "x",
			opts:   []FieldOption{WithMin(dataset.Bool(false))},
			errMsg: "not orderable",
		},
		{
			name:   "string bound on integer field",
			field:  "x",
			opts:   []FieldOption{WithType(TypeInteger), WithMax(dataset.Str("z"))},
			errMsg: "incompatible with type integer",
		},
		{
			name:   "numeric bound on timestamp field",
			field:  "x",
			opts:   []FieldOption{WithType(TypeTimestamp), WithMin(dataset.Int(0))},
			errMsg: "incompatible with type timestamp",
		},
		{
			name:   "min exceeds max",
			field:  "x",
			opts:   []FieldOption{WithType(TypeInteger), WithMin(dataset.Int(10)), WithMax(dataset.Int(1))},
			errMsg: "exceeds max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewField(tt.field, tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewContract(t *testing.T) {
	age, err := NewField("age", WithType(TypeInteger))
	require.NoError(t, err)
	country, err := NewField("country", WithType(TypeString))
	require.NoError(t, err)

	c, err := New("users", age, country)
	require.NoError(t, err)

	assert.Equal(t, "users", c.Name())
	assert.Equal(t, 2, c.Len())

	fields := c.Fields()
	assert.Equal(t, "age", fields[0].Name)
	assert.Equal(t, "country", fields[1].Name)
}

func TestNewContractErrors(t *testing.T) {
	age, err := NewField("age")
	require.NoError(t, err)

	_, err = New("", age)
	assert.Error(t, err)

	_, err = New("users", age, age)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate field")
}

func TestFieldsReturnsCopy(t *testing.T) {
	age, err := NewField("age")
	require.NoError(t, err)

	c, err := New("users", age)
	require.NoError(t, err)

	fields := c.Fields()
	fields[0].Name = "mutated"

	assert.Equal(t, "age", c.Fields()[0].Name)
}

func TestTypeConforms(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		val  dataset.Value
		want bool
	}{
		{"integer accepts int", TypeInteger, dataset.Int(5), true},
		{"integer rejects float", TypeInteger, dataset.Float(5), false},
		{"integer rejects whole float", TypeInteger, dataset.Float(5.0), false},
		{"float accepts float", TypeFloat, dataset.Float(5.5), true},
		{"float widens int", TypeFloat, dataset.Int(5), true},
		{"string accepts string", TypeString, dataset.Str("a"), true},
		{"string rejects int", TypeString, dataset.Int(1), false},
		{"boolean accepts bool", TypeBoolean, dataset.Bool(true), true},
		{"any accepts anything", TypeAny, dataset.Str("a"), true},
		{"integer rejects null", TypeInteger, dataset.Null(), false},
		{"any accepts null", TypeAny, dataset.Null(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := tt.typ.Conforms(tt.val)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchPattern(t *testing.T) {
	f, err := NewField("code", WithType(TypeString), WithPattern("^[A-Z]{2}$"))
	require.NoError(t, err)

	assert.True(t, f.MatchPattern("US"))
	assert.False(t, f.MatchPattern("usa"))

	plain, err := NewField("free", WithType(TypeString))
	require.NoError(t, err)
	assert.True(t, plain.MatchPattern("anything"))
}
