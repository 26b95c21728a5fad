package dataset

import (
	"math"
	"testing"
	"time"
)

func TestValueString(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	tests := []struct {
		name string
		val  Value
		want string
	}{
		{"integer", Int(42), "42"},
		{"negative integer", Int(-7), "-7"},
		{"float", Float(3.5), "3.5"},
		{"whole float", Float(2), "2"},
		{"nan", Float(math.NaN()), "NaN"},
		{"string", Str("hello"), "hello"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"timestamp", Time(ts), "2025-03-14T09:26:53Z"},
		{"null", Null(), "null"},
		{"zero value is null", Value{}, "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.val.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValueEqual(t *testing.T) {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same integers", Int(5), Int(5), true},
		{"different integers", Int(5), Int(6), false},
		{"int never equals float raw", Int(5), Float(5), false},
		{"same floats", Float(1.5), Float(1.5), true},
		{"nan equals nan", Float(math.NaN()), Float(math.NaN()), true},
		{"same strings", Str("a"), Str("a"), true},
		{"string vs int", Str("5"), Int(5), false},
		{"same bools", Bool(true), Bool(true), true},
		{"same timestamps", Time(ts), Time(ts), true},
		{"nulls equal", Null(), Null(), true},
		{"null vs zero value", Null(), Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueEquivalent(t *testing.T) {
	if !Int(5).Equivalent(Float(5)) {
		t.Error("Int(5) should be equivalent to Float(5)")
	}
	if Int(5).Equivalent(Float(5.5)) {
		t.Error("Int(5) should not be equivalent to Float(5.5)")
	}
	if !Str("x").Equivalent(Str("x")) {
		t.Error("identical strings should be equivalent")
	}
	if Str("5").Equivalent(Int(5)) {
		t.Error("string should not be equivalent to integer")
	}
}

func TestCompare(t *testing.T) {
	early := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		a, b   Value
		want   int
		wantOK bool
	}{
		{"int less", Int(1), Int(2), -1, true},
		{"int greater", Int(3), Int(2), 1, true},
		{"int equal", Int(2), Int(2), 0, true},
		{"int vs float widened", Int(2), Float(2.5), -1, true},
		{"float vs int widened", Float(2.5), Int(2), 1, true},
		{"string order", Str("a"), Str("b"), -1, true},
		{"timestamp order", Time(early), Time(late), -1, true},
		{"timestamp equal", Time(early), Time(early), 0, true},
		{"nan not comparable", Float(math.NaN()), Int(0), 0, false},
		{"nan on right not comparable", Int(0), Float(math.NaN()), 0, false},
		{"string vs int not comparable", Str("1"), Int(1), 0, false},
		{"bool not comparable", Bool(true), Bool(false), 0, false},
		{"null not comparable", Null(), Int(0), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compare(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Compare() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Value
	}{
		{"nil", nil, Null()},
		{"int", 5, Int(5)},
		{"int64", int64(5), Int(5)},
		{"whole float64 classified as integer", float64(5), Int(5)},
		{"fractional float64", 5.5, Float(5.5)},
		{"string", "hi", Str("hi")},
		{"bool", true, Bool(true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.raw)
			if err != nil {
				t.Fatalf("FromAny(%v) error: %v", tt.raw, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("FromAny(%v) = %v (%s), want %v (%s)", tt.raw, got, got.Kind(), tt.want, tt.want.Kind())
			}
		})
	}

	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("expected error for unsupported type")
	}
}

func TestIsNaN(t *testing.T) {
	if !Float(math.NaN()).IsNaN() {
		t.Error("Float(NaN) should report IsNaN")
	}
	if Float(1).IsNaN() {
		t.Error("Float(1) should not report IsNaN")
	}
	if Int(1).IsNaN() {
		t.Error("Int should never report IsNaN")
	}
}
