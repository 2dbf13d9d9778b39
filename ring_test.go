package gm

import (
	"testing"
)

func TestInt_Ops(t *testing.T) {
	tests := []struct {
		name string
		got  Int
		want Int
	}{
		{"add", Int(3).Add(4), 7},
		{"sub", Int(3).Sub(4), -1},
		{"mul", Int(3).Mul(-4), -12},
		{"neg", Int(3).Neg(), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if !Int(0).IsZero() || Int(1).IsZero() {
		t.Error("IsZero misclassifies")
	}
	if Int(1).IsNegative() || !Int(-1).IsNegative() {
		t.Error("IsNegative misclassifies")
	}
	if got := Int(-12).String(); got != "-12" {
		t.Errorf("String() = %q, want %q", got, "-12")
	}
}

func TestFloat64_String(t *testing.T) {
	tests := []struct {
		in   Float64
		want string
	}{
		{2, "2"},
		{-0.5, "-0.5"},
		{1e21, "1e+21"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Float64(%v).String() = %q, want %q", float64(tt.in), got, tt.want)
		}
	}
}

func TestInts(t *testing.T) {
	got := Ints(1, -2, 3)
	want := []Int{1, -2, 3}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ints()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFixed(t *testing.T) {
	a := FixedFromFloat(1.5)
	b := FixedFromFloat(2)

	if got := a.Add(b).Float(); got != 3.5 {
		t.Errorf("Add = %v, want 3.5", got)
	}
	if got := a.Mul(b).Float(); got != 3 {
		t.Errorf("Mul = %v, want 3", got)
	}
	if got := a.Sub(b).Float(); got != -0.5 {
		t.Errorf("Sub = %v, want -0.5", got)
	}
	if !a.Sub(b).IsNegative() {
		t.Error("Sub result should be negative")
	}
	var zero Fixed
	if !zero.IsZero() {
		t.Error("zero value should be the additive identity")
	}
}

func TestRat(t *testing.T) {
	half := NewRat(1, 2)
	third := NewRat(1, 3)

	if got := half.Add(third).String(); got != "5/6" {
		t.Errorf("1/2 + 1/3 = %q, want %q", got, "5/6")
	}
	if got := half.Mul(NewRat(2, 1)).String(); got != "1" {
		t.Errorf("1/2 * 2 = %q, want %q", got, "1")
	}
	if got := half.Sub(half); !got.IsZero() {
		t.Errorf("1/2 - 1/2 = %v, want zero", got)
	}
	if !NewRat(-1, 2).IsNegative() {
		t.Error("-1/2 should be negative")
	}
	if got := NewRat(-1, 2).Neg().String(); got != "1/2" {
		t.Errorf("Neg() = %q, want %q", got, "1/2")
	}
}

func TestRat_ZeroValue(t *testing.T) {
	// The zero value must behave as 0 without panicking.
	var z Rat
	if !z.IsZero() {
		t.Error("zero value IsZero() = false")
	}
	if got := z.Add(NewRat(3, 4)).String(); got != "3/4" {
		t.Errorf("0 + 3/4 = %q, want %q", got, "3/4")
	}
	if got := z.String(); got != "0" {
		t.Errorf("String() = %q, want %q", got, "0")
	}
}

func TestNewRat_ZeroDenominator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRat(1, 0) should panic")
		}
	}()
	NewRat(1, 0)
}
