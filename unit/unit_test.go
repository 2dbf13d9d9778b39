package unit

import "testing"

func TestBase_Symbol(t *testing.T) {
	tests := []struct {
		base Base
		want string
	}{
		{Length, "L"},
		{Mass, "M"},
		{Time, "T"},
		{ElectricCurrent, "I"},
		{Temperature, "Θ"},
		{AmountOfSubstance, "N"},
		{LuminousIntensity, "J"},
		{Base(99), "?"},
	}

	for _, tt := range tests {
		if got := tt.base.Symbol(); got != tt.want {
			t.Errorf("Base(%d).Symbol() = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestPrefix_Symbol(t *testing.T) {
	tests := []struct {
		prefix Prefix
		want   string
	}{
		{Yotta, "Y"},
		{Kilo, "k"},
		{Deca, "da"},
		{None, ""},
		{Centi, "c"},
		{Micro, "μ"},
		{Yocto, "y"},
	}

	for _, tt := range tests {
		if got := tt.prefix.Symbol(); got != tt.want {
			t.Errorf("Prefix(%d).Symbol() = %q, want %q", tt.prefix, got, tt.want)
		}
	}
}

func TestPrefix_Exponents(t *testing.T) {
	// Prefix values are their powers of ten.
	if Kilo != 3 || Micro != -6 || None != 0 {
		t.Error("prefix exponent values are wrong")
	}
}

func TestUnit_String(t *testing.T) {
	tests := []struct {
		name string
		u    Unit
		want string
	}{
		{"dimensionless", New(), "LMTIΘNJ"},
		{"meters", Meters(), "L¹MTIΘNJ"},
		{"kilograms", Kilograms(), "LMk¹TIΘNJ"},
		{"seconds", Seconds(), "LMT¹IΘNJ"},
		{"newtons", Newtons(), "L¹Mk¹T⁻²IΘNJ"},
		{
			"large power",
			Compose(Dimension{Base: Length, Power: 12}),
			"L¹²MTIΘNJ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.u.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnit_Set(t *testing.T) {
	u := New()
	u.Set(Dimension{Base: Time, Prefix: Milli, Power: -1})

	d := u.Dimension(Time)
	if d.Prefix != Milli || d.Power != -1 {
		t.Errorf("Dimension(Time) = %+v, want Milli power -1", d)
	}

	// Out-of-range bases are ignored, not stored.
	u.Set(Dimension{Base: Base(42), Power: 9})
	if got := u.Dimension(Base(42)); got != (Dimension{}) {
		t.Errorf("out-of-range dimension = %+v, want zero", got)
	}
}

func TestUnit_ZeroValue(t *testing.T) {
	// The zero Unit formats every base with no prefix or power, same as
	// New(), because each slot's zero value has power 0.
	var u Unit
	want := "LMTIΘNJ"
	if got := u.String(); got != want {
		t.Errorf("zero Unit String() = %q, want %q", got, want)
	}
}

func TestSuperscript(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "⁰"},
		{1, "¹"},
		{9, "⁹"},
		{10, "¹⁰"},
		{123, "¹²³"},
		{-2, "⁻²"},
		{-15, "⁻¹⁵"},
	}

	for _, tt := range tests {
		if got := superscript(tt.n); got != tt.want {
			t.Errorf("superscript(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
