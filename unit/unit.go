// Package unit provides SI dimension tagging for physical quantities.
//
// A Unit records, for each of the seven SI base dimensions, an optional
// decimal prefix and an integer power. Units carry no magnitude; they
// are symbolic tags whose String form uses the conventional dimension
// symbols (L, M, T, I, Θ, N, J) with Unicode superscript powers.
package unit

import "strings"

// Base identifies one of the seven SI base dimensions.
type Base int

const (
	Length Base = iota
	Mass
	Time
	ElectricCurrent
	Temperature
	AmountOfSubstance
	LuminousIntensity

	numBases
)

// Symbol returns the dimension-analysis symbol for the base dimension.
func (b Base) Symbol() string {
	switch b {
	case Length:
		return "L"
	case Mass:
		return "M"
	case Time:
		return "T"
	case ElectricCurrent:
		return "I"
	case Temperature:
		return "Θ"
	case AmountOfSubstance:
		return "N"
	case LuminousIntensity:
		return "J"
	default:
		return "?"
	}
}

// Prefix is a decimal SI prefix. The numeric value of a Prefix is its
// power of ten, so Kilo == 3 and Micro == -6.
type Prefix int

const (
	Yotta Prefix = 24
	Zetta Prefix = 21
	Exa   Prefix = 18
	Peta  Prefix = 15
	Tera  Prefix = 12
	Giga  Prefix = 9
	Mega  Prefix = 6
	Kilo  Prefix = 3
	Hecto Prefix = 2
	Deca  Prefix = 1
	None  Prefix = 0
	Deci  Prefix = -1
	Centi Prefix = -2
	Milli Prefix = -3
	Micro Prefix = -6
	Nano  Prefix = -9
	Pico  Prefix = -12
	Femto Prefix = -15
	Atto  Prefix = -18
	Zepto Prefix = -21
	Yocto Prefix = -24
)

// Symbol returns the SI prefix symbol, or "" for None.
func (p Prefix) Symbol() string {
	switch p {
	case Yotta:
		return "Y"
	case Zetta:
		return "Z"
	case Exa:
		return "E"
	case Peta:
		return "P"
	case Tera:
		return "T"
	case Giga:
		return "G"
	case Mega:
		return "M"
	case Kilo:
		return "k"
	case Hecto:
		return "h"
	case Deca:
		return "da"
	case Deci:
		return "d"
	case Centi:
		return "c"
	case Milli:
		return "m"
	case Micro:
		return "μ"
	case Nano:
		return "n"
	case Pico:
		return "p"
	case Femto:
		return "f"
	case Atto:
		return "a"
	case Zepto:
		return "z"
	case Yocto:
		return "y"
	default:
		return ""
	}
}

// Dimension is one base dimension raised to a power, with an optional
// prefix. Power 0 means the dimension does not participate in the unit.
type Dimension struct {
	Base   Base
	Prefix Prefix
	Power  int
}

// Unit tags a quantity with a power and prefix for each of the seven
// SI base dimensions. The zero value is the dimensionless unit.
type Unit struct {
	dims [numBases]Dimension
}

// New returns the dimensionless unit: every base dimension present with
// no prefix and power zero.
func New() Unit {
	var u Unit
	for b := Base(0); b < numBases; b++ {
		u.dims[b] = Dimension{Base: b, Prefix: None, Power: 0}
	}
	return u
}

// Compose builds a unit from the given dimensions. Later dimensions for
// the same base overwrite earlier ones.
func Compose(dims ...Dimension) Unit {
	u := New()
	for _, d := range dims {
		u.Set(d)
	}
	return u
}

// Set overwrites the entry for the dimension's base.
func (u *Unit) Set(d Dimension) {
	if d.Base < 0 || d.Base >= numBases {
		return
	}
	u.dims[d.Base] = d
}

// Dimension returns the stored entry for the given base dimension.
func (u Unit) Dimension(b Base) Dimension {
	if b < 0 || b >= numBases {
		return Dimension{}
	}
	return u.dims[b]
}

// String renders the unit symbol. Every base dimension contributes its
// symbol in the canonical L M T I Θ N J order; a prefix symbol follows
// the base symbol when set, and a non-zero power is written in Unicode
// superscripts (including negative and multi-digit powers).
func (u Unit) String() string {
	var b strings.Builder
	for i := Base(0); i < numBases; i++ {
		d := u.dims[i]
		b.WriteString(i.Symbol())
		if d.Prefix != None {
			b.WriteString(d.Prefix.Symbol())
		}
		if d.Power != 0 {
			b.WriteString(superscript(d.Power))
		}
	}
	return b.String()
}

var superscriptDigits = [...]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// superscript renders n in Unicode superscript digits, with a
// superscript minus for negative values.
func superscript(n int) string {
	if n == 0 {
		return string(superscriptDigits[0])
	}
	var b strings.Builder
	if n < 0 {
		b.WriteRune('⁻')
		n = -n
	}
	var digits []rune
	for n > 0 {
		digits = append(digits, superscriptDigits[n%10])
		n /= 10
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteRune(digits[i])
	}
	return b.String()
}

// Meters returns the unit of length, L.
func Meters() Unit {
	return Compose(Dimension{Base: Length, Power: 1})
}

// Kilograms returns the SI unit of mass, Mk.
func Kilograms() Unit {
	return Compose(Dimension{Base: Mass, Prefix: Kilo, Power: 1})
}

// Seconds returns the unit of time, T.
func Seconds() Unit {
	return Compose(Dimension{Base: Time, Power: 1})
}

// Newtons returns the unit of force, kg·m/s².
func Newtons() Unit {
	return Compose(
		Dimension{Base: Length, Power: 1},
		Dimension{Base: Mass, Prefix: Kilo, Power: 1},
		Dimension{Base: Time, Power: -2},
	)
}
