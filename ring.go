package gm

import (
	"math"
	"math/big"
	"strconv"

	"golang.org/x/image/math/fixed"
)

// Element is the minimal scalar capability the polynomial engine needs:
// the four ring operations minus division, plus equality. The type
// parameter is the implementing type itself (a self-referential
// constraint), so Add returns a value of the concrete element type.
//
// The Go zero value of an Element type must be its additive identity.
// All provided element types (Int, Int64, Float64, Fixed, Rat) satisfy
// this, including Rat, whose nil-pointer zero value reads as 0.
type Element[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Equal(T) bool
	IsZero() bool
}

// Signed extends Element with the capabilities needed only for
// human-readable rendering: sign detection, negation, and a text form.
// Arithmetic never requires these, so unsigned or unordered scalars can
// still be polynomial coefficients as long as they are not rendered
// with Sprint.
type Signed[T any] interface {
	Element[T]
	Neg() T
	IsNegative() bool
	String() string
}

// Int is a machine int satisfying Signed[Int].
type Int int

func (a Int) Add(b Int) Int { return a + b }
func (a Int) Sub(b Int) Int { return a - b }
func (a Int) Mul(b Int) Int { return a * b }
func (a Int) Equal(b Int) bool { return a == b }
func (a Int) IsZero() bool { return a == 0 }
func (a Int) Neg() Int { return -a }
func (a Int) IsNegative() bool { return a < 0 }
func (a Int) String() string { return strconv.Itoa(int(a)) }

// Ints builds an Int coefficient slice, constant term first.
// Convenience for FromCoefficients.
func Ints(vs ...int) []Int {
	out := make([]Int, len(vs))
	for i, v := range vs {
		out[i] = Int(v)
	}
	return out
}

// Int64 is an int64 satisfying Signed[Int64].
type Int64 int64

func (a Int64) Add(b Int64) Int64 { return a + b }
func (a Int64) Sub(b Int64) Int64 { return a - b }
func (a Int64) Mul(b Int64) Int64 { return a * b }
func (a Int64) Equal(b Int64) bool { return a == b }
func (a Int64) IsZero() bool { return a == 0 }
func (a Int64) Neg() Int64 { return -a }
func (a Int64) IsNegative() bool { return a < 0 }
func (a Int64) String() string { return strconv.FormatInt(int64(a), 10) }

// Float64 is a float64 satisfying Signed[Float64].
type Float64 float64

func (a Float64) Add(b Float64) Float64 { return a + b }
func (a Float64) Sub(b Float64) Float64 { return a - b }
func (a Float64) Mul(b Float64) Float64 { return a * b }
func (a Float64) Equal(b Float64) bool { return a == b }
func (a Float64) IsZero() bool { return a == 0 }
func (a Float64) Neg() Float64 { return -a }
func (a Float64) IsNegative() bool { return a < 0 }
func (a Float64) String() string { return strconv.FormatFloat(float64(a), 'g', -1, 64) }

// Floats builds a Float64 coefficient slice, constant term first.
func Floats(vs ...float64) []Float64 {
	out := make([]Float64, len(vs))
	for i, v := range vs {
		out[i] = Float64(v)
	}
	return out
}

// Fixed is a 26.6 fixed-point scalar satisfying Signed[Fixed], backed by
// golang.org/x/image/math/fixed. Useful when coefficients come from font
// metrics or rasterizer coordinates that are already in 26.6 units.
type Fixed fixed.Int26_6

// FixedFromFloat converts a float64 to the nearest 26.6 fixed-point value.
func FixedFromFloat(f float64) Fixed {
	return Fixed(math.Round(f * 64))
}

// Float converts the fixed-point value back to float64.
func (a Fixed) Float() float64 { return float64(a) / 64 }

func (a Fixed) Add(b Fixed) Fixed { return a + b }
func (a Fixed) Sub(b Fixed) Fixed { return a - b }
func (a Fixed) Mul(b Fixed) Fixed { return Fixed(fixed.Int26_6(a).Mul(fixed.Int26_6(b))) }
func (a Fixed) Equal(b Fixed) bool { return a == b }
func (a Fixed) IsZero() bool { return a == 0 }
func (a Fixed) Neg() Fixed { return -a }
func (a Fixed) IsNegative() bool { return a < 0 }
func (a Fixed) String() string { return fixed.Int26_6(a).String() }

// Rat is an exact rational scalar satisfying Signed[Rat], backed by
// math/big. The zero value is 0; arithmetic never mutates operands.
type Rat struct {
	val *big.Rat
}

// NewRat returns the rational p/q. Panics if q is zero.
func NewRat(p, q int64) Rat {
	if q == 0 {
		panic("gm: rational denominator is zero")
	}
	return Rat{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// RatFromInt returns the rational n/1.
func RatFromInt(n int64) Rat {
	return Rat{val: new(big.Rat).SetInt64(n)}
}

// rat returns the underlying value, substituting 0 for the zero value.
func (a Rat) rat() *big.Rat {
	if a.val == nil {
		return new(big.Rat)
	}
	return a.val
}

func (a Rat) Add(b Rat) Rat { return Rat{val: new(big.Rat).Add(a.rat(), b.rat())} }
func (a Rat) Sub(b Rat) Rat { return Rat{val: new(big.Rat).Sub(a.rat(), b.rat())} }
func (a Rat) Mul(b Rat) Rat { return Rat{val: new(big.Rat).Mul(a.rat(), b.rat())} }
func (a Rat) Equal(b Rat) bool { return a.rat().Cmp(b.rat()) == 0 }
func (a Rat) IsZero() bool { return a.rat().Sign() == 0 }
func (a Rat) Neg() Rat { return Rat{val: new(big.Rat).Neg(a.rat())} }
func (a Rat) IsNegative() bool { return a.rat().Sign() < 0 }

// String renders integers without a denominator, everything else as p/q.
func (a Rat) String() string {
	v := a.rat()
	if v.IsInt() {
		return v.Num().String()
	}
	return v.RatString()
}
