package gm

import (
	"fmt"
	"strings"
)

// Polynomial is a dense univariate polynomial over any Element scalar.
// Coefficients are stored in ascending exponent order: coeffs[0] is the
// constant term and coeffs[degree] the leading term. The invariant
// len(coeffs) == degree+1 holds after every operation.
//
// The zero polynomial is canonically degree 0 with a single zero
// coefficient; degree is never negative, even for the additive
// identity. This is a stored-slot convention, not the mathematical
// degree (which is undefined for the zero polynomial).
//
// The zero value of Polynomial is the zero polynomial and is ready to
// use. Operations return freshly allocated results and never alias
// their operands' storage.
type Polynomial[T Element[T]] struct {
	degree int
	coeffs []T
}

// New returns the zero polynomial: degree 0, coefficients [0].
func New[T Element[T]]() Polynomial[T] {
	return Polynomial[T]{degree: 0, coeffs: make([]T, 1)}
}

// FromCoefficients builds a polynomial from coefficients in ascending
// exponent order (constant term first). The degree is len(coeffs)-1.
// An empty slice yields the canonical zero polynomial. The slice is
// copied, so the caller keeps ownership of its argument.
func FromCoefficients[T Element[T]](coeffs []T) Polynomial[T] {
	if len(coeffs) == 0 {
		return New[T]()
	}
	own := make([]T, len(coeffs))
	copy(own, coeffs)
	return Polynomial[T]{degree: len(own) - 1, coeffs: own}
}

// Degree returns the stored degree: the highest exponent with a
// coefficient slot, which may hold zero. The zero polynomial reports
// degree 0 by convention.
func (p Polynomial[T]) Degree() int {
	return p.degree
}

// Coefficients returns the coefficient sequence in ascending exponent
// order. The returned slice is a view; callers must not modify it.
func (p Polynomial[T]) Coefficients() []T {
	if len(p.coeffs) == 0 {
		return make([]T, 1)
	}
	return p.coeffs
}

// Coefficient returns the coefficient at the given exponent. The second
// return value is false when the exponent exceeds the degree; absence
// is not an error, and callers that need a scalar for an absent term
// use the zero value (which Coefficient also returns in that case).
func (p Polynomial[T]) Coefficient(degree int) (T, bool) {
	var zero T
	if degree < 0 || degree > p.degree {
		return zero, false
	}
	if degree >= len(p.coeffs) {
		// Zero-value Polynomial: slot exists by convention, holds zero.
		return zero, true
	}
	return p.coeffs[degree], true
}

// SetDegree raises the polynomial's degree to the given value, padding
// new high-order coefficient slots with zero. Degrees at or below the
// current one are a no-op: degree growth is monotonic, and shrinking
// requires building a new polynomial.
func (p *Polynomial[T]) SetDegree(degree int) {
	if degree > p.degree {
		p.degree = degree
	}
	if len(p.coeffs) < p.degree+1 {
		grown := make([]T, p.degree+1)
		copy(grown, p.coeffs)
		p.coeffs = grown
	}
}

// SetCoefficient sets the coefficient at the given exponent, first
// raising the degree if the exponent is above the current degree.
func (p *Polynomial[T]) SetCoefficient(degree int, c T) {
	if degree < 0 {
		return
	}
	p.SetDegree(degree)
	p.coeffs[degree] = c
}

// Add returns p + q. The result degree is the maximum of the operand
// degrees; absent low-degree terms contribute zero.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	r := New[T]()
	r.SetDegree(max(p.degree, q.degree))
	for i := 0; i <= r.degree; i++ {
		a, _ := p.Coefficient(i)
		b, _ := q.Coefficient(i)
		r.coeffs[i] = a.Add(b)
	}
	return r
}

// Sub returns p - q, coefficient-wise. Like Add it only needs the
// scalar's Sub, never Neg.
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	r := New[T]()
	r.SetDegree(max(p.degree, q.degree))
	for i := 0; i <= r.degree; i++ {
		a, _ := p.Coefficient(i)
		b, _ := q.Coefficient(i)
		r.coeffs[i] = a.Sub(b)
	}
	return r
}

// Mul returns p * q by discrete convolution: every coefficient pair
// (i, j) accumulates p[i]*q[j] into result exponent i+j. The result
// degree is the sum of the operand degrees. Cost is (p.degree+1) *
// (q.degree+1) scalar multiplications; there is no fast path for large
// degrees.
//
// Note the stored-degree convention leaks here: multiplying by the zero
// polynomial yields an all-zero result whose degree equals the other
// operand's degree, since the zero polynomial stores degree 0.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	r := New[T]()
	r.SetDegree(p.degree + q.degree)
	for i := 0; i <= p.degree; i++ {
		for j := 0; j <= q.degree; j++ {
			a, _ := p.Coefficient(i)
			b, _ := q.Coefficient(j)
			r.coeffs[i+j] = r.coeffs[i+j].Add(a.Mul(b))
		}
	}
	return r
}

// Debug returns a diagnostic rendering: a bracketed list of
// (exponent, coefficient) pairs from highest exponent down to the
// constant term, e.g. "[(2, 5), (1, 4), (0, 1)]".
func (p Polynomial[T]) Debug() string {
	var b strings.Builder
	b.WriteByte('[')
	coeffs := p.Coefficients()
	for d := len(coeffs) - 1; d >= 0; d-- {
		fmt.Fprintf(&b, "(%d, %v)", d, coeffs[d])
		if d > 0 {
			b.WriteString(", ")
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Sprint renders a real-coefficient polynomial for humans, highest
// exponent first:
//
//	Sprint(FromCoefficients(Ints(0, -3, 2))) == "2x^2 - 3x"
//
// Zero terms are skipped. The first emitted term carries no "+" but
// keeps a leading "- " when negative; later terms are joined with
// " + " or " - ". Exponent 1 renders as "cx" and exponent 0 as the bare
// coefficient. A polynomial whose coefficients are all zero renders as
// the empty string, not "0".
func Sprint[T Signed[T]](p Polynomial[T]) string {
	var b strings.Builder
	first := true

	coeffs := p.Coefficients()
	for d := len(coeffs) - 1; d >= 0; d-- {
		c := coeffs[d]
		if c.IsZero() {
			continue
		}

		neg := c.IsNegative()
		if neg {
			c = c.Neg()
		}

		switch {
		case first && neg:
			b.WriteString("- ")
		case first:
			// Leading term never carries a plus.
		case neg:
			b.WriteString(" - ")
		default:
			b.WriteString(" + ")
		}
		first = false

		switch d {
		case 0:
			b.WriteString(c.String())
		case 1:
			b.WriteString(c.String())
			b.WriteByte('x')
		default:
			fmt.Fprintf(&b, "%sx^%d", c.String(), d)
		}
	}

	return b.String()
}

// SprintComplex renders a complex-coefficient polynomial. Its contract
// is deliberately different from Sprint's and the two are separate
// algorithms: every term, including the first, is written as
// "+ (<re><sign><|im|>i)x^<d> " with a trailing space, and the exponent
// marker is always present even for degrees 0 and 1:
//
//	"+ (3+2i)x^2 + (1-4i)x^1 + (5)x^0 "
//
// Terms whose squared norm is zero are skipped, so the zero polynomial
// renders as the empty string.
func SprintComplex[T Signed[T]](p Polynomial[Complex[T]]) string {
	var b strings.Builder

	coeffs := p.Coefficients()
	for d := len(coeffs) - 1; d >= 0; d-- {
		c := coeffs[d]
		if c.NormSq().IsZero() {
			continue
		}
		fmt.Fprintf(&b, "+ (%s)x^%d ", complexInner(c), d)
	}

	return b.String()
}

// complexInner assembles the parenthesized body of one complex term:
// the real part when non-zero, then the imaginary part as
// "+<im>i" / "-<im>i", where the joining "+" appears only between two
// non-zero parts and the magnitude is always written unsigned.
func complexInner[T Signed[T]](c Complex[T]) string {
	var b strings.Builder

	if !c.Re.IsZero() {
		b.WriteString(c.Re.String())
	}

	if !c.Im.IsZero() {
		im := c.Im
		if im.IsNegative() {
			b.WriteByte('-')
			im = im.Neg()
		} else if !c.Re.IsZero() {
			b.WriteByte('+')
		}
		b.WriteString(im.String())
		b.WriteByte('i')
	}

	return b.String()
}
