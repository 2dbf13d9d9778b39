package gm

// Complex is a complex number over any signed scalar element. It
// satisfies Element[Complex[T]] itself, so complex-coefficient
// polynomials are just Polynomial[Complex[T]].
type Complex[T Signed[T]] struct {
	Re, Im T
}

// Cplx builds a complex number from its real and imaginary parts.
func Cplx[T Signed[T]](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// Add returns z + w.
func (z Complex[T]) Add(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

// Sub returns z - w.
func (z Complex[T]) Sub(w Complex[T]) Complex[T] {
	return Complex[T]{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

// Mul returns z * w: (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (z Complex[T]) Mul(w Complex[T]) Complex[T] {
	return Complex[T]{
		Re: z.Re.Mul(w.Re).Sub(z.Im.Mul(w.Im)),
		Im: z.Re.Mul(w.Im).Add(z.Im.Mul(w.Re)),
	}
}

// Equal reports whether both parts are equal.
func (z Complex[T]) Equal(w Complex[T]) bool {
	return z.Re.Equal(w.Re) && z.Im.Equal(w.Im)
}

// IsZero reports whether the squared norm is zero, i.e. both parts are zero.
func (z Complex[T]) IsZero() bool {
	return z.NormSq().IsZero()
}

// NormSq returns the squared norm Re*Re + Im*Im.
func (z Complex[T]) NormSq() T {
	return z.Re.Mul(z.Re).Add(z.Im.Mul(z.Im))
}

// String renders the number as "a+bi", eliding zero parts the same way
// the complex polynomial renderer does. The zero complex renders as "".
func (z Complex[T]) String() string {
	return complexInner(z)
}
