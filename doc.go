// Package gm provides a small mathematics toolkit for Go.
//
// # Overview
//
// gm bundles the value-math primitives that keep reappearing in simulation
// and geometry code: degree/radian angles, 3D vector algebra, a generic dense
// univariate polynomial engine, SI unit tagging, and generic complex numbers.
// Everything is a plain value type with no hidden state, no goroutines, and
// no I/O.
//
// # Quick Start
//
//	import "github.com/gomath/gm"
//
//	p := gm.FromCoefficients(gm.Ints(1, 4, 5)) // 5x^2 + 4x + 1
//	q := gm.FromCoefficients(gm.Ints(2, 8, 10, 12, 14))
//
//	sum := p.Add(q)
//	fmt.Println(gm.Sprint(sum)) // 14x^4 + 12x^3 + 15x^2 + 12x + 3
//
//	v := gm.V3(1, 2, 3)
//	w := gm.V3(4, 5, 6)
//	fmt.Println(v.Cross(w), v.AngleBetween(w))
//
// # Architecture
//
// The library is organized into:
//   - Scalars: Element/Signed capabilities and the Int, Int64, Float64,
//     Fixed, and Rat element types (ring.go)
//   - Polynomials: generic dense Polynomial with two renderers (poly.go)
//   - Complex: generic complex numbers over any signed element (complex.go)
//   - Geometry: Vec3 and Angle (vec3.go, angle.go)
//   - Units: SI dimension tagging in the unit subpackage
//
// # Coefficient Conventions
//
// Polynomial coefficients are stored in ascending exponent order: index 0 is
// the constant term. The zero polynomial reports degree 0, never a negative
// degree, and SetDegree only ever grows storage. See Polynomial for details.
package gm

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
