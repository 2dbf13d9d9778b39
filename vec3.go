package gm

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromArray builds a Vec3 from a [3]float64 in x, y, z order.
func FromArray(a [3]float64) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns the components as a [3]float64 in x, y, z order.
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns the vector scaled by a scalar.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by a scalar.
func (v Vec3) Div(s float64) Vec3 {
	return Vec3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Neg returns the negation of the vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// LengthSq returns the squared length of the vector.
// This is faster than Length() when you only need to compare magnitudes.
func (v Vec3) LengthSq() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the original vector has zero length; that
// case is logged at Warn since it usually indicates an upstream bug.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		Logger().Warn("gm: normalizing zero-length vector")
		return Vec3{}
	}
	return Vec3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// On returns the scalar projection of v onto w: the dot product of v
// with the unit vector in w's direction.
func (v Vec3) On(w Vec3) float64 {
	return v.Dot(w.Normalize())
}

// AngleBetween returns the angle between two vectors. The cosine is
// clamped to [-1, 1] before acos so rounding noise near parallel
// vectors cannot produce NaN. Either vector being zero-length yields
// the zero angle.
func (v Vec3) AngleBetween(w Vec3) Angle {
	magProduct := math.Sqrt(v.LengthSq() * w.LengthSq())
	if magProduct == 0 {
		return Angle{}
	}
	cos := v.Dot(w) / magProduct
	cos = math.Max(-1, math.Min(1, cos))
	return Radians(math.Acos(cos))
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// IsZero returns true if the vector is the zero vector.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec3) Approx(w Vec3, epsilon float64) bool {
	return scalar.EqualWithinAbs(v.X, w.X, epsilon) &&
		scalar.EqualWithinAbs(v.Y, w.Y, epsilon) &&
		scalar.EqualWithinAbs(v.Z, w.Z, epsilon)
}

// String renders the vector in i/j/k basis notation: unit components
// drop their magnitude ("i" rather than "1i"), non-leading components
// carry their sign, and zero components are omitted entirely. The zero
// vector renders as the empty string.
//
//	V3(1, -2, 0).String() == "i-2j"
func (v Vec3) String() string {
	var b strings.Builder
	b.WriteString(basisComponent(v.X, 'i', false, false))
	b.WriteString(basisComponent(v.Y, 'j', v.X != 0, true))
	b.WriteString(basisComponent(v.Z, 'k', v.X != 0 || v.Y != 0, true))
	return b.String()
}

// basisComponent renders one component against its basis symbol.
// preceded marks whether an earlier component was emitted, which forces
// an explicit "+" on positive unit components. signAlways marks the
// j/k components, whose non-unit magnitudes always carry a sign.
func basisComponent(c float64, basis byte, preceded, signAlways bool) string {
	switch {
	case c == 1:
		if preceded {
			return "+" + string(basis)
		}
		return string(basis)
	case c == -1:
		return "-" + string(basis)
	case c != 0 && signAlways:
		return fmt.Sprintf("%+g%c", c, basis)
	case c != 0:
		return fmt.Sprintf("%g%c", c, basis)
	default:
		return ""
	}
}
