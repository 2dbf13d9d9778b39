package gm

import (
	"fmt"
	"math"
)

// Angle is a planar angle that remembers both of its usual
// representations, so repeated conversions cost nothing and cannot
// drift. The zero value is the zero angle.
type Angle struct {
	deg float64
	rad float64
}

// Degrees builds an angle from a value in degrees.
func Degrees(deg float64) Angle {
	return Angle{deg: deg, rad: deg * math.Pi / 180}
}

// Radians builds an angle from a value in radians.
func Radians(rad float64) Angle {
	return Angle{deg: rad * 180 / math.Pi, rad: rad}
}

// Deg returns the angle in degrees.
func (a Angle) Deg() float64 { return a.deg }

// Rad returns the angle in radians.
func (a Angle) Rad() float64 { return a.rad }

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 { return math.Sin(a.rad) }

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 { return math.Cos(a.rad) }

// Normalized returns the angle normalized to [-π, π).
func (a Angle) Normalized() Angle {
	rad := math.Mod(a.rad+math.Pi, 2*math.Pi)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return Radians(rad - math.Pi)
}

// String renders the angle in degrees, e.g. "45deg".
func (a Angle) String() string {
	return fmt.Sprintf("%gdeg", a.deg)
}

// Verbose renders both representations for diagnostics,
// e.g. "<45deg 0.7853981633974483rad>".
func (a Angle) Verbose() string {
	return fmt.Sprintf("<%gdeg %grad>", a.deg, a.rad)
}
