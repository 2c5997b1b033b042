// Package gamemath contains the 2D helpers shared by spawning, movement and
// field transforms. Angles are in degrees, counter-clockwise, with 0 pointing
// along +Y.
package gamemath

import (
	"math"
	"math/rand"

	dmath "github.com/yohamta/donburi/features/math"
)

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Rotate turns v counter-clockwise about the origin.
func Rotate(v dmath.Vec2, degrees float64) dmath.Vec2 {
	if degrees == 0 {
		return v
	}
	return v.Rotate(degrees * Deg2Rad)
}

// RotateAround turns p counter-clockwise about center.
func RotateAround(p, center dmath.Vec2, degrees float64) dmath.Vec2 {
	if degrees == 0 {
		return p
	}
	return p.RotateAround(&center, degrees*Deg2Rad)
}

// DirectionFromAngle returns the unit vector for an angle.
func DirectionFromAngle(degrees float64) dmath.Vec2 {
	return Rotate(dmath.Vec2{X: 0, Y: 1}, degrees)
}

// AngleOf returns the angle of v, the inverse of DirectionFromAngle.
func AngleOf(v dmath.Vec2) float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return math.Atan2(-v.X, v.Y) * Rad2Deg
}

// AngleBetween returns the angle pointing from one point to another.
func AngleBetween(from, to dmath.Vec2) float64 {
	return AngleOf(to.Sub(from))
}

// RandomInRect samples a point uniformly from the rectangle spanned by
// min and max.
func RandomInRect(rng *rand.Rand, min, max dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{
		X: min.X + rng.Float64()*(max.X-min.X),
		Y: min.Y + rng.Float64()*(max.Y-min.Y),
	}
}
