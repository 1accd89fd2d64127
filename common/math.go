package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes. Y is up and an identity rotation faces +Z.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

const epsilon = 1e-9

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveTowards steps cur toward target by at most maxDelta.
func MoveTowards(cur, target, maxDelta float64) float64 {
	if math.Abs(target-cur) <= maxDelta {
		return target
	}
	if target > cur {
		return cur + maxDelta
	}
	return cur - maxDelta
}

// PlanarDistance is the distance between a and b ignoring height.
func PlanarDistance(a, b mgl64.Vec3) float64 {
	return math.Hypot(a.X()-b.X(), a.Z()-b.Z())
}

// Normalize returns v with unit length, or the zero vector for degenerate input.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < epsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Reflect mirrors dir about the plane with the given normal.
func Reflect(dir, normal mgl64.Vec3) mgl64.Vec3 {
	n := Normalize(normal)
	return dir.Sub(n.Mul(2 * dir.Dot(n)))
}

// AngleBetween returns the unsigned angle in radians between a and b.
func AngleBetween(a, b mgl64.Vec3) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na.LenSqr() == 0 || nb.LenSqr() == 0 {
		return 0
	}
	return math.Acos(Clamp(na.Dot(nb), -1, 1))
}

// LookRotation builds the rotation whose forward axis points along dir with no
// roll. A zero dir yields the identity.
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	d := Normalize(dir)
	if d.LenSqr() == 0 {
		return mgl64.QuatIdent()
	}
	yaw := math.Atan2(d.X(), d.Z())
	pitch := -math.Asin(Clamp(d.Y(), -1, 1))
	return mgl64.QuatRotate(yaw, Up).Mul(mgl64.QuatRotate(pitch, Right)).Normalize()
}

// ForwardOf returns the forward axis of q.
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Forward)
}

// RightOf returns the right axis of q.
func RightOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Right)
}

// QuatAngle is the rotation angle in radians needed to get from a to b.
func QuatAngle(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Dot(b))
	return 2 * math.Acos(Clamp(d, -1, 1))
}

// Slerp interpolates along the shortest arc between a and b.
func Slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	d := a.Dot(b)
	if d < 0 {
		b = b.Scale(-1)
		d = -d
	}
	if d > 1-1e-6 {
		return mgl64.QuatLerp(a, b, t).Normalize()
	}
	theta := math.Acos(Clamp(d, -1, 1))
	s := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / s
	wb := math.Sin(t*theta) / s
	return a.Scale(wa).Add(b.Scale(wb)).Normalize()
}

// RotateTowards turns from toward to by at most maxRadians.
func RotateTowards(from, to mgl64.Quat, maxRadians float64) mgl64.Quat {
	if maxRadians <= 0 {
		return from
	}
	angle := QuatAngle(from, to)
	if angle < epsilon || angle <= maxRadians {
		return to.Normalize()
	}
	return Slerp(from, to, maxRadians/angle)
}
