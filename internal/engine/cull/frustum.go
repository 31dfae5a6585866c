// Package cull provides view-frustum visibility tests.
package cull

import (
	"github.com/Faultbox/vantage/pkg/math"
)

// Plane is a half-space in the form dot(Normal, p) + D >= 0 for points
// on the inside.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// DistanceTo returns the signed distance from the plane to p. The value
// is a true distance only if the plane normal has unit length.
func (pl Plane) DistanceTo(p math.Vec3) float32 {
	return pl.Normal.Dot(p) + pl.D
}

// Normalize rescales the plane so its normal has unit length.
func (pl Plane) Normalize() Plane {
	l := pl.Normal.Length()
	if l == 0 {
		return pl
	}
	inv := 1.0 / l
	return Plane{Normal: pl.Normal.Scale(inv), D: pl.D * inv}
}

// Plane indices within a Frustum.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// Frustum is the six half-space planes bounding a camera's visible
// volume. Points inside the volume are on the positive side of all six.
type Frustum [6]Plane

// FrustumFromMatrix extracts the six clip planes from a combined
// view-projection matrix. The clip volume is left-handed with depth in
// [0, 1], so the near plane is row 2 alone rather than row 3 + row 2.
//
// Unnormalized planes are cheaper and sufficient for sign tests against
// points; callers doing distance-based tests such as sphere culling
// must pass normalize = true.
func FrustumFromMatrix(vp math.Mat4, normalize bool) Frustum {
	r0 := vp.Row(0)
	r1 := vp.Row(1)
	r2 := vp.Row(2)
	r3 := vp.Row(3)

	var f Frustum
	f[PlaneLeft] = planeFromRow(r3.Add(r0))
	f[PlaneRight] = planeFromRow(r3.Sub(r0))
	f[PlaneBottom] = planeFromRow(r3.Add(r1))
	f[PlaneTop] = planeFromRow(r3.Sub(r1))
	f[PlaneNear] = planeFromRow(r2)
	f[PlaneFar] = planeFromRow(r3.Sub(r2))

	if normalize {
		for i := range f {
			f[i] = f[i].Normalize()
		}
	}
	return f
}

func planeFromRow(r math.Vec4) Plane {
	return Plane{
		Normal: math.Vec3{X: r.X, Y: r.Y, Z: r.Z},
		D:      r.W,
	}
}

// ContainsPoint reports whether p is inside or on the boundary of the
// frustum. Valid for normalized and unnormalized planes alike.
func (f Frustum) ContainsPoint(p math.Vec3) bool {
	for i := range f {
		if f[i].DistanceTo(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether a sphere at center with the given
// radius touches the frustum. Requires normalized planes; with
// unnormalized planes the radius comparison is meaningless.
func (f Frustum) IntersectsSphere(center math.Vec3, radius float32) bool {
	for i := range f {
		if f[i].DistanceTo(center) < -radius {
			return false
		}
	}
	return true
}
