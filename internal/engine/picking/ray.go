// Package picking provides ray casting for mouse selection.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/vantage/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport
// dimensions. invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // Flip Y

	// Unproject points on the near and far clip planes (depth 0 and 1)
	near := unproject(math.Vec4{X: ndcX, Y: ndcY, Z: 0, W: 1}, invViewProj)
	far := unproject(math.Vec4{X: ndcX, Y: ndcY, Z: 1, W: 1}, invViewProj)

	return Ray{
		Origin:    near,
		Direction: far.Sub(near).Normalize(),
	}
}

func unproject(clip math.Vec4, invViewProj math.Mat4) math.Vec3 {
	w := invViewProj.MulVec4(clip)
	p := math.Vec3{X: w.X, Y: w.Y, Z: w.Z}
	if w.W != 0 {
		p = p.Scale(1 / w.W)
	}
	return p
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlaneY intersects the ray with a horizontal plane at the
// given Y level. Returns the intersection point and whether it exists
// in front of the ray origin.
func (r Ray) IntersectPlaneY(planeY float32) (math.Vec3, bool) {
	if math32.Abs(r.Direction.Y) < 0.001 {
		return math.Vec3{}, false // Ray parallel to plane
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false // Intersection behind ray origin
	}
	return r.At(t), true
}

// IntersectSphere tests the ray against a sphere. Returns the distance
// to the nearest intersection in front of the origin; a ray starting
// inside the sphere reports the exit distance.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (t float32, hit bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	sq := math32.Sqrt(disc)
	t = -b - sq
	if t < 0 {
		t = -b + sq // Origin inside the sphere
	}
	if t < 0 {
		return 0, false // Sphere entirely behind the origin
	}
	return t, true
}
