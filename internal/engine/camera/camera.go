// Package camera provides the viewing camera for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/vantage/pkg/math"
)

// Mode selects how camera position and orientation are derived.
type Mode int

const (
	// ModeFree sets position and rotation directly.
	ModeFree Mode = iota
	// ModeOrbit derives them from spherical coordinates around a target.
	ModeOrbit
)

// ProjectionKind discriminates the projection variant.
type ProjectionKind int

const (
	ProjectionPerspective ProjectionKind = iota
	ProjectionOrthographic
)

// Projection is a tagged union: Kind selects which field group applies.
type Projection struct {
	Kind ProjectionKind

	// Perspective
	Fov    float32 // Vertical field of view, radians
	Aspect float32 // Width / height

	// Orthographic
	Width  float32
	Height float32

	// Shared clip distances
	Near float32
	Far  float32
}

// Perspective returns a perspective projection with the given vertical
// field of view in radians.
func Perspective(fov, aspect, near, far float32) Projection {
	return Projection{
		Kind:   ProjectionPerspective,
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
	}
}

// Orthographic returns an orthographic projection with an explicit view
// volume of width x height.
func Orthographic(width, height, near, far float32) Projection {
	return Projection{
		Kind:   ProjectionOrthographic,
		Width:  width,
		Height: height,
		Near:   near,
		Far:    far,
	}
}

// Matrix builds the projection matrix. Left-handed, depth in [0, 1].
func (p Projection) Matrix() math.Mat4 {
	switch p.Kind {
	case ProjectionOrthographic:
		return math.OrthoLH01(p.Width, p.Height, p.Near, p.Far)
	default:
		return math.PerspectiveLH01(p.Fov, p.Aspect, p.Near, p.Far)
	}
}

// Camera holds viewing state for one viewpoint. A single camera serves
// both interaction modes; the orbit fields are ignored while the camera
// is in free mode.
type Camera struct {
	Position math.Vec3
	Rotation math.Quat
	Up       math.Vec3

	Projection Projection

	mode Mode

	// Orbit state (spherical coordinates around Target)
	Target   math.Vec3
	Distance float32
	Yaw      float32 // Horizontal angle, radians
	Pitch    float32 // Vertical angle, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewCamera creates a free-mode camera at the origin with the given
// projection.
func NewCamera(proj Projection) *Camera {
	return &Camera{
		Rotation:        math.QuatIdentity(),
		Up:              math.Up(),
		Projection:      proj,
		mode:            ModeFree,
		Distance:        5.0,
		MinDistance:     1.0,
		MaxDistance:     100.0,
		MinPitch:        -1.55,
		MaxPitch:        1.55,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// NewOrbitCamera creates a camera already in orbit mode around target.
func NewOrbitCamera(proj Projection, target math.Vec3, distance float32) *Camera {
	c := NewCamera(proj)
	c.SwitchToOrbit(target, distance)
	return c
}

// Mode returns the current interaction mode.
func (c *Camera) Mode() Mode {
	return c.mode
}

// SwitchToOrbit puts the camera in orbit mode around target, resets yaw
// and pitch to zero and immediately recomputes position and orientation.
// A distance <= 0 keeps the current distance.
func (c *Camera) SwitchToOrbit(target math.Vec3, distance float32) {
	c.mode = ModeOrbit
	c.Target = target
	if distance > 0 {
		c.Distance = distance
	}
	c.Yaw = 0
	c.Pitch = 0
	c.updateOrbit()
}

// SwitchToFree puts the camera in free mode. Position and rotation keep
// their last computed values, freezing the camera at its current pose.
func (c *Camera) SwitchToFree() {
	c.mode = ModeFree
}

// RotateOrbit adjusts yaw and pitch by the given deltas, clamping pitch.
// No-op in free mode.
func (c *Camera) RotateOrbit(deltaYaw, deltaPitch float32) {
	if c.mode != ModeOrbit {
		return
	}
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
	c.updateOrbit()
}

// ZoomOrbit adjusts the orbit distance by delta, clamping to the
// configured range. No-op in free mode.
func (c *Camera) ZoomOrbit(delta float32) {
	if c.mode != ModeOrbit {
		return
	}
	c.Distance += delta
	c.updateOrbit()
}

// SetOrbitTarget moves the orbit center. No-op in free mode.
func (c *Camera) SetOrbitTarget(target math.Vec3) {
	if c.mode != ModeOrbit {
		return
	}
	c.Target = target
	c.updateOrbit()
}

// updateOrbit recomputes position from the spherical coordinates and
// re-derives orientation by looking at the target. Out-of-range pitch
// and distance are clamped, never an error.
func (c *Camera) updateOrbit() {
	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}

	cosPitch := math32.Cos(c.Pitch)
	offset := math.Vec3{
		X: c.Distance * cosPitch * math32.Cos(c.Yaw),
		Y: c.Distance * math32.Sin(c.Pitch),
		Z: c.Distance * cosPitch * math32.Sin(c.Yaw),
	}
	c.Position = c.Target.Add(offset)
	c.LookAt(c.Target)
}

// LookAt orients the camera toward target by building an orthonormal
// basis from the forward direction and converting it to a quaternion.
// Orbit mode routes through here as well, so explicit look-at calls and
// orbit updates derive orientation identically.
func (c *Camera) LookAt(target math.Vec3) {
	forward := target.Sub(c.Position).Normalize()
	right := c.Up.Cross(forward).Normalize()
	up := forward.Cross(right)

	basis := math.Mat4{
		right.X, right.Y, right.Z, 0,
		up.X, up.Y, up.Z, 0,
		forward.X, forward.Y, forward.Z, 0,
		0, 0, 0, 1,
	}
	c.Rotation = math.QuatFromMat4(basis)
}

// Forward returns the view direction derived from the rotation.
func (c *Camera) Forward() math.Vec3 {
	return c.Rotation.Rotate(math.Vec3{Z: 1})
}

// ViewMatrix rebuilds the view matrix from position and rotation. The
// forward vector is re-derived from the quaternion on every call so the
// result never drifts from what LookAt produced.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookToLH(c.Position, c.Forward(), c.Up)
}

// ProjectionMatrix builds the projection matrix for the active variant.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return c.Projection.Matrix()
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// Move translates a free-mode camera along its own axes: x right,
// y up, z forward. No-op in orbit mode, where position is derived.
func (c *Camera) Move(x, y, z float32) {
	if c.mode != ModeFree {
		return
	}
	right := c.Rotation.Rotate(math.Vec3{X: 1})
	up := c.Rotation.Rotate(math.Vec3{Y: 1})
	forward := c.Forward()

	delta := right.Scale(x).Add(up.Scale(y)).Add(forward.Scale(z))
	c.Position = c.Position.Add(delta)
}

// SetPosition places a free-mode camera. No-op in orbit mode.
func (c *Camera) SetPosition(p math.Vec3) {
	if c.mode != ModeFree {
		return
	}
	c.Position = p
}

// SetRotation sets a free-mode camera's orientation. The quaternion is
// normalized on the way in. No-op in orbit mode.
func (c *Camera) SetRotation(q math.Quat) {
	if c.mode != ModeFree {
		return
	}
	c.Rotation = q.Normalize()
}

// Rotate applies yaw and pitch deltas to a free-mode camera. Yaw spins
// about the world up axis, pitch about the camera's right axis. No-op
// in orbit mode.
func (c *Camera) Rotate(deltaYaw, deltaPitch float32) {
	if c.mode != ModeFree {
		return
	}
	yaw := math.QuatFromAxisAngle(c.Up, deltaYaw)
	right := c.Rotation.Rotate(math.Vec3{X: 1})
	pitch := math.QuatFromAxisAngle(right, deltaPitch)
	c.Rotation = yaw.Mul(pitch.Mul(c.Rotation)).Normalize()
}

// HandleDrag converts a mouse drag delta into an orbit rotation.
func (c *Camera) HandleDrag(deltaX, deltaY float32) {
	c.RotateOrbit(deltaX*c.DragSensitivity, deltaY*c.DragSensitivity)
}

// HandleZoom converts a scroll wheel delta into a distance change that
// scales with the current distance for consistent feel.
func (c *Camera) HandleZoom(delta float32) {
	c.ZoomOrbit(-delta * c.Distance * c.ZoomSensitivity)
}
