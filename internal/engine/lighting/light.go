// Package lighting owns the light records referenced by scene nodes.
// Nodes store only opaque light handles; the renderer reads the records
// back when building its uniform buffers.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/vantage/pkg/math"
)

// MaxPointLights is the maximum number of point lights uploaded to shaders.
const MaxPointLights = 32

// Kind discriminates light records.
type Kind uint8

const (
	Directional Kind = iota
	Point
)

// Light is a single light record. Position is ignored for directional
// lights; Direction is ignored for point lights. A light attached to a
// node is positioned by the node's world transform, with Position
// acting as a local offset.
type Light struct {
	Kind      Kind
	Position  math.Vec3
	Direction math.Vec3
	Color     [3]float32 // RGB, 0-1 range
	Range     float32    // Falloff distance (point lights)
	Intensity float32
}

// Handle is an opaque reference to a registered light. Zero means
// "no light".
type Handle uint32

// Registry stores light records behind handles.
type Registry struct {
	lights []Light
}

// NewRegistry creates an empty light registry.
func NewRegistry() *Registry {
	return &Registry{
		// Index 0 is reserved so the zero Handle never resolves.
		lights: make([]Light, 1, MaxPointLights+1),
	}
}

// Add registers a light and returns its handle.
func (r *Registry) Add(l Light) Handle {
	r.lights = append(r.lights, l)
	return Handle(len(r.lights) - 1)
}

// Get returns the light for a handle, or nil if the handle is invalid.
func (r *Registry) Get(h Handle) *Light {
	if h == 0 || int(h) >= len(r.lights) {
		return nil
	}
	return &r.lights[h]
}

// Len returns the number of registered lights.
func (r *Registry) Len() int {
	return len(r.lights) - 1
}

// SunDirection converts longitude/latitude angles in degrees to a
// normalized direction vector pointing towards the sun. Longitude is
// rotation around the Y axis, latitude is elevation from the horizon.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lonRad := longitude * math32.Pi / 180.0
	latRad := latitude * math32.Pi / 180.0

	return math.Vec3{
		X: math32.Cos(latRad) * math32.Sin(lonRad),
		Y: math32.Sin(latRad),
		Z: math32.Cos(latRad) * math32.Cos(lonRad),
	}
}
