package picking

import (
	"github.com/Faultbox/vantage/internal/engine/scene"
	"github.com/Faultbox/vantage/internal/engine/scenegraph"
	"github.com/Faultbox/vantage/pkg/math"
)

// NearestMeshNode casts the ray against the bounding spheres of the
// scene's visible mesh nodes and returns the closest hit. ok is false
// when the ray misses everything.
func NearestMeshNode(s *scene.Scene, r Ray) (h scenegraph.Handle, dist float32, ok bool) {
	for _, vm := range s.VisibleMeshes() {
		m := s.Meshes.Get(vm.Mesh)
		if m == nil {
			continue
		}

		center := vm.World.TransformPoint(m.Bounds.Center)
		radius := m.Bounds.Radius * worldScale(vm.World)
		t, hit := r.IntersectSphere(center, radius)
		if !hit {
			continue
		}
		if !ok || t < dist {
			h, dist, ok = vm.Node, t, true
		}
	}
	return h, dist, ok
}

func worldScale(m math.Mat4) float32 {
	sx := (math.Vec3{X: m[0], Y: m[1], Z: m[2]}).Length()
	sy := (math.Vec3{X: m[4], Y: m[5], Z: m[6]}).Length()
	sz := (math.Vec3{X: m[8], Y: m[9], Z: m[10]}).Length()

	max := sx
	if sy > max {
		max = sy
	}
	if sz > max {
		max = sz
	}
	return max
}
