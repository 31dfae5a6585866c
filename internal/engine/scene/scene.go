// Package scene is the composition root of the engine: it ties the node
// arena, the active camera and the resource registries together and is
// the consumer-facing entry point for view, projection and frustum
// queries.
package scene

import (
	"github.com/Faultbox/vantage/internal/engine/animation"
	"github.com/Faultbox/vantage/internal/engine/camera"
	"github.com/Faultbox/vantage/internal/engine/cull"
	"github.com/Faultbox/vantage/internal/engine/lighting"
	"github.com/Faultbox/vantage/internal/engine/mesh"
	"github.com/Faultbox/vantage/internal/engine/scenegraph"
	"github.com/Faultbox/vantage/pkg/math"
)

// Scene holds the node hierarchy under a single root, the active camera
// and the registries nodes point into. All mutation and all queries go
// through the scene within one frame; it is not safe for concurrent use.
type Scene struct {
	arena *scenegraph.Arena
	root  scenegraph.Handle

	Camera *camera.Camera
	Lights *lighting.Registry
	Meshes *mesh.Registry

	// Global lighting defaults applied when no directional light node
	// is present.
	AmbientColor [3]float32
}

// New creates an empty scene owned by the given camera.
func New(cam *camera.Camera) *Scene {
	arena := scenegraph.NewArena()
	return &Scene{
		arena:        arena,
		root:         arena.Create(),
		Camera:       cam,
		Lights:       lighting.NewRegistry(),
		Meshes:       mesh.NewRegistry(),
		AmbientColor: [3]float32{0.3, 0.3, 0.3},
	}
}

// Root returns the handle of the scene's root node.
func (s *Scene) Root() scenegraph.Handle {
	return s.root
}

// Node resolves a handle, or nil if it is stale or invalid.
func (s *Scene) Node(h scenegraph.Handle) *scenegraph.Node {
	return s.arena.Get(h)
}

// Len returns the number of live nodes, the root included.
func (s *Scene) Len() int {
	return s.arena.Len()
}

// CreateNode allocates a node under parent. A nil parent attaches the
// node to the scene root.
func (s *Scene) CreateNode(parent scenegraph.Handle) scenegraph.Handle {
	h := s.arena.Create()
	if parent.IsNil() {
		parent = s.root
	}
	s.arena.Parent(parent, h)
	return h
}

// SetParent reparents child under parent. See Arena.Parent for the
// detach-first semantics.
func (s *Scene) SetParent(parent, child scenegraph.Handle) bool {
	if child == s.root {
		return false
	}
	return s.arena.Parent(parent, child)
}

// DestroyNode frees a node and re-homes its children to the scene root,
// so no node is ever left detached from the hierarchy. The root itself
// cannot be destroyed. Returns false if the handle does not resolve.
func (s *Scene) DestroyNode(h scenegraph.Handle) bool {
	if h == s.root {
		return false
	}
	n := s.arena.Get(h)
	if n == nil {
		return false
	}

	children := make([]scenegraph.Handle, len(n.Children()))
	copy(children, n.Children())
	for _, c := range children {
		s.arena.Parent(s.root, c)
	}
	return s.arena.Destroy(h)
}

// DestroyNodeRecursive frees a node and its entire subtree.
func (s *Scene) DestroyNodeRecursive(h scenegraph.Handle) bool {
	if h == s.root {
		return false
	}
	return s.arena.DestroyRecursive(h)
}

// WorldMatrix composes the node's transform along the parent chain.
func (s *Scene) WorldMatrix(h scenegraph.Handle) math.Mat4 {
	return s.arena.WorldMatrix(h)
}

// AttachLight registers the light record and stores its handle in the
// node's payload. Returns the zero handle if the node does not resolve.
func (s *Scene) AttachLight(h scenegraph.Handle, l lighting.Light) lighting.Handle {
	n := s.arena.Get(h)
	if n == nil {
		return 0
	}
	lh := s.Lights.Add(l)
	n.Data = scenegraph.LightData(lh)
	return lh
}

// AttachStaticMesh stores a mesh handle in the node's payload.
func (s *Scene) AttachStaticMesh(h scenegraph.Handle, mh mesh.Handle) bool {
	n := s.arena.Get(h)
	if n == nil {
		return false
	}
	n.Data = scenegraph.StaticMeshData(mh)
	return true
}

// AttachSkeletalMesh stores a skinned mesh payload with a fresh pose
// sized for the clip. clip may be nil for a mesh posed externally.
func (s *Scene) AttachSkeletalMesh(h scenegraph.Handle, mh mesh.Handle, clip *animation.Clip) bool {
	n := s.arena.Get(h)
	if n == nil {
		return false
	}

	joints := 0
	var inst *animation.Instance
	if clip != nil {
		joints = len(clip.Tracks)
		inst = animation.NewInstance(clip)
	}
	n.Data = scenegraph.SkeletalMeshData(mh, animation.NewPose(joints), inst)
	return true
}

// ViewMatrix returns the active camera's view matrix.
func (s *Scene) ViewMatrix() math.Mat4 {
	return s.Camera.ViewMatrix()
}

// ProjectionMatrix returns the active camera's projection matrix.
func (s *Scene) ProjectionMatrix() math.Mat4 {
	return s.Camera.ProjectionMatrix()
}

// ViewProjection returns projection * view for the active camera.
func (s *Scene) ViewProjection() math.Mat4 {
	return s.Camera.ViewProjection()
}

// Frustum extracts the camera frustum. Pass normalize for distance
// based tests such as sphere culling.
func (s *Scene) Frustum(normalize bool) cull.Frustum {
	return cull.FrustumFromMatrix(s.ViewProjection(), normalize)
}

// VisibleMesh is one draw candidate that survived frustum culling.
type VisibleMesh struct {
	Node  scenegraph.Handle
	Mesh  mesh.Handle
	World math.Mat4

	// Non-nil for skinned meshes.
	Pose *animation.Pose
}

// VisibleMeshes walks the hierarchy and returns the mesh nodes whose
// world-space bounding sphere intersects the camera frustum. Nodes with
// stale mesh handles are skipped.
func (s *Scene) VisibleMeshes() []VisibleMesh {
	frustum := s.Frustum(true)

	var out []VisibleMesh
	s.arena.Walk(func(h scenegraph.Handle, n *scenegraph.Node) bool {
		if n.Data.Kind != scenegraph.DataStaticMesh && n.Data.Kind != scenegraph.DataSkeletalMesh {
			return true
		}
		m := s.Meshes.Get(n.Data.Mesh)
		if m == nil {
			return true
		}

		world := s.arena.WorldMatrix(h)
		center := world.TransformPoint(m.Bounds.Center)
		radius := m.Bounds.Radius * maxScale(world)
		if !frustum.IntersectsSphere(center, radius) {
			return true
		}

		out = append(out, VisibleMesh{
			Node:  h,
			Mesh:  n.Data.Mesh,
			World: world,
			Pose:  n.Data.Pose,
		})
		return true
	})
	return out
}

// LightState is a light record resolved to world space.
type LightState struct {
	lighting.Light
	WorldPosition math.Vec3
}

// ActiveLights collects all light nodes with their world positions, for
// the renderer to upload. The list is rebuilt on every call.
func (s *Scene) ActiveLights() []LightState {
	var out []LightState
	s.arena.Walk(func(h scenegraph.Handle, n *scenegraph.Node) bool {
		if n.Data.Kind != scenegraph.DataLight {
			return true
		}
		l := s.Lights.Get(n.Data.Light)
		if l == nil {
			return true
		}
		world := s.arena.WorldMatrix(h)
		out = append(out, LightState{
			Light:         *l,
			WorldPosition: world.TransformPoint(l.Position),
		})
		return true
	})
	return out
}

// Update advances all playing animation instances by dt milliseconds
// and samples them into their node's pose.
func (s *Scene) Update(dtMs float32) {
	s.arena.Walk(func(h scenegraph.Handle, n *scenegraph.Node) bool {
		if n.Data.Kind == scenegraph.DataSkeletalMesh && n.Data.Animation != nil {
			n.Data.Animation.Advance(dtMs, n.Data.Pose)
		}
		return true
	})
}

// PlayAnimation starts the node's animation instance, if it has one.
func (s *Scene) PlayAnimation(h scenegraph.Handle) {
	if inst := s.animationAt(h); inst != nil {
		inst.Play()
	}
}

// PauseAnimation pauses the node's animation instance, if it has one.
func (s *Scene) PauseAnimation(h scenegraph.Handle) {
	if inst := s.animationAt(h); inst != nil {
		inst.Pause()
	}
}

// StopAnimation stops and rewinds the node's animation instance.
func (s *Scene) StopAnimation(h scenegraph.Handle) {
	if inst := s.animationAt(h); inst != nil {
		inst.Stop()
	}
}

// SetAnimationLoop sets the loop mode of the node's animation instance.
func (s *Scene) SetAnimationLoop(h scenegraph.Handle, mode animation.LoopMode) {
	if inst := s.animationAt(h); inst != nil {
		inst.SetLoopMode(mode)
	}
}

func (s *Scene) animationAt(h scenegraph.Handle) *animation.Instance {
	n := s.arena.Get(h)
	if n == nil || n.Data.Kind != scenegraph.DataSkeletalMesh {
		return nil
	}
	return n.Data.Animation
}

// maxScale returns the largest axis scale factor of a transform matrix,
// the safe factor for a bounding sphere radius under non-uniform scale.
func maxScale(m math.Mat4) float32 {
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

// Destroy releases the scene's GPU resources.
func (s *Scene) Destroy() {
	s.Meshes.Destroy()
}
