package scenegraph

import (
	"github.com/Faultbox/vantage/internal/engine/animation"
	"github.com/Faultbox/vantage/internal/engine/lighting"
	"github.com/Faultbox/vantage/internal/engine/mesh"
	"github.com/Faultbox/vantage/pkg/math"
)

// DataKind discriminates the payload attached to a node.
type DataKind uint8

const (
	DataNone DataKind = iota
	DataLight
	DataStaticMesh
	DataSkeletalMesh
)

// NodeData is the tagged payload of a node: exactly one case is active,
// selected by Kind. The handles are opaque references into the lighting
// and mesh registries; Pose and Animation are owned by the animation
// system and never inspected here.
type NodeData struct {
	Kind DataKind

	Light lighting.Handle // DataLight
	Mesh  mesh.Handle     // DataStaticMesh, DataSkeletalMesh

	// DataSkeletalMesh only
	Pose      *animation.Pose
	Animation *animation.Instance // optional
}

// LightData returns a light payload.
func LightData(h lighting.Handle) NodeData {
	return NodeData{Kind: DataLight, Light: h}
}

// StaticMeshData returns a static mesh payload.
func StaticMeshData(h mesh.Handle) NodeData {
	return NodeData{Kind: DataStaticMesh, Mesh: h}
}

// SkeletalMeshData returns a skinned mesh payload. inst may be nil for
// a mesh posed without an active animation.
func SkeletalMeshData(h mesh.Handle, pose *animation.Pose, inst *animation.Instance) NodeData {
	return NodeData{Kind: DataSkeletalMesh, Mesh: h, Pose: pose, Animation: inst}
}

// Node is one entity in the scene hierarchy. Nodes live inside an Arena
// and are only reached through handles; the parent/child links are
// mutated exclusively by the arena's reparenting operations so that the
// two sides always stay in sync.
type Node struct {
	Transform math.Transform
	Data      NodeData

	self     Handle
	parent   Handle
	children []Handle
}

// Handle returns the node's own handle.
func (n *Node) Handle() Handle {
	return n.self
}

// Parent returns the parent handle. A node without a parent reports its
// own handle.
func (n *Node) Parent() Handle {
	return n.parent
}

// HasParent reports whether the node is attached to another node.
func (n *Node) HasParent() bool {
	return n.parent != n.self && !n.parent.IsNil()
}

// Children returns the node's child handles. The slice is owned by the
// arena and must not be modified; its order is insertion order but
// carries no meaning (removal swaps with the last element).
func (n *Node) Children() []Handle {
	return n.children
}
