package scene

import (
	"github.com/Faultbox/vantage/internal/engine/animation"
	"github.com/Faultbox/vantage/internal/engine/lighting"
	"github.com/Faultbox/vantage/internal/engine/mesh"
	"github.com/Faultbox/vantage/internal/engine/scenegraph"
	"github.com/Faultbox/vantage/pkg/math"
)

// NodeBuilder assembles a node in a single chain. The node is created
// immediately under the scene root and mutated in place, so a partially
// built chain still leaves a valid node behind.
type NodeBuilder struct {
	s *Scene
	h scenegraph.Handle
}

// NewNode starts building a node under the scene root.
func (s *Scene) NewNode() *NodeBuilder {
	return &NodeBuilder{s: s, h: s.CreateNode(scenegraph.Nil)}
}

// Under reparents the node being built.
func (b *NodeBuilder) Under(parent scenegraph.Handle) *NodeBuilder {
	b.s.SetParent(parent, b.h)
	return b
}

// At sets the node's local position.
func (b *NodeBuilder) At(pos math.Vec3) *NodeBuilder {
	b.s.Node(b.h).Transform.Position = pos
	return b
}

// Rotated sets the node's local rotation.
func (b *NodeBuilder) Rotated(q math.Quat) *NodeBuilder {
	b.s.Node(b.h).Transform.Rotation = q
	return b
}

// Scaled sets the node's local scale.
func (b *NodeBuilder) Scaled(scale math.Vec3) *NodeBuilder {
	b.s.Node(b.h).Transform.Scale = scale
	return b
}

// WithLight attaches a light payload.
func (b *NodeBuilder) WithLight(l lighting.Light) *NodeBuilder {
	b.s.AttachLight(b.h, l)
	return b
}

// WithStaticMesh attaches a static mesh payload.
func (b *NodeBuilder) WithStaticMesh(mh mesh.Handle) *NodeBuilder {
	b.s.AttachStaticMesh(b.h, mh)
	return b
}

// WithSkeletalMesh attaches a skinned mesh payload.
func (b *NodeBuilder) WithSkeletalMesh(mh mesh.Handle, clip *animation.Clip) *NodeBuilder {
	b.s.AttachSkeletalMesh(b.h, mh, clip)
	return b
}

// Handle finishes the chain and returns the node's handle.
func (b *NodeBuilder) Handle() scenegraph.Handle {
	return b.h
}
