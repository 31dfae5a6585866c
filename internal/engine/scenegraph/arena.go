package scenegraph

import (
	"github.com/Faultbox/vantage/pkg/math"
)

type slot struct {
	generation uint32
	live       bool
	node       Node
}

// Arena is a generational pool of scene nodes. It is the sole authority
// over parent/child links: all reparenting goes through Parent and
// Unparent so the child list and parent field never disagree.
//
// The arena is not safe for concurrent use. The intended model is one
// update pass mutating nodes followed by one render pass reading them;
// a concurrent producer must be serialized by the caller.
type Arena struct {
	slots []slot
	free  []uint32
	count int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{
		// Slot 0 is the reserved null slot and is never allocated.
		slots: make([]slot, 1, 64),
	}
}

// Create allocates a node and returns its handle. The node starts with
// no parent (parent == own handle), no children, an identity transform
// and no payload.
func (a *Arena) Create() Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot{})
		idx = uint32(len(a.slots) - 1)
	}

	s := &a.slots[idx]
	// Generation starts at 1 so a zero-valued Handle can never match.
	s.generation++
	s.live = true

	h := Handle{Index: idx, Generation: s.generation}
	s.node = Node{
		Transform: math.NewTransform(),
		self:      h,
		parent:    h,
	}
	a.count++
	return h
}

// Get resolves a handle to its node. Returns nil for the nil handle,
// an out-of-range index, a freed slot, or a stale generation.
func (a *Arena) Get(h Handle) *Node {
	if h.Index == 0 || int(h.Index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.Index]
	if !s.live || s.generation != h.Generation {
		return nil
	}
	return &s.node
}

// Len returns the number of live nodes.
func (a *Arena) Len() int {
	return a.count
}

// Unparent detaches the node from its parent, if any. The node is
// removed from the parent's child list by swapping with the last entry
// (child order is not preserved) and its parent field is reset to its
// own handle. Unparenting a node with no parent, or a stale handle, is
// a no-op; calling it twice is equivalent to calling it once.
func (a *Arena) Unparent(h Handle) {
	n := a.Get(h)
	if n == nil || !n.HasParent() {
		return
	}

	if p := a.Get(n.parent); p != nil {
		for i, c := range p.children {
			if c == h {
				last := len(p.children) - 1
				p.children[i] = p.children[last]
				p.children[last] = Nil
				p.children = p.children[:last]
				break
			}
		}
	}
	n.parent = h
}

// Parent attaches child under parent. The child is unconditionally
// detached from its previous parent first; if after that either handle
// fails to resolve, or parent == child, or the attachment would create
// a cycle (parent is a descendant of child), the operation stops
// without further mutation; the detach is not rolled back.
// Returns true if the child was attached.
func (a *Arena) Parent(parent, child Handle) bool {
	a.Unparent(child)

	p := a.Get(parent)
	c := a.Get(child)
	if p == nil || c == nil || parent == child {
		return false
	}
	if a.isDescendant(parent, child) {
		return false
	}

	c.parent = parent
	p.children = append(p.children, child)
	return true
}

// isDescendant reports whether h sits somewhere in the subtree rooted
// at root.
func (a *Arena) isDescendant(h, root Handle) bool {
	n := a.Get(h)
	for n != nil && n.HasParent() {
		if n.parent == root {
			return true
		}
		n = a.Get(n.parent)
	}
	return false
}

// Destroy frees the node's slot. Children are orphaned in place (their
// parent field is reset to their own handle); the node itself is
// detached from its parent first. The slot's generation is bumped so
// outstanding handles to the node stop resolving. Returns false for a
// handle that does not resolve.
func (a *Arena) Destroy(h Handle) bool {
	n := a.Get(h)
	if n == nil {
		return false
	}

	for _, ch := range n.children {
		if c := a.Get(ch); c != nil {
			c.parent = ch
		}
	}
	a.Unparent(h)

	s := &a.slots[h.Index]
	s.live = false
	s.node = Node{}
	a.free = append(a.free, h.Index)
	a.count--
	return true
}

// DestroyRecursive frees the node and its entire subtree.
// Returns false for a handle that does not resolve.
func (a *Arena) DestroyRecursive(h Handle) bool {
	n := a.Get(h)
	if n == nil {
		return false
	}

	// The child list shrinks from under us while destroying, so copy it.
	children := make([]Handle, len(n.children))
	copy(children, n.children)
	for _, ch := range children {
		a.DestroyRecursive(ch)
	}

	return a.Destroy(h)
}

// WorldMatrix composes the node's local matrix with every ancestor's,
// walking the parent chain up to the root. Returns identity for a
// handle that does not resolve. The walk is O(depth) and recomputed on
// every call; nothing is cached.
func (a *Arena) WorldMatrix(h Handle) math.Mat4 {
	n := a.Get(h)
	if n == nil {
		return math.Identity()
	}

	world := n.Transform.Mat4()
	for n.HasParent() {
		p := a.Get(n.parent)
		if p == nil {
			break
		}
		world = p.Transform.Mat4().Mul(world)
		n = p
	}
	return world
}

// Walk visits every live node in slot order. Returning false from the
// visitor stops the walk.
func (a *Arena) Walk(visit func(Handle, *Node) bool) {
	for i := 1; i < len(a.slots); i++ {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		if !visit(s.node.self, &s.node) {
			return
		}
	}
}
