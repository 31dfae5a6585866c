// Package scenegraph implements the generational node arena that owns
// the scene hierarchy: node storage, parent/child links and safe
// reparenting. Nodes are addressed only through handles; a stale handle
// resolves to nothing instead of dangling.
package scenegraph

// Handle identifies a node slot in an Arena. Two handles refer to the
// same node iff both index and generation match; a handle whose slot
// has since been recycled fails the generation check and no longer
// resolves. Index 0 is reserved and never refers to a live node.
type Handle struct {
	Index      uint32
	Generation uint32
}

// Nil is the zero handle. It never resolves.
var Nil = Handle{}

// IsNil reports whether the handle is the reserved null handle.
func (h Handle) IsNil() bool {
	return h.Index == 0
}
