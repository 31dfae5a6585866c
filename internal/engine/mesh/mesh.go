// Package mesh owns GPU mesh resources. Scene nodes reference meshes
// only through opaque handles; the renderer resolves them back to GL
// buffers at draw time.
package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/vantage/pkg/math"
)

// Vertex is the interleaved vertex layout: position, normal, texcoord.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Sphere is a bounding sphere in mesh-local space, used for frustum
// culling once scaled by the node's world transform.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// Mesh is an uploaded mesh: GL objects plus its local bounds.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	Bounds Sphere
}

// IndexCount returns the number of indices to draw.
func (m *Mesh) IndexCount() int32 { return m.indexCount }

// Bind binds the mesh's vertex array for drawing.
func (m *Mesh) Bind() { gl.BindVertexArray(m.vao) }

// Destroy releases the GL buffers.
func (m *Mesh) Destroy() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.vao, m.vbo, m.ebo, m.indexCount = 0, 0, 0, 0
}

// Handle is an opaque reference to a registered mesh. Zero means
// "no mesh".
type Handle uint32

// Registry stores uploaded meshes behind handles.
type Registry struct {
	meshes []*Mesh
}

// NewRegistry creates an empty mesh registry.
func NewRegistry() *Registry {
	// Index 0 is reserved so the zero Handle never resolves.
	return &Registry{meshes: make([]*Mesh, 1)}
}

// Add uploads vertex/index data and returns a handle to the new mesh.
func (r *Registry) Add(vertices []Vertex, indices []uint32) Handle {
	m := upload(vertices, indices)
	m.Bounds = boundingSphere(vertices)
	r.meshes = append(r.meshes, m)
	return Handle(len(r.meshes) - 1)
}

// AddMesh registers an already-built mesh and returns its handle.
func (r *Registry) AddMesh(m *Mesh) Handle {
	r.meshes = append(r.meshes, m)
	return Handle(len(r.meshes) - 1)
}

// Get returns the mesh for a handle, or nil if the handle is invalid.
func (r *Registry) Get(h Handle) *Mesh {
	if h == 0 || int(h) >= len(r.meshes) {
		return nil
	}
	return r.meshes[h]
}

// Destroy releases all registered meshes.
func (r *Registry) Destroy() {
	for _, m := range r.meshes {
		if m != nil {
			m.Destroy()
		}
	}
	r.meshes = r.meshes[:1]
}

func upload(vertices []Vertex, indices []uint32) *Mesh {
	m := &Mesh{}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	m.indexCount = int32(len(indices))
	gl.BindVertexArray(0)

	return m
}

// boundingSphere computes a sphere centered on the vertex centroid.
func boundingSphere(vertices []Vertex) Sphere {
	if len(vertices) == 0 {
		return Sphere{}
	}

	var center math.Vec3
	for _, v := range vertices {
		center.X += v.Position[0]
		center.Y += v.Position[1]
		center.Z += v.Position[2]
	}
	inv := 1 / float32(len(vertices))
	center = center.Scale(inv)

	var radius float32
	for _, v := range vertices {
		d := (math.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]}).Distance(center)
		if d > radius {
			radius = d
		}
	}

	return Sphere{Center: center, Radius: radius}
}
