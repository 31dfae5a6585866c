package mesh

// CubeVertices returns the vertex/index data for a unit cube centered
// on the origin, one quad per face with per-face normals.
func CubeVertices(size float32) ([]Vertex, []uint32) {
	h := size / 2

	// Position, normal, uv per face corner
	faces := [6]struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, -1}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, 0, 1}, [4][3]float32{{h, -h, h}, {-h, -h, h}, {-h, h, h}, {h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, h}, {-h, -h, -h}, {-h, h, -h}, {-h, h, h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, -h}, {h, -h, h}, {h, h, h}, {h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, -h, -h}, {-h, -h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, -h}, {h, h, -h}, {h, h, h}, {-h, h, h}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, c := range f.corners {
			vertices = append(vertices, Vertex{Position: c, Normal: f.normal, TexCoord: uvs[i]})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	return vertices, indices
}

// GridVertices returns a flat grid of quads on the XZ plane centered on
// the origin, with normals pointing up. cells is the number of quads
// per side, cellSize the world size of each quad.
func GridVertices(cells int, cellSize float32) ([]Vertex, []uint32) {
	half := float32(cells) * cellSize / 2

	vertices := make([]Vertex, 0, (cells+1)*(cells+1))
	for z := 0; z <= cells; z++ {
		for x := 0; x <= cells; x++ {
			vertices = append(vertices, Vertex{
				Position: [3]float32{float32(x)*cellSize - half, 0, float32(z)*cellSize - half},
				Normal:   [3]float32{0, 1, 0},
				TexCoord: [2]float32{float32(x), float32(z)},
			})
		}
	}

	indices := make([]uint32, 0, cells*cells*6)
	stride := uint32(cells + 1)
	for z := 0; z < cells; z++ {
		for x := 0; x < cells; x++ {
			tl := uint32(z)*stride + uint32(x)
			tr := tl + 1
			bl := tl + stride
			br := bl + 1
			indices = append(indices, tl, bl, tr, tr, bl, br)
		}
	}

	return vertices, indices
}
