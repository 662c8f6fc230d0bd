package geom

// Topology describes how mesh indices are assembled into triangles.
type Topology uint8

const (
	TriangleList Topology = iota
	TriangleStrip
)

func (t Topology) String() string {
	if t == TriangleStrip {
		return "triangle-strip"
	}
	return "triangle-list"
}

// Mesh is an indexed mesh with a per-vertex position and RGBA color.
type Mesh struct {
	Topology  Topology
	Positions [][3]float32
	Colors    [][4]float32
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleIndices returns the indices as a triangle list, expanding strips.
// Indices referencing missing vertices drop the triangle they belong to.
func (m *Mesh) TriangleIndices() []uint32 {
	n := uint32(len(m.Positions))
	valid := func(a, b, c uint32) bool {
		return a < n && b < n && c < n
	}

	var out []uint32
	switch m.Topology {
	case TriangleStrip:
		for i := 2; i < len(m.Indices); i++ {
			a, b, c := m.Indices[i-2], m.Indices[i-1], m.Indices[i]
			if i%2 == 1 {
				a, b = b, a
			}
			if valid(a, b, c) {
				out = append(out, a, b, c)
			}
		}
	default:
		for i := 0; i+2 < len(m.Indices); i += 3 {
			a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
			if valid(a, b, c) {
				out = append(out, a, b, c)
			}
		}
	}
	return out
}
