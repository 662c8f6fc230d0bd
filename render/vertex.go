// Package render draws the world with ebiten. Colored meshes go through a
// small pipeline: extract copies what is needed out of the world, prepare
// packs vertex data and uniforms, queue sorts phase items per view, and the
// draw functions replay them onto a target.
package render

import (
	"encoding/binary"
	"math"

	"github.com/plus3/breakout/geom"
)

// VertexFormat is the type of one vertex attribute.
type VertexFormat uint8

const (
	Float32x3 VertexFormat = iota
	Float32x4
)

// Size returns the attribute size in bytes.
func (f VertexFormat) Size() int {
	switch f {
	case Float32x3:
		return 12
	case Float32x4:
		return 16
	}
	return 0
}

// Components returns the number of float32 components.
func (f VertexFormat) Components() int {
	return f.Size() / 4
}

// VertexAttribute places one attribute inside a vertex.
type VertexAttribute struct {
	Format         VertexFormat
	Offset         int
	ShaderLocation int
}

// VertexLayout describes an interleaved vertex buffer.
type VertexLayout struct {
	Stride     int
	Attributes []VertexAttribute
}

const (
	LocationPosition = 0
	LocationColor    = 1
)

// ColoredMeshLayout stores the color first and the position after it.
var ColoredMeshLayout = VertexLayout{
	Stride: 28,
	Attributes: []VertexAttribute{
		{Format: Float32x3, Offset: 16, ShaderLocation: LocationPosition},
		{Format: Float32x4, Offset: 0, ShaderLocation: LocationColor},
	},
}

// Attribute returns the attribute bound to a shader location.
func (l VertexLayout) Attribute(location int) (VertexAttribute, bool) {
	for _, a := range l.Attributes {
		if a.ShaderLocation == location {
			return a, true
		}
	}
	return VertexAttribute{}, false
}

// Pack interleaves the mesh positions and colors into a little-endian buffer.
// Vertices without a color are packed opaque white.
func (l VertexLayout) Pack(m *geom.Mesh) []byte {
	pos, _ := l.Attribute(LocationPosition)
	col, _ := l.Attribute(LocationColor)

	buf := make([]byte, l.Stride*len(m.Positions))
	for i, p := range m.Positions {
		base := i * l.Stride
		putFloats(buf[base+pos.Offset:], p[:pos.Format.Components()])

		c := [4]float32{1, 1, 1, 1}
		if i < len(m.Colors) {
			c = m.Colors[i]
		}
		putFloats(buf[base+col.Offset:], c[:col.Format.Components()])
	}
	return buf
}

// Vertex is one decoded vertex.
type Vertex struct {
	Position [3]float32
	Color    [4]float32
}

// Unpack decodes a buffer written by Pack.
func (l VertexLayout) Unpack(buf []byte) []Vertex {
	pos, _ := l.Attribute(LocationPosition)
	col, _ := l.Attribute(LocationColor)

	n := len(buf) / l.Stride
	out := make([]Vertex, n)
	for i := range out {
		base := i * l.Stride
		readFloats(buf[base+pos.Offset:], out[i].Position[:])
		readFloats(buf[base+col.Offset:], out[i].Color[:])
	}
	return out
}

func putFloats(dst []byte, vs []float32) {
	for i, v := range vs {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
}

func readFloats(src []byte, dst []float32) {
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:]))
	}
}
