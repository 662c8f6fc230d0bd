package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/breakout/ecs"
	"github.com/plus3/breakout/game"
)

// PreparedMesh is a mesh ready for drawing: packed vertex data, 16-bit
// triangle indices and the model transform.
type PreparedMesh struct {
	Buffer    []byte
	Vertices  []Vertex
	Indices   []uint16
	Transform game.Transform
}

// PrepareMesh packs m with the colored mesh layout.
func PrepareMesh(m ExtractedMesh) *PreparedMesh {
	buf := ColoredMeshLayout.Pack(m.Mesh)
	tris := m.Mesh.TriangleIndices()
	indices := make([]uint16, 0, len(tris))
	for _, i := range tris {
		if i > math.MaxUint16 {
			continue
		}
		indices = append(indices, uint16(i))
	}
	return &PreparedMesh{
		Buffer:    buf,
		Vertices:  ColoredMeshLayout.Unpack(buf),
		Indices:   indices,
		Transform: m.Transform,
	}
}

// ScreenVertices applies the model transform and the view projection.
func (m *PreparedMesh) ScreenVertices(view ViewUniform) []ebiten.Vertex {
	t := m.Transform
	sin, cos := math.Sincos(float64(t.Rotation))
	out := make([]ebiten.Vertex, len(m.Vertices))
	for i, v := range m.Vertices {
		x := v.Position[0] * t.Scale.X
		y := v.Position[1] * t.Scale.Y
		rx := x*float32(cos) - y*float32(sin)
		ry := x*float32(sin) + y*float32(cos)
		dx, dy := view.Project(rx+t.Translation.X, ry+t.Translation.Y)
		out[i] = ebiten.Vertex{
			DstX:   dx,
			DstY:   dy,
			SrcX:   dx,
			SrcY:   dy,
			ColorR: v.Color[0],
			ColorG: v.Color[1],
			ColorB: v.Color[2],
			ColorA: v.Color[3],
		}
	}
	return out
}

// Resources are the GPU-side values shared by the draw functions of one frame.
type Resources struct {
	View          ViewUniform
	Pipelines     *PipelineCache
	Meshes        map[ecs.Entity]*PreparedMesh
	Sprites       map[ecs.Entity]ExtractedSprite
	Textures      Textures
	TimeBindGroup map[string]any
}

// Prepare rebuilds the per-frame resources from an extracted snapshot.
func (r *Resources) Prepare(ex *Extracted) {
	clear(r.Meshes)
	clear(r.Sprites)
	for _, m := range ex.Meshes {
		r.Meshes[m.Entity] = PrepareMesh(m)
	}
	for _, s := range ex.Sprites {
		r.Sprites[s.Entity] = s
	}
	r.TimeBindGroup = map[string]any{"Time": ex.Time}
}
