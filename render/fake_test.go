package render

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type drawCall struct {
	kind     string
	vertices []ebiten.Vertex
	indices  []uint16
	image    *ebiten.Image
	geoM     ebiten.GeoM
	uniforms map[string]any
	aa       bool
	text     string
}

type fakeTarget struct {
	fill  color.Color
	calls []drawCall
}

func (f *fakeTarget) Fill(c color.Color) {
	f.fill = c
	f.calls = nil
}

func (f *fakeTarget) DrawImage(img *ebiten.Image, opts *ebiten.DrawImageOptions) {
	f.calls = append(f.calls, drawCall{kind: "image", image: img, geoM: opts.GeoM})
}

func (f *fakeTarget) DrawTrianglesShader(vertices []ebiten.Vertex, indices []uint16, shader *ebiten.Shader, opts *ebiten.DrawTrianglesShaderOptions) {
	f.calls = append(f.calls, drawCall{
		kind:     "mesh",
		vertices: vertices,
		indices:  indices,
		uniforms: opts.Uniforms,
		aa:       opts.AntiAlias,
	})
}

func (f *fakeTarget) DrawText(s string, face text.Face, opts *text.DrawOptions) {
	f.calls = append(f.calls, drawCall{kind: "text", text: s})
}

func (f *fakeTarget) count(kind string) int {
	n := 0
	for _, c := range f.calls {
		if c.kind == kind {
			n++
		}
	}
	return n
}

// fakeCompiler records every compile. Shaders are nil so nothing reaches the GPU.
type fakeCompiler struct {
	sources [][]byte
	fail    bool
}

var errBadShader = errors.New("bad shader")

func (c *fakeCompiler) Compile(src []byte) (*ebiten.Shader, error) {
	c.sources = append(c.sources, src)
	if c.fail {
		return nil, errBadShader
	}
	return nil, nil
}

func testTextures() Textures {
	return Textures{
		White: Texture{W: 1, H: 1},
		Eye:   Texture{W: 128, H: 128},
		Pupil: Texture{W: 64, H: 64},
	}
}
