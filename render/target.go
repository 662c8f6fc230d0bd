package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Target is anything the renderer can draw onto.
type Target interface {
	Fill(c color.Color)
	DrawImage(img *ebiten.Image, opts *ebiten.DrawImageOptions)
	DrawTrianglesShader(vertices []ebiten.Vertex, indices []uint16, shader *ebiten.Shader, opts *ebiten.DrawTrianglesShaderOptions)
	DrawText(s string, face text.Face, opts *text.DrawOptions)
}

// Screen adapts an ebiten image to Target.
type Screen struct {
	*ebiten.Image
}

func (s Screen) DrawText(str string, face text.Face, opts *text.DrawOptions) {
	text.Draw(s.Image, str, face, opts)
}
