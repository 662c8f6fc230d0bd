package render

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/breakout/game"
	"github.com/plus3/breakout/geom"
)

func newTestRenderer(t *testing.T, fc *fakeCompiler, samples int) *Renderer {
	t.Helper()
	fonts, err := LoadFonts()
	require.NoError(t, err)
	return New(Options{
		Width:        game.WindowWidth,
		Height:       game.WindowHeight,
		MSAASamples:  samples,
		ShaderSource: []byte("shader"),
		Compiler:     fc.Compile,
		Textures:     testTextures(),
		Fonts:        fonts,
		Logger:       log.New(io.Discard),
	})
}

// spriteCount is paddle, four eyes, ball, walls and bricks.
func spriteCount(s game.Settings) int {
	return 1 + 4 + 1 + 4 + s.BrickCount()
}

func TestRendererDrawsBackgroundFirst(t *testing.T) {
	settings := game.DefaultSettings()
	w := game.NewWorld(settings)
	for bg := range w.Backgrounds.Values() {
		bg.Time = 2.5
	}

	r := newTestRenderer(t, &fakeCompiler{}, 4)
	target := &fakeTarget{}
	require.NoError(t, r.Draw(w, target))

	assert.Equal(t, game.ClearColor.NRGBA(), target.fill)
	require.NotEmpty(t, target.calls)

	bg := target.calls[0]
	require.Equal(t, "mesh", bg.kind)
	assert.Equal(t, map[string]any{"Time": float32(2.5)}, bg.uniforms)
	assert.True(t, bg.aa)
	assert.Equal(t, []uint16{0, 2, 1, 0, 3, 2}, bg.indices)
	require.Len(t, bg.vertices, 4)
	assert.Equal(t, float32(game.WindowWidth/2-700), bg.vertices[0].DstX)
	assert.Equal(t, float32(game.WindowHeight/2+700), bg.vertices[0].DstY)
	assert.Equal(t, float32(0), bg.vertices[0].ColorR, "first corner is black")
	assert.Equal(t, float32(1), bg.vertices[1].ColorG)

	assert.Equal(t, spriteCount(settings), target.count("image"))
	assert.Equal(t, 0, target.count("text"))

	stats := r.Stats()
	assert.Equal(t, spriteCount(settings)+1, stats.Items)
	assert.Equal(t, spriteCount(settings)+1, stats.DrawCalls)
	assert.Equal(t, 1, stats.Pipelines)
	assert.Equal(t, []geom.Topology{geom.TriangleList}, r.Topologies())
}

func TestRendererPhaseIsSortedByZ(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	r := newTestRenderer(t, &fakeCompiler{}, 1)
	require.NoError(t, r.Draw(w, &fakeTarget{}))

	items := r.Phase()
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].SortKey, items[i].SortKey)
	}
	last := items[len(items)-1]
	assert.Equal(t, game.KindEye, game.KindOf(last.Entity), "pupils draw on top")
}

func TestRendererWithoutMSAA(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	r := newTestRenderer(t, &fakeCompiler{}, 0)
	target := &fakeTarget{}
	require.NoError(t, r.Draw(w, target))
	assert.False(t, target.calls[0].aa)
}

func TestRendererShaderFailureKeepsSprites(t *testing.T) {
	settings := game.DefaultSettings()
	w := game.NewWorld(settings)
	fc := &fakeCompiler{fail: true}
	r := newTestRenderer(t, fc, 4)

	target := &fakeTarget{}
	require.NoError(t, r.Draw(w, target))
	assert.Equal(t, 0, target.count("mesh"))
	assert.Equal(t, spriteCount(settings), target.count("image"))

	require.Error(t, r.ReloadShader([]byte("still broken")))

	fc.fail = false
	require.NoError(t, r.ReloadShader([]byte("fixed")))
	require.NoError(t, r.Draw(w, target))
	assert.Equal(t, 1, target.count("mesh"))
}

func TestRendererText(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	w.Scoreboard.Visible = true
	w.Scoreboard.Text = "7"
	w.Bonus.Visible = true
	w.Bonus.Text = "+2"
	w.Bonus.FontSize = 110
	w.Bonus.Alpha = 0.9

	r := newTestRenderer(t, &fakeCompiler{}, 1)
	target := &fakeTarget{}
	require.NoError(t, r.Draw(w, target))

	var texts []string
	for _, c := range target.calls {
		if c.kind == "text" {
			texts = append(texts, c.text)
		}
	}
	assert.Equal(t, []string{"Score: ", "7", "+2"}, texts)
	assert.Equal(t, 3, r.Stats().Texts)
}

func TestLayoutUI(t *testing.T) {
	fonts, err := LoadFonts()
	require.NoError(t, err)

	ex := &Extracted{
		Scoreboard: ExtractedText{Visible: true, Text: "12"},
		Bonus:      ExtractedText{Visible: true, Text: "+3", FontSize: 120, Alpha: 0.5},
	}
	sections := LayoutUI(fonts, ex, 1000, 500)
	require.Len(t, sections, 3)

	assert.InDelta(t, 450, sections[0].X, 1e-9)
	assert.InDelta(t, 300, sections[0].Y, 1e-9)
	assert.Greater(t, sections[1].X, sections[0].X, "value follows the label")
	assert.Equal(t, game.ScoreColor, sections[1].Color)

	assert.InDelta(t, 400, sections[2].X, 1e-9)
	assert.InDelta(t, 175, sections[2].Y, 1e-9)
	assert.Equal(t, game.RGBA(1, 0.2, 0, 0.5), sections[2].Color)

	ex.Bonus.Visible = false
	ex.Scoreboard.Visible = false
	assert.Empty(t, LayoutUI(fonts, ex, 1000, 500))
}

func TestSpriteGeoM(t *testing.T) {
	view := ViewUniform{Width: 980, Height: 710}

	paddle := ExtractedSprite{Transform: game.Transform{
		Translation: geom.V(0, -230),
		Scale:       geom.V(120, 30),
	}}
	g := SpriteGeoM(paddle, Texture{W: 1, H: 1}, view)
	x, y := g.Apply(0, 0)
	assert.InDelta(t, 490-60, x, 1e-6)
	assert.InDelta(t, 355+230-15, y, 1e-6)

	eye := ExtractedSprite{Transform: game.Transform{
		Translation: geom.V(30, 0),
		Scale:       geom.V(0.25, 0.25),
	}}
	g = SpriteGeoM(eye, Texture{W: 128, H: 128}, view)
	x, y = g.Apply(128, 128)
	assert.InDelta(t, 490+30+16, x, 1e-6)
	assert.InDelta(t, 355+16, y, 1e-6)
}

func TestExtract(t *testing.T) {
	w := game.NewWorld(game.DefaultSettings())
	var ex Extracted
	Extract(w, &ex)

	assert.Len(t, ex.Meshes, 1)
	pupils := 0
	for _, s := range ex.Sprites {
		if s.Texture == TexturePupil {
			pupils++
		}
	}
	assert.Equal(t, 2, pupils)

	for bg := range w.Backgrounds.Values() {
		bg.Visible = false
	}
	Extract(w, &ex)
	assert.Empty(t, ex.Meshes)
}

func TestDisc(t *testing.T) {
	img := Disc(8, game.BallColor.NRGBA())
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A, "corner stays transparent")
	assert.Equal(t, uint8(255), img.NRGBAAt(4, 4).A)
}
