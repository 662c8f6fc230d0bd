package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/breakout/assets"
)

// Texture is an image with its size. The size is kept separately so sprites
// can be laid out without touching the GPU.
type Texture struct {
	Image *ebiten.Image
	W, H  int
}

// NewTexture uploads img.
func NewTexture(img image.Image) Texture {
	b := img.Bounds()
	return Texture{Image: ebiten.NewImageFromImage(img), W: b.Dx(), H: b.Dy()}
}

// Textures holds every sprite image.
type Textures struct {
	White Texture
	Eye   Texture
	Pupil Texture
}

// Get returns the texture for a sprite.
func (t Textures) Get(s SpriteTexture) Texture {
	switch s {
	case TextureEye:
		return t.Eye
	case TexturePupil:
		return t.Pupil
	}
	return t.White
}

// LoadTextures uploads the eye sprites from store. A sprite that cannot be read
// is replaced by a generated disc.
func LoadTextures(store *assets.Store, logger *log.Logger) Textures {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)

	load := func(name string, size int, c color.Color) Texture {
		img, err := store.Image(name)
		if err != nil {
			logger.Warn("using generated sprite", "sprite", name, "err", err)
			img = Disc(size, c)
		}
		return NewTexture(img)
	}

	return Textures{
		White: Texture{Image: white, W: 1, H: 1},
		Eye:   load(assets.EyeSprite, 128, color.White),
		Pupil: load(assets.PupilSprite, 64, color.Black),
	}
}

// Disc draws a filled circle of diameter size.
func Disc(size int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
	return img
}

// SpriteGeoM places a texture of w×h pixels so that it covers the sprite in
// screen space. Colored sprites use a 1×1 texture scaled to their size;
// textured sprites multiply the texture size by their scale.
func SpriteGeoM(s ExtractedSprite, tex Texture, view ViewUniform) ebiten.GeoM {
	w, h := float64(tex.W), float64(tex.H)
	var g ebiten.GeoM
	g.Translate(-w/2, -h/2)
	g.Scale(float64(s.Transform.Scale.X), float64(s.Transform.Scale.Y))
	// World space is y-up, so a counter-clockwise rotation is clockwise on screen.
	g.Rotate(-float64(s.Transform.Rotation))
	x, y := view.Project(s.Transform.Translation.X, s.Transform.Translation.Y)
	g.Translate(float64(x), float64(y))
	return g
}

// SpriteDraw draws one sprite item.
type SpriteDraw struct{}

func (SpriteDraw) Draw(pass *TrackedPass, item PhaseItem) error {
	s, ok := pass.Resources.Sprites[item.Entity]
	if !ok {
		return fmt.Errorf("sprite %d not prepared", item.Entity)
	}
	tex := pass.Resources.Textures.Get(s.Texture)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM = SpriteGeoM(s, tex, pass.Resources.View)
	opts.ColorScale.Scale(s.Color.R, s.Color.G, s.Color.B, s.Color.A)
	if s.Transform.Rotation != 0 && math.Mod(float64(s.Transform.Rotation), math.Pi/2) != 0 {
		opts.Filter = ebiten.FilterLinear
	}
	pass.Target.DrawImage(tex.Image, opts)
	pass.DrawCalls++
	return nil
}
