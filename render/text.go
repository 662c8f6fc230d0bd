package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/plus3/breakout/game"
)

// LabelSize is the font size of the scoreboard.
const LabelSize = 40

// Fonts are the faces used by the UI pass.
type Fonts struct {
	Bold *text.GoTextFaceSource
	Mono *text.GoTextFaceSource
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (Fonts, error) {
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return Fonts{}, fmt.Errorf("load bold font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return Fonts{}, fmt.Errorf("load mono font: %w", err)
	}
	return Fonts{Bold: bold, Mono: mono}, nil
}

// TextSection is one positioned run of text.
type TextSection struct {
	Text  string
	Face  text.Face
	X, Y  float64
	Color game.Color
}

// LayoutUI positions the scoreboard and bonus text for a target of width×height.
// Without fonts nothing is laid out.
func LayoutUI(fonts Fonts, ex *Extracted, width, height int) []TextSection {
	if fonts.Bold == nil || fonts.Mono == nil {
		return nil
	}
	var out []TextSection
	if ex.Scoreboard.Visible {
		label := &text.GoTextFace{Source: fonts.Bold, Size: LabelSize}
		value := &text.GoTextFace{Source: fonts.Mono, Size: LabelSize}
		x := 0.45 * float64(width)
		y := 0.60 * float64(height)
		const prefix = "Score: "
		out = append(out,
			TextSection{Text: prefix, Face: label, X: x, Y: y, Color: game.LabelColor},
			TextSection{Text: ex.Scoreboard.Text, Face: value, X: x + text.Advance(prefix, label), Y: y, Color: game.ScoreColor},
		)
	}
	if ex.Bonus.Visible && ex.Bonus.FontSize > 0 {
		face := &text.GoTextFace{Source: fonts.Bold, Size: float64(ex.Bonus.FontSize)}
		out = append(out, TextSection{
			Text:  ex.Bonus.Text,
			Face:  face,
			X:     0.40 * float64(width),
			Y:     0.35 * float64(height),
			Color: game.RGBA(1, 0.2, 0, ex.Bonus.Alpha),
		})
	}
	return out
}

// DrawUI draws the text sections on top of everything else.
func DrawUI(target Target, sections []TextSection) {
	for _, s := range sections {
		opts := &text.DrawOptions{}
		opts.GeoM.Translate(s.X, s.Y)
		opts.ColorScale.ScaleWithColor(s.Color.NRGBA())
		target.DrawText(s.Text, s.Face, opts)
	}
}
