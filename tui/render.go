package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plus3/breakout/game"
)

func colorOf(c game.Color) lipgloss.Color {
	n := c.NRGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B))
}

var styles = map[Style]lipgloss.Style{
	StyleEmpty:    lipgloss.NewStyle(),
	StyleWall:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	StyleBrick:    lipgloss.NewStyle().Foreground(colorOf(game.BrickColor)),
	StyleBrickHit: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	StylePaddle:   lipgloss.NewStyle().Foreground(colorOf(game.PaddleColor)),
	StyleBall:     lipgloss.NewStyle().Foreground(colorOf(game.BallColor)).Bold(true),
	StyleLabel:    lipgloss.NewStyle().Foreground(colorOf(game.LabelColor)).Bold(true),
	StyleScore:    lipgloss.NewStyle().Foreground(colorOf(game.ScoreColor)).Bold(true),
	StyleBonus:    lipgloss.NewStyle().Foreground(lipgloss.Color("202")).Bold(true),
}

// RenderScreen converts the screen to a styled string. Adjacent cells with the
// same style share one escape sequence.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		x := 0
		for x < s.Width() {
			start := s.Get(x, y).Style
			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			style, ok := styles[start]
			if !ok {
				style = styles[StyleEmpty]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
