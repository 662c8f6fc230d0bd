package tui

import (
	"github.com/plus3/breakout/game"
	"github.com/plus3/breakout/geom"
)

// Style is the color class of a cell.
type Style uint8

const (
	StyleEmpty Style = iota
	StyleWall
	StyleBrick
	StyleBrickHit
	StylePaddle
	StyleBall
	StyleLabel
	StyleScore
	StyleBonus
)

// Cell is one character of the screen.
type Cell struct {
	Rune  rune
	Style Style
}

// Screen is a character grid covering the playfield.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

// Resize reallocates the grid. Sizes below 1 are raised to 1.
func (s *Screen) Resize(width, height int) {
	s.width = max(width, 1)
	s.height = max(height, 1)
	s.cells = make([]Cell, s.width*s.height)
	s.Clear()
}

func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: ' '}
	}
}

// Get returns the cell at x, y. Out of range reads return a blank cell.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y*s.width+x]
}

func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = c
}

// Text writes str starting at x, y.
func (s *Screen) Text(x, y int, str string, style Style) {
	for _, r := range str {
		s.Set(x, y, Cell{Rune: r, Style: style})
		x++
	}
}

// Cell maps a world position to a cell. The wall rectangle spans the screen.
func (s *Screen) Cell(p geom.Vec2) (int, int) {
	extent := game.Bounds.Add(geom.V(game.WallThickness, game.WallThickness))
	fx := (p.X + extent.X/2) / extent.X
	fy := (extent.Y/2 - p.Y) / extent.Y
	x := int(fx * float32(s.width))
	y := int(fy * float32(s.height))
	return geom.Clamp(x, 0, s.width-1), geom.Clamp(y, 0, s.height-1)
}

// FillRect covers the cells overlapped by r.
func (s *Screen) FillRect(r geom.Rect, c Cell) {
	x0, y0 := s.Cell(geom.V(r.Min().X, r.Max().Y))
	x1, y1 := s.Cell(geom.V(r.Max().X, r.Min().Y))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.Set(x, y, c)
		}
	}
}

// Draw rasterizes the world onto the screen.
func (s *Screen) Draw(w *game.World) {
	s.Clear()

	for wall := range w.Walls.Values() {
		s.FillRect(wall.Rect(), Cell{Rune: '█', Style: StyleWall})
	}
	for brick := range w.Bricks.Values() {
		style := StyleBrick
		if brick.Moving {
			style = StyleBrickHit
		}
		s.FillRect(brick.Rect(), Cell{Rune: '▓', Style: style})
	}
	for p := range w.Paddles.Values() {
		s.FillRect(p.Rect(), Cell{Rune: '▀', Style: StylePaddle})
	}
	for b := range w.Balls.Values() {
		x, y := s.Cell(b.Translation)
		s.Set(x, y, Cell{Rune: '●', Style: StyleBall})
	}

	if w.Scoreboard.Visible {
		const label = "Score: "
		x := int(0.45 * float32(s.width))
		y := int(0.60 * float32(s.height))
		s.Text(x, y, label, StyleLabel)
		s.Text(x+len(label), y, w.Scoreboard.Text, StyleScore)
	}
	if w.Bonus.Visible {
		s.Text(int(0.40*float32(s.width)), int(0.35*float32(s.height)), w.Bonus.Text, StyleBonus)
	}
}

// String returns the unstyled screen contents.
func (s *Screen) String() string {
	buf := make([]rune, 0, (s.width+1)*s.height)
	for y := 0; y < s.height; y++ {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for x := 0; x < s.width; x++ {
			buf = append(buf, s.Get(x, y).Rune)
		}
	}
	return string(buf)
}
