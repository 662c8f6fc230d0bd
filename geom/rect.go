package geom

import "math"

// Side names the face of an obstacle that another box ran into.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned rectangle described by its centre and full size.
type Rect struct {
	Center Vec2
	Size   Vec2
}

// R builds a Rect from centre and full size.
func R(center, size Vec2) Rect {
	return Rect{Center: center, Size: size}
}

// Min returns the lower-left corner.
func (r Rect) Min() Vec2 {
	return r.Center.Sub(r.Size.Scale(0.5))
}

// Max returns the upper-right corner.
func (r Rect) Max() Vec2 {
	return r.Center.Add(r.Size.Scale(0.5))
}

// Overlaps reports whether the open interiors of r and o intersect.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	aMin, aMax := r.Min(), r.Max()
	bMin, bMax := o.Min(), o.Max()
	return aMin.X < bMax.X && aMax.X > bMin.X && aMin.Y < bMax.Y && aMax.Y > bMin.Y
}

// Collide tests the moving box a against the obstacle b and reports which face
// of b was penetrated. When a straddles an edge on both axes, the axis with the
// shallower penetration wins, ties going to the x axis. A box fully inside b on
// both axes, or disjoint from it, reports no side.
func Collide(a, b Rect) (Side, bool) {
	if !a.Overlaps(b) {
		return 0, false
	}

	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	var (
		xSide, ySide   Side
		xHit, yHit     bool
		xDepth, yDepth float32
	)

	switch {
	case aMin.X < bMin.X && aMax.X > bMin.X && aMax.X < bMax.X:
		xSide, xHit, xDepth = Left, true, bMin.X-aMax.X
	case aMin.X > bMin.X && aMin.X < bMax.X && aMax.X > bMax.X:
		xSide, xHit, xDepth = Right, true, aMin.X-bMax.X
	}

	switch {
	case aMin.Y < bMin.Y && aMax.Y > bMin.Y && aMax.Y < bMax.Y:
		ySide, yHit, yDepth = Bottom, true, bMin.Y-aMax.Y
	case aMin.Y > bMin.Y && aMin.Y < bMax.Y && aMax.Y > bMax.Y:
		ySide, yHit, yDepth = Top, true, aMin.Y-bMax.Y
	}

	switch {
	case xHit && yHit:
		if abs32(yDepth) < abs32(xDepth) {
			return ySide, true
		}
		return xSide, true
	case xHit:
		return xSide, true
	case yHit:
		return ySide, true
	default:
		return 0, false
	}
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
