package beam

import "math"

// Point is a position in character cells.
type Point struct {
	X float64
	Y float64
}

// Control returns the control point of the curve from a to b: the midpoint
// pushed along the left-hand normal by curvature times the chord length.
// A zero curvature yields a straight line.
func Control(a, b Point, curvature float64) Point {
	mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return mid
	}
	nx, ny := -dy/length, dx/length
	return Point{X: mid.X + nx*curvature*length, Y: mid.Y + ny*curvature*length}
}

// Quadratic evaluates the quadratic Bézier through p0, c, p1 at t in [0, 1].
func Quadratic(p0, c, p1 Point, t float64) Point {
	u := 1 - t
	return Point{
		X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
		Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
	}
}

// Cell is a grid position.
type Cell struct {
	Col int
	Row int
}

// Trace samples the curve from a to b and returns the distinct cells it
// crosses, in order from a to b.
func Trace(a, b Point, curvature float64) []Cell {
	c := Control(a, b, curvature)
	steps := int(math.Ceil(math.Hypot(b.X-a.X, b.Y-a.Y)*2)) + 1

	cells := make([]Cell, 0, steps)
	for i := 0; i <= steps; i++ {
		p := Quadratic(a, c, b, float64(i)/float64(steps))
		cell := Cell{Col: int(math.Round(p.X)), Row: int(math.Round(p.Y))}
		if n := len(cells); n > 0 && cells[n-1] == cell {
			continue
		}
		cells = append(cells, cell)
	}
	return cells
}
