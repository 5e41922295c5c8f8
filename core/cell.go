package core

// Cell is an integer board position
type Cell struct {
	Col, Row int
}

// Add returns the cell offset by d
func (c Cell) Add(d Direction) Cell {
	return Cell{Col: c.Col + d.DX, Row: c.Row + d.DY}
}

// InBounds reports whether c lies inside a width x height grid
func (c Cell) InBounds(width, height int) bool {
	return c.Col >= 0 && c.Col < width && c.Row >= 0 && c.Row < height
}

// Wrap folds c back onto a width x height torus
func (c Cell) Wrap(width, height int) Cell {
	return Cell{Col: wrap(c.Col, width), Row: wrap(c.Row, height)}
}

// Clamp pins c to the nearest in-bounds cell
func (c Cell) Clamp(width, height int) Cell {
	return Cell{Col: clamp(c.Col, 0, width-1), Row: clamp(c.Row, 0, height-1)}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
