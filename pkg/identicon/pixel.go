package identicon

// BuildPixelMap converts each surviving cell into a 50×50 pixel square
// on the 250×250 canvas. The cell's original index determines its
// position: column = index mod 5, row = index div 5. Output order
// matches the order of cells.
func BuildPixelMap(cells []Cell) []Rect {
	rects := make([]Rect, len(cells))
	for i, c := range cells {
		col := c.Index % GridSize
		row := c.Index / GridSize

		min := Point{X: col * SquareSize, Y: row * SquareSize}
		rects[i] = Rect{
			Min: min,
			Max: Point{X: min.X + SquareSize, Y: min.Y + SquareSize},
		}
	}
	return rects
}
