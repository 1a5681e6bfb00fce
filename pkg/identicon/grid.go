package identicon

// BuildGrid partitions digest into consecutive triplets, mirrors each
// triplet [a,b,c] into the palindromic row [a,b,c,b,a], and flattens the
// rows into one ordered cell sequence. Each cell carries its 0-based
// position in the flattened sequence.
//
// A trailing group with fewer than 3 bytes is discarded, never an error.
// The 16-byte digest therefore yields exactly 5 rows (25 cells); the
// 16th byte is dropped by design.
func BuildGrid(digest []byte) []Cell {
	rows := len(digest) / 3
	cells := make([]Cell, 0, rows*GridSize)

	for r := 0; r < rows; r++ {
		a, b, c := digest[r*3], digest[r*3+1], digest[r*3+2]
		row := [GridSize]byte{a, b, c, b, a}
		for i, v := range row {
			cells = append(cells, Cell{Value: v, Index: r*GridSize + i})
		}
	}
	return cells
}

// FilterEven keeps only cells with even values. Relative order and
// original indices are preserved; the pixel mapper depends on the
// pre-filter indices to locate cells on the canvas.
func FilterEven(cells []Cell) []Cell {
	kept := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if c.Value%2 == 0 {
			kept = append(kept, c)
		}
	}
	return kept
}
