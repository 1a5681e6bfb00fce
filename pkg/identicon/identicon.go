// Package identicon derives a drawable geometric model from an input string.
//
// An identicon is a symmetric 5×5 grid of colored squares computed
// deterministically from a 128-bit digest of the input. The same input
// always produces the same image, so identicons work as compact visual
// identifiers for names, emails, or IDs.
//
// # Pipeline
//
// The derivation is a fixed sequence of pure transformations:
//
//  1. Hash the input into 16 digest bytes
//  2. Take the first three bytes as the RGB fill color
//  3. Chunk the digest into triplets and mirror each into a 5-cell row
//  4. Keep only even-valued cells
//  5. Map each surviving cell index to a 50×50 pixel square
//
// Every stage operates on values; nothing is shared or mutated across
// invocations, so derivation is safe to run concurrently for distinct
// inputs.
//
// # Usage
//
//	img, err := identicon.Derive("banana")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range img.PixelMap {
//	    // draw a img.Color square from r.Min to r.Max
//	}
package identicon

// Geometry of the rendered identicon. The grid is fixed at 5×5 cells of
// 50 pixels each; scaling to other sizes happens after rendering, never
// in the geometric model.
const (
	// GridSize is the number of cells per row and per column.
	GridSize = 5

	// SquareSize is the edge length of one cell in pixels.
	SquareSize = 50

	// CanvasSize is the edge length of the full canvas in pixels.
	CanvasSize = GridSize * SquareSize

	// DigestSize is the number of bytes produced by the digest function.
	DigestSize = 16
)

// Cell pairs a digest-derived value with its position in the flattened
// 25-cell grid. Indices refer to the pre-filter sequence and are never
// renumbered, so a filtered grid has gaps.
type Cell struct {
	Value byte
	Index int
}

// Color is an RGB triple taken from the first three digest bytes.
type Color struct {
	R, G, B uint8
}

// Point is a pixel coordinate on the canvas.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle described by its top-left and
// bottom-right corners.
type Rect struct {
	Min Point // top-left
	Max Point // bottom-right
}

// Image is the descriptor threaded through the pipeline. It is a pure
// function of the digest bytes: identical inputs yield identical colors,
// grids, and pixel maps.
type Image struct {
	// Input is the original string the identicon was derived from.
	Input string

	// Digest holds the 16 digest bytes, set once by the hasher.
	Digest [DigestSize]byte

	// Color is the fill color, taken from the first three digest bytes.
	Color Color

	// Grid holds the surviving (value, index) cells after filtering.
	Grid []Cell

	// PixelMap holds one rectangle per surviving grid cell.
	PixelMap []Rect
}

// Derive runs the full derivation pipeline on input using the default
// MD5 digest.
func Derive(input string) (Image, error) {
	return DeriveWith(MD5, input)
}

// DeriveWith runs the full derivation pipeline using the given digest
// function. The stages run in fixed order: hash, color, grid, filter,
// pixel map.
func DeriveWith(digest DigestFunc, input string) (Image, error) {
	img := Image{
		Input:  input,
		Digest: digest([]byte(input)),
	}

	color, err := PickColor(img.Digest[:])
	if err != nil {
		return Image{}, err
	}
	img.Color = color

	img.Grid = FilterEven(BuildGrid(img.Digest[:]))
	img.PixelMap = BuildPixelMap(img.Grid)
	return img, nil
}
