package render

import (
	"bytes"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/matzehuels/identicon/pkg/identicon"
)

// PNG rasterizes the identicon onto a white 250×250 canvas and encodes
// it as PNG. A non-zero size other than the native canvas size resizes
// the result with nearest-neighbour sampling so square edges stay crisp.
func PNG(img identicon.Image, size int) ([]byte, error) {
	dc := gg.NewContext(identicon.CanvasSize, identicon.CanvasSize)

	dc.SetRGB255(255, 255, 255)
	dc.Clear()

	dc.SetRGB255(int(img.Color.R), int(img.Color.G), int(img.Color.B))
	for _, r := range img.PixelMap {
		dc.DrawRectangle(
			float64(r.Min.X), float64(r.Min.Y),
			float64(r.Max.X-r.Min.X), float64(r.Max.Y-r.Min.Y),
		)
	}
	dc.Fill()

	out := dc.Image()
	if size != 0 && size != identicon.CanvasSize {
		out = imaging.Resize(out, size, size, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
