package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/identicon/pkg/identicon"
)

// SVG emits the identicon as vector output. The viewBox is fixed at the
// native canvas size; a non-zero size only changes the document's
// width/height attributes.
func SVG(img identicon.Image, size int) []byte {
	if size == 0 {
		size = identicon.CanvasSize
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		size, size, identicon.CanvasSize, identicon.CanvasSize)
	buf.WriteString("\n")

	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="#ffffff"/>`,
		identicon.CanvasSize, identicon.CanvasSize)
	buf.WriteString("\n")

	fill := fmt.Sprintf("#%02x%02x%02x", img.Color.R, img.Color.G, img.Color.B)
	for _, r := range img.PixelMap {
		fmt.Fprintf(&buf, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`,
			r.Min.X, r.Min.Y, r.Max.X-r.Min.X, r.Max.Y-r.Min.Y, fill)
		buf.WriteString("\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
