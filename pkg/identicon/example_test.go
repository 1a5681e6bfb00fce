package identicon_test

import (
	"fmt"
	"log"

	"github.com/matzehuels/identicon/pkg/identicon"
)

// Derive an identicon descriptor and inspect its color and geometry.
func ExampleDerive() {
	img, err := identicon.Derive("banana")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("color: #%02x%02x%02x\n", img.Color.R, img.Color.G, img.Color.B)
	fmt.Println("squares:", len(img.PixelMap))
	fmt.Println("first:", img.PixelMap[0].Min, img.PixelMap[0].Max)
	// Output:
	// color: #72b302
	// squares: 9
	// first: {0 0} {50 50}
}
