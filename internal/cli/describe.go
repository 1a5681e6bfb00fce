package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/identicon/pkg/identicon"
)

// descriptor is the JSON shape printed by the describe command.
type descriptor struct {
	Input   string    `json:"input"`
	Digest  string    `json:"digest"`
	Color   string    `json:"color"`
	Squares int       `json:"squares"`
	Grid    []gridOut `json:"grid"`
	Rects   []rectOut `json:"rects"`
}

type gridOut struct {
	Value byte `json:"value"`
	Index int  `json:"index"`
}

type rectOut struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// newDescribeCmd creates the describe command, which prints the derived
// descriptor for an input without rendering anything.
func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <input>",
		Short: "Print the derived identicon descriptor as JSON",
		Long: `Describe derives the identicon for the given input and prints its
digest, color, surviving grid cells, and pixel rectangles as JSON. No
image is rendered or written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, args[0])
		},
	}
}

func runDescribe(cmd *cobra.Command, input string) error {
	img, err := identicon.Derive(input)
	if err != nil {
		return err
	}

	out := descriptor{
		Input:   img.Input,
		Digest:  hex.EncodeToString(img.Digest[:]),
		Color:   fmt.Sprintf("#%02x%02x%02x", img.Color.R, img.Color.G, img.Color.B),
		Squares: len(img.PixelMap),
		Grid:    make([]gridOut, 0, len(img.Grid)),
		Rects:   make([]rectOut, 0, len(img.PixelMap)),
	}
	for _, c := range img.Grid {
		out.Grid = append(out.Grid, gridOut{Value: c.Value, Index: c.Index})
	}
	for _, r := range img.PixelMap {
		out.Rects = append(out.Rects, rectOut{
			MinX: r.Min.X, MinY: r.Min.Y,
			MaxX: r.Max.X, MaxY: r.Max.Y,
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
