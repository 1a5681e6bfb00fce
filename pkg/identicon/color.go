package identicon

import "github.com/matzehuels/identicon/pkg/errors"

// PickColor extracts the first three digest bytes as an RGB triple.
//
// With the fixed 16-byte digest this cannot fail, but the check guards
// against substituted digest sources that produce fewer than 3 bytes.
func PickColor(digest []byte) (Color, error) {
	if len(digest) < 3 {
		return Color{}, errors.New(errors.ErrCodeInsufficientData,
			"digest has %d bytes, color needs 3", len(digest))
	}
	return Color{R: digest[0], G: digest[1], B: digest[2]}, nil
}
