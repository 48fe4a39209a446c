//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"errors"
	"image"
)

// WriteImage is not supported on this platform.
func WriteImage(image.Image) error {
	return errors.New("clipboard image copy is not supported on this platform")
}
