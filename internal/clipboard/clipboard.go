// Package clipboard publishes rendered frames to the system clipboard as
// PNG images.
package clipboard

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// changePropertyHeader is the fixed size in bytes of an X11 ChangeProperty
// request ahead of its data.
const changePropertyHeader = 24

// maxPropertyBytes is the largest payload a single ChangeProperty request
// can carry on a server whose maximum request length is units 4-byte words.
func maxPropertyBytes(units uint16) int {
	n := int(units)*4 - changePropertyHeader
	if n < 0 {
		return 0
	}
	return n
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode clipboard image: %w", err)
	}
	return buf.Bytes(), nil
}
