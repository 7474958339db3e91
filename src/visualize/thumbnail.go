package visualize

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"
)

// Thumbnail downsamples a rendered chart or DOT PNG (as produced by
// RenderGradientChart or RenderDOT) to width x height, for embedding in
// a report or a quick preview. Passing 0 for either dimension derives
// it from the other so the aspect ratio is preserved; with both set,
// the image is stretched to exactly that size.
func Thumbnail(pngBytes []byte, width, height int) ([]byte, error) {
	src, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("visualize: decode source png: %w", err)
	}

	thumb := imaging.Resize(src, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return nil, fmt.Errorf("visualize: encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
