package visualize

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/flopp/go-findfont"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/grimkey/adx/src/id"
	"github.com/grimkey/adx/src/scalar"
)

// gradientBar is one row of a rendered chart.
type gradientBar struct {
	label string
	value float64
}

// RenderGradientChart draws a horizontal bar chart of grads, one bar per
// variable, sorted by the Id's String() label (name#seq, compared as
// text) so repeated renders of the same program are reproducible. toFloat projects the scalar backend to a plotting axis
// (scalarf64.Float64.Float64 is the usual choice; other backends supply
// their own).
func RenderGradientChart[T scalar.Scalar[T]](grads map[id.Id]T, toFloat func(T) float64, fontName string) ([]byte, error) {
	if len(grads) == 0 {
		return nil, fmt.Errorf("visualize: no gradients to chart")
	}

	bars := make([]gradientBar, 0, len(grads))
	for vid, g := range grads {
		bars = append(bars, gradientBar{label: vid.String(), value: toFloat(g)})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].label < bars[j].label })

	const (
		rowHeight = 28
		leftPad   = 120
		chartW    = 420
		width     = leftPad + chartW + 40
	)
	height := rowHeight*len(bars) + 40

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	face, err := loadChartFace(fontName, 13)
	if err != nil {
		return nil, fmt.Errorf("visualize: load font: %w", err)
	}
	dc.SetFontFace(face)

	maxAbs := 0.0
	for _, b := range bars {
		if a := abs(b.value); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	mid := float64(leftPad) + float64(chartW)/2
	for i, b := range bars {
		y := float64(20 + i*rowHeight)
		dc.SetRGB(0.15, 0.15, 0.15)
		dc.DrawStringAnchored(b.label, 8, y+rowHeight/2, 0, 0.5)

		barLen := (b.value / maxAbs) * (float64(chartW) / 2)
		if b.value >= 0 {
			dc.SetRGB(0.2, 0.5, 0.8)
			dc.DrawRectangle(mid, y+4, barLen, rowHeight-8)
		} else {
			dc.SetRGB(0.8, 0.3, 0.2)
			dc.DrawRectangle(mid+barLen, y+4, -barLen, rowHeight-8)
		}
		dc.Fill()

		dc.SetRGB(0.15, 0.15, 0.15)
		dc.DrawStringAnchored(fmt.Sprintf("%.4g", b.value), mid+float64(chartW)/2+8, y+rowHeight/2, 0, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("visualize: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// loadChartFace finds a system font by name and parses it directly with
// freetype/truetype into an x/image/font.Face, rather than going through
// gg's own LoadFontFace convenience wrapper, so the font lookup and
// parsing stages stay swappable independently of the drawing context.
func loadChartFace(name string, points float64) (font.Face, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return nil, fmt.Errorf("find %q: %w", name, err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", path, err)
	}
	parsed, err := truetype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}
	return truetype.NewFace(parsed, &truetype.Options{Size: points}), nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
