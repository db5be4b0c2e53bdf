package summary

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// Width of the rendered summary in pixels.
	Width = 600
	// Height of the rendered summary in pixels.
	Height = 400
)

var (
	background = color.RGBA{R: 230, G: 230, B: 250, A: 255}
	foreground = color.Black
)

type line struct {
	x, y int
	text string
}

// Render draws e onto a lavender 600x400 canvas and returns it PNG encoded.
func Render(e Event) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(foreground),
		Face: basicfont.Face7x13,
	}

	for _, l := range lines(e) {
		// basicfont glyphs sit on a baseline 11px below the top of the cell.
		d.Dot = fixed.P(l.x, l.y+11)
		d.DrawString(l.text)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode summary: %w", err)
	}
	return buf.Bytes(), nil
}

func lines(e Event) []line {
	out := []line{
		{20, 20, fmt.Sprintf("Total Countries: %d", e.Total)},
		{20, 50, "Last Refreshed: " + e.RefreshedAt.UTC().Format(time.RFC3339)},
		{20, 90, "Top 5 Countries by GDP:"},
	}

	y := 120
	for _, entry := range e.Top {
		out = append(out, line{40, y, fmt.Sprintf("%s - GDP: %s", entry.Name, FormatGDP(entry.EstimatedGDP))})
		y += 25
	}
	return out
}

// FormatGDP renders d with two decimals and comma thousands separators.
func FormatGDP(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + "." + frac
}
