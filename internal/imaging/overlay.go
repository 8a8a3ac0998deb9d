package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/ironsheep/target-follow/internal/target"
)

// Default overlay colors.
const (
	DefaultBoundaryColor = "#FFFF00"
	DefaultMaskColor     = "#FF00FF80"
	DefaultMarkerColor   = "#FF0000"
)

// OverlayOptions selects what RenderOverlay draws. Empty colors use the
// defaults; an unparsable color is an error.
type OverlayOptions struct {
	BoundaryColor string
	MaskColor     string
	MarkerColor   string
	HideMask      bool
	ShowLabel     bool
}

// OverlayResult contains the rendered overlay and what it shows.
type OverlayResult struct {
	ImageResult
	Sector   target.Sector   `json:"sector"`
	Found    bool            `json:"found"`
	Centroid image.Point     `json:"centroid"`
	Boundary target.Boundary `json:"boundary"`
}

// RenderOverlay draws an analysis onto a copy of the frame it was made from:
// the cleaned mask as a translucent tint, the centre zone outline, and a
// cross at the centroid when a target was found.
func RenderOverlay(img image.Image, an *target.Analysis, opts OverlayOptions) (*image.RGBA, error) {
	if an == nil {
		return nil, errors.New("no analysis to draw")
	}
	b := img.Bounds()
	if b.Dx() != an.Width || b.Dy() != an.Height {
		return nil, errors.Errorf("analysis is %dx%d but image is %dx%d", an.Width, an.Height, b.Dx(), b.Dy())
	}

	boundaryColor, err := colorOrDefault(opts.BoundaryColor, DefaultBoundaryColor)
	if err != nil {
		return nil, err
	}
	maskColor, err := colorOrDefault(opts.MaskColor, DefaultMaskColor)
	if err != nil {
		return nil, err
	}
	markerColor, err := colorOrDefault(opts.MarkerColor, DefaultMarkerColor)
	if err != nil {
		return nil, err
	}

	base := imaging.Clone(img)
	if !opts.HideMask && an.Cleaned != nil {
		tint := image.NewNRGBA(base.Bounds())
		c := color.NRGBA{R: maskColor.R, G: maskColor.G, B: maskColor.B, A: maskColor.A}
		for x := 0; x < an.Cleaned.Width(); x++ {
			for y := 0; y < an.Cleaned.Height(); y++ {
				if an.Cleaned.At(x, y) {
					tint.SetNRGBA(x, y, c)
				}
			}
		}
		base = imaging.Overlay(base, tint, image.Pt(0, 0), 1.0)
	}

	canvas := clone.AsRGBA(base)
	drawOutline(canvas, an.Boundary, boundaryColor)

	if an.Found {
		drawCross(canvas, an.Centroid, 4, markerColor)
		if opts.ShowLabel {
			label := fmt.Sprintf("%d,%d", an.Centroid.X, an.Centroid.Y)
			drawLabel(canvas, an.Centroid.X+3, an.Centroid.Y+3, label,
				color.RGBA{255, 255, 255, 255}, color.RGBA{0, 0, 0, 180})
		}
	}

	return canvas, nil
}

// Overlay renders an analysis and encodes it as base64 PNG.
func Overlay(img image.Image, an *target.Analysis, opts OverlayOptions) (*OverlayResult, error) {
	canvas, err := RenderOverlay(img, an, opts)
	if err != nil {
		return nil, err
	}
	res, err := encodePNG(canvas)
	if err != nil {
		return nil, err
	}
	return &OverlayResult{
		ImageResult: *res,
		Sector:      an.Sector,
		Found:       an.Found,
		Centroid:    an.Centroid,
		Boundary:    an.Boundary,
	}, nil
}

func colorOrDefault(hex, def string) (color.RGBA, error) {
	if hex == "" {
		hex = def
	}
	c, err := parseHexColor(hex)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "color %q", hex)
	}
	return c, nil
}

// drawOutline draws the four lines of the centre zone. Lines outside the
// canvas are clipped.
func drawOutline(img *image.RGBA, b target.Boundary, c color.RGBA) {
	bounds := img.Bounds()
	for x := b.Left; x <= b.Right; x++ {
		setClipped(img, bounds, x, b.Top, c)
		setClipped(img, bounds, x, b.Bottom, c)
	}
	for y := b.Top; y <= b.Bottom; y++ {
		setClipped(img, bounds, b.Left, y, c)
		setClipped(img, bounds, b.Right, y, c)
	}
}

func drawCross(img *image.RGBA, p image.Point, arm int, c color.RGBA) {
	bounds := img.Bounds()
	for d := -arm; d <= arm; d++ {
		setClipped(img, bounds, p.X+d, p.Y, c)
		setClipped(img, bounds, p.X, p.Y+d, c)
	}
}

func setClipped(img *image.RGBA, bounds image.Rectangle, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(bounds) {
		img.SetRGBA(x, y, c)
	}
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080".
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, errors.New("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, errors.New("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// drawLabel draws a coordinate label with a 3x5 pixel font. Only digits and
// commas have glyphs; other characters leave a gap.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
		',': {"000", "000", "000", "010", "010"},
	}

	bounds := img.Bounds()
	charWidth := 4
	labelWidth := len(text) * charWidth
	labelHeight := 7

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			setClipped(img, bounds, x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel == '1' {
					setClipped(img, bounds, cx+col, y+row, fg)
				}
			}
		}
		cx += charWidth
	}
}
