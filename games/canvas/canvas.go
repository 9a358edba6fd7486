/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package canvas implements the drawing surface: a fixed-size raster that
// freehand strokes are rendered into, segment by segment, as pointer input
// arrives.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/mazznoer/csscolorparser"
)

const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultColor     = "#000000"
	DefaultBrushSize = 3.0

	// Tolerance is the per-channel distance from the background that still
	// counts as background when checking for emptiness.
	Tolerance = 5
)

// Background is the fill used by New and Clear.
var Background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

var (
	ErrInvalidColor     = errors.New("invalid stroke color")
	ErrInvalidBrushSize = errors.New("brush size must be positive and no wider than the canvas")
)

// Segment is one rendered piece of a stroke, in pixel space.
type Segment struct {
	From  Point   `json:"from"`
	To    Point   `json:"to"`
	Color string  `json:"color"`
	Size  float64 `json:"size"`
}

// Surface owns the raster and the state of the gesture in progress.
// It is not safe for concurrent use.
type Surface struct {
	dc *gg.Context

	drawing bool
	cursor  Point

	color  string
	stroke color.Color
	brush  float64
}

// New returns a width×height surface filled with Background. Non-positive
// dimensions fall back to the defaults.
func New(width, height int) *Surface {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	dc := gg.NewContext(width, height)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	s := &Surface{
		dc:     dc,
		color:  DefaultColor,
		stroke: color.Black,
		brush:  DefaultBrushSize,
	}

	s.Clear()

	return s
}

func (s *Surface) Width() int {
	return s.dc.Width()
}

func (s *Surface) Height() int {
	return s.dc.Height()
}

// Drawing reports whether a gesture is in progress.
func (s *Surface) Drawing() bool {
	return s.drawing
}

func (s *Surface) Color() string {
	return s.color
}

func (s *Surface) BrushSize() float64 {
	return s.brush
}

// ToPixel converts a normalised pointer position into pixel space.
func (s *Surface) ToPixel(in StrokeInput) Point {
	return toPixel(in, s.Width(), s.Height())
}

func (s *Surface) BeginStroke(in StrokeInput) {
	p := s.ToPixel(in)

	s.drawing = true
	s.dc.ClearPath()
	s.dc.MoveTo(p.X, p.Y)
	s.cursor = p
}

// ExtendStroke renders a segment from the cursor to in and reopens the path
// there, so color and size changes apply per segment. Only the part of the
// segment within a brush-width margin of the raster is rasterised, and that
// part is what the returned Segment describes. It reports false and draws
// nothing while no gesture is in progress or when the segment lies entirely
// off the raster; the cursor still follows the pointer in the latter case.
func (s *Surface) ExtendStroke(in StrokeInput) (Segment, bool) {
	if !s.drawing {
		return Segment{}, false
	}

	p := s.ToPixel(in)
	from, to, visible := s.clip(s.cursor, p)
	s.cursor = p

	if !visible {
		return Segment{}, false
	}

	s.dc.SetColor(s.stroke)
	s.dc.SetLineWidth(s.brush)
	s.dc.MoveTo(from.X, from.Y)
	s.dc.LineTo(to.X, to.Y)
	s.dc.Stroke()

	return Segment{
		From:  from,
		To:    to,
		Color: s.color,
		Size:  s.brush,
	}, true
}

// clip trims a to b to the raster grown by one brush width on every side
// (Liang-Barsky). Round caps at a trimmed end stay outside the raster.
func (s *Surface) clip(a, b Point) (Point, Point, bool) {
	for _, v := range []float64{a.X, a.Y, b.X, b.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Point{}, Point{}, false
		}
	}

	m := s.brush
	minX, minY := -m, -m
	maxX, maxY := float64(s.Width())+m, float64(s.Height())+m

	dx, dy := b.X-a.X, b.Y-a.Y
	t0, t1 := 0.0, 1.0

	for _, edge := range [4][2]float64{
		{-dx, a.X - minX},
		{dx, maxX - a.X},
		{-dy, a.Y - minY},
		{dy, maxY - a.Y},
	} {
		p, q := edge[0], edge[1]

		if p == 0 {
			if q < 0 {
				return Point{}, Point{}, false
			}
			continue
		}

		r := q / p
		if p < 0 {
			if r > t1 {
				return Point{}, Point{}, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return Point{}, Point{}, false
			}
			t1 = min(t1, r)
		}
	}

	from, to := a, b
	if t0 > 0 {
		from = Point{X: a.X + t0*dx, Y: a.Y + t0*dy}
	}
	if t1 < 1 {
		to = Point{X: a.X + t1*dx, Y: a.Y + t1*dy}
	}

	return from, to, true
}

func (s *Surface) EndStroke() {
	s.drawing = false
	s.dc.ClearPath()
}

// SetColor accepts any CSS color string. Unparsable values are ignored and
// the previous color stays in effect.
func (s *Surface) SetColor(value string) error {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidColor, value, err)
	}

	r, g, b, a := c.RGBA255()

	s.color = value
	s.stroke = color.NRGBA{R: r, G: g, B: b, A: a}

	return nil
}

// MaxBrushSize is the widest brush the surface accepts: its larger side.
func (s *Surface) MaxBrushSize() float64 {
	return float64(max(s.Width(), s.Height()))
}

// SetBrushSize ignores values that a stroke cannot use, including widths
// beyond MaxBrushSize.
func (s *Surface) SetBrushSize(value float64) error {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) || value > s.MaxBrushSize() {
		return fmt.Errorf("%w: %v", ErrInvalidBrushSize, value)
	}

	s.brush = value

	return nil
}

// Clear fills the current image bounds with Background. The path of a
// gesture in progress is left alone.
func (s *Surface) Clear() {
	s.dc.SetColor(Background)
	s.dc.Clear()
}

// ReadPixels returns a copy of the RGBA buffer, row-major, four bytes per
// pixel.
func (s *Surface) ReadPixels() []byte {
	img := s.rgba()
	w, h := img.Rect.Dx(), img.Rect.Dy()

	out := make([]byte, 0, w*h*4)
	for y := range h {
		start := y * img.Stride
		out = append(out, img.Pix[start:start+w*4]...)
	}

	return out
}

// IsEmpty reports whether every pixel is within Tolerance of Background on
// each of R, G and B.
func (s *Surface) IsEmpty() bool {
	pix := s.ReadPixels()

	for i := 0; i+3 < len(pix); i += 4 {
		if !near(pix[i], Background.R) ||
			!near(pix[i+1], Background.G) ||
			!near(pix[i+2], Background.B) {
			return false
		}
	}

	return true
}

func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

func (s *Surface) rgba() *image.RGBA {
	if img, ok := s.dc.Image().(*image.RGBA); ok {
		return img
	}

	src := s.dc.Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)

	return img
}

func near(v, ref uint8) bool {
	d := int(v) - int(ref)

	return d >= -Tolerance && d <= Tolerance
}
