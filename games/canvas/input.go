/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package canvas

// Point is a position, either in viewport coordinates (as reported by a
// pointer event) or in canvas pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is the on-screen bounding rectangle of the canvas element.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// StrokeInput is a pointer position normalised from either a mouse or a
// touch event, together with the canvas bounds it was measured against.
type StrokeInput struct {
	Client Point
	Bounds Rect
}

func MouseInput(x, y float64, bounds Rect) StrokeInput {
	return StrokeInput{
		Client: Point{X: x, Y: y},
		Bounds: bounds,
	}
}

// TouchInput uses the first active touch point. It reports false when the
// event carried no touches.
func TouchInput(touches []Point, bounds Rect) (StrokeInput, bool) {
	if len(touches) == 0 {
		return StrokeInput{}, false
	}

	return StrokeInput{
		Client: touches[0],
		Bounds: bounds,
	}, true
}

// toPixel maps viewport coordinates into a width×height pixel buffer,
// compensating for CSS scaling of the element. An axis with no on-screen
// extent is treated as unscaled.
func toPixel(in StrokeInput, width, height int) Point {
	scaleX, scaleY := 1.0, 1.0

	if in.Bounds.Width > 0 {
		scaleX = float64(width) / in.Bounds.Width
	}
	if in.Bounds.Height > 0 {
		scaleY = float64(height) / in.Bounds.Height
	}

	return Point{
		X: (in.Client.X - in.Bounds.Left) * scaleX,
		Y: (in.Client.Y - in.Bounds.Top) * scaleY,
	}
}
