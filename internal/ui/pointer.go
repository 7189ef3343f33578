package ui

import "math"

// MaxTiltDegrees is the rotation at the edge of a tilting card.
const MaxTiltDegrees = 15.0

// Bounds is an element's box in viewport coordinates.
type Bounds struct {
	Left   float64 `json:"left" form:"left"`
	Top    float64 `json:"top" form:"top"`
	Width  float64 `json:"width" form:"width"`
	Height float64 `json:"height" form:"height"`
}

// Offset is a pointer position relative to the centre of an element,
// normalized to -0.5..0.5 on each axis.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Neutral is the offset of a pointer at the centre, or outside, of an element.
var Neutral = Offset{}

// PointerOffset normalizes a pointer at (x, y) against b. Positions outside b
// are clamped to the edge; an empty box yields Neutral.
func PointerOffset(x, y float64, b Bounds) Offset {
	if b.Width <= 0 || b.Height <= 0 {
		return Neutral
	}
	return Offset{
		X: clamp((x-b.Left)/b.Width-0.5, -0.5, 0.5),
		Y: clamp((y-b.Top)/b.Height-0.5, -0.5, 0.5),
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}

// Rotation is a 3D card rotation in degrees.
type Rotation struct {
	X float64 `json:"rotateX"`
	Y float64 `json:"rotateY"`
}

// Tilt drives the contact card's 3D rotation.
type Tilt struct {
	offset Offset
}

// Move records the pointer at (x, y) over b.
func (t Tilt) Move(x, y float64, b Bounds) Tilt {
	t.offset = PointerOffset(x, y, b)
	return t
}

// Leave resets the tilt to neutral.
func (t Tilt) Leave() Tilt {
	return Tilt{}
}

// Offset returns the last recorded offset.
func (t Tilt) Offset() Offset {
	return t.offset
}

// Rotation maps the offset to degrees. Pointer below centre tips the card
// back, pointer right of centre turns it right.
func (t Tilt) Rotation() Rotation {
	return Rotation{
		X: -t.offset.Y * 2 * MaxTiltDegrees,
		Y: t.offset.X * 2 * MaxTiltDegrees,
	}
}

// Glow is the origin of a card's radial highlight, in pixels from the card's
// top-left corner.
type Glow struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Visible bool    `json:"visible"`
}

// GlowAt places the highlight under the pointer.
func GlowAt(x, y float64, b Bounds) Glow {
	off := PointerOffset(x, y, b)
	if b.Width <= 0 || b.Height <= 0 {
		return Glow{}
	}
	return Glow{
		X:       (off.X + 0.5) * b.Width,
		Y:       (off.Y + 0.5) * b.Height,
		Visible: true,
	}
}

// Leave hides the highlight and resets its origin.
func (g Glow) Leave() Glow {
	return Glow{}
}
