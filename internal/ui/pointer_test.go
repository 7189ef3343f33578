package ui

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var card = Bounds{Left: 100, Top: 50, Width: 200, Height: 100}

func TestPointerOffset(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want Offset
	}{
		{"centre", 200, 100, Offset{0, 0}},
		{"top left", 100, 50, Offset{-0.5, -0.5}},
		{"bottom right", 300, 150, Offset{0.5, 0.5}},
		{"quarter", 150, 75, Offset{-0.25, -0.25}},
		{"outside clamps", 1000, -1000, Offset{0.5, -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointerOffset(tt.x, tt.y, card)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestPointerOffsetEmptyBounds(t *testing.T) {
	assert.Equal(t, Neutral, PointerOffset(10, 10, Bounds{}))
	assert.Equal(t, Neutral, PointerOffset(10, 10, Bounds{Width: 10}))
	assert.Equal(t, Neutral, PointerOffset(math.NaN(), 10, Bounds{Width: -5, Height: 5}))
}

func TestTiltRotation(t *testing.T) {
	tilt := Tilt{}.Move(300, 150, card)
	r := tilt.Rotation()
	assert.InDelta(t, -MaxTiltDegrees, r.X, 1e-9)
	assert.InDelta(t, MaxTiltDegrees, r.Y, 1e-9)

	tilt = Tilt{}.Move(100, 50, card)
	r = tilt.Rotation()
	assert.InDelta(t, MaxTiltDegrees, r.X, 1e-9)
	assert.InDelta(t, -MaxTiltDegrees, r.Y, 1e-9)
}

func TestLeaveResetsToNeutral(t *testing.T) {
	positions := [][2]float64{{100, 50}, {300, 150}, {123, 140}, {-50, 900}}
	for _, p := range positions {
		tilt := Tilt{}.Move(p[0], p[1], card).Leave()
		assert.Equal(t, Neutral, tilt.Offset())
		assert.Equal(t, Rotation{}, tilt.Rotation())

		glow := GlowAt(p[0], p[1], card).Leave()
		assert.Equal(t, Glow{}, glow)
	}
}

func TestGlowAt(t *testing.T) {
	g := GlowAt(150, 75, card)
	assert.True(t, g.Visible)
	assert.InDelta(t, 50, g.X, 1e-9)
	assert.InDelta(t, 25, g.Y, 1e-9)

	assert.Equal(t, Glow{}, GlowAt(150, 75, Bounds{}))
}
