package core

import "math"

// Color holds three normalized channels. Values may exceed 1 transiently;
// Add and Scale clamp each channel to at most 1.
type Color struct {
	R, G, B float64
}

// Named colors
var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	SkyBlue = NewColorRGB8(135, 206, 235)
)

// NewColor creates a color from normalized channels
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// NewColorRGB8 creates a color from 0-255 channel values
func NewColorRGB8(r, g, b int) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// ColorFromInt unpacks a 24-bit 0xRRGGBB value
func ColorFromInt(packed int) Color {
	return NewColorRGB8((packed>>16)&0xff, (packed>>8)&0xff, packed&0xff)
}

// Mul returns the component-wise product of two colors
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Add returns the sum of two colors, each channel clamped to 1
func (c Color) Add(other Color) Color {
	return Color{
		R: math.Min(c.R+other.R, 1),
		G: math.Min(c.G+other.G, 1),
		B: math.Min(c.B+other.B, 1),
	}
}

// Scale multiplies every channel by s, each channel clamped to 1
func (c Color) Scale(s float64) Color {
	return Color{
		R: math.Min(c.R*s, 1),
		G: math.Min(c.G*s, 1),
		B: math.Min(c.B*s, 1),
	}
}

// Lerp interpolates linearly from a (t=0) to b (t=1)
func Lerp(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// Average returns the mean of the given colors. The sum is not clamped.
func Average(colors ...Color) Color {
	if len(colors) == 0 {
		return Black
	}
	var sum Color
	for _, c := range colors {
		sum.R += c.R
		sum.G += c.G
		sum.B += c.B
	}
	n := float64(len(colors))
	return Color{sum.R / n, sum.G / n, sum.B / n}
}

// ToInt packs the color as 0xRRGGBB, rounding each channel times 255
func (c Color) ToInt() int {
	return channelToByte(c.R)<<16 | channelToByte(c.G)<<8 | channelToByte(c.B)
}

func channelToByte(v float64) int {
	b := int(math.Round(v * 255))
	return max(0, min(255, b))
}
