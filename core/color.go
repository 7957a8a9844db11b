package core

// Color stores explicit 8-bit RGBA channels, decoupled from any backend
type Color struct {
	R, G, B, A uint8
}

// Predefined colors
var (
	ColorBlack   = Color{0, 0, 0, 255}
	ColorWhite   = Color{255, 255, 255, 255}
	ColorRed     = Color{230, 41, 55, 255}
	ColorGreen   = Color{0, 228, 48, 255}
	ColorBlue    = Color{0, 121, 241, 255}
	ColorYellow  = Color{253, 249, 0, 255}
	ColorMagenta = Color{255, 0, 255, 255}
	ColorGray    = Color{130, 130, 130, 255}
	ColorBlank   = Color{}
)

// RGBA builds an opaque-by-default color
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Modulate multiplies channels (tinting a base color by a modulate color)
func (c Color) Modulate(m Color) Color {
	return Color{
		R: uint8(uint16(c.R) * uint16(m.R) / 255),
		G: uint8(uint16(c.G) * uint16(m.G) / 255),
		B: uint8(uint16(c.B) * uint16(m.B) / 255),
		A: uint8(uint16(c.A) * uint16(m.A) / 255),
	}
}

// Lerp performs linear blending: result = c*(1-t) + dst*t
func (c Color) Lerp(dst Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return dst
	}
	inv := 1.0 - t
	return Color{
		R: uint8(float64(c.R)*inv + float64(dst.R)*t),
		G: uint8(float64(c.G)*inv + float64(dst.G)*t),
		B: uint8(float64(c.B)*inv + float64(dst.B)*t),
		A: uint8(float64(c.A)*inv + float64(dst.A)*t),
	}
}

// Transparent reports a fully transparent color
func (c Color) Transparent() bool {
	return c.A == 0
}
