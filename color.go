package kitdemo

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	r, g, b, a := c.bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// ARGB packs the color as 0xAARRGGBB, the layout of an ARGB_8888 pixel.
func (c RGBA) ARGB() uint32 {
	r, g, b, a := c.bytes()
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// bytes quantizes the color to 8 bits per channel.
func (c RGBA) bytes() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fromBytes(n.R, n.G, n.B, n.A)
}

// FromARGB unpacks a 0xAARRGGBB value.
func FromARGB(v uint32) RGBA {
	//nolint:gosec // G115: each shift is masked to 8 bits
	return fromBytes(uint8(v>>16), uint8(v>>8), uint8(v), uint8(v>>24))
}

func fromBytes(r, g, b, a uint8) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// to8 maps a [0, 1] component to [0, 255] with rounding.
func to8(x float64) uint8 {
	return uint8(clamp255(math.Round(x * 255)))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors. Values match the platform color constants.
var (
	Black       = FromARGB(0xFF000000)
	DarkGray    = FromARGB(0xFF444444)
	Gray        = FromARGB(0xFF888888)
	LightGray   = FromARGB(0xFFCCCCCC)
	White       = FromARGB(0xFFFFFFFF)
	Red         = FromARGB(0xFFFF0000)
	Green       = FromARGB(0xFF00FF00)
	Blue        = FromARGB(0xFF0000FF)
	Yellow      = FromARGB(0xFFFFFF00)
	Cyan        = FromARGB(0xFF00FFFF)
	Magenta     = FromARGB(0xFFFF00FF)
	Transparent = FromARGB(0x00000000)
)

var namedColors = map[string]RGBA{
	"black":       Black,
	"darkgray":    DarkGray,
	"gray":        Gray,
	"lightgray":   LightGray,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"transparent": Transparent,
	"aqua":        Cyan,
	"fuchsia":     Magenta,
	"grey":        Gray,
	"darkgrey":    DarkGray,
	"lightgrey":   LightGray,
}

// ParseColor parses a color name ("red", "lightgray"), "#rgb", "#rrggbb"
// or "#aarrggbb". Names are matched case-insensitively.
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return RGBA{}, fmt.Errorf("kitdemo: unknown color %q", s)
	}

	// #aarrggbb carries alpha up front; colorful only understands RGB.
	alpha := 1.0
	if len(s) == 9 {
		a, err := colorful.Hex("#" + s[1:3] + s[1:3] + s[1:3])
		if err != nil {
			return RGBA{}, fmt.Errorf("kitdemo: invalid color %q: %w", s, err)
		}
		alpha = a.R
		s = "#" + s[3:]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("kitdemo: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return fromBytes(r, g, b, to8(alpha)), nil
}

// String formats the color as #aarrggbb.
func (c RGBA) String() string {
	return fmt.Sprintf("#%08x", c.ARGB())
}
