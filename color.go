package chroma

import (
	"fmt"
	"image/color"
	"strings"
)

// Kind discriminates the seven supported color representations.
type Kind uint8

const (
	// KindUnknown marks a value that is not a recognized color.
	KindUnknown Kind = iota
	// KindHex is a hex string such as "#3498db".
	KindHex
	// KindRGB is an integer triple in [0,255].
	KindRGB
	// KindRGBA is RGB plus an alpha channel in [0,1].
	KindRGBA
	// KindHSV is hue [0,360) with saturation and value in [0,1].
	KindHSV
	// KindHSL is hue [0,360) with saturation and lightness in [0,1].
	KindHSL
	// KindHSLA is HSL plus an alpha channel in [0,1].
	KindHSLA
	// KindCMYK is a percent-scaled ink quadruple in [0,100].
	KindCMYK
)

var kindNames = [...]string{
	KindUnknown: "unknown",
	KindHex:     "hex",
	KindRGB:     "rgb",
	KindRGBA:    "rgba",
	KindHSV:     "hsv",
	KindHSL:     "hsl",
	KindHSLA:    "hsla",
	KindCMYK:    "cmyk",
}

// String returns the lowercase name of the kind ("hex", "rgb", ...).
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind maps a kind name to its Kind, case-insensitively.
// Unrecognized names map to KindUnknown.
func ParseKind(name string) Kind {
	for k, n := range kindNames {
		if Kind(k) != KindUnknown && strings.EqualFold(name, n) {
			return Kind(k)
		}
	}
	return KindUnknown
}

// Color is the closed union of the seven color representations.
// Only the types in this package implement it.
type Color interface {
	// Kind reports which representation this value carries.
	Kind() Kind
	// String renders the canonical display form, e.g. "rgb(52,152,219)".
	String() string
}

// Hex is a hex color string: "#RGB" or "#RRGGBB", case-insensitive on
// input. Conversions always produce the lowercase 6-digit form.
type Hex string

// RGB is an additive color with integer channels in [0,255].
type RGB struct {
	R, G, B int
}

// RGBA is RGB with an alpha channel in [0,1].
type RGBA struct {
	R, G, B int
	A       float64
}

// HSV is hue [0,360), saturation and value in [0,1].
type HSV struct {
	H, S, V float64
}

// HSL is hue [0,360), saturation and lightness in [0,1].
type HSL struct {
	H, S, L float64
}

// HSLA is HSL with an alpha channel in [0,1].
type HSLA struct {
	H, S, L, A float64
}

// CMYK is a subtractive color with percent channels in [0,100].
type CMYK struct {
	C, M, Y, K int
}

func (Hex) Kind() Kind  { return KindHex }
func (RGB) Kind() Kind  { return KindRGB }
func (RGBA) Kind() Kind { return KindRGBA }
func (HSV) Kind() Kind  { return KindHSV }
func (HSL) Kind() Kind  { return KindHSL }
func (HSLA) Kind() Kind { return KindHSLA }
func (CMYK) Kind() Kind { return KindCMYK }

// String renders the lowercase expanded form. Malformed hex strings are
// returned lowercased but otherwise untouched.
func (h Hex) String() string {
	return strings.ToLower(ExpandHex(string(h)))
}

func (c RGB) String() string  { return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B) }
func (c RGBA) String() string { return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, ftoa(c.A)) }
func (c HSV) String() string  { return fmt.Sprintf("hsv(%s,%s,%s)", ftoa(c.H), ftoa(c.S), ftoa(c.V)) }
func (c HSL) String() string  { return fmt.Sprintf("hsl(%s,%s,%s)", ftoa(c.H), ftoa(c.S), ftoa(c.L)) }
func (c HSLA) String() string {
	return fmt.Sprintf("hsla(%s,%s,%s,%s)", ftoa(c.H), ftoa(c.S), ftoa(c.L), ftoa(c.A))
}
func (c CMYK) String() string { return fmt.Sprintf("cmyk(%d,%d,%d,%d)", c.C, c.M, c.Y, c.K) }

// ftoa formats a float component without trailing zeros.
func ftoa(f float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.4f", f), "0")
	return strings.TrimSuffix(s, ".")
}

// DisplayString renders any color in its kind-specific textual form.
// Nil or invalid input yields "".
func DisplayString(c Color) string {
	if !IsColor(c) {
		return ""
	}
	return c.String()
}

// IsHex reports whether c is a well-formed hex color: "#" followed by
// exactly 3 or 6 hex digits.
func IsHex(c Color) bool {
	h, ok := c.(Hex)
	return ok && validHex(string(h))
}

func validHex(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(b byte) bool {
	switch {
	case '0' <= b && b <= '9':
		return true
	case 'a' <= b && b <= 'f':
		return true
	case 'A' <= b && b <= 'F':
		return true
	}
	return false
}

// IsRGB reports whether c is an RGB value.
func IsRGB(c Color) bool { _, ok := c.(RGB); return ok }

// IsRGBA reports whether c is an RGBA value.
func IsRGBA(c Color) bool { _, ok := c.(RGBA); return ok }

// IsHSV reports whether c is an HSV value.
func IsHSV(c Color) bool { _, ok := c.(HSV); return ok }

// IsHSL reports whether c is an HSL value.
func IsHSL(c Color) bool { _, ok := c.(HSL); return ok }

// IsHSLA reports whether c is an HSLA value.
func IsHSLA(c Color) bool { _, ok := c.(HSLA); return ok }

// IsCMYK reports whether c is a CMYK value.
func IsCMYK(c Color) bool { _, ok := c.(CMYK); return ok }

// IsColor reports whether c holds exactly one of the seven recognized
// representations. Hex strings must be well-formed to count.
func IsColor(c Color) bool {
	return KindOf(c) != KindUnknown
}

// KindOf classifies a value. Nil and malformed hex strings classify as
// KindUnknown; every typed record reports its tag.
func KindOf(c Color) Kind {
	switch v := c.(type) {
	case nil:
		return KindUnknown
	case Hex:
		if validHex(string(v)) {
			return KindHex
		}
		return KindUnknown
	default:
		return c.Kind()
	}
}

// RGBA implements image/color.Color with premultiplied 16-bit channels.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1}.RGBA()
}

// RGBA implements image/color.Color with premultiplied 16-bit channels.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	scale := func(ch int) uint32 {
		v := clampInt(ch, 0, 255)
		return uint32(float64(v)*0x101*c.A + 0.5)
	}
	return scale(c.R), scale(c.G), scale(c.B), uint32(c.A*0xffff + 0.5)
}

// FromStdColor converts a standard library color.Color to RGBA.
func FromStdColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	// Un-premultiply back to 8-bit channels.
	return RGBA{
		R: int(float64(r)/float64(a)*255 + 0.5),
		G: int(float64(g)/float64(a)*255 + 0.5),
		B: int(float64(b)/float64(a)*255 + 0.5),
		A: float64(a) / 0xffff,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Common colors.
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Green   = RGB{0, 255, 0}
	Blue    = RGB{0, 0, 255}
	Yellow  = RGB{255, 255, 0}
	Cyan    = RGB{0, 255, 255}
	Magenta = RGB{255, 0, 255}
)
