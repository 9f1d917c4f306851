package chroma

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB and HSV are the pivot representations: every cross-kind
// conversion routes through one of them. ToRGB is the single failure
// root; all other conversions propagate its error.

// ToRGB normalizes any recognized color to RGB, stripping alpha.
// It fails with ErrUnknownFormat for nil input or a malformed hex
// string; this is the one conversion that can fail, so callers needing
// resilience should validate with IsColor first.
func ToRGB(c Color) (RGB, error) {
	switch v := c.(type) {
	case Hex:
		return hexToRGB(v)
	case RGB:
		return v, nil
	case RGBA:
		return RGB{R: v.R, G: v.G, B: v.B}, nil
	case HSV:
		return hsvToRGB(v), nil
	case HSL:
		return hsvToRGB(hslToHSV(v)), nil
	case HSLA:
		return hsvToRGB(hslToHSV(HSL{H: v.H, S: v.S, L: v.L})), nil
	case CMYK:
		return cmykToRGB(v), nil
	}
	return RGB{}, ErrUnknownFormat
}

// ToRGBA converts any recognized color to RGBA. Without an explicit
// alpha the source's own alpha is carried over, defaulting to opaque;
// an explicit non-zero alpha overrides it.
func ToRGBA(c Color, alpha ...float64) (RGBA, error) {
	rgb, err := ToRGB(c)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: pickAlpha(c, alpha)}, nil
}

// ToHex converts any recognized color to its lowercase 6-digit hex form.
func ToHex(c Color) (Hex, error) {
	if h, ok := c.(Hex); ok && validHex(string(h)) {
		return Hex(strings.ToLower(ExpandHex(string(h)))), nil
	}
	rgb, err := ToRGB(c)
	if err != nil {
		return "", err
	}
	return rgbToHex(rgb), nil
}

// ToHSV converts any recognized color to HSV. HSL-family values
// convert directly; everything else pivots through RGB.
func ToHSV(c Color) (HSV, error) {
	switch v := c.(type) {
	case HSV:
		return v, nil
	case HSL:
		return hslToHSV(v), nil
	case HSLA:
		return hslToHSV(HSL{H: v.H, S: v.S, L: v.L}), nil
	}
	rgb, err := ToRGB(c)
	if err != nil {
		return HSV{}, err
	}
	return rgbToHSV(rgb), nil
}

// ToHSL converts any recognized color to HSL.
func ToHSL(c Color) (HSL, error) {
	switch v := c.(type) {
	case HSL:
		return v, nil
	case HSLA:
		return HSL{H: v.H, S: v.S, L: v.L}, nil
	}
	hsv, err := ToHSV(c)
	if err != nil {
		return HSL{}, err
	}
	return hsvToHSL(hsv), nil
}

// ToHSLA converts any recognized color to HSLA with the same alpha
// policy as ToRGBA.
func ToHSLA(c Color, alpha ...float64) (HSLA, error) {
	hsl, err := ToHSL(c)
	if err != nil {
		return HSLA{}, err
	}
	return HSLA{H: hsl.H, S: hsl.S, L: hsl.L, A: pickAlpha(c, alpha)}, nil
}

// ToCMYK converts any recognized color to CMYK.
func ToCMYK(c Color) (CMYK, error) {
	if v, ok := c.(CMYK); ok {
		return v, nil
	}
	rgb, err := ToRGB(c)
	if err != nil {
		return CMYK{}, err
	}
	return rgbToCMYK(rgb), nil
}

// ToKind converts c to the named kind ("hex", "rgb", "rgba", "hsv",
// "hsl", "hsla", "cmyk", case-insensitive). An unrecognized kind name
// returns the input unchanged. The optional alpha applies to the
// alpha-bearing kinds only.
func ToKind(c Color, kind string, alpha ...float64) (Color, error) {
	switch ParseKind(kind) {
	case KindHex:
		return ToHex(c)
	case KindRGB:
		return ToRGB(c)
	case KindRGBA:
		return ToRGBA(c, alpha...)
	case KindHSV:
		return ToHSV(c)
	case KindHSL:
		return ToHSL(c)
	case KindHSLA:
		return ToHSLA(c, alpha...)
	case KindCMYK:
		return ToCMYK(c)
	}
	return c, nil
}

// pickAlpha resolves the alpha channel for a conversion target: an
// explicit non-zero override wins, then the source's own alpha, then
// opaque.
func pickAlpha(c Color, override []float64) float64 {
	if len(override) > 0 && override[0] != 0 {
		return override[0]
	}
	switch v := c.(type) {
	case RGBA:
		return v.A
	case HSLA:
		return v.A
	}
	return 1
}

func hexToRGB(h Hex) (RGB, error) {
	s := strings.ToLower(ExpandHex(string(h)))
	if !validHex(s) || len(s) != 7 {
		return RGB{}, ErrUnknownFormat
	}
	r, _ := strconv.ParseUint(s[1:3], 16, 16)
	g, _ := strconv.ParseUint(s[3:5], 16, 16)
	b, _ := strconv.ParseUint(s[5:7], 16, 16)
	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

func rgbToHex(c RGB) Hex {
	return Hex(fmt.Sprintf("#%02x%02x%02x", uint8(clampInt(c.R, 0, 255)),
		uint8(clampInt(c.G, 0, 255)), uint8(clampInt(c.B, 0, 255))))
}

func rgbToHSV(c RGB) HSV {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	v := max / 255
	var s float64
	if max != 0 {
		s = 1 - min/max
	}

	var h float64
	switch {
	case max == min:
		h = 0
	case max == r && g >= b:
		h = 60 * (g - b) / delta
	case max == r: // g < b
		h = 60*(g-b)/delta + 360
	case max == g:
		h = 60*(b-r)/delta + 120
	default: // max == b
		h = 60*(r-g)/delta + 240
	}
	return HSV{H: h, S: s, V: v}
}

// hsvToRGB walks the six 60-degree sectors of the HSV hexagon with
// percent-scaled intermediates, then rescales to byte channels.
func hsvToRGB(c HSV) RGB {
	h := c.H
	s := c.S * 100
	v := c.V * 100

	hi := int(math.Floor(h/60)) % 6
	if hi < 0 {
		hi += 6
	}
	vmin := (100 - s) * v / 100
	a := (v - vmin) * math.Mod(h, 60) / 60
	vinc := vmin + a
	vdec := v - a

	var r, g, b float64
	switch hi {
	case 0:
		r, g, b = v, vinc, vmin
	case 1:
		r, g, b = vdec, v, vmin
	case 2:
		r, g, b = vmin, v, vinc
	case 3:
		r, g, b = vmin, vdec, v
	case 4:
		r, g, b = vinc, vmin, v
	case 5:
		r, g, b = v, vmin, vdec
	}
	return RGB{
		R: int(math.Round(r * 255 / 100)),
		G: int(math.Round(g * 255 / 100)),
		B: int(math.Round(b * 255 / 100)),
	}
}

func rgbToCMYK(c RGB) CMYK {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	k := math.Min(1-r, math.Min(1-g, 1-b))
	var cc, m, y float64
	if k != 1 {
		cc = (1 - r - k) / (1 - k)
		m = (1 - g - k) / (1 - k)
		y = (1 - b - k) / (1 - k)
	}
	return CMYK{
		C: int(math.Round(cc * 100)),
		M: int(math.Round(m * 100)),
		Y: int(math.Round(y * 100)),
		K: int(math.Round(k * 100)),
	}
}

// cmykToRGB keeps the historical rounding asymmetry: red floors while
// green and blue ceil.
func cmykToRGB(v CMYK) RGB {
	c := float64(v.C) / 100
	m := float64(v.M) / 100
	y := float64(v.Y) / 100
	k := float64(v.K) / 100
	return RGB{
		R: int(math.Floor(255 * (1 - c) * (1 - k))),
		G: int(math.Ceil(255 * (1 - m) * (1 - k))),
		B: int(math.Ceil(255 * (1 - y) * (1 - k))),
	}
}

func hsvToHSL(c HSV) HSL {
	l := (2 - c.S) * c.V
	s := c.S * c.V
	switch {
	case l == 0:
		s = 0
	case l <= 1:
		s /= l
	case l < 2:
		s /= 2 - l
	default:
		// l == 2 means white; the divisor would be zero.
		s = 0
	}
	return HSL{H: c.H, S: s, L: l / 2}
}

func hslToHSV(c HSL) HSV {
	l2 := c.L * 2
	s2 := c.S * l2
	if l2 > 1 {
		s2 = c.S * (2 - l2)
	}
	v := (l2 + s2) / 2
	var s float64
	if l2+s2 != 0 {
		s = 2 * s2 / (l2 + s2)
	}
	return HSV{H: c.H, S: s, V: v}
}

// websafeRGB snaps each channel to the nearest multiple of 51.
func websafeRGB(c RGB) RGB {
	snap := func(ch int) int {
		return int(math.Round(float64(ch)/51)) * 51
	}
	return RGB{R: snap(c.R), G: snap(c.G), B: snap(c.B)}
}
