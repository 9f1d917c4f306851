package chroma

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IsDark classifies a color as dark using its YIQ luma. Invalid input
// reports false rather than failing.
func IsDark(c Color) bool {
	rgb, err := ToRGB(c)
	if err != nil {
		return false
	}
	yiq := float64(299*rgb.R+587*rgb.G+114*rgb.B) / 1000
	return yiq < 128
}

// IsLight is the negation of IsDark for valid colors. Invalid input
// reports false here as well.
func IsLight(c Color) bool {
	return IsColor(c) && !IsDark(c)
}

// Equal reports whether two colors normalize to the same 6-digit hex
// string. Alpha is ignored, so two values that differ only in opacity
// compare equal. Invalid input on either side reports false.
func Equal(c1, c2 Color) bool {
	h1, err := ToHex(c1)
	if err != nil {
		return false
	}
	h2, err := ToHex(c2)
	if err != nil {
		return false
	}
	return h1 == h2
}

// Grayscale replaces a color with its neutral gray of equal luma,
// returned in the source's kind. Alpha-bearing sources keep their
// alpha.
func Grayscale(c Color) (Color, error) {
	rgb, err := ToRGB(c)
	if err != nil {
		return nil, err
	}
	luma := int(math.Round(0.2125*float64(rgb.R) + 0.7154*float64(rgb.G) + 0.0721*float64(rgb.B)))
	return toSourceKind(c, RGB{R: luma, G: luma, B: luma})
}

// Lighten shifts every RGB channel of the color by amount, clamped to
// [0,255], and returns the result in the source's kind. Negative
// amounts darken. Alpha-bearing sources keep their alpha.
func Lighten(c Color, amount int) (Color, error) {
	hex, err := ToHex(c)
	if err != nil {
		return nil, err
	}
	packed, err := strconv.ParseUint(strings.TrimPrefix(string(hex), "#"), 16, 32)
	if err != nil {
		return nil, ErrUnknownFormat
	}
	r := clampInt(int(packed>>16&0xff)+amount, 0, 255)
	g := clampInt(int(packed>>8&0xff)+amount, 0, 255)
	b := clampInt(int(packed&0xff)+amount, 0, 255)
	shifted := Hex(fmt.Sprintf("#%06x", r<<16|g<<8|b))
	return toSourceKind(c, shifted)
}

// Darken is Lighten with the sign inverted.
func Darken(c Color, amount int) (Color, error) {
	return Lighten(c, -amount)
}

// HueShift rotates the hue by angle degrees, wrapping into [0,360),
// and returns the result in the source's kind. An explicit non-zero
// alpha overrides the source's alpha on alpha-bearing kinds.
func HueShift(c Color, angle float64, alpha ...float64) (Color, error) {
	hsv, err := ToHSV(c)
	if err != nil {
		return nil, err
	}
	hsv.H = wrapHue(hsv.H + angle)
	if len(alpha) > 0 && alpha[0] != 0 {
		return ToKind(hsv, KindOf(c).String(), alpha...)
	}
	return toSourceKind(c, hsv)
}

// WebSafe snaps a color to the 216-color web-safe palette, returned in
// the source's kind. Unrecognized input is returned unchanged.
func WebSafe(c Color) (Color, error) {
	if !IsColor(c) {
		return c, nil
	}
	rgb, err := ToRGB(c)
	if err != nil {
		return c, nil
	}
	return toSourceKind(c, websafeRGB(rgb))
}

// wrapHue brings a hue into [0,360) by repeated 360-degree steps.
// Stepwise rather than math.Mod so that very large angles wrap the
// same way a chain of small shifts would.
func wrapHue(h float64) float64 {
	for h >= 360 {
		h -= 360
	}
	for h < 0 {
		h += 360
	}
	return h
}

// toSourceKind converts a derived color back to the kind of the source
// it was computed from, carrying the source's alpha along.
func toSourceKind(src, derived Color) (Color, error) {
	switch v := src.(type) {
	case RGBA:
		return ToKind(derived, "rgba", v.A)
	case HSLA:
		return ToKind(derived, "hsla", v.A)
	}
	return ToKind(derived, KindOf(src).String())
}
