package chroma

import (
	"regexp"
	"strconv"
	"strings"
)

// numberRe matches the numeric component tokens inside textual color
// forms such as "rgb(52, 152, 219)" or "hsl(204, 0.7, 0.53)".
var numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// ExpandHex normalizes a hex color string without validating it:
// a bare string gains a "#" prefix, and 3-digit shorthand is expanded
// by duplicating each digit ("#abc" becomes "#aabbcc"). Anything else
// is returned unchanged. Case is preserved; ExpandHex is idempotent.
func ExpandHex(s string) string {
	if s == "" {
		return s
	}
	if s[0] != '#' {
		s = "#" + s
	}
	if len(s) == 4 {
		b := make([]byte, 0, 7)
		b = append(b, '#')
		for i := 1; i < 4; i++ {
			b = append(b, s[i], s[i])
		}
		return string(b)
	}
	return s
}

// Parse reads a textual color into its typed record. Input is matched
// case-insensitively. Recognized forms are hex strings ("#abc",
// "#aabbcc", with or without the leading "#") and the functional forms
// rgb(...), rgba(...), hsv(...), hsl(...), hsla(...) and cmyk(...).
//
// Component ranges are not validated; Parse only establishes the kind
// and field values. Empty input fails with ErrInvalidInput, text that
// matches no known form fails with ErrUnknownFormat.
func Parse(text string) (Color, error) {
	if text == "" {
		return nil, ErrInvalidInput
	}
	s := strings.ToLower(text)
	if s[0] == '#' {
		return Hex(ExpandHex(s)), nil
	}

	nums := numberRe.FindAllString(s, -1)

	// Shorter names are substrings of longer ones, so rgba must be
	// checked before rgb and hsla before hsl.
	switch {
	case strings.Contains(s, "rgba"):
		// Like the other non-HSx forms, all four tokens parse as
		// integers, so a fractional alpha truncates. Callers wanting a
		// fractional alpha construct RGBA directly.
		v, err := intFields(nums, 4)
		if err != nil {
			return nil, err
		}
		return RGBA{R: v[0], G: v[1], B: v[2], A: float64(v[3])}, nil
	case strings.Contains(s, "rgb"):
		v, err := intFields(nums, 3)
		if err != nil {
			return nil, err
		}
		return RGB{R: v[0], G: v[1], B: v[2]}, nil
	case strings.Contains(s, "cmyk"):
		v, err := intFields(nums, 4)
		if err != nil {
			return nil, err
		}
		return CMYK{C: v[0], M: v[1], Y: v[2], K: v[3]}, nil
	case strings.Contains(s, "hsv"):
		v, err := floatFields(nums, 3)
		if err != nil {
			return nil, err
		}
		return HSV{H: v[0], S: v[1], V: v[2]}, nil
	case strings.Contains(s, "hsla"):
		v, err := floatFields(nums, 4)
		if err != nil {
			return nil, err
		}
		return HSLA{H: v[0], S: v[1], L: v[2], A: v[3]}, nil
	case strings.Contains(s, "hsl"):
		v, err := floatFields(nums, 3)
		if err != nil {
			return nil, err
		}
		return HSL{H: v[0], S: v[1], L: v[2]}, nil
	}
	return nil, ErrUnknownFormat
}

func intFields(tokens []string, n int) ([]int, error) {
	if len(tokens) < n {
		return nil, ErrInvalidInput
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		// Truncate fractional tokens the way integer parsing of a
		// float literal would.
		f, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return nil, ErrInvalidInput
		}
		out[i] = int(f)
	}
	return out, nil
}

func floatFields(tokens []string, n int) ([]float64, error) {
	if len(tokens) < n {
		return nil, ErrInvalidInput
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(tokens[i], 64)
		if err != nil {
			return nil, ErrInvalidInput
		}
		out[i] = f
	}
	return out, nil
}

// CreateColor builds a color of the requested kind from a textual
// description. An unparseable or invalid description substitutes black.
// kind defaults to "hex" and is matched case-insensitively; from
// defaults to "#000000".
func CreateColor(kind, from string) (Color, error) {
	if kind == "" {
		kind = "hex"
	}
	if from == "" {
		from = "#000000"
	}
	base, err := Parse(from)
	if err != nil || !IsColor(base) {
		base = Hex("#000000")
	}
	return ToKind(base, kind)
}
