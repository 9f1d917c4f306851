package chroma

import (
	"math"
	"strings"
)

// SchemeOptions tunes the harmony scheme generator. Every call gets
// its own copy seeded from the defaults; there is no shared mutable
// default state.
type SchemeOptions struct {
	// Angle is the hue offset in degrees used by the angular schemes
	// (analogous, split-complementary, double-complementary, tetradic).
	Angle float64
	// Algorithm selects the monochromatic variant, 1 through 4.
	Algorithm int
	// Step is the per-sample saturation/value decrement of the
	// monochromatic walk algorithms.
	Step float64
	// Distance is the number of samples the walk algorithms add after
	// the original.
	Distance int
	// Tint1 and Tint2 are the white-blend weights of monochromatic
	// algorithm 1; Shade1 and Shade2 the black-blend weights.
	Tint1, Tint2   float64
	Shade1, Shade2 float64
	// Alpha is attached to alpha-bearing output formats.
	Alpha float64
}

func defaultSchemeOptions() SchemeOptions {
	return SchemeOptions{
		Angle:     30,
		Algorithm: 1,
		Step:      0.1,
		Distance:  5,
		Tint1:     0.8,
		Tint2:     0.4,
		Shade1:    0.6,
		Shade2:    0.3,
		Alpha:     1,
	}
}

// SchemeOption configures a single GenerateScheme call.
type SchemeOption func(*SchemeOptions)

// WithAngle sets the hue offset in degrees for the angular schemes.
func WithAngle(deg float64) SchemeOption {
	return func(o *SchemeOptions) { o.Angle = deg }
}

// WithAlgorithm selects the monochromatic variant (1-4).
func WithAlgorithm(n int) SchemeOption {
	return func(o *SchemeOptions) { o.Algorithm = n }
}

// WithStep sets the saturation/value decrement of the monochromatic
// walk algorithms.
func WithStep(step float64) SchemeOption {
	return func(o *SchemeOptions) { o.Step = step }
}

// WithDistance sets how many samples the monochromatic walk algorithms
// produce after the original.
func WithDistance(n int) SchemeOption {
	return func(o *SchemeOptions) { o.Distance = n }
}

// WithTints sets the two white-blend weights of monochromatic
// algorithm 1.
func WithTints(t1, t2 float64) SchemeOption {
	return func(o *SchemeOptions) { o.Tint1, o.Tint2 = t1, t2 }
}

// WithShades sets the two black-blend weights of monochromatic
// algorithm 1.
func WithShades(s1, s2 float64) SchemeOption {
	return func(o *SchemeOptions) { o.Shade1, o.Shade2 = s1, s2 }
}

// WithAlpha sets the alpha attached to rgba/hsla output.
func WithAlpha(a float64) SchemeOption {
	return func(o *SchemeOptions) { o.Alpha = a }
}

// GenerateScheme derives a harmony scheme from a source color.
//
// Recognized scheme names (with aliases):
//
//	monochromatic (mono)
//	complementary (complement, comp)
//	double-complementary (double-complement, double)
//	analogous (analog)
//	triadic (triad)
//	tetradic (tetra)
//	square
//	split-complementary (split-complement, split)
//
// Samples are generated in HSV and converted to the requested output
// format; an unrecognized format returns the raw HSV samples. A source
// that cannot be converted to HSV or an unknown scheme name fails with
// an error after logging a warning.
func GenerateScheme(c Color, scheme, format string, opts ...SchemeOption) ([]Color, error) {
	o := defaultSchemeOptions()
	for _, opt := range opts {
		opt(&o)
	}

	base, err := ToHSV(c)
	if err != nil {
		Logger().Warn("chroma: scheme source is not a color", "scheme", scheme)
		return nil, err
	}

	var samples []HSV
	switch normalizeSchemeName(scheme) {
	case "monochromatic":
		samples = monochromatic(base, o)
	case "complementary":
		samples = hueFan(base, 0, 180)
	case "double-complementary":
		samples = hueFan(base, 0, 180, 180+o.Angle, 360+o.Angle)
	case "analogous":
		samples = hueFan(base, o.Angle, 0, -o.Angle)
	case "triadic":
		samples = hueFan(base, 0, 120, 240)
	case "tetradic":
		samples = hueFan(base, 0, 180, -o.Angle, 180-o.Angle)
	case "square":
		samples = hueFan(base, 0, 90, 180, 270)
	case "split-complementary":
		samples = hueFan(base, 180-o.Angle, 0, 180+o.Angle)
	default:
		Logger().Warn("chroma: unknown scheme name", "scheme", scheme)
		return nil, ErrUnknownScheme
	}

	kind := ParseKind(format)
	out := make([]Color, len(samples))
	for i, s := range samples {
		if kind == KindUnknown {
			out[i] = s
			continue
		}
		v, err := ToKind(s, format, o.Alpha)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func normalizeSchemeName(name string) string {
	switch strings.ToLower(name) {
	case "monochromatic", "mono":
		return "monochromatic"
	case "complementary", "complement", "comp":
		return "complementary"
	case "double-complementary", "double-complement", "double":
		return "double-complementary"
	case "analogous", "analog":
		return "analogous"
	case "triadic", "triad":
		return "triadic"
	case "tetradic", "tetra":
		return "tetradic"
	case "square":
		return "square"
	case "split-complementary", "split-complement", "split":
		return "split-complementary"
	}
	return ""
}

// hueFan produces one sample per hue offset, each wrapped into
// [0,360).
func hueFan(base HSV, offsets ...float64) []HSV {
	out := make([]HSV, len(offsets))
	for i, d := range offsets {
		out[i] = HSV{H: wrapHue(base.H + d), S: base.S, V: base.V}
	}
	return out
}

func monochromatic(base HSV, o SchemeOptions) []HSV {
	switch o.Algorithm {
	case 1:
		rgb := hsvToRGB(base)
		return []HSV{
			rgbToHSV(blendWhite(rgb, o.Tint1)),
			rgbToHSV(blendWhite(rgb, o.Tint2)),
			base,
			rgbToHSV(blendBlack(rgb, o.Shade1)),
			rgbToHSV(blendBlack(rgb, o.Shade2)),
		}
	case 2:
		out := []HSV{base}
		s, v := base.S, base.V
		for i := 0; i < o.Distance; i++ {
			s = clamp01(s - o.Step)
			v = clamp01(v - o.Step)
			out = append(out, HSV{H: base.H, S: s, V: v})
		}
		return out
	case 3:
		out := []HSV{base}
		v := base.V
		for i := 0; i < o.Distance; i++ {
			v = clamp01(v - o.Step)
			out = append(out, HSV{H: base.H, S: base.S, V: v})
		}
		return out
	default:
		return []HSV{
			{H: base.H, S: base.S, V: clamp01(base.V + 2*o.Step)},
			{H: base.H, S: base.S, V: clamp01(base.V + o.Step)},
			base,
			{H: base.H, S: base.S, V: clamp01(base.V - o.Step)},
			{H: base.H, S: base.S, V: clamp01(base.V - 2*o.Step)},
		}
	}
}

// blendWhite keeps weight t of the color and fills the rest with
// white.
func blendWhite(c RGB, t float64) RGB {
	mix := func(ch int) int {
		return int(math.Round(float64(ch)*t + 255*(1-t)))
	}
	return RGB{R: mix(c.R), G: mix(c.G), B: mix(c.B)}
}

// blendBlack keeps weight t of the color and fills the rest with
// black.
func blendBlack(c RGB, t float64) RGB {
	mix := func(ch int) int {
		return int(math.Round(float64(ch) * t))
	}
	return RGB{R: mix(c.R), G: mix(c.G), B: mix(c.B)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
