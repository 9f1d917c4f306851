package chroma

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx absorbs the usual binary floating point drift in computed
// saturation/value channels.
var approx = cmpopts.EquateApprox(0, 1e-9)

func TestGenerateSchemeCardinality(t *testing.T) {
	tests := []struct {
		scheme string
		n      int
	}{
		{"monochromatic", 5},
		{"complementary", 2},
		{"double-complementary", 4},
		{"analogous", 3},
		{"triadic", 3},
		{"tetradic", 4},
		{"square", 4},
		{"split-complementary", 3},
	}
	src := HSV{0, 1, 1}
	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			got, err := GenerateScheme(src, tt.scheme, "hsv")
			if err != nil {
				t.Fatalf("GenerateScheme error: %v", err)
			}
			if len(got) != tt.n {
				t.Errorf("%s produced %d samples, want %d", tt.scheme, len(got), tt.n)
			}
		})
	}
}

func TestGenerateSchemeAliases(t *testing.T) {
	aliases := map[string][]string{
		"monochromatic":        {"mono"},
		"complementary":        {"complement", "comp"},
		"double-complementary": {"double-complement", "double"},
		"analogous":            {"analog"},
		"triadic":              {"triad"},
		"tetradic":             {"tetra"},
		"split-complementary":  {"split-complement", "split"},
	}
	src := HSV{120, 0.5, 0.5}
	for canonical, names := range aliases {
		want, err := GenerateScheme(src, canonical, "hsv")
		if err != nil {
			t.Fatalf("GenerateScheme(%q) error: %v", canonical, err)
		}
		for _, alias := range names {
			got, err := GenerateScheme(src, alias, "hsv")
			if err != nil {
				t.Fatalf("GenerateScheme(%q) error: %v", alias, err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("alias %q differs from %q (-want +got):\n%s", alias, canonical, diff)
			}
		}
	}
}

func TestSchemeHues(t *testing.T) {
	src := HSV{0, 1, 1}
	tests := []struct {
		scheme string
		opts   []SchemeOption
		hues   []float64
	}{
		{"complementary", nil, []float64{0, 180}},
		{"triadic", nil, []float64{0, 120, 240}},
		{"square", nil, []float64{0, 90, 180, 270}},
		{"analogous", nil, []float64{30, 0, 330}},
		{"split-complementary", nil, []float64{150, 0, 210}},
		{"tetradic", nil, []float64{0, 180, 330, 150}},
		{"double-complementary", nil, []float64{0, 180, 210, 30}},
		{"analogous", []SchemeOption{WithAngle(15)}, []float64{15, 0, 345}},
	}
	for _, tt := range tests {
		t.Run(tt.scheme, func(t *testing.T) {
			got, err := GenerateScheme(src, tt.scheme, "hsv", tt.opts...)
			if err != nil {
				t.Fatalf("GenerateScheme error: %v", err)
			}
			if len(got) != len(tt.hues) {
				t.Fatalf("got %d samples, want %d", len(got), len(tt.hues))
			}
			for i, want := range tt.hues {
				hsv := got[i].(HSV)
				if absDiff(hsv.H, want) > 1e-9 {
					t.Errorf("sample %d hue = %v, want %v", i, hsv.H, want)
				}
				if hsv.S != src.S || hsv.V != src.V {
					t.Errorf("sample %d must keep s and v, got %v", i, hsv)
				}
			}
		})
	}
}

func TestMonochromaticAlgorithms(t *testing.T) {
	src := HSV{0, 1, 0.5}

	t.Run("algorithm 1 tints and shades", func(t *testing.T) {
		got, err := GenerateScheme(src, "mono", "rgb")
		if err != nil {
			t.Fatal(err)
		}
		// Source is rgb(128,0,0); tints blend toward white, shades
		// toward black, with the original in the middle.
		want := []Color{
			RGB{153, 51, 51},   // 0.8 color, 0.2 white
			RGB{204, 153, 153}, // 0.4 color, 0.6 white
			RGB{128, 0, 0},
			RGB{77, 0, 0}, // 0.6 color
			RGB{38, 0, 0}, // 0.3 color
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("mono samples (-want +got):\n%s", diff)
		}
	})

	t.Run("algorithm 2 walks saturation and value", func(t *testing.T) {
		got, err := GenerateScheme(src, "mono", "hsv", WithAlgorithm(2), WithDistance(3), WithStep(0.2))
		if err != nil {
			t.Fatal(err)
		}
		want := []Color{
			HSV{0, 1, 0.5},
			HSV{0, 0.8, 0.3},
			HSV{0, 0.6, 0.1},
			HSV{0, 0.4, 0},
		}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("mono walk (-want +got):\n%s", diff)
		}
	})

	t.Run("algorithm 3 walks value only", func(t *testing.T) {
		got, err := GenerateScheme(src, "mono", "hsv", WithAlgorithm(3), WithDistance(2), WithStep(0.25))
		if err != nil {
			t.Fatal(err)
		}
		want := []Color{
			HSV{0, 1, 0.5},
			HSV{0, 1, 0.25},
			HSV{0, 1, 0},
		}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("mono value walk (-want +got):\n%s", diff)
		}
	})

	t.Run("algorithm 4 fans value", func(t *testing.T) {
		got, err := GenerateScheme(src, "mono", "hsv", WithAlgorithm(4))
		if err != nil {
			t.Fatal(err)
		}
		want := []Color{
			HSV{0, 1, 0.7},
			HSV{0, 1, 0.6},
			HSV{0, 1, 0.5},
			HSV{0, 1, 0.4},
			HSV{0, 1, 0.3},
		}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("mono fan (-want +got):\n%s", diff)
		}
	})
}

func TestGenerateSchemeOutputFormats(t *testing.T) {
	src := Hex("#ff0000")

	t.Run("hex", func(t *testing.T) {
		got, err := GenerateScheme(src, "complementary", "hex")
		if err != nil {
			t.Fatal(err)
		}
		want := []Color{Hex("#ff0000"), Hex("#00ffff")}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("hex output (-want +got):\n%s", diff)
		}
	})

	t.Run("rgba carries the configured alpha", func(t *testing.T) {
		got, err := GenerateScheme(src, "complementary", "rgba", WithAlpha(0.5))
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range got {
			if c.(RGBA).A != 0.5 {
				t.Errorf("sample %v alpha, want 0.5", c)
			}
		}
	})

	t.Run("unrecognized format returns raw hsv", func(t *testing.T) {
		got, err := GenerateScheme(src, "complementary", "oklch")
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range got {
			if _, ok := c.(HSV); !ok {
				t.Errorf("sample %T, want raw HSV", c)
			}
		}
	})
}

func TestGenerateSchemeErrors(t *testing.T) {
	if _, err := GenerateScheme(HSV{0, 1, 1}, "vaporwave", "hex"); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("unknown scheme error = %v, want ErrUnknownScheme", err)
	}
	if _, err := GenerateScheme(nil, "triadic", "hex"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("invalid source error = %v, want ErrUnknownFormat", err)
	}
}
