package chroma

import (
	"errors"
	"testing"
)

func TestExpandHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"shorthand", "#03F", "#0033FF"},
		{"shorthand lowercase", "#abc", "#aabbcc"},
		{"bare", "aabbcc", "#aabbcc"},
		{"bare shorthand", "abc", "#aabbcc"},
		{"expanded unchanged", "#aabbcc", "#aabbcc"},
		{"case preserved", "#AABBCC", "#AABBCC"},
		{"empty", "", ""},
		{"garbage unchanged", "#not-a-color", "#not-a-color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandHex(tt.in)
			if got != tt.want {
				t.Errorf("ExpandHex(%q) = %q, want %q", tt.in, got, tt.want)
			}
			// Idempotence.
			if again := ExpandHex(got); again != got {
				t.Errorf("ExpandHex(ExpandHex(%q)) = %q, want %q", tt.in, again, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Color
	}{
		{"hex", "#3498DB", Hex("#3498db")},
		{"hex shorthand", "#03F", Hex("#0033ff")},
		{"rgb", "rgb(52, 152, 219)", RGB{52, 152, 219}},
		{"rgb no spaces", "RGB(255,0,0)", RGB{255, 0, 0}},
		{"rgba", "rgba(52, 152, 219, 1)", RGBA{52, 152, 219, 1}},
		{"rgba fractional alpha truncates", "rgba(10, 20, 30, 0.5)", RGBA{10, 20, 30, 0}},
		{"cmyk", "cmyk(76, 31, 0, 14)", CMYK{76, 31, 0, 14}},
		{"hsv", "hsv(204, 0.76, 0.86)", HSV{204, 0.76, 0.86}},
		{"hsl", "hsl(204, 0.7, 0.53)", HSL{204, 0.7, 0.53}},
		{"hsla", "hsla(204, 0.7, 0.53, 0.9)", HSLA{204, 0.7, 0.53, 0.9}},
		{"negative hue", "hsl(-10, 0.5, 0.5)", HSL{-10, 0.5, 0.5}},
		{"out of range accepted", "rgb(300, -5, 900)", RGB{300, -5, 900}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrInvalidInput},
		{"no keyword", "definitely not a color", ErrUnknownFormat},
		{"keyword without numbers", "rgb()", ErrInvalidInput},
		{"too few components", "rgb(1, 2)", ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestCreateColor(t *testing.T) {
	tests := []struct {
		name       string
		kind, from string
		want       Color
	}{
		{"defaults", "", "", Hex("#000000")},
		{"hex from rgb text", "hex", "rgb(255, 0, 0)", Hex("#ff0000")},
		{"rgb from hex text", "rgb", "#ff0000", RGB{255, 0, 0}},
		{"invalid substitutes black", "rgb", "not a color", RGB{0, 0, 0}},
		{"kind case-insensitive", "HSV", "#000000", HSV{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CreateColor(tt.kind, tt.from)
			if err != nil {
				t.Fatalf("CreateColor(%q, %q) error: %v", tt.kind, tt.from, err)
			}
			if got != tt.want {
				t.Errorf("CreateColor(%q, %q) = %#v, want %#v", tt.kind, tt.from, got, tt.want)
			}
		})
	}
}

func TestCreateColorUnknownKindKeepsBase(t *testing.T) {
	got, err := CreateColor("lab", "#ff0000")
	if err != nil {
		t.Fatalf("CreateColor error: %v", err)
	}
	// Unrecognized kinds pass the parsed base through unchanged.
	if got != Hex("#ff0000") {
		t.Errorf("CreateColor(lab) = %#v, want the parsed hex", got)
	}
}
