package chroma

import (
	"fmt"
	"math/rand"
)

// Random produces a uniformly random color in the requested kind. The
// random triple is drawn as a hex color first, so every kind samples
// the same 24-bit space. The optional alpha applies to alpha-bearing
// kinds.
func Random(kind string, alpha ...float64) (Color, error) {
	h := Hex(fmt.Sprintf("#%06x", rand.Intn(1<<24)))
	if kind == "" {
		return h, nil
	}
	return ToKind(h, kind, alpha...)
}
