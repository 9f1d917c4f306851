package chroma

// Mutable is a convenience wrapper that holds a current color and
// replaces it wholesale through each chained operation. It exists for
// fluent call sites:
//
//	m := chroma.NewMutable(chroma.Hex("#3498db"))
//	hex := m.Lighten(20).HueShift(180).Value()
//
// Failed operations keep the previous value and park the error, which
// Err reports. Mutable is a single-owner type: it is not safe for
// concurrent use.
type Mutable struct {
	cur Color
	err error
}

// NewMutable wraps a starting color. Nil or invalid input starts the
// wrapper at black.
func NewMutable(c Color) *Mutable {
	if !IsColor(c) {
		return &Mutable{cur: Hex("#000000")}
	}
	return &Mutable{cur: c}
}

// Value returns the current color.
func (m *Mutable) Value() Color { return m.cur }

// Kind reports the current color's kind.
func (m *Mutable) Kind() Kind { return KindOf(m.cur) }

// Err returns the first error of the chain, or nil.
func (m *Mutable) Err() error { return m.err }

// Set replaces the current color. Invalid input is ignored.
func (m *Mutable) Set(c Color) *Mutable {
	if IsColor(c) {
		m.cur = c
	}
	return m
}

// Convert replaces the current color with its form in the named kind.
func (m *Mutable) Convert(kind string, alpha ...float64) *Mutable {
	return m.apply(func() (Color, error) { return ToKind(m.cur, kind, alpha...) })
}

// Lighten shifts the current color's channels by amount.
func (m *Mutable) Lighten(amount int) *Mutable {
	return m.apply(func() (Color, error) { return Lighten(m.cur, amount) })
}

// Darken shifts the current color's channels by -amount.
func (m *Mutable) Darken(amount int) *Mutable {
	return m.apply(func() (Color, error) { return Darken(m.cur, amount) })
}

// HueShift rotates the current color's hue by angle degrees.
func (m *Mutable) HueShift(angle float64) *Mutable {
	return m.apply(func() (Color, error) { return HueShift(m.cur, angle) })
}

// Grayscale replaces the current color with its equal-luma gray.
func (m *Mutable) Grayscale() *Mutable {
	return m.apply(func() (Color, error) { return Grayscale(m.cur) })
}

// WebSafe snaps the current color to the web-safe palette.
func (m *Mutable) WebSafe() *Mutable {
	return m.apply(func() (Color, error) { return WebSafe(m.cur) })
}

// DisplayString renders the current color.
func (m *Mutable) DisplayString() string { return DisplayString(m.cur) }

func (m *Mutable) apply(op func() (Color, error)) *Mutable {
	next, err := op()
	if err != nil {
		if m.err == nil {
			m.err = err
		}
		return m
	}
	m.cur = next
	return m
}
