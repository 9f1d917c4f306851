package chroma

import "errors"

// Errors returned by the parsing and conversion layers. Read-style
// operations (predicates, DisplayString) never return errors; they
// degrade to their zero result instead.
var (
	// ErrInvalidInput reports text input that cannot be a color at all,
	// such as an empty string.
	ErrInvalidInput = errors.New("chroma: invalid input")

	// ErrUnknownFormat reports a value matching none of the seven
	// recognized color kinds. Every pivot-dependent conversion fails
	// with this error when its input cannot be normalized to RGB.
	ErrUnknownFormat = errors.New("chroma: unknown color format")

	// ErrUnknownScheme reports a scheme name GenerateScheme does not
	// recognize.
	ErrUnknownScheme = errors.New("chroma: unknown scheme")
)
