// Package chroma provides a color model and conversion toolkit for Go.
//
// # Overview
//
// chroma models colors in the common design-tool encodings (hex strings,
// RGB, RGBA, HSV, HSL, HSLA and CMYK), converts between all of them,
// derives perceptual properties (dark/light classification, grayscale),
// applies transformations (lighten/darken, hue rotation, web-safe
// snapping) and generates color harmony schemes (complementary,
// analogous, triadic, and friends).
//
// # Quick Start
//
//	import "github.com/gogpu/chroma"
//
//	c, _ := chroma.Parse("#3498db")
//	hsl, _ := chroma.ToHSL(c)
//	dark := chroma.IsDark(c)
//
//	// Harmony schemes
//	set, _ := chroma.GenerateScheme(c, "triadic", "hex")
//
// # Color Kinds
//
// Every color value is one of seven concrete types, discriminated by
// [Kind]: [Hex], [RGB], [RGBA], [HSV], [HSL], [HSLA] and [CMYK]. All are
// plain value types; conversions always return fresh values and never
// mutate their input. RGB and HSV act as pivot representations: every
// cross-kind conversion routes through one of them.
//
// # Errors
//
// Conversions that must produce a normalized color fail with
// [ErrUnknownFormat] when handed something that is not a color.
// Read-style operations (IsDark, Equal, DisplayString) prefer silent
// absence: they return their zero result for invalid input instead of
// an error. See the package-level error variables.
//
// # Concurrency
//
// The package is stateless: every function operates on its own inputs
// and allocates fresh outputs, so all operations are safe to call
// concurrently. The one exception is [Mutable], a single-owner
// convenience wrapper.
package chroma
