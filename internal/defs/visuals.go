// internal/defs/visuals.go
package defs

import "image/color"

// Visuals contains parameters for rendering a unit.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Radius float64    `json:"radius"`
}

// RGBA is a shorthand for building palette entries in static definitions.
func RGBA(r, g, b, a uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: a}
}
