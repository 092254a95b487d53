package components

import "image/color"

// Body holds the physical size of an object. Radius is fixed at creation.
type Body struct {
	Radius float32
}

// AbsorbAmount returns the growth an object grants when absorbed:
// half its radius, truncated to a whole unit.
func (b Body) AbsorbAmount() float32 {
	return float32(int32(b.Radius) / 2)
}

// Wander holds the per-object speed factor used outside the steering threshold.
type Wander struct {
	Speed float32
}

// Tint is the cosmetic fill colour of an object.
type Tint struct {
	Color color.RGBA
}
