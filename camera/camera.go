// Package camera maps the fixed play field onto a resizable window.
package camera

// Camera fits the play field into the viewport with a uniform zoom.
// Spare space on the longer axis becomes a letterbox border.
type Camera struct {
	// Zoom is screen pixels per world unit
	Zoom float32

	// Offset of the play field's top-left corner in screen pixels
	OffsetX, OffsetY float32

	// Viewport dimensions (window size)
	ViewportW, ViewportH float32

	// Play field dimensions
	WorldW, WorldH float32
}

// New creates a camera that fits a worldW x worldH field into the viewport.
func New(viewportW, viewportH, worldW, worldH float32) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH}
	c.fit(viewportW, viewportH)
	return c
}

// Resize refits the play field after the window changes size.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.fit(viewportW, viewportH)
}

func (c *Camera) fit(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH

	c.Zoom = viewportW / c.WorldW
	if z := viewportH / c.WorldH; z < c.Zoom {
		c.Zoom = z
	}
	if c.Zoom <= 0 {
		c.Zoom = 1
	}

	c.OffsetX = (viewportW - c.WorldW*c.Zoom) / 2
	c.OffsetY = (viewportH - c.WorldH*c.Zoom) / 2
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return c.OffsetX + wx*c.Zoom, c.OffsetY + wy*c.Zoom
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return (sx - c.OffsetX) / c.Zoom, (sy - c.OffsetY) / c.Zoom
}

// IsVisible returns true if a circle at (wx, wy) overlaps the play field.
// The player may leave the field; anything outside it falls in the border.
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	return wx+radius >= 0 && wx-radius <= c.WorldW &&
		wy+radius >= 0 && wy-radius <= c.WorldH
}

// FieldRect returns the play field's screen rectangle (x, y, w, h).
func (c *Camera) FieldRect() (x, y, w, h float32) {
	return c.OffsetX, c.OffsetY, c.WorldW * c.Zoom, c.WorldH * c.Zoom
}
