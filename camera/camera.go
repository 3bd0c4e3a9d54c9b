// Package camera maps the game canvas onto a screen viewport.
package camera

// FitCanvas returns the canvas size for a window of the given width: the
// canvas is as wide as the window minus margin, never wider than maxWidth,
// and aspect times as tall.
func FitCanvas(windowW, maxWidth, margin, aspect float32) (w, h float32) {
	w = windowW - margin
	if w > maxWidth {
		w = maxWidth
	}
	if w < 1 {
		w = 1
	}
	return w, w * aspect
}

// Camera places the canvas inside a viewport, scaled and centred.
type Camera struct {
	// Canvas dimensions (game coordinates)
	CanvasW, CanvasH float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Scale per axis (screen units per canvas unit)
	ScaleX, ScaleY float32

	// Screen position of the canvas origin
	OffsetX, OffsetY float32

	// MaxScale caps uniform scaling (0 = uncapped).
	MaxScale float32

	// Stretch scales each axis independently to fill the viewport
	// (terminal cells are not square).
	Stretch bool
}

// New creates a camera with uniform scaling, never magnifying past 1:1.
func New(viewportW, viewportH, canvasW, canvasH float32) *Camera {
	c := &Camera{
		CanvasW:   canvasW,
		CanvasH:   canvasH,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MaxScale:  1,
	}
	c.fit()
	return c
}

// NewStretched creates a camera that fills the viewport on both axes.
func NewStretched(viewportW, viewportH, canvasW, canvasH float32) *Camera {
	c := &Camera{
		CanvasW:   canvasW,
		CanvasH:   canvasH,
		ViewportW: viewportW,
		ViewportH: viewportH,
		Stretch:   true,
	}
	c.fit()
	return c
}

// fit recomputes scale and offset after any dimension change.
func (c *Camera) fit() {
	if c.CanvasW <= 0 || c.CanvasH <= 0 {
		c.ScaleX, c.ScaleY, c.OffsetX, c.OffsetY = 1, 1, 0, 0
		return
	}

	sx := c.ViewportW / c.CanvasW
	sy := c.ViewportH / c.CanvasH
	if !c.Stretch {
		s := sx
		if sy < s {
			s = sy
		}
		if c.MaxScale > 0 && s > c.MaxScale {
			s = c.MaxScale
		}
		sx, sy = s, s
	}
	c.ScaleX, c.ScaleY = sx, sy

	// Center the canvas in the viewport
	c.OffsetX = (c.ViewportW - c.CanvasW*sx) / 2
	c.OffsetY = (c.ViewportH - c.CanvasH*sy) / 2
}

// WorldToScreen converts canvas coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	return c.OffsetX + wx*c.ScaleX, c.OffsetY + wy*c.ScaleY
}

// ScreenToWorld converts screen coordinates to canvas coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	return (sx - c.OffsetX) / c.ScaleX, (sy - c.OffsetY) / c.ScaleY
}

// ScaleLength converts a canvas length to screen units along each axis.
func (c *Camera) ScaleLength(l float32) (lx, ly float32) {
	return l * c.ScaleX, l * c.ScaleY
}

// Contains reports whether a screen point lies on the canvas.
func (c *Camera) Contains(sx, sy float32) bool {
	wx, wy := c.ScreenToWorld(sx, sy)
	return wx >= 0 && wx <= c.CanvasW && wy >= 0 && wy <= c.CanvasH
}

// IsVisible returns true if a circle at (wx, wy) with the given radius
// overlaps the canvas (conservative check for culling draws).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	return wx+radius >= 0 && wx-radius <= c.CanvasW &&
		wy+radius >= 0 && wy-radius <= c.CanvasH
}

// CanvasRect returns the canvas rectangle in screen coordinates.
func (c *Camera) CanvasRect() (x, y, w, h float32) {
	return c.OffsetX, c.OffsetY, c.CanvasW * c.ScaleX, c.CanvasH * c.ScaleY
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.fit()
}

// SetCanvas updates canvas dimensions.
func (c *Camera) SetCanvas(canvasW, canvasH float32) {
	if canvasW == c.CanvasW && canvasH == c.CanvasH {
		return
	}
	c.CanvasW = canvasW
	c.CanvasH = canvasH
	c.fit()
}
