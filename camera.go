package aspen

import "math"

// Camera controls the view into the canvas: position, zoom, rotation, and
// viewport. Smooth transitions (scroll-to, zoom-to) run as timelines advanced
// by an Animator.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera projects into.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTL *Timeline[Vec2]
	zoomTL   *Timeline[float64]
}

// NewCamera creates a Camera with default values and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// Center returns the camera's world-space center.
func (c *Camera) Center() Vec2 {
	return Vec2{c.X, c.Y}
}

// SetCenter moves the camera center, applying bounds clamping.
func (c *Camera) SetCenter(pos Vec2) {
	c.X = pos.X
	c.Y = pos.Y
	if c.BoundsEnabled {
		c.clampToBounds()
	}
	c.dirty = true
}

// SetZoom sets the zoom factor, re-clamping the position since the visible
// area changed.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = zoom
	if c.BoundsEnabled {
		c.clampToBounds()
	}
	c.dirty = true
}

// Pan moves the camera center by a screen-space delta.
func (c *Camera) Pan(screenDelta Vec2) {
	c.SetCenter(c.Center().Add(screenDelta.Scale(1 / c.Zoom)))
}

// ScrollTo starts a timeline animating the camera center to the given world
// position over durationMs.
func (c *Camera) ScrollTo(target Vec2, durationMs float64, easing Easing) {
	c.scrollTL = NewTimeline(c.Center(), target, durationMs, easing, LerpVec2)
}

// ZoomTo starts a timeline animating the zoom factor to the given value over
// durationMs.
func (c *Camera) ZoomTo(zoom, durationMs float64, easing Easing) {
	c.zoomTL = NewTimeline(c.Zoom, zoom, durationMs, easing, LerpFloat)
}

// ZoomAt applies an immediate multiplicative zoom step keeping the world
// point under the given screen position fixed. Used for wheel and pinch
// zooming.
func (c *Camera) ZoomAt(screen Vec2, scale float64) {
	if scale == 0 {
		return
	}
	wx, wy := c.ScreenToWorld(screen.X, screen.Y)
	c.Zoom *= scale
	c.dirty = true
	nx, ny := c.ScreenToWorld(screen.X, screen.Y)
	c.X += wx - nx
	c.Y += wy - ny
	if c.BoundsEnabled {
		c.clampToBounds()
	}
	c.dirty = true
}

// Animating reports whether a scroll or zoom timeline is still in flight.
func (c *Camera) Animating() bool {
	return !c.scrollTL.Done() || !c.zoomTL.Done()
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// clampToBounds restricts camera position so the visible area stays within
// Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	// Combined: Translate(cx,cy) * Scale(z) * Rotate(-rot) * Translate(-X,-Y)
	// [a b tx]   [z*cos  -z*sin  cx + z*(- cos*X + sin*Y)]
	// [c d ty] = [z*sin   z*cos  cy + z*(-sin*X - cos*Y)]
	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	// Transform the four viewport corners to world space.
	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// MarkDirty forces a recomputation of the view matrix.
func (c *Camera) MarkDirty() {
	c.dirty = true
}
