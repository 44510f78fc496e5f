// Package camera provides a 2D viewport that follows the orb around the
// arena. When the arena is no larger than the screen the camera is fixed;
// otherwise it tracks the target with smoothing and clamps to the arena
// edges so empty space never shows.
package camera

import "math"

// Camera controls the viewport into the arena.
type Camera struct {
	// Position is the camera center in arena coordinates
	X, Y float32

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Arena dimensions (for edge clamping)
	ArenaW, ArenaH float32

	// Zoom constraints
	MinZoom, MaxZoom float32

	// Follow smoothing factor per second. Higher snaps faster.
	FollowRate float32
}

// New creates a camera centered on the arena with 1:1 zoom.
func New(viewportW, viewportH, arenaW, arenaH float32) *Camera {
	// At zoom Z the visible arena area is (viewportW/Z, viewportH/Z).
	// Zoom may not drop below the point where the view exceeds the arena.
	minZoomX := viewportW / arenaW
	minZoomY := viewportH / arenaH
	minZoom := minZoomX
	if minZoomY > minZoom {
		minZoom = minZoomY
	}

	c := &Camera{
		X:          arenaW / 2,
		Y:          arenaH / 2,
		Zoom:       1.0,
		ViewportW:  viewportW,
		ViewportH:  viewportH,
		ArenaW:     arenaW,
		ArenaH:     arenaH,
		MinZoom:    minZoom,
		MaxZoom:    4.0,
		FollowRate: 6.0,
	}
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.clampToArena()
	return c
}

// Follow moves the camera toward the target with exponential smoothing,
// then clamps so the view stays inside the arena.
func (c *Camera) Follow(tx, ty float32, dt float32) {
	t := 1 - float32(math.Exp(float64(-c.FollowRate*dt)))
	c.X += (tx - c.X) * t
	c.Y += (ty - c.Y) * t
	c.clampToArena()
}

// SnapTo centers the camera on the target immediately.
func (c *Camera) SnapTo(tx, ty float32) {
	c.X, c.Y = tx, ty
	c.clampToArena()
}

// WorldToScreen converts arena coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to arena coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible reports whether a circle at (wx, wy) with the given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Offset returns the top-left corner of the visible area in arena
// coordinates, scaled by zoom. Feed this to a raylib Camera2D target.
func (c *Camera) Offset() (ox, oy float32) {
	return c.X - c.ViewportW/(2*c.Zoom), c.Y - c.ViewportH/(2*c.Zoom)
}

// Resize updates viewport dimensions and recalculates zoom constraints.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	minZoomX := viewportW / c.ArenaW
	minZoomY := viewportH / c.ArenaH
	c.MinZoom = minZoomX
	if minZoomY > c.MinZoom {
		c.MinZoom = minZoomY
	}
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	c.clampToArena()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampToArena()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the arena center at minimum zoom.
func (c *Camera) Reset() {
	c.X = c.ArenaW / 2
	c.Y = c.ArenaH / 2
	c.Zoom = c.MinZoom
	if c.Zoom < 1 {
		c.Zoom = 1
	}
	c.clampToArena()
}

// VisibleWorldBounds returns the arena-coordinate bounds of the visible
// area as (minX, minY, maxX, maxY).
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float32) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	return c.X - halfW, c.Y - halfH, c.X + halfW, c.Y + halfH
}

// clampToArena keeps the visible area inside the arena. When the view is
// as wide or tall as the arena the camera locks to the center on that axis.
func (c *Camera) clampToArena() {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	if halfW*2 >= c.ArenaW {
		c.X = c.ArenaW / 2
	} else {
		c.X = clamp(c.X, halfW, c.ArenaW-halfW)
	}
	if halfH*2 >= c.ArenaH {
		c.Y = c.ArenaH / 2
	} else {
		c.Y = clamp(c.Y, halfH, c.ArenaH-halfH)
	}
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
