package aspen

import (
	"math"
	"testing"
)

const cameraEpsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < cameraEpsilon
}

func TestCameraIdentityProjection(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})

	// At origin with zoom 1, the world origin lands at the viewport center.
	sx, sy := cam.WorldToScreen(0, 0)
	if !near(sx, 400) || !near(sy, 300) {
		t.Errorf("WorldToScreen(0,0) = (%v,%v), want (400,300)", sx, sy)
	}
}

func TestCameraTranslation(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetCenter(Vec2{100, 50})

	sx, sy := cam.WorldToScreen(100, 50)
	if !near(sx, 400) || !near(sy, 300) {
		t.Errorf("camera center projects to (%v,%v), want viewport center", sx, sy)
	}
	sx, sy = cam.WorldToScreen(110, 50)
	if !near(sx, 410) || !near(sy, 300) {
		t.Errorf("offset point = (%v,%v), want (410,300)", sx, sy)
	}
}

func TestCameraZoomScalesAboutCenter(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetZoom(2)

	sx, sy := cam.WorldToScreen(10, 0)
	if !near(sx, 420) || !near(sy, 300) {
		t.Errorf("WorldToScreen(10,0) at zoom 2 = (%v,%v), want (420,300)", sx, sy)
	}
}

func TestCameraRotation(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.Rotation = math.Pi / 2
	cam.MarkDirty()

	// A quarter turn maps the world +X axis onto the screen -Y axis.
	sx, sy := cam.WorldToScreen(10, 0)
	if !near(sx, 400) || !near(sy, 290) {
		t.Errorf("rotated projection = (%v,%v), want (400,290)", sx, sy)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetCenter(Vec2{-35, 220})
	cam.SetZoom(1.7)
	cam.Rotation = 0.3
	cam.MarkDirty()

	points := []Vec2{{0, 0}, {123, -456}, {-0.5, 9999}}
	for _, p := range points {
		sx, sy := cam.WorldToScreen(p.X, p.Y)
		wx, wy := cam.ScreenToWorld(sx, sy)
		if math.Abs(wx-p.X) > 1e-6 || math.Abs(wy-p.Y) > 1e-6 {
			t.Errorf("round trip of %v = (%v,%v)", p, wx, wy)
		}
	}
}

func TestCameraPan(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetZoom(2)
	cam.Pan(Vec2{10, -20})

	// A screen-space pan moves the center by delta/zoom in world space.
	if !near(cam.X, 5) || !near(cam.Y, -10) {
		t.Errorf("center after pan = (%v,%v), want (5,-10)", cam.X, cam.Y)
	}
}

func TestCameraZoomAtKeepsPointFixed(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetCenter(Vec2{50, 50})

	screen := Vec2{600, 150}
	wx, wy := cam.ScreenToWorld(screen.X, screen.Y)

	cam.ZoomAt(screen, 1.5)

	if !near(cam.Zoom, 1.5) {
		t.Errorf("zoom = %v, want 1.5", cam.Zoom)
	}
	nx, ny := cam.ScreenToWorld(screen.X, screen.Y)
	if math.Abs(nx-wx) > 1e-6 || math.Abs(ny-wy) > 1e-6 {
		t.Errorf("anchor moved from (%v,%v) to (%v,%v)", wx, wy, nx, ny)
	}
}

func TestCameraZoomAtZeroScaleIgnored(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.ZoomAt(Vec2{400, 300}, 0)
	if cam.Zoom != 1 {
		t.Errorf("zoom = %v, want unchanged 1", cam.Zoom)
	}
}

func TestCameraBoundsClamp(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetBounds(Rect{X: 0, Y: 0, Width: 2000, Height: 2000})

	cam.SetCenter(Vec2{-500, 3000})
	if cam.X != 400 {
		t.Errorf("clamped X = %v, want 400", cam.X)
	}
	if cam.Y != 1700 {
		t.Errorf("clamped Y = %v, want 1700", cam.Y)
	}

	cam.ClearBounds()
	cam.SetCenter(Vec2{-500, 3000})
	if cam.X != -500 || cam.Y != 3000 {
		t.Errorf("unclamped center = (%v,%v)", cam.X, cam.Y)
	}
}

func TestCameraBoundsSmallerThanView(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetBounds(Rect{X: 100, Y: 100, Width: 200, Height: 200})
	cam.SetCenter(Vec2{0, 0})

	// Bounds smaller than the visible area center the camera on them.
	if cam.X != 200 || cam.Y != 200 {
		t.Errorf("center = (%v,%v), want bounds center (200,200)", cam.X, cam.Y)
	}
}

func TestCameraVisibleBounds(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.SetZoom(2)

	vb := cam.VisibleBounds()
	if !near(vb.Width, 400) || !near(vb.Height, 300) {
		t.Errorf("visible size = %vx%v, want 400x300", vb.Width, vb.Height)
	}
	if !near(vb.X, -200) || !near(vb.Y, -150) {
		t.Errorf("visible origin = (%v,%v), want (-200,-150)", vb.X, vb.Y)
	}
}

func TestCameraScrollAndZoomTimelines(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	if cam.Animating() {
		t.Fatal("fresh camera reports animating")
	}

	cam.ScrollTo(Vec2{100, 0}, 100, nil)
	cam.ZoomTo(2, 100, nil)
	if !cam.Animating() {
		t.Fatal("camera not animating after ScrollTo/ZoomTo")
	}

	// Drive the timelines the way Scene's animator does.
	a := Animate(Animator[Camera]{},
		func(c *Camera) *Timeline[Vec2] { return c.scrollTL },
		func(c *Camera, v Vec2) { c.SetCenter(v) })
	a = Animate(a,
		func(c *Camera) *Timeline[float64] { return c.zoomTL },
		func(c *Camera, v float64) { c.SetZoom(v) })

	a.Step(0, cam)
	a.Step(50, cam)
	if !near(cam.X, 50) || !near(cam.Zoom, 1.5) {
		t.Errorf("mid-flight camera = center (%v,%v) zoom %v", cam.X, cam.Y, cam.Zoom)
	}

	a.Step(100, cam)
	if cam.Animating() {
		t.Error("camera still animating after completion")
	}
	if !near(cam.X, 100) || !near(cam.Zoom, 2) {
		t.Errorf("final camera = center (%v,%v) zoom %v", cam.X, cam.Y, cam.Zoom)
	}
}
