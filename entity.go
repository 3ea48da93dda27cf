package aspen

// EntityID identifies an entity on the canvas. The zero ID is the canvas
// background, produced by hit tests that find no entity.
type EntityID uint32

// CanvasBound is the bound value for hits on empty canvas.
const CanvasBound EntityID = 0

// Entity is one interactive item on the canvas. Position is the entity's
// local origin in world coordinates; View is the vector outline in local
// coordinates, used for hit testing and by renderers.
type Entity interface {
	ID() EntityID
	Position() Vec2
	MoveBy(delta Vec2)
	SetSelected(selected bool)
	Selected() bool
	BBox() Rect
	View() HitShape
	// Step advances entity-local animations; Animating reports whether any
	// are in flight.
	Step(nowMs float64)
	Animating() bool
}

// Box is a rectangular entity. Position is the top-left corner.
type Box struct {
	id            EntityID
	pos           Vec2
	Width, Height float64
	selected      bool
	glide         *Timeline[Vec2]
}

// NewBox creates a rectangular entity at the given top-left position.
func NewBox(id EntityID, pos Vec2, width, height float64) *Box {
	return &Box{id: id, pos: pos, Width: width, Height: height}
}

func (b *Box) ID() EntityID      { return b.id }
func (b *Box) Position() Vec2    { return b.pos }
func (b *Box) MoveBy(delta Vec2) { b.pos = b.pos.Add(delta) }

func (b *Box) SetSelected(selected bool) { b.selected = selected }
func (b *Box) Selected() bool            { return b.selected }

func (b *Box) BBox() Rect {
	return Rect{X: b.pos.X, Y: b.pos.Y, Width: b.Width, Height: b.Height}
}

func (b *Box) View() HitShape {
	return HitRect{Width: b.Width, Height: b.Height}
}

// GlideTo starts a timeline moving the box to the given position.
func (b *Box) GlideTo(target Vec2, durationMs float64, easing Easing) {
	b.glide = NewTimeline(b.pos, target, durationMs, easing, LerpVec2)
}

func (b *Box) Step(nowMs float64) {
	if b.glide.Done() {
		return
	}
	b.glide.Step(nowMs)
	b.pos = b.glide.Value()
}

func (b *Box) Animating() bool { return !b.glide.Done() }

// Disc is a circular entity. Position is the center.
type Disc struct {
	id       EntityID
	pos      Vec2
	Radius   float64
	selected bool
	glide    *Timeline[Vec2]
}

// NewDisc creates a circular entity centered at the given position.
func NewDisc(id EntityID, pos Vec2, radius float64) *Disc {
	return &Disc{id: id, pos: pos, Radius: radius}
}

func (d *Disc) ID() EntityID      { return d.id }
func (d *Disc) Position() Vec2    { return d.pos }
func (d *Disc) MoveBy(delta Vec2) { d.pos = d.pos.Add(delta) }

func (d *Disc) SetSelected(selected bool) { d.selected = selected }
func (d *Disc) Selected() bool            { return d.selected }

func (d *Disc) BBox() Rect {
	return Rect{
		X:      d.pos.X - d.Radius,
		Y:      d.pos.Y - d.Radius,
		Width:  2 * d.Radius,
		Height: 2 * d.Radius,
	}
}

func (d *Disc) View() HitShape {
	return HitCircle{Radius: d.Radius}
}

// GlideTo starts a timeline moving the disc to the given position.
func (d *Disc) GlideTo(target Vec2, durationMs float64, easing Easing) {
	d.glide = NewTimeline(d.pos, target, durationMs, easing, LerpVec2)
}

func (d *Disc) Step(nowMs float64) {
	if d.glide.Done() {
		return
	}
	d.glide.Step(nowMs)
	d.pos = d.glide.Value()
}

func (d *Disc) Animating() bool { return !d.glide.Done() }
