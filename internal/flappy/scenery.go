package flappy

// Cloud is a background decoration. It never collides.
// X, Y is the center of the cloud's main puff.
type Cloud struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Advance scrolls the cloud at its own speed.
func (c *Cloud) Advance() {
	c.X -= c.Speed
}

// Offscreen reports whether the cloud has left the field.
func (c Cloud) Offscreen() bool {
	return c.X+c.Width < 0
}

// Tree is a midground decoration standing on the floor. It never collides.
type Tree struct {
	X            float64 // Left edge of the trunk
	BaseY        float64 // Floor line
	Height       float64 // Trunk height
	Speed        float64
	Footprint    float64
	TrunkWidth   float64
	CanopyRadius float64
}

// Advance scrolls the tree at its own speed.
func (t *Tree) Advance() {
	t.X -= t.Speed
}

// Offscreen reports whether the tree has left the field.
func (t Tree) Offscreen() bool {
	return t.X+t.Footprint < 0
}

// TrunkTop returns the y-coordinate where the trunk meets the canopy.
func (t Tree) TrunkTop() float64 {
	return t.BaseY - t.Height
}
