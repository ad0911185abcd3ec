package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Bird is the player-controlled avatar.
// X never changes; Y and VelocityY are integrated every tick.
type Bird struct {
	X         float64 // Left edge
	Y         float64 // Top edge
	VelocityY float64 // Positive is down
	Size      float64 // Side of the square bounding box
}

// newBird places the bird at its spawn point: vertically centered and at rest.
func newBird(cfg config.Tunables) Bird {
	return Bird{
		X:    cfg.Bird.X,
		Y:    cfg.Field.Height / 2,
		Size: cfg.Bird.Size,
	}
}

// Box returns the bird's bounding box.
func (b Bird) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Size, b.Size)
}

// Fall applies one tick of gravity.
// The position uses the velocity before clamping; only the stored velocity is
// capped at maxFall. Upward velocity is never clamped.
func (b *Bird) Fall(gravity, maxFall float64) {
	b.VelocityY += gravity
	b.Y += b.VelocityY
	if b.VelocityY > maxFall {
		b.VelocityY = maxFall
	}
}

// Jump replaces the current velocity with the upward impulse.
func (b *Bird) Jump(impulse float64) {
	b.VelocityY = impulse
}

// OutOfBounds reports whether any part of the bird is above the top or below
// the bottom of a field with the given height.
func (b Bird) OutOfBounds(fieldH float64) bool {
	return b.Y < 0 || b.Y+b.Size > fieldH
}
