package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Pipe is an obstacle pair: a top section hanging from the ceiling and a
// bottom section standing on the floor, separated by a fixed gap.
type Pipe struct {
	X         float64 // Left edge
	Width     float64
	TopHeight float64 // Bottom edge of the top section
	BottomY   float64 // Top edge of the bottom section, always TopHeight + gap
	Counted   bool    // Whether this pipe has already added to the score
}

// NewPipe creates a pipe whose gap starts at topHeight.
func NewPipe(x, topHeight, gap, width float64) Pipe {
	return Pipe{
		X:         x,
		Width:     width,
		TopHeight: topHeight,
		BottomY:   topHeight + gap,
	}
}

// Right returns the x-coordinate of the right edge.
func (p Pipe) Right() float64 {
	return p.X + p.Width
}

// Advance scrolls the pipe left by speed.
func (p *Pipe) Advance(speed float64) {
	p.X -= speed
}

// TopBox returns the top section's box.
func (p Pipe) TopBox() core.Box {
	return core.NewBox(p.X, 0, p.Width, p.TopHeight)
}

// BottomBox returns the bottom section's box for a field of height fieldH.
func (p Pipe) BottomBox(fieldH float64) core.Box {
	return core.NewBox(p.X, p.BottomY, p.Width, fieldH-p.BottomY)
}

// CollidesWith reports whether bird overlaps the top or bottom section of the
// pipe on a field of height fieldH. Touching edges do not collide.
// The test is evaluated at discrete tick positions only.
func (p Pipe) CollidesWith(bird core.Box, fieldH float64) bool {
	return bird.Intersects(p.TopBox()) || bird.Intersects(p.BottomBox(fieldH))
}

// Passed reports whether the pipe's right edge is left of birdX.
func (p Pipe) Passed(birdX float64) bool {
	return p.Right() < birdX
}

// MaybeScore marks the pipe counted the first time it has passed birdX.
// Returns true only on that first call, so a pipe scores at most once.
func (p *Pipe) MaybeScore(birdX float64) bool {
	if p.Counted || !p.Passed(birdX) {
		return false
	}
	p.Counted = true
	return true
}

// Offscreen reports whether the pipe has fully left the field.
func (p Pipe) Offscreen() bool {
	return p.Right() < 0
}

// spawnTopHeight draws an integer top height uniformly from [minH, maxH].
func spawnTopHeight(rng *rand.Rand, minH, maxH float64) float64 {
	h := math.Floor(rng.Float64()*(maxH-minH+1)) + minH
	return math.Min(h, maxH)
}
