package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// JumpPolicy decides, before each tick, whether the bird should jump.
type JumpPolicy func(Snapshot) bool

// NeverJump lets the bird fall.
func NeverJump(Snapshot) bool { return false }

// JumpEvery jumps on every n-th tick, starting with the first.
// n <= 0 never jumps.
func JumpEvery(n int) JumpPolicy {
	if n <= 0 {
		return NeverJump
	}
	return func(s Snapshot) bool {
		return s.Tick%n == 0
	}
}

// Autopilot is a simple heuristic pilot for headless runs.
// It keeps the bird's bottom edge above the next gap's lower lip.
type Autopilot struct {
	Margin float64 // Clearance kept above the bottom section
}

// ShouldJump reports whether the bird should jump now.
// It only jumps while the bird is not rising and would sink below the target
// line on the next tick. Without a pipe ahead it aims for the field center.
func (a Autopilot) ShouldJump(s Snapshot) bool {
	if s.GameOver || s.Bird.VelocityY < 0 {
		return false
	}

	target := s.FieldH/2 + s.Bird.Size
	if p, ok := s.NextPipe(); ok {
		target = p.BottomY - a.Margin
	}
	// A large margin must not aim the bird above the ceiling
	target = core.ClampF(target, s.Bird.Size, s.FieldH)

	bottom := s.Bird.Y + s.Bird.Size
	return bottom+s.Bird.VelocityY > target
}

// Simulate drives a started session for up to maxTicks ticks, asking policy
// before each one. It stops early at game over and returns the final result.
func Simulate(s *Session, maxTicks int, policy JumpPolicy) Result {
	if policy == nil {
		policy = NeverJump
	}
	for i := 0; i < maxTicks; i++ {
		if policy(s.Snapshot()) {
			s.Jump()
		}
		if !s.Tick() {
			break
		}
	}
	return s.Result()
}
