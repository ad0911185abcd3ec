package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("config: invalid tunables")

// Validate rejects configurations that cannot produce a playable session,
// such as a pipe gap that leaves no room for a randomized top height.
// All violations are reported together.
func (t Tunables) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(t.Field.Width > 0, "field.width must be positive, got %g", t.Field.Width)
	check(t.Field.Height > 0, "field.height must be positive, got %g", t.Field.Height)

	check(t.Bird.Size > 0, "bird.size must be positive, got %g", t.Bird.Size)
	// The bird spawns with its top edge at half the field height
	check(t.Field.Height/2+t.Bird.Size <= t.Field.Height,
		"bird.size %g must fit between the spawn point and the floor of field.height %g", t.Bird.Size, t.Field.Height)
	check(t.Bird.X >= 0 && t.Bird.X+t.Bird.Size <= t.Field.Width,
		"bird.x %g must keep the bird inside the field width %g", t.Bird.X, t.Field.Width)
	check(t.Bird.JumpImpulse < 0, "bird.jump_impulse must be negative (upward), got %g", t.Bird.JumpImpulse)
	check(t.Bird.Gravity >= 0, "bird.gravity must not be negative, got %g", t.Bird.Gravity)
	check(t.Bird.MaxFallSpeed > 0, "bird.max_fall_speed must be positive, got %g", t.Bird.MaxFallSpeed)

	check(t.Pipes.Width > 0, "pipes.width must be positive, got %g", t.Pipes.Width)
	check(t.Pipes.Gap > 0, "pipes.gap must be positive, got %g", t.Pipes.Gap)
	check(t.Pipes.MinHeight >= 0, "pipes.min_height must not be negative, got %g", t.Pipes.MinHeight)
	check(t.PipeMaxHeight() >= t.Pipes.MinHeight,
		"pipes.gap %g plus two obstacles of min_height %g exceed field.height %g",
		t.Pipes.Gap, t.Pipes.MinHeight, t.Field.Height)

	check(t.Scroll.Speed > 0, "scroll.speed must be positive, got %g", t.Scroll.Speed)
	// A pipe moving further than its own width plus the bird could skip the overlap test entirely.
	check(t.Scroll.Speed < t.Pipes.Width+t.Bird.Size,
		"scroll.speed %g must be below pipes.width + bird.size (%g)", t.Scroll.Speed, t.Pipes.Width+t.Bird.Size)

	checkPeriod := func(name string, d time.Duration) {
		check(d > 0, "%s must be positive, got %s", name, d)
	}
	checkPeriod("pipes.spawn_every", t.Pipes.SpawnEvery)
	checkPeriod("clouds.spawn_every", t.Clouds.SpawnEvery)
	checkPeriod("trees.spawn_every", t.Trees.SpawnEvery)

	checkFactor := func(name string, f float64) {
		check(f > 0 && f <= 1, "%s must be in (0, 1], got %g", name, f)
	}
	checkFactor("clouds.speed_factor", t.Clouds.SpeedFactor)
	checkFactor("trees.speed_factor", t.Trees.SpeedFactor)

	check(t.Clouds.MinWidth > 0 && t.Clouds.MinWidth <= t.Clouds.MaxWidth,
		"clouds.min_width %g must be positive and not above max_width %g", t.Clouds.MinWidth, t.Clouds.MaxWidth)
	check(t.Clouds.Aspect > 0, "clouds.aspect must be positive, got %g", t.Clouds.Aspect)
	check(t.Trees.MinHeight > 0 && t.Trees.MinHeight <= t.Trees.MaxHeight,
		"trees.min_height %g must be positive and not above max_height %g", t.Trees.MinHeight, t.Trees.MaxHeight)
	check(t.Trees.Footprint > 0, "trees.footprint must be positive, got %g", t.Trees.Footprint)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
