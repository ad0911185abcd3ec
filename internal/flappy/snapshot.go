package flappy

import "slices"

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Tick     int
	Score    int
	GameOver bool
	Reason   EndReason

	FieldW float64
	FieldH float64

	Bird   Bird
	Pipes  []Pipe // Spawn order, which is also left-to-right order
	Clouds []Cloud
	Trees  []Tree
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.ticks,
		Score:    s.score,
		GameOver: s.over,
		Reason:   s.reason,
		FieldW:   s.cfg.Field.Width,
		FieldH:   s.cfg.Field.Height,
		Bird:     s.bird,
		Pipes:    slices.Clone(s.pipes),
		Clouds:   slices.Clone(s.clouds),
		Trees:    slices.Clone(s.trees),
	}
}

// NextPipe returns the first pipe whose right edge has not yet passed the bird.
func (s Snapshot) NextPipe() (Pipe, bool) {
	for _, p := range s.Pipes {
		if !p.Passed(s.Bird.X) {
			return p, true
		}
	}
	return Pipe{}, false
}
