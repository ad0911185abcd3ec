package flappy

import "testing"

func TestJumpEvery(t *testing.T) {
	policy := JumpEvery(3)
	var jumps []int
	for tick := 0; tick < 7; tick++ {
		if policy(Snapshot{Tick: tick}) {
			jumps = append(jumps, tick)
		}
	}
	if len(jumps) != 3 || jumps[0] != 0 || jumps[1] != 3 || jumps[2] != 6 {
		t.Errorf("JumpEvery(3) jumped on %v, expected [0 3 6]", jumps)
	}

	for _, n := range []int{0, -1} {
		if JumpEvery(n)(Snapshot{}) {
			t.Errorf("JumpEvery(%d) should never jump", n)
		}
	}
}

func TestAutopilotShouldJump(t *testing.T) {
	ahead := NewPipe(300, 100, 150, 50) // Bottom section starts at 250
	passed := NewPipe(-10, 50, 50, 50)  // Bottom section at 100, already behind the bird

	tests := []struct {
		name string
		snap Snapshot
		want bool
	}{
		{
			name: "game over",
			snap: Snapshot{GameOver: true, FieldH: 400, Bird: Bird{X: 50, Y: 380, VelocityY: 5, Size: 30}},
			want: false,
		},
		{
			name: "rising",
			snap: Snapshot{FieldH: 400, Bird: Bird{X: 50, Y: 380, VelocityY: -1, Size: 30}},
			want: false,
		},
		{
			name: "no pipe, at center line",
			snap: Snapshot{FieldH: 400, Bird: Bird{X: 50, Y: 200, Size: 30}},
			want: false,
		},
		{
			name: "no pipe, sinking below center",
			snap: Snapshot{FieldH: 400, Bird: Bird{X: 50, Y: 205, VelocityY: 1, Size: 30}},
			want: true,
		},
		{
			name: "pipe ahead, clear of lip",
			snap: Snapshot{FieldH: 400, Bird: Bird{X: 50, Y: 205, VelocityY: 2, Size: 30}, Pipes: []Pipe{ahead}},
			want: false,
		},
		{
			name: "pipe ahead, about to hit lip",
			snap: Snapshot{FieldH: 400, Bird: Bird{X: 50, Y: 205, VelocityY: 6, Size: 30}, Pipes: []Pipe{ahead}},
			want: true,
		},
		{
			name: "passed pipe ignored",
			snap: Snapshot{FieldH: 400, Bird: Bird{X: 50, Y: 205, VelocityY: 2, Size: 30}, Pipes: []Pipe{passed, ahead}},
			want: false,
		},
	}

	pilot := Autopilot{Margin: 10}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pilot.ShouldJump(tt.snap); got != tt.want {
				t.Errorf("ShouldJump() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestAutopilotTargetStaysInField(t *testing.T) {
	// A 200-unit margin would put the target line above the ceiling
	pilot := Autopilot{Margin: 200}
	snap := Snapshot{FieldH: 400, Bird: Bird{X: 50, Y: 0, Size: 30}, Pipes: []Pipe{NewPipe(300, 50, 50, 50)}}

	if pilot.ShouldJump(snap) {
		t.Error("bird touching the ceiling should not be told to jump")
	}
}

func TestSimulateNeverJump(t *testing.T) {
	s := newTestSession(t, nil)
	res := Simulate(s, 1000, NeverJump)

	expected := Result{Score: 0, Ticks: 29, Reason: EndOutOfBounds}
	if res != expected {
		t.Errorf("Simulate() = %+v, expected %+v", res, expected)
	}
}

func TestSimulateStopsAtMaxTicks(t *testing.T) {
	s := newTestSession(t, nil)
	res := Simulate(s, 10, nil)

	if res.Ticks != 10 || res.Reason != EndNone {
		t.Errorf("Simulate() = %+v, expected 10 ticks still playing", res)
	}
}

func TestAutopilotOutlivesFreeFall(t *testing.T) {
	s := newTestSession(t, nil)
	res := Simulate(s, 400, Autopilot{Margin: 10}.ShouldJump)

	if res.Ticks <= 100 {
		t.Errorf("autopilot should keep the bird up past the first pipe spawn, ended at %+v", res)
	}
}
