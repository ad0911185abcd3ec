package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// newTestSession builds a started session from the default tunables,
// optionally adjusted by mutate.
func newTestSession(t *testing.T, mutate func(*config.Tunables)) *Session {
	t.Helper()

	cfg := config.DefaultTunables()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := NewSession(cfg, core.RuntimeConfig{TickRate: 60, Seed: 42})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	s.Start()
	return s
}

// hover disables gravity so the bird stays where it is placed.
func hover(c *config.Tunables) {
	c.Bird.Gravity = 0
}

// recorder is a Renderer that logs the order of draw calls.
type recorder struct {
	calls  []string
	clouds []Cloud
	huds   []HUD
}

func (r *recorder) BeginFrame()   { r.calls = append(r.calls, "begin") }
func (r *recorder) DrawTree(Tree) { r.calls = append(r.calls, "tree") }
func (r *recorder) DrawPipe(Pipe) { r.calls = append(r.calls, "pipe") }
func (r *recorder) DrawBird(Bird) { r.calls = append(r.calls, "bird") }

func (r *recorder) DrawCloud(c Cloud) {
	r.calls = append(r.calls, "cloud")
	r.clouds = append(r.clouds, c)
}

func (r *recorder) DrawHUD(h HUD) {
	r.calls = append(r.calls, "hud")
	r.huds = append(r.huds, h)
}
