package flappy

// HUD is the heads-up display state drawn on top of every frame.
type HUD struct {
	Score    int
	GameOver bool
}

// Renderer receives the world once per tick, back to front.
// Entities are passed by value; a renderer cannot mutate the simulation.
type Renderer interface {
	BeginFrame()
	DrawCloud(c Cloud)
	DrawTree(t Tree)
	DrawPipe(p Pipe)
	DrawBird(b Bird)
	DrawHUD(h HUD)
}

// NopRenderer discards every draw call. Used for headless runs.
type NopRenderer struct{}

func (NopRenderer) BeginFrame()     {}
func (NopRenderer) DrawCloud(Cloud) {}
func (NopRenderer) DrawTree(Tree)   {}
func (NopRenderer) DrawPipe(Pipe)   {}
func (NopRenderer) DrawBird(Bird)   {}
func (NopRenderer) DrawHUD(HUD)     {}
