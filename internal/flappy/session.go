// Package flappy implements the gameplay simulation: a bird falling under
// gravity through a stream of gapped pipes, with parallax scenery behind it.
//
// A Session owns the whole world. The platform layer drives it by calling
// Tick once per frame and forwarding input to Jump and RestartIfOver.
// All methods must be called from a single goroutine.
package flappy

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// EndReason records what ended a session.
type EndReason int

const (
	EndNone EndReason = iota
	EndOutOfBounds
	EndPipeCollision
)

// String returns the reason as used in logs and reports.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "none"
	case EndOutOfBounds:
		return "out_of_bounds"
	case EndPipeCollision:
		return "pipe_collision"
	default:
		return "unknown"
	}
}

// Result summarizes a finished session.
type Result struct {
	Score  int
	Ticks  int
	Reason EndReason
}

// Session is the game controller. It has two states, playing and game over.
type Session struct {
	cfg   config.Tunables
	frame time.Duration
	seed  int64
	rng   *rand.Rand
	sched *Scheduler

	pipeTimer  *Timer
	cloudTimer *Timer
	treeTimer  *Timer

	bird   Bird
	pipes  []Pipe
	clouds []Cloud
	trees  []Tree
	score  int
	over   bool
	reason EndReason
	ticks  int

	inTick        bool
	pendingNotice bool

	renderer   Renderer
	logger     *log.Logger
	onGameOver func(Result)
}

// NewSession validates the tunables and builds a session that has not been
// started yet. Invalid tunables are rejected here so a running session can
// never hit an impossible spawn range.
func NewSession(cfg config.Tunables, rt core.RuntimeConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: cannot create session: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		frame:    rt.FrameDuration(),
		seed:     rt.Seed,
		rng:      rand.New(rand.NewSource(rt.Seed)),
		sched:    NewScheduler(),
		bird:     newBird(cfg),
		pipes:    make([]Pipe, 0, 8),
		clouds:   make([]Cloud, 0, 8),
		trees:    make([]Tree, 0, 8),
		renderer: NopRenderer{},
		logger:   log.New(io.Discard),
	}
	return s, nil
}

// SetRenderer sets the draw target. nil restores the no-op renderer.
func (s *Session) SetRenderer(r Renderer) {
	if r == nil {
		r = NopRenderer{}
	}
	s.renderer = r
}

// SetLogger sets the logger. nil discards log output.
func (s *Session) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	s.logger = l
}

// OnGameOver registers a callback run once per session when it ends.
// When the session ends during Tick, the callback runs after that tick completes.
func (s *Session) OnGameOver(fn func(Result)) {
	s.onGameOver = fn
}

// Tunables returns the configuration the session was built with.
func (s *Session) Tunables() config.Tunables {
	return s.cfg
}

// Over reports whether the session is in the game-over state.
func (s *Session) Over() bool {
	return s.over
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Result returns the current score, tick count and end reason.
func (s *Session) Result() Result {
	return Result{Score: s.score, Ticks: s.ticks, Reason: s.reason}
}

// Start resets the world and begins playing.
// Timers from a previous run are stopped first, so calling Start repeatedly
// never leaves duplicate spawners behind.
func (s *Session) Start() {
	s.stopTimers()

	s.bird = newBird(s.cfg)
	s.pipes = s.pipes[:0]
	s.clouds = s.clouds[:0]
	s.trees = s.trees[:0]
	s.score = 0
	s.over = false
	s.reason = EndNone
	s.ticks = 0
	s.pendingNotice = false

	s.pipeTimer = s.sched.Every("pipe", s.cfg.Pipes.SpawnEvery, s.spawnPipe)
	s.cloudTimer = s.sched.Every("cloud", s.cfg.Clouds.SpawnEvery, s.spawnCloud)
	s.treeTimer = s.sched.Every("tree", s.cfg.Trees.SpawnEvery, s.spawnTree)

	s.logger.Info("session started", "seed", s.seed, "frame", s.frame)
	s.Redraw()
}

// End switches to game over: spawning stops, entities freeze where they are
// and the HUD is drawn once with the game-over overlay. Calling End on a
// session that is already over does nothing.
func (s *Session) End(reason EndReason) {
	if s.over {
		return
	}
	s.over = true
	s.reason = reason
	s.stopTimers()
	s.renderer.DrawHUD(s.hud())

	if s.inTick {
		s.pendingNotice = true
		return
	}
	s.notifyGameOver()
}

// RestartIfOver restarts a finished session. While playing it does nothing.
// Returns whether a restart happened.
func (s *Session) RestartIfOver() bool {
	if !s.over {
		return false
	}
	s.Start()
	return true
}

// Jump gives the bird its upward impulse. Ignored after game over.
func (s *Session) Jump() {
	if s.over {
		return
	}
	s.bird.Jump(s.cfg.Bird.JumpImpulse)
}

// Tick advances the simulation by one frame and draws it.
// Due spawn timers fire first. Layers then update back to front: clouds,
// trees, pipes, bird, HUD. A game over inside the tick does not cut the tick
// short. Returns false once the session is over; the caller must stop
// scheduling ticks until a restart.
func (s *Session) Tick() bool {
	if s.over {
		return false
	}

	s.inTick = true
	s.sched.Advance(s.frame)
	s.ticks++

	s.renderer.BeginFrame()

	s.clouds = updateLayer(s.clouds, func(c *Cloud) {
		c.Advance()
		s.renderer.DrawCloud(*c)
	})

	s.trees = updateLayer(s.trees, func(t *Tree) {
		t.Advance()
		s.renderer.DrawTree(*t)
	})

	s.pipes = updateLayer(s.pipes, func(p *Pipe) {
		p.Advance(s.cfg.Scroll.Speed)
		s.renderer.DrawPipe(*p)

		if p.CollidesWith(s.bird.Box(), s.cfg.Field.Height) {
			s.End(EndPipeCollision)
		}
		if p.MaybeScore(s.bird.X) {
			s.score++
		}
	})

	s.bird.Fall(s.cfg.Bird.Gravity, s.cfg.Bird.MaxFallSpeed)
	if s.bird.OutOfBounds(s.cfg.Field.Height) {
		s.End(EndOutOfBounds)
	}
	s.renderer.DrawBird(s.bird)
	s.renderer.DrawHUD(s.hud())

	s.inTick = false
	if s.pendingNotice {
		s.pendingNotice = false
		s.notifyGameOver()
	}
	return !s.over
}

// Redraw renders the current state without advancing it.
func (s *Session) Redraw() {
	s.renderer.BeginFrame()
	for _, c := range s.clouds {
		s.renderer.DrawCloud(c)
	}
	for _, t := range s.trees {
		s.renderer.DrawTree(t)
	}
	for _, p := range s.pipes {
		s.renderer.DrawPipe(p)
	}
	s.renderer.DrawBird(s.bird)
	s.renderer.DrawHUD(s.hud())
}

func (s *Session) hud() HUD {
	return HUD{Score: s.score, GameOver: s.over}
}

func (s *Session) notifyGameOver() {
	res := s.Result()
	s.logger.Info("game over", "score", res.Score, "reason", res.Reason, "tick", res.Ticks)
	if s.onGameOver != nil {
		s.onGameOver(res)
	}
}

func (s *Session) stopTimers() {
	s.pipeTimer.Stop()
	s.cloudTimer.Stop()
	s.treeTimer.Stop()
}

func (s *Session) spawnPipe() {
	top := spawnTopHeight(s.rng, s.cfg.Pipes.MinHeight, s.cfg.PipeMaxHeight())
	s.pipes = append(s.pipes, NewPipe(s.cfg.Field.Width, top, s.cfg.Pipes.Gap, s.cfg.Pipes.Width))
	s.logger.Debug("pipe spawned", "top", top, "tick", s.ticks)
}

func (s *Session) spawnCloud() {
	c := s.cfg.Clouds
	y := s.rng.Float64()*(s.cfg.Field.Height/2-c.BandPadding) + c.MinY
	w := s.rng.Float64()*(c.MaxWidth-c.MinWidth) + c.MinWidth
	s.clouds = append(s.clouds, Cloud{
		X:      s.cfg.Field.Width,
		Y:      y,
		Width:  w,
		Height: w * c.Aspect,
		Speed:  s.cfg.CloudSpeed(),
	})
}

func (s *Session) spawnTree() {
	t := s.cfg.Trees
	h := s.rng.Float64()*(t.MaxHeight-t.MinHeight) + t.MinHeight
	s.trees = append(s.trees, Tree{
		X:            s.cfg.Field.Width,
		BaseY:        s.cfg.Field.Height,
		Height:       h,
		Speed:        s.cfg.TreeSpeed(),
		Footprint:    t.Footprint,
		TrunkWidth:   t.TrunkWidth,
		CanopyRadius: t.CanopyRadius,
	})
}
