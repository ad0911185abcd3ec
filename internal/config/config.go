// Package config provides the gameplay tunables and their YAML loading.
package config

import "time"

// Tunables contains every constant that defines gameplay feel.
// All lengths are in field units and all speeds are in field units per tick.
type Tunables struct {
	Field  FieldConfig  `yaml:"field"`
	Bird   BirdConfig   `yaml:"bird"`
	Pipes  PipeConfig   `yaml:"pipes"`
	Scroll ScrollConfig `yaml:"scroll"`
	Clouds CloudConfig  `yaml:"clouds"`
	Trees  TreeConfig   `yaml:"trees"`
}

// FieldConfig defines the playing field dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the avatar's geometry and physics.
type BirdConfig struct {
	X            float64 `yaml:"x"`    // Fixed horizontal offset of the left edge
	Size         float64 `yaml:"size"` // Side of the square bounding box
	JumpImpulse  float64 `yaml:"jump_impulse"`
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// PipeConfig defines obstacle geometry and the spawn period.
type PipeConfig struct {
	Width      float64       `yaml:"width"`
	Gap        float64       `yaml:"gap"`
	MinHeight  float64       `yaml:"min_height"` // Minimum height of either obstacle
	SpawnEvery time.Duration `yaml:"spawn_every"`
}

// ScrollConfig defines the global horizontal scroll.
type ScrollConfig struct {
	Speed float64 `yaml:"speed"`
}

// CloudConfig defines background cloud spawning.
type CloudConfig struct {
	SpawnEvery  time.Duration `yaml:"spawn_every"`
	SpeedFactor float64       `yaml:"speed_factor"` // Fraction of the scroll speed
	MinWidth    float64       `yaml:"min_width"`
	MaxWidth    float64       `yaml:"max_width"`
	Aspect      float64       `yaml:"aspect"`       // Height as a fraction of width
	MinY        float64       `yaml:"min_y"`        // Highest spawn position
	BandPadding float64       `yaml:"band_padding"` // Keeps clouds above the middle of the field
}

// TreeConfig defines midground tree spawning.
type TreeConfig struct {
	SpawnEvery   time.Duration `yaml:"spawn_every"`
	SpeedFactor  float64       `yaml:"speed_factor"`
	MinHeight    float64       `yaml:"min_height"`
	MaxHeight    float64       `yaml:"max_height"`
	Footprint    float64       `yaml:"footprint"` // Width used for the off-screen check
	TrunkWidth   float64       `yaml:"trunk_width"`
	CanopyRadius float64       `yaml:"canopy_radius"`
}

// PipeMaxHeight returns the largest top-obstacle height a spawn may draw.
// It leaves room for the gap and a minimum-height bottom obstacle.
func (t Tunables) PipeMaxHeight() float64 {
	return t.Field.Height - t.Pipes.Gap - t.Pipes.MinHeight
}

// CloudSpeed returns the per-tick speed of clouds.
func (t Tunables) CloudSpeed() float64 {
	return t.Scroll.Speed * t.Clouds.SpeedFactor
}

// TreeSpeed returns the per-tick speed of trees.
func (t Tunables) TreeSpeed() float64 {
	return t.Scroll.Speed * t.Trees.SpeedFactor
}
