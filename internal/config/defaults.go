package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default gameplay tunables.
const (
	FieldWidth  = 800.0
	FieldHeight = 400.0

	BirdX            = 50.0
	BirdSize         = 30.0
	BirdJump         = -7.0 // Negative is up
	Gravity          = 0.4
	MaxFallSpeed     = 10.0
	PipeWidth        = 50.0
	PipeGap          = 150.0
	PipeMinHeight    = 50.0
	ScrollSpeed      = 3.0
	PipeSpawnEvery   = 1500 * time.Millisecond
	CloudSpawnEvery  = 3000 * time.Millisecond
	TreeSpawnEvery   = 2000 * time.Millisecond
	CloudSpeedFactor = 0.5
	TreeSpeedFactor  = 0.8
)

// DefaultTunables returns the built-in gameplay configuration.
func DefaultTunables() Tunables {
	return Tunables{
		Field: FieldConfig{
			Width:  FieldWidth,
			Height: FieldHeight,
		},
		Bird: BirdConfig{
			X:            BirdX,
			Size:         BirdSize,
			JumpImpulse:  BirdJump,
			Gravity:      Gravity,
			MaxFallSpeed: MaxFallSpeed,
		},
		Pipes: PipeConfig{
			Width:      PipeWidth,
			Gap:        PipeGap,
			MinHeight:  PipeMinHeight,
			SpawnEvery: PipeSpawnEvery,
		},
		Scroll: ScrollConfig{
			Speed: ScrollSpeed,
		},
		Clouds: CloudConfig{
			SpawnEvery:  CloudSpawnEvery,
			SpeedFactor: CloudSpeedFactor,
			MinWidth:    60,
			MaxWidth:    100,
			Aspect:      0.6,
			MinY:        20,
			BandPadding: 50,
		},
		Trees: TreeConfig{
			SpawnEvery:   TreeSpawnEvery,
			SpeedFactor:  TreeSpeedFactor,
			MinHeight:    50,
			MaxHeight:    100,
			Footprint:    50,
			TrunkWidth:   15,
			CanopyRadius: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
