package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultShooterConfig returns the built-in Betűfutam configuration.
func DefaultShooterConfig() GameConfig {
	return GameConfig{
		Title:    "Betűfutam",
		WordList: "hu",
		Playfield: Playfield{
			Width:   900,
			Height:  600,
			PlayerX: 450,
			PlayerY: 408, // 68% down the canvas
		},
		Spawn: Spawn{
			Cadence:        CadenceAccumulator,
			Direction:      DirectionDown,
			IntervalMS:     900,
			MinIntervalMS:  520,
			IntervalStepMS: 6,
			BaseSpeed:      120,
			MaxSpeed:       260,
			SpeedStep:      0.8,
			SpeedJitter:    60,
			X:              Range{Min: 162, Max: 738}, // central 18%..82% band
			Y:              Range{Min: -120, Max: -40},
			Initial:        true,
			InitialY:       150,
			Width:          80,
		},
		Lock: Lock{
			ForwardWeight: 0.8,
			LateralWeight: 0.6,
		},
		Shot: Shot{
			Mode:      ShotProjectile,
			Speed:     520,
			LifeMS:    900,
			HitRadius: 28,
			OriginDY:  -8,
		},
		Rules: Rules{
			MaxLives:        3,
			SuccessPoints:   1,
			CollisionLine:   true,
			CollisionOffset: 10,
			ExitMargin:      120,
		},
		Effects: Effects{
			Depth:        true,
			RevealMS:     350,
			FeedbackMS:   600,
			WrongText:    "HIBA!",
			CrashText:    "ÜTKÖZÉS!",
			Decor:        DecorStars,
			DecorEveryMS: 250,
			DecorSpeed:   Range{Min: 25, Max: 60},
			DecorLifeMS:  4000,
		},
	}
}

// DefaultRunnerConfig returns the built-in J/LY Runner configuration.
func DefaultRunnerConfig() GameConfig {
	return GameConfig{
		Title:    "J/LY Runner",
		WordList: "en",
		Playfield: Playfield{
			Width:   960,
			Height:  540,
			PlayerX: 160,
			PlayerY: 420,
		},
		Spawn: Spawn{
			Cadence:       CadenceTimer,
			Direction:     DirectionLeft,
			IntervalMS:    1200,
			MinIntervalMS: 1200,
			BaseSpeed:     420,
			MaxSpeed:      420,
			X:             Range{Min: 1000, Max: 1000},
			Y:             Range{Min: 468, Max: 468},
			Width:         32,
		},
		Lock: Lock{
			ForwardWeight: 0.8,
			LateralWeight: 0.6,
		},
		Shot: Shot{
			Mode:       ShotTween,
			TweenMS:    220,
			OriginDX:   20,
			OriginDY:   -20,
			AimOffsetY: -40,
		},
		Rules: Rules{
			MaxLives:      3,
			SuccessPoints: 10,
			ExitMargin:    32,
		},
		Effects: Effects{
			RevealMS:     600,
			FeedbackMS:   600,
			WrongText:    "Wrong choice",
			CrashText:    "Crash!",
			Decor:        DecorClouds,
			DecorEveryMS: 2400,
			DecorSpeed:   Range{Min: 60, Max: 120},
			DecorY:       Range{Min: 80, Max: 200},
			DecorWidth:   80,
			DecorAtStart: true,
		},
	}
}

// Default returns the hardcoded configuration for a variant.
func Default(variant string) (GameConfig, bool) {
	switch variant {
	case VariantShooter:
		return DefaultShooterConfig(), true
	case VariantRunner:
		return DefaultRunnerConfig(), true
	default:
		return GameConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantShooter:
		return defaultShooterYAML
	case VariantRunner:
		return defaultRunnerYAML
	default:
		return nil
	}
}
