// Package config provides YAML-based game configuration loading and the
// spawn ramp for the J/LY games.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Variant names.
const (
	VariantShooter = "shooter"
	VariantRunner  = "runner"
)

// Travel directions for obstacles.
const (
	DirectionDown = "down" // top-down: obstacles fall towards the ship
	DirectionLeft = "left" // side-scroller: obstacles scroll towards the runner
)

// Shot modes.
const (
	ShotProjectile = "projectile" // free-flying bullet, hits whatever it touches
	ShotTween      = "tween"      // label animated onto the locked obstacle
)

// Spawn cadence modes.
const (
	CadenceAccumulator = "accumulator" // dt accumulated against a shrinking interval
	CadenceTimer       = "timer"       // fixed repeating timer
)

// Decoration kinds.
const (
	DecorStars  = "stars"
	DecorClouds = "clouds"
)

// GameConfig contains all configuration for one J/LY variant.
type GameConfig struct {
	Title     string    `yaml:"title"`
	WordList  string    `yaml:"word_list"`
	Playfield Playfield `yaml:"playfield"`
	Spawn     Spawn     `yaml:"spawn"`
	Lock      Lock      `yaml:"lock"`
	Shot      Shot      `yaml:"shot"`
	Rules     Rules     `yaml:"rules"`
	Effects   Effects   `yaml:"effects"`
}

// Playfield defines the world size and the player's fixed position, in world units.
type Playfield struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	PlayerX float64 `yaml:"player_x"`
	PlayerY float64 `yaml:"player_y"`
}

// Range is an inclusive [min, max] interval.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Spawn defines obstacle creation and the difficulty ramp.
type Spawn struct {
	Cadence        string  `yaml:"cadence"`
	Direction      string  `yaml:"direction"`
	IntervalMS     int     `yaml:"interval_ms"`
	MinIntervalMS  int     `yaml:"min_interval_ms"`
	IntervalStepMS int     `yaml:"interval_step_ms"`
	BaseSpeed      float64 `yaml:"base_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	SpeedStep      float64 `yaml:"speed_step"`
	SpeedJitter    int     `yaml:"speed_jitter"`
	X              Range   `yaml:"x"`
	Y              Range   `yaml:"y"`
	Initial        bool    `yaml:"initial"`   // spawn one obstacle at start
	InitialY       float64 `yaml:"initial_y"` // y of the initial obstacle
	Width          float64 `yaml:"width"`     // obstacle size, used for off-field checks
}

// Lock defines the weights of the target scoring function.
type Lock struct {
	ForwardWeight float64 `yaml:"forward_weight"`
	LateralWeight float64 `yaml:"lateral_weight"`
}

// Shot defines how fired choices travel.
type Shot struct {
	Mode       string  `yaml:"mode"`
	Speed      float64 `yaml:"speed"`
	LifeMS     int     `yaml:"life_ms"`
	HitRadius  float64 `yaml:"hit_radius"`
	TweenMS    int     `yaml:"tween_ms"`
	OriginDX   float64 `yaml:"origin_dx"`
	OriginDY   float64 `yaml:"origin_dy"`
	AimOffsetY float64 `yaml:"aim_offset_y"` // tween lands this far from the obstacle center
}

// Rules defines scoring, lives and removal lines.
type Rules struct {
	MaxLives        int     `yaml:"max_lives"`
	SuccessPoints   int     `yaml:"success_points"`
	CollisionLine   bool    `yaml:"collision_line"`
	CollisionOffset float64 `yaml:"collision_offset"`
	ExitMargin      float64 `yaml:"exit_margin"`
}

// Effects defines purely cosmetic behavior.
type Effects struct {
	Depth        bool    `yaml:"depth"` // fake 3D scale/alpha ramp
	RevealMS     int     `yaml:"reveal_ms"`
	FeedbackMS   int     `yaml:"feedback_ms"`
	WrongText    string  `yaml:"wrong_text"`
	CrashText    string  `yaml:"crash_text"`
	Decor        string  `yaml:"decor"`
	DecorEveryMS int     `yaml:"decor_every_ms"`
	DecorSpeed   Range   `yaml:"decor_speed"`
	DecorY       Range   `yaml:"decor_y"`
	DecorLifeMS  int     `yaml:"decor_life_ms"`
	DecorWidth   float64 `yaml:"decor_width"`
	DecorAtStart bool    `yaml:"decor_at_start"`
}

// Millis converts a millisecond count from the YAML into a Duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Validate checks that the configuration is internally consistent.
func (c GameConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		add("playfield must have a positive size")
	}

	s := c.Spawn
	if s.Cadence != CadenceAccumulator && s.Cadence != CadenceTimer {
		add("spawn.cadence %q is not %q or %q", s.Cadence, CadenceAccumulator, CadenceTimer)
	}
	if s.Direction != DirectionDown && s.Direction != DirectionLeft {
		add("spawn.direction %q is not %q or %q", s.Direction, DirectionDown, DirectionLeft)
	}
	if s.IntervalMS <= 0 {
		add("spawn.interval_ms must be positive")
	}
	if s.MinIntervalMS <= 0 || s.MinIntervalMS > s.IntervalMS {
		add("spawn.min_interval_ms must be in (0, interval_ms]")
	}
	if s.IntervalStepMS < 0 || s.SpeedStep < 0 || s.SpeedJitter < 0 {
		add("spawn ramp steps and jitter must not be negative")
	}
	if s.BaseSpeed <= 0 || s.MaxSpeed < s.BaseSpeed {
		add("spawn speeds need 0 < base_speed <= max_speed")
	}
	if s.X.Min > s.X.Max || s.Y.Min > s.Y.Max {
		add("spawn ranges need min <= max")
	}

	switch c.Shot.Mode {
	case ShotProjectile:
		if c.Shot.Speed <= 0 || c.Shot.LifeMS <= 0 || c.Shot.HitRadius <= 0 {
			add("projectile shots need positive speed, life_ms and hit_radius")
		}
	case ShotTween:
		if c.Shot.TweenMS <= 0 {
			add("tween shots need a positive tween_ms")
		}
	default:
		add("shot.mode %q is not %q or %q", c.Shot.Mode, ShotProjectile, ShotTween)
	}

	if c.Rules.MaxLives <= 0 {
		add("rules.max_lives must be positive")
	}
	if c.Rules.SuccessPoints <= 0 {
		add("rules.success_points must be positive")
	}
	if c.Lock.ForwardWeight < 0 || c.Lock.LateralWeight < 0 {
		add("lock weights must not be negative")
	}

	switch c.Effects.Decor {
	case DecorStars:
		// Stars are only ever removed when their life runs out.
		if c.Effects.DecorLifeMS <= 0 {
			add("effects.decor_life_ms must be positive for %q", DecorStars)
		}
	case "", DecorClouds:
	default:
		add("effects.decor %q is not %q or %q", c.Effects.Decor, DecorStars, DecorClouds)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid %q config: %w", c.Title, errors.Join(errs...))
	}
	return nil
}
