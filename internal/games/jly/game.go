// Package jly implements the two J/LY spelling arcade games: the top-down
// shooter ("Betűfutam") and the side-scrolling runner ("J/LY Runner").
// Both wrap a sim.State and draw its sprite table into a core.Screen.
package jly

import (
	"fmt"
	"time"

	"github.com/vovakirdan/jly-arcade/internal/config"
	"github.com/vovakirdan/jly-arcade/internal/core"
	"github.com/vovakirdan/jly-arcade/internal/registry"
	"github.com/vovakirdan/jly-arcade/internal/sim"
	"github.com/vovakirdan/jly-arcade/internal/words"
)

// configPaths stores custom config paths set via CLI, per variant
var configPaths = map[string]string{}

// wordListOverride replaces the configured word list when set
var wordListOverride string

// SetConfigPath sets the custom config path for a variant.
func SetConfigPath(variant, path string) {
	configPaths[variant] = path
}

// SetWordList forces every variant to use the named word list.
func SetWordList(name string) {
	wordListOverride = name
}

// Game implements registry.Game for one J/LY variant.
type Game struct {
	variant string
	title   string
	runtime core.RuntimeConfig
	cfg     config.GameConfig
	text    texts
	state   *sim.State
	sprites *Sprites
	dt      time.Duration // simulation time per Step
	paused  bool
	warns   []error // config or word list problems hit during Reset
}

// New creates a game for the given variant ("shooter" or "runner").
func New(variant string) *Game {
	cfg, _ := config.Default(variant)
	return &Game{
		variant: variant,
		title:   cfg.Title,
		cfg:     cfg,
		text:    textsFor(variant),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the variant config and word list and starts a fresh round.
// Problems with a custom config or word list fall back to the built-in
// defaults and are reported by Warnings.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.warns = nil

	// Load game config
	cfg, err := config.Load(g.variant, configPaths[g.variant])
	if err != nil {
		g.warns = append(g.warns, err)
		cfg, _ = config.Default(g.variant)
	}

	bank, err := g.loadBank(cfg)
	if err != nil {
		g.warns = append(g.warns, err)
	}

	g.cfg = cfg
	g.title = cfg.Title
	g.sprites = NewSprites()
	g.state, err = sim.New(cfg, bank, g.sprites, runtime.Seed)
	if err != nil {
		// Only reachable with a broken built-in default.
		panic(fmt.Sprintf("jly: %s: %v", g.variant, err))
	}

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.dt = time.Second / time.Duration(tickRate)
}

// loadBank loads the word list, falling back to the config's own list.
func (g *Game) loadBank(cfg config.GameConfig) (*words.Bank, error) {
	name := cfg.WordList
	if wordListOverride != "" {
		name = wordListOverride
	}
	bank, err := words.Load(name)
	if err == nil {
		return bank, nil
	}
	fallback, ferr := words.Load(cfg.WordList)
	if ferr != nil {
		fallback, _ = words.Load(defaultWordList(g.variant))
	}
	return fallback, err
}

// defaultWordList is the list shipped with each variant.
func defaultWordList(variant string) string {
	cfg, _ := config.Default(variant)
	return cfg.WordList
}

// Warnings returns the problems hit by the last Reset, if any.
func (g *Game) Warnings() []error {
	return g.warns
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.GameOver() {
		// Space (repeat) or R starts a new round
		if in.Has(core.ActionRestart) || in.Has(core.ActionRepeat) {
			g.state.Restart()
			g.paused = false
		}
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return g.result()
	}

	// Inputs land before the frame advances, in arrival order
	for _, a := range in.Actions {
		if a == core.ActionRestart || a == core.ActionPause {
			continue
		}
		g.state.HandleInput(a)
	}

	g.state.Tick(g.dt)
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.state.Events()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		Lives:    g.state.Lives(),
		GameOver: g.state.GameOver(),
		Paused:   g.paused,
	}
}

// RoundStats returns the statistics of the current round.
func (g *Game) RoundStats() core.RoundStats {
	st := g.state.Stats()
	return core.RoundStats{
		Score:      g.state.Score(),
		Hits:       st.Hits,
		Wrong:      st.Wrong,
		Collisions: st.Collisions,
		Escaped:    st.Escaped,
		Shots:      st.Shots,
		Duration:   st.Elapsed,
	}
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *sim.State {
	return g.state
}

// Register both variants with the registry
func init() {
	for _, variant := range []string{config.VariantShooter, config.VariantRunner} {
		registry.Register(variant, func() registry.Game {
			return New(variant)
		})
	}
}
