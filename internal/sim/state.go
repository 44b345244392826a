package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/jly-arcade/internal/config"
	"github.com/vovakirdan/jly-arcade/internal/core"
	"github.com/vovakirdan/jly-arcade/internal/words"
)

// State is one running J/LY game.
type State struct {
	cfg   config.GameConfig
	bank  *words.Bank
	vis   Visuals
	rng   *rand.Rand
	sched *Scheduler
	ramp  *config.Ramp

	obstacles []*Obstacle
	shots     []*Shot
	decor     []*Decoration
	lock      ID
	nextID    ID

	score      int
	lives      int
	lastChoice words.Choice
	phase      Phase
	spawnAcc   time.Duration
	stats      Stats
	events     []core.Event
}

// New creates a game and starts its first round. A nil vis discards visuals.
func New(cfg config.GameConfig, bank *words.Bank, vis Visuals, seed int64) (*State, error) {
	if bank == nil {
		return nil, errors.New("sim: word bank is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if vis == nil {
		vis = &NopVisuals{}
	}

	s := &State{
		cfg:   cfg,
		bank:  bank,
		vis:   vis,
		rng:   rand.New(rand.NewSource(seed)),
		sched: NewScheduler(),
		ramp:  config.NewRamp(cfg.Spawn),
	}
	s.reset()
	return s, nil
}

// Restart clears every entity and timer, restores full lives and zero score,
// and starts a new round. Callbacks scheduled before the restart never run.
// The RNG is not reseeded, so consecutive rounds differ while a whole session
// stays reproducible from its seed.
func (s *State) Restart() {
	for _, o := range s.obstacles {
		if !o.Resolved {
			s.vis.Destroy(o.Handle)
		}
	}
	for _, sh := range s.shots {
		s.vis.Destroy(sh.Handle)
	}
	for _, d := range s.decor {
		s.vis.Destroy(d.Handle)
	}
	s.reset()
	s.emit(EventRestart, "generation", s.sched.Generation())
}

func (s *State) reset() {
	s.obstacles = nil
	s.shots = nil
	s.decor = nil
	s.lock = 0
	s.score = 0
	s.lives = s.cfg.Rules.MaxLives
	s.lastChoice = words.ChoiceNone
	s.phase = PhasePlaying
	s.spawnAcc = 0
	s.stats = Stats{}
	s.sched.Reset()
	s.ramp.Reset()
	s.startSpawner()
	s.startDecor()
}

// Tick advances the simulation by dt. Order within a frame: deferred
// callbacks, spawning, movement and reaping, lock refresh, shot hits.
// Nothing moves once the game is over.
func (s *State) Tick(dt time.Duration) {
	if s.phase == PhaseGameOver || dt <= 0 {
		return
	}
	s.stats.Elapsed += dt
	s.stats.Distance += s.ramp.Speed() * dt.Seconds()

	s.sched.Advance(dt)
	if s.phase == PhaseGameOver {
		return
	}
	s.spawnTick(dt)
	s.advance(dt)
	if s.phase == PhaseGameOver {
		return
	}
	s.RefreshLock()
	s.checkHits()
}

// HandleInput applies one player action. Actions the core does not know
// are ignored.
func (s *State) HandleInput(a core.Action) {
	switch a {
	case core.ActionFireJ, core.ActionTapLeft:
		s.Fire(words.ChoiceJ)
	case core.ActionFireLy, core.ActionTapRight:
		s.Fire(words.ChoiceLY)
	case core.ActionRepeat:
		s.RepeatLast()
	case core.ActionCycleLeft:
		s.CycleLock(-1)
	case core.ActionCycleRight:
		s.CycleLock(1)
	case core.ActionRestart:
		s.Restart()
	}
}

// Events returns and clears the events recorded since the last call.
func (s *State) Events() []core.Event {
	ev := s.events
	s.events = nil
	return ev
}

func (s *State) emit(name string, attrs ...any) {
	s.events = append(s.events, core.Event{Name: name, Attrs: attrs})
}

func (s *State) newID() ID {
	s.nextID++
	return s.nextID
}

// gameOver enters the terminal phase. Callbacks still due in this frame
// are not run.
func (s *State) gameOver() {
	if s.phase == PhaseGameOver {
		return
	}
	s.phase = PhaseGameOver
	s.sched.Halt()
	s.emit(EventGameOver, "score", s.score, "hits", s.stats.Hits)
}

// Score returns the current score.
func (s *State) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *State) Lives() int { return s.lives }

// MaxLives returns the lives a round starts with.
func (s *State) MaxLives() int { return s.cfg.Rules.MaxLives }

// Phase returns the game phase.
func (s *State) Phase() Phase { return s.phase }

// GameOver reports whether the game has ended.
func (s *State) GameOver() bool { return s.phase == PhaseGameOver }

// LastChoice returns the most recently fired choice, or ChoiceNone.
func (s *State) LastChoice() words.Choice { return s.lastChoice }

// Stats returns the round statistics.
func (s *State) Stats() Stats { return s.stats }

// Config returns the variant configuration.
func (s *State) Config() config.GameConfig { return s.cfg }

// Generation returns the restart generation.
func (s *State) Generation() uint64 { return s.sched.Generation() }

// Level returns the difficulty ramp progress (0..1).
func (s *State) Level() float64 { return s.ramp.Level() }

// Player returns the player's position.
func (s *State) Player() core.Vec {
	return core.V(s.cfg.Playfield.PlayerX, s.cfg.Playfield.PlayerY)
}

// Obstacles returns copies of the live obstacles in spawn order.
func (s *State) Obstacles() []Obstacle {
	out := make([]Obstacle, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		if !o.Resolved {
			out = append(out, *o)
		}
	}
	return out
}

// Shots returns copies of the live shots.
func (s *State) Shots() []Shot {
	out := make([]Shot, len(s.shots))
	for i, sh := range s.shots {
		out[i] = *sh
	}
	return out
}

// Decorations returns copies of the live decorations.
func (s *State) Decorations() []Decoration {
	out := make([]Decoration, len(s.decor))
	for i, d := range s.decor {
		out[i] = *d
	}
	return out
}

// Obstacle returns a copy of the live, unresolved obstacle with the given ID.
func (s *State) Obstacle(id ID) (Obstacle, bool) {
	o := s.obstacle(id)
	if o == nil {
		return Obstacle{}, false
	}
	return *o, true
}

// obstacle looks up a live, unresolved obstacle.
func (s *State) obstacle(id ID) *Obstacle {
	if id == 0 {
		return nil
	}
	for _, o := range s.obstacles {
		if o.ID == id && !o.Resolved {
			return o
		}
	}
	return nil
}

func (s *State) shot(id ID) *Shot {
	for _, sh := range s.shots {
		if sh.ID == id {
			return sh
		}
	}
	return nil
}

func (s *State) decoration(id ID) *Decoration {
	for _, d := range s.decor {
		if d.ID == id {
			return d
		}
	}
	return nil
}
