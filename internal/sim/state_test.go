package sim

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/jly-arcade/internal/config"
	"github.com/vovakirdan/jly-arcade/internal/core"
	"github.com/vovakirdan/jly-arcade/internal/words"
)

const frame = 16 * time.Millisecond

// shooterConfig is the shooter with obstacles spawning straight above the
// ship at a fixed speed and no timed spawns getting in the way.
func shooterConfig() config.GameConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Spawn.X = config.Range{Min: 450, Max: 450}
	cfg.Spawn.SpeedJitter = 0
	cfg.Spawn.IntervalMS = 60000
	cfg.Spawn.MinIntervalMS = 60000
	cfg.Effects.Decor = ""
	return cfg
}

func golyo(t *testing.T) *words.Bank {
	t.Helper()
	bank, err := words.New("test", "⟦⚡⟧", []words.Entry{{Word: "golyó", Choice: words.ChoiceLY}})
	if err != nil {
		t.Fatal(err)
	}
	return bank
}

func enjoy(t *testing.T) *words.Bank {
	t.Helper()
	bank, err := words.New("test", "⚡", []words.Entry{{Word: "enjoy", Choice: words.ChoiceJ}})
	if err != nil {
		t.Fatal(err)
	}
	return bank
}

func newState(t *testing.T, cfg config.GameConfig, bank *words.Bank) (*State, *recorder) {
	t.Helper()
	rec := newRecorder()
	s, err := New(cfg, bank, rec, 1)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s, rec
}

// run ticks the state in fixed frames for at least d.
func run(s *State, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		s.Tick(frame)
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(shooterConfig(), nil, nil, 1); err == nil {
		t.Error("New without a bank should fail")
	}

	cfg := shooterConfig()
	cfg.Shot.Mode = "laser"
	if _, err := New(cfg, golyo(t), nil, 1); err == nil {
		t.Error("New with an invalid config should fail")
	}
}

func TestShooterStartsWithOneObstacle(t *testing.T) {
	s, rec := newState(t, shooterConfig(), golyo(t))

	obs := s.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected the initial obstacle, got %d", len(obs))
	}
	if obs[0].Pos.Y != 150 {
		t.Errorf("initial obstacle y = %f, expected 150", obs[0].Pos.Y)
	}
	if obs[0].Masked != "go⟦⚡⟧ó" {
		t.Errorf("masked = %q", obs[0].Masked)
	}
	if got := rec.labels(KindObstacle); !slices.Equal(got, []string{"go⟦⚡⟧ó"}) {
		t.Errorf("visual labels = %v", got)
	}
	if s.Lives() != 3 || s.Score() != 0 {
		t.Errorf("start lives=%d score=%d", s.Lives(), s.Score())
	}
}

func TestCorrectChoiceScores(t *testing.T) {
	s, rec := newState(t, shooterConfig(), golyo(t))
	target := s.Obstacles()[0]

	if !s.Fire(words.ChoiceLY) {
		t.Fatal("Fire() with a live target should spawn a shot")
	}
	run(s, 500*time.Millisecond)

	if s.Score() != 1 {
		t.Errorf("score = %d, expected 1", s.Score())
	}
	if s.Lives() != 3 {
		t.Errorf("lives = %d, expected 3", s.Lives())
	}
	if _, ok := s.Obstacle(target.ID); ok {
		t.Error("hit obstacle should be resolved and gone")
	}
	if rec.tokens[target.Handle].destroyed != 1 {
		t.Errorf("obstacle visual destroyed %d times", rec.tokens[target.Handle].destroyed)
	}
	if len(s.Shots()) != 0 {
		t.Errorf("shot should be consumed, %d left", len(s.Shots()))
	}
	if got := rec.labels(KindFlash); !slices.Equal(got, []string{"golyó"}) {
		t.Errorf("flash labels = %v, expected the completed word", got)
	}
	if s.Stats().Hits != 1 {
		t.Errorf("hits = %d", s.Stats().Hits)
	}
	rec.check(t)
}

func TestWrongChoiceCostsALife(t *testing.T) {
	s, rec := newState(t, shooterConfig(), golyo(t))
	target := s.Obstacles()[0]

	s.Fire(words.ChoiceJ)
	run(s, 500*time.Millisecond)

	if s.Lives() != 2 {
		t.Errorf("lives = %d, expected 2", s.Lives())
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, expected 0", s.Score())
	}
	if _, ok := s.Obstacle(target.ID); ok {
		t.Error("wrongly answered obstacle should be resolved")
	}
	if got := rec.labels(KindFeedback); !slices.Equal(got, []string{"HIBA!"}) {
		t.Errorf("feedback = %v", got)
	}
	rec.check(t)
}

func TestGameOverBlocksFiring(t *testing.T) {
	cfg := shooterConfig()
	cfg.Rules.MaxLives = 1
	s, rec := newState(t, cfg, golyo(t))

	s.Fire(words.ChoiceJ)
	run(s, 500*time.Millisecond)

	if !s.GameOver() || s.Lives() != 0 {
		t.Fatalf("expected game over with 0 lives, got over=%v lives=%d", s.GameOver(), s.Lives())
	}

	s.spawnObstacle(false)
	if len(s.Obstacles()) != 0 {
		t.Error("nothing should spawn after game over")
	}
	created := rec.next
	if s.Fire(words.ChoiceLY) || s.RepeatLast() {
		t.Error("firing after game over should be a no-op")
	}
	run(s, time.Second)
	if rec.next != created {
		t.Errorf("%d visuals created after game over", rec.next-created)
	}

	events := s.Events()
	if events[len(events)-1].Name != EventGameOver {
		t.Errorf("last event = %q, expected %q", events[len(events)-1].Name, EventGameOver)
	}
	rec.check(t)
}

func TestGameOverStopsCallbacksInSameFrame(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Rules.MaxLives = 1
	s, rec := newState(t, cfg, enjoy(t))

	s.spawnObstacle(false)
	s.spawnObstacle(false)
	// Both tweens land in the same frame: the wrong one first.
	s.Fire(words.ChoiceLY)
	s.CycleLock(1)
	s.Fire(words.ChoiceJ)
	run(s, 300*time.Millisecond)

	if !s.GameOver() {
		t.Fatal("expected game over")
	}
	if s.Score() != 0 || s.Stats().Hits != 0 {
		t.Errorf("score=%d hits=%d, nothing may resolve after game over", s.Score(), s.Stats().Hits)
	}
	events := s.Events()
	if events[len(events)-1].Name != EventGameOver {
		t.Errorf("last event = %q, expected %q", events[len(events)-1].Name, EventGameOver)
	}
	if rec.count(KindFlash) != 0 {
		t.Error("no flash should appear after game over")
	}
	if !s.sched.Halted() {
		t.Error("scheduler should be halted")
	}

	s.Restart()
	if s.sched.Halted() {
		t.Error("restart should resume the scheduler")
	}
	rec.check(t)
}

func TestRestartResetsEverything(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Rules.MaxLives = 1
	s, rec := newState(t, cfg, enjoy(t))

	s.spawnObstacle(false)
	s.spawnObstacle(false)
	s.Fire(words.ChoiceLY)
	run(s, 300*time.Millisecond)
	if !s.GameOver() {
		t.Fatal("expected game over")
	}
	gen := s.Generation()

	s.Restart()

	if s.GameOver() || s.Score() != 0 || s.Lives() != 1 {
		t.Errorf("after restart over=%v score=%d lives=%d", s.GameOver(), s.Score(), s.Lives())
	}
	if len(s.Obstacles()) != 0 || len(s.Shots()) != 0 {
		t.Errorf("collections not cleared: %d obstacles, %d shots", len(s.Obstacles()), len(s.Shots()))
	}
	if _, ok := s.Lock(); ok {
		t.Error("lock should be cleared")
	}
	if s.LastChoice() != words.ChoiceNone {
		t.Error("last choice should be cleared")
	}
	if s.Generation() <= gen {
		t.Error("restart should start a new generation")
	}
	if rec.count(KindObstacle) != 0 || rec.count(KindShot) != 0 || rec.count(KindFeedback) != 0 {
		t.Error("restart should destroy every visual")
	}
	if s.Stats() != (Stats{}) {
		t.Errorf("stats not reset: %+v", s.Stats())
	}
	rec.check(t)
}

func TestRestartDropsPendingCallbacks(t *testing.T) {
	s, rec := newState(t, config.DefaultRunnerConfig(), enjoy(t))

	s.spawnObstacle(false)
	s.Fire(words.ChoiceJ)
	run(s, 240*time.Millisecond)
	if s.Score() != 10 || rec.count(KindFlash) != 1 {
		t.Fatalf("expected a hit with a pending flash, score=%d flashes=%d", s.Score(), rec.count(KindFlash))
	}

	s.Restart()
	run(s, time.Second)

	// The flash removal timer belonged to the old round; the recorder
	// flags it if the flash is destroyed a second time.
	if rec.count(KindFlash) != 0 {
		t.Error("flash should be gone after restart")
	}
	rec.check(t)
}

func TestRunnerTweenHit(t *testing.T) {
	s, rec := newState(t, config.DefaultRunnerConfig(), enjoy(t))
	s.spawnObstacle(false)

	if !s.Fire(words.ChoiceJ) {
		t.Fatal("Fire() should spawn a tween shot")
	}
	sh := s.Shots()[0]
	if sh.From != core.V(180, 400) {
		t.Errorf("tween starts at %v, expected (180, 400)", sh.From)
	}
	if sh.To != core.V(1000, 428) {
		t.Errorf("tween aims at %v, expected (1000, 428)", sh.To)
	}

	run(s, 200*time.Millisecond)
	if s.Score() != 0 {
		t.Fatal("tween should not resolve before it lands")
	}
	run(s, 48*time.Millisecond)
	if s.Score() != 10 {
		t.Errorf("score = %d, expected 10", s.Score())
	}
	if got := rec.labels(KindFlash); !slices.Equal(got, []string{"enjoy"}) {
		t.Errorf("flash labels = %v", got)
	}

	run(s, 650*time.Millisecond)
	if rec.count(KindFlash) != 0 {
		t.Error("flash should be removed after the reveal time")
	}
	rec.check(t)
}

func TestRunnerWrongChoice(t *testing.T) {
	s, rec := newState(t, config.DefaultRunnerConfig(), enjoy(t))
	s.spawnObstacle(false)

	s.Fire(words.ChoiceLY)
	run(s, 250*time.Millisecond)

	if s.Lives() != 2 || s.Score() != 0 {
		t.Errorf("lives=%d score=%d, expected 2 and 0", s.Lives(), s.Score())
	}
	if len(s.Obstacles()) != 0 {
		t.Error("wrongly answered crate should be resolved")
	}
	if got := rec.labels(KindFeedback); !slices.Equal(got, []string{"Wrong choice"}) {
		t.Errorf("feedback = %v", got)
	}
	rec.check(t)
}

func TestTweenMissesTargetThatLeft(t *testing.T) {
	s, rec := newState(t, config.DefaultRunnerConfig(), enjoy(t))
	s.spawnObstacle(false)
	s.obstacles[0].Pos.X = 0

	s.Fire(words.ChoiceLY)
	run(s, 300*time.Millisecond)

	if s.Lives() != 3 || s.Score() != 0 {
		t.Errorf("lives=%d score=%d, a shot at a vanished target must not count", s.Lives(), s.Score())
	}
	st := s.Stats()
	if st.Escaped != 1 || st.Expired != 1 {
		t.Errorf("escaped=%d expired=%d, expected 1 and 1", st.Escaped, st.Expired)
	}
	if rec.count(KindShot) != 0 {
		t.Error("the shot label should be destroyed")
	}
	rec.check(t)
}

func TestMissThroughIsFree(t *testing.T) {
	s, rec := newState(t, config.DefaultRunnerConfig(), enjoy(t))

	run(s, 5*time.Second)

	if s.Lives() != 3 || s.Score() != 0 {
		t.Errorf("lives=%d score=%d after crates scrolled past", s.Lives(), s.Score())
	}
	if s.Stats().Escaped == 0 {
		t.Error("expected at least one crate to leave the field")
	}
	if s.Stats().Spawned != 4 {
		t.Errorf("spawned = %d, expected 4 in 5s at 1200ms", s.Stats().Spawned)
	}
	rec.check(t)
}

func TestProjectileExpiresWithoutEffect(t *testing.T) {
	cfg := shooterConfig()
	cfg.Shot.HitRadius = 0.001
	s, rec := newState(t, cfg, golyo(t))
	s.obstacles[0].Speed = 0.001

	s.Fire(words.ChoiceJ)
	run(s, time.Second)

	if s.Lives() != 3 || s.Score() != 0 {
		t.Errorf("lives=%d score=%d, an expired shot must not count", s.Lives(), s.Score())
	}
	if s.Stats().Expired != 1 || len(s.Shots()) != 0 {
		t.Errorf("expired=%d shots=%d", s.Stats().Expired, len(s.Shots()))
	}
	rec.check(t)
}

func TestCollisionLineCostsALife(t *testing.T) {
	s, rec := newState(t, shooterConfig(), golyo(t))
	s.obstacles[0].Pos.Y = 397

	s.Tick(frame)

	if s.Lives() != 2 {
		t.Errorf("lives = %d, expected 2", s.Lives())
	}
	if s.Stats().Collisions != 1 {
		t.Errorf("collisions = %d", s.Stats().Collisions)
	}
	if got := rec.labels(KindFeedback); !slices.Equal(got, []string{"ÜTKÖZÉS!"}) {
		t.Errorf("feedback = %v", got)
	}
	rec.check(t)
}

func TestFireWithoutTarget(t *testing.T) {
	s, rec := newState(t, config.DefaultRunnerConfig(), enjoy(t))
	before := rec.next

	if s.Fire(words.ChoiceJ) {
		t.Error("Fire() without obstacles should not spawn anything")
	}
	if rec.next != before || len(s.Shots()) != 0 {
		t.Error("no visual should be created")
	}
	if s.LastChoice() != words.ChoiceJ {
		t.Error("the choice should still be remembered")
	}
}

func TestRepeatLast(t *testing.T) {
	s, _ := newState(t, config.DefaultRunnerConfig(), enjoy(t))
	s.spawnObstacle(false)

	if s.RepeatLast() {
		t.Error("RepeatLast() without a previous choice should do nothing")
	}
	s.HandleInput(core.ActionFireLy)
	s.HandleInput(core.ActionRepeat)

	shots := s.Shots()
	if len(shots) != 2 {
		t.Fatalf("expected 2 shots, got %d", len(shots))
	}
	for _, sh := range shots {
		if sh.Choice != words.ChoiceLY {
			t.Errorf("shot choice = %v, expected LY", sh.Choice)
		}
	}
}

func TestDoubleResolutionIsNoop(t *testing.T) {
	s, rec := newState(t, shooterConfig(), golyo(t))
	o := s.obstacles[0]

	s.resolve(o, words.ChoiceLY)
	s.resolve(o, words.ChoiceLY)
	s.resolve(o, words.ChoiceJ)

	if s.Score() != 1 || s.Lives() != 3 {
		t.Errorf("score=%d lives=%d, only the first resolution counts", s.Score(), s.Lives())
	}
	rec.check(t)
}

func TestRampTightensOverTime(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Rules.MaxLives = 1000
	s, _ := newState(t, cfg, golyo(t))

	run(s, 30*time.Second)

	if s.ramp.Interval() >= 900*time.Millisecond || s.ramp.Interval() < 520*time.Millisecond {
		t.Errorf("interval = %v, expected within [520ms, 900ms)", s.ramp.Interval())
	}
	if s.ramp.Speed() <= 120 || s.ramp.Speed() > 260 {
		t.Errorf("speed = %f, expected within (120, 260]", s.ramp.Speed())
	}
	if s.Level() <= 0 {
		t.Error("Level() should grow")
	}
}

func TestDepthEffect(t *testing.T) {
	s, rec := newState(t, shooterConfig(), golyo(t))
	o := s.obstacles[0]

	run(s, time.Second)

	tok := rec.tokens[o.Handle]
	if tok.scale <= 0.78 || tok.scale > 1.6 {
		t.Errorf("scale = %f", tok.scale)
	}
	if tok.alpha <= 0.25 || tok.alpha > 1 {
		t.Errorf("alpha = %f", tok.alpha)
	}
}

// randomPlay drives a state with random input, restarting on game over,
// and checks the counters after every frame.
func randomPlay(t *testing.T, s *State, rng *rand.Rand, frames int) {
	t.Helper()
	actions := []core.Action{
		core.ActionFireJ, core.ActionFireLy, core.ActionRepeat,
		core.ActionCycleLeft, core.ActionCycleRight, core.ActionTapLeft, core.ActionTapRight,
	}
	for i := 0; i < frames; i++ {
		if rng.Intn(4) == 0 {
			s.HandleInput(actions[rng.Intn(len(actions))])
		}
		s.Tick(time.Duration(5+rng.Intn(40)) * time.Millisecond)

		if s.Lives() < 0 || s.Lives() > s.MaxLives() {
			t.Fatalf("frame %d: lives %d out of [0, %d]", i, s.Lives(), s.MaxLives())
		}
		if s.Score() < 0 {
			t.Fatalf("frame %d: negative score %d", i, s.Score())
		}
		if id, ok := s.Lock(); ok {
			if _, live := s.Obstacle(id); !live {
				t.Fatalf("frame %d: lock points at a dead obstacle", i)
			}
		}
		for _, o := range s.obstacles {
			if o.Resolved {
				t.Fatalf("frame %d: resolved obstacle %d still live", i, o.ID)
			}
		}
		if s.GameOver() {
			s.HandleInput(core.ActionRestart)
		}
	}
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.GameConfig
		bank string
	}{
		{"shooter", config.DefaultShooterConfig(), "hu"},
		{"runner", config.DefaultRunnerConfig(), "en"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bank, err := words.Load(tc.bank)
			if err != nil {
				t.Fatal(err)
			}
			rec := newRecorder()
			s, err := New(tc.cfg, bank, rec, 42)
			if err != nil {
				t.Fatal(err)
			}
			randomPlay(t, s, rand.New(rand.NewSource(7)), 20000)
			rec.check(t)
		})
	}
}

func TestDeterministicForSeed(t *testing.T) {
	script := func() string {
		bank, _ := words.Load("hu")
		s, err := New(config.DefaultShooterConfig(), bank, nil, 2024)
		if err != nil {
			t.Fatal(err)
		}
		var log []string
		for i := 0; i < 3000; i++ {
			switch i % 37 {
			case 0:
				s.HandleInput(core.ActionFireLy)
			case 11:
				s.HandleInput(core.ActionFireJ)
			case 23:
				s.HandleInput(core.ActionCycleRight)
			}
			s.Tick(frame)
			for _, ev := range s.Events() {
				log = append(log, fmt.Sprint(ev.Name, ev.Attrs))
			}
			if s.GameOver() {
				s.Restart()
			}
		}
		return fmt.Sprint(len(log), log)
	}

	if script() != script() {
		t.Error("same seed and input should produce the same event log")
	}
}
