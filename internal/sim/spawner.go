package sim

import (
	"time"

	"github.com/vovakirdan/jly-arcade/internal/config"
	"github.com/vovakirdan/jly-arcade/internal/core"
)

// Fixed decoration tuning.
const (
	cloudSpawnOffset = 60 // clouds enter this far past the right edge
	burstLife        = 350 * time.Millisecond
	feedbackY        = 90 // feedback text starts here and floats up
	feedbackRise     = 20
)

// startSpawner arms the spawn cadence for a new round.
func (s *State) startSpawner() {
	if s.cfg.Spawn.Initial {
		s.spawnObstacle(true)
	}
	if s.cfg.Spawn.Cadence == config.CadenceTimer {
		s.scheduleSpawn()
	}
}

// scheduleSpawn chains one-shot timers so a tightened interval takes effect
// on the next spawn.
func (s *State) scheduleSpawn() {
	s.sched.After(s.ramp.Interval(), func() {
		s.spawnObstacle(false)
		s.ramp.Advance()
		s.scheduleSpawn()
	})
}

// spawnTick runs the accumulator cadence. The accumulator restarts from zero
// on every spawn, so a long frame never spawns a burst.
func (s *State) spawnTick(dt time.Duration) {
	if s.cfg.Spawn.Cadence != config.CadenceAccumulator {
		return
	}
	s.spawnAcc += dt
	if s.spawnAcc >= s.ramp.Interval() {
		s.spawnAcc = 0
		s.spawnObstacle(false)
		s.ramp.Advance()
	}
}

// spawnObstacle creates one obstacle with a random word at the spawn band.
func (s *State) spawnObstacle(initial bool) {
	if s.phase == PhaseGameOver {
		return
	}
	sp := s.cfg.Spawn

	entry := s.bank.Pick(s.rng)
	masked := s.bank.Mask(entry)
	pos := core.V(s.between(sp.X), s.between(sp.Y))
	if initial {
		pos.Y = sp.InitialY
	}
	speed := s.ramp.Speed()
	if sp.SpeedJitter > 0 {
		speed += float64(s.rng.Intn(sp.SpeedJitter + 1))
	}

	o := &Obstacle{
		ID:     s.newID(),
		Pos:    pos,
		Speed:  speed,
		Entry:  entry,
		Masked: masked,
	}
	o.Handle = s.vis.Create(KindObstacle, pos, masked)
	if s.cfg.Effects.Depth {
		s.vis.SetScale(o.Handle, depthScale(0))
		s.vis.SetAlpha(o.Handle, depthAlpha(0))
	}
	s.obstacles = append(s.obstacles, o)
	s.stats.Spawned++

	s.emit(EventSpawn, "id", o.ID, "word", entry.Word, "masked", masked, "speed", speed)
}

// between returns an integer-spaced random value in r, like a dice roll
// over the whole units of the range.
func (s *State) between(r config.Range) float64 {
	span := int(r.Max - r.Min)
	if span <= 0 {
		return r.Min
	}
	return r.Min + float64(s.rng.Intn(span+1))
}

// startDecor arms the background decoration cadence.
func (s *State) startDecor() {
	fx := s.cfg.Effects
	if fx.Decor == "" || fx.DecorEveryMS <= 0 {
		return
	}
	if fx.DecorAtStart {
		s.spawnDecor()
	}
	s.sched.Every(config.Millis(fx.DecorEveryMS), s.spawnDecor)
}

// spawnDecor creates one star or cloud.
func (s *State) spawnDecor() {
	if s.phase == PhaseGameOver {
		return
	}
	fx := s.cfg.Effects
	pf := s.cfg.Playfield
	speed := s.between(fx.DecorSpeed)

	d := &Decoration{ID: s.newID()}
	switch fx.Decor {
	case config.DecorStars:
		d.Kind = KindStar
		d.Pos = core.V(s.between(config.Range{Max: pf.Width}), s.between(config.Range{Max: pf.Height}))
		d.Vel = core.V(0, speed)
		d.Life = config.Millis(fx.DecorLifeMS)
	case config.DecorClouds:
		d.Kind = KindCloud
		d.Pos = core.V(pf.Width+cloudSpawnOffset, s.between(fx.DecorY))
		d.Vel = core.V(-speed, 0)
	default:
		return
	}
	s.addDecor(d)
}

// addDecor registers a decoration and creates its visual.
func (s *State) addDecor(d *Decoration) {
	d.Handle = s.vis.Create(d.Kind, d.Pos, d.Label)
	s.decor = append(s.decor, d)
}

// flash reveals the completed word where the obstacle was. It is removed by
// a deferred callback, which checks that the flash still exists.
func (s *State) flash(o *Obstacle) {
	at := o.Pos.Add(core.V(0, s.labelOffset()))
	d := &Decoration{ID: s.newID(), Kind: KindFlash, Pos: at, Label: o.Entry.Word}
	s.addDecor(d)

	id := d.ID
	s.sched.After(config.Millis(s.cfg.Effects.RevealMS), func() {
		s.removeDecor(id)
	})

	s.addDecor(&Decoration{ID: s.newID(), Kind: KindBurst, Pos: at, Life: burstLife})
}

// feedback shows a floating message near the top of the field.
func (s *State) feedback(text string) {
	if text == "" || s.cfg.Effects.FeedbackMS <= 0 {
		return
	}
	life := config.Millis(s.cfg.Effects.FeedbackMS)
	s.addDecor(&Decoration{
		ID:    s.newID(),
		Kind:  KindFeedback,
		Pos:   core.V(s.cfg.Playfield.Width/2, feedbackY),
		Vel:   core.V(0, -feedbackRise/life.Seconds()),
		Life:  life,
		Label: text,
	})
}

// labelOffset is the vertical offset of an obstacle's label from its center.
func (s *State) labelOffset() float64 {
	if s.cfg.Shot.Mode == config.ShotTween {
		return s.cfg.Shot.AimOffsetY
	}
	return 0
}
