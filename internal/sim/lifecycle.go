package sim

import (
	"time"

	"github.com/vovakirdan/jly-arcade/internal/config"
	"github.com/vovakirdan/jly-arcade/internal/core"
)

// Fake depth for top-down obstacles: purely cosmetic.
const (
	depthRate     = 0.9 // depth gained per second
	depthScaleMin = 0.78
	depthScaleMax = 1.6
	depthScaleK   = 0.55
	depthAlphaMin = 0.25
	depthAlphaK   = 1.2
)

func depthScale(z float64) float64 {
	return core.ClampF(depthScaleMin+z*depthScaleK, depthScaleMin, depthScaleMax)
}

func depthAlpha(z float64) float64 {
	return core.ClampF(depthAlphaMin+z*depthAlphaK, depthAlphaMin, 1)
}

// advance moves every entity by dt and reaps whatever ended this frame.
func (s *State) advance(dt time.Duration) {
	s.advanceObstacles(dt)
	s.advanceShots(dt)
	s.advanceDecor(dt)
}

// advanceObstacles moves obstacles along the travel axis. An unresolved
// obstacle crossing the collision line costs a life; one leaving the field
// without ever reaching such a line is dropped for free.
func (s *State) advanceObstacles(dt time.Duration) {
	sec := dt.Seconds()
	rules := s.cfg.Rules
	pf := s.cfg.Playfield
	down := s.cfg.Spawn.Direction == config.DirectionDown

	for _, o := range s.obstacles {
		if o.Resolved {
			continue
		}
		if down {
			o.Pos.Y += o.Speed * sec
		} else {
			o.Pos.X -= o.Speed * sec
		}
		s.vis.SetPosition(o.Handle, o.Pos)

		if s.cfg.Effects.Depth {
			o.Depth += depthRate * sec
			s.vis.SetScale(o.Handle, depthScale(o.Depth))
			s.vis.SetAlpha(o.Handle, depthAlpha(o.Depth))
		}

		if s.phase == PhaseGameOver {
			continue
		}
		if rules.CollisionLine && down && o.Pos.Y > pf.PlayerY-rules.CollisionOffset {
			s.fail(o, causeCollision)
			continue
		}
		if s.offField(o) {
			s.escape(o)
		}
	}
	s.reapObstacles()
}

// offField reports whether an obstacle has fully left the playfield.
func (s *State) offField(o *Obstacle) bool {
	margin := s.cfg.Rules.ExitMargin
	if s.cfg.Spawn.Direction == config.DirectionLeft {
		return o.Pos.X < -margin
	}
	return o.Pos.Y > s.cfg.Playfield.Height+margin
}

// escape removes an obstacle nobody answered. No life is lost.
func (s *State) escape(o *Obstacle) {
	if !s.markResolved(o) {
		return
	}
	s.stats.Escaped++
	s.emit(EventEscape, "id", o.ID, "word", o.Entry.Word)
}

// reapObstacles drops resolved obstacles from the live set.
func (s *State) reapObstacles() {
	kept := make([]*Obstacle, 0, len(s.obstacles))
	for _, o := range s.obstacles {
		if !o.Resolved {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
}

// advanceShots moves shots. Projectiles that run out of life vanish with no
// effect; tween shots follow their path and wait for their completion timer.
func (s *State) advanceShots(dt time.Duration) {
	kept := make([]*Shot, 0, len(s.shots))
	for _, sh := range s.shots {
		if sh.Tween {
			sh.Elapsed = min(sh.Elapsed+dt, sh.Duration)
			sh.Pos = sh.From.Lerp(sh.To, float64(sh.Elapsed)/float64(sh.Duration))
			s.vis.SetPosition(sh.Handle, sh.Pos)
			kept = append(kept, sh)
			continue
		}

		sh.Pos = sh.Pos.Add(sh.Vel.Scale(dt.Seconds()))
		sh.Life -= dt
		if sh.Life <= 0 {
			s.vis.Destroy(sh.Handle)
			s.stats.Expired++
			s.emit(EventExpire, "shot", sh.ID)
			continue
		}
		s.vis.SetPosition(sh.Handle, sh.Pos)
		kept = append(kept, sh)
	}
	s.shots = kept
}

// advanceDecor moves decorations, fades the timed ones and drops those that
// ran out of life or drifted off the left edge.
func (s *State) advanceDecor(dt time.Duration) {
	edge := -s.cfg.Effects.DecorWidth
	kept := make([]*Decoration, 0, len(s.decor))
	for _, d := range s.decor {
		d.Age += dt
		d.Pos = d.Pos.Add(d.Vel.Scale(dt.Seconds()))

		expired := d.Life > 0 && d.Age >= d.Life
		gone := d.Kind == KindCloud && d.Pos.X < edge
		if expired || gone {
			s.vis.Destroy(d.Handle)
			continue
		}

		s.vis.SetPosition(d.Handle, d.Pos)
		if d.Life > 0 {
			s.vis.SetAlpha(d.Handle, 1-d.progress())
		}
		if d.Kind == KindBurst {
			s.vis.SetScale(d.Handle, 1+d.progress())
		}
		kept = append(kept, d)
	}
	s.decor = kept
}

// removeDecor destroys a decoration if it still exists.
func (s *State) removeDecor(id ID) {
	d := s.decoration(id)
	if d == nil {
		return
	}
	s.vis.Destroy(d.Handle)
	kept := make([]*Decoration, 0, len(s.decor))
	for _, other := range s.decor {
		if other != d {
			kept = append(kept, other)
		}
	}
	s.decor = kept
}
