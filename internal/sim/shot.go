package sim

import (
	"github.com/vovakirdan/jly-arcade/internal/config"
	"github.com/vovakirdan/jly-arcade/internal/core"
	"github.com/vovakirdan/jly-arcade/internal/words"
)

// failure causes
const (
	causeWrong     = "wrong"
	causeCollision = "collision"
)

// Fire shoots choice at the locked obstacle, refreshing the lock first.
// It reports whether a shot was spawned. With no target nothing happens
// beyond remembering the choice for RepeatLast; once the game is over
// nothing happens at all.
func (s *State) Fire(choice words.Choice) bool {
	if s.phase == PhaseGameOver || choice == words.ChoiceNone {
		return false
	}
	s.lastChoice = choice

	s.RefreshLock()
	target := s.obstacle(s.lock)
	if target == nil {
		return false
	}

	var sh *Shot
	if s.cfg.Shot.Mode == config.ShotTween {
		sh = s.fireTween(choice, target)
	} else {
		sh = s.fireProjectile(choice, target)
	}
	s.stats.Shots++
	s.emit(EventFire, "shot", sh.ID, "choice", choice.String(), "target", target.ID)
	return true
}

// RepeatLast fires the last choice again. Without one it does nothing.
func (s *State) RepeatLast() bool {
	if s.lastChoice == words.ChoiceNone {
		return false
	}
	return s.Fire(s.lastChoice)
}

// shotOrigin is where shots leave the player.
func (s *State) shotOrigin() core.Vec {
	return s.Player().Add(core.V(s.cfg.Shot.OriginDX, s.cfg.Shot.OriginDY))
}

// fireProjectile launches a free-flying shot aimed at the target's current
// position. It can hit any obstacle it touches on the way.
func (s *State) fireProjectile(choice words.Choice, target *Obstacle) *Shot {
	from := s.shotOrigin()
	vel := core.V(0, -s.cfg.Shot.Speed)
	if d := target.Pos.Sub(from); d.Len() > 0 {
		vel = d.Scale(s.cfg.Shot.Speed / d.Len())
	}

	sh := &Shot{
		ID:     s.newID(),
		Pos:    from,
		Vel:    vel,
		Choice: choice,
		Life:   config.Millis(s.cfg.Shot.LifeMS),
	}
	sh.Handle = s.vis.Create(KindShot, from, choice.Label())
	s.shots = append(s.shots, sh)
	return sh
}

// fireTween animates the choice label onto the target. The outcome is decided
// when the tween completes, against that same target if it is still live.
func (s *State) fireTween(choice words.Choice, target *Obstacle) *Shot {
	from := s.shotOrigin()
	sh := &Shot{
		ID:       s.newID(),
		Pos:      from,
		Choice:   choice,
		Tween:    true,
		Target:   target.ID,
		From:     from,
		To:       target.Pos.Add(core.V(0, s.cfg.Shot.AimOffsetY)),
		Duration: config.Millis(s.cfg.Shot.TweenMS),
	}
	sh.Handle = s.vis.Create(KindShot, from, choice.Label())
	s.shots = append(s.shots, sh)

	id := sh.ID
	s.sched.After(sh.Duration, func() {
		s.completeTween(id)
	})
	return sh
}

// completeTween lands a tween shot. A shot that no longer exists is ignored;
// a target that resolved or left the field in the meantime makes it a miss.
func (s *State) completeTween(id ID) {
	sh := s.shot(id)
	if sh == nil {
		return
	}
	s.removeShot(sh)
	if s.phase == PhaseGameOver {
		return
	}

	target := s.obstacle(sh.Target)
	if target == nil {
		s.stats.Expired++
		s.emit(EventExpire, "shot", sh.ID, "target", sh.Target)
		return
	}
	s.resolve(target, sh.Choice)
	s.reapObstacles()
}

// checkHits tests every projectile against the unresolved obstacles.
// A projectile hits the first obstacle in spawn order within the hit radius.
func (s *State) checkHits() {
	radius := s.cfg.Shot.HitRadius
	var hits []*Shot
	for _, sh := range s.shots {
		if s.phase == PhaseGameOver {
			break
		}
		if sh.Tween {
			continue
		}
		for _, o := range s.obstacles {
			if o.Resolved || sh.Pos.Dist(o.Pos) >= radius {
				continue
			}
			hits = append(hits, sh)
			s.resolve(o, sh.Choice)
			break
		}
	}
	for _, sh := range hits {
		s.removeShot(sh)
	}
	s.reapObstacles()
}

// resolve settles an obstacle against a fired choice. Resolved obstacles
// are left alone.
func (s *State) resolve(o *Obstacle, choice words.Choice) {
	if o.Resolved {
		return
	}
	if choice == o.Entry.Choice {
		s.succeed(o)
		return
	}
	s.fail(o, causeWrong)
}

// markResolved flips the obstacle to resolved and releases its visual.
// It reports false if the obstacle was already resolved.
func (s *State) markResolved(o *Obstacle) bool {
	if o.Resolved {
		return false
	}
	o.Resolved = true
	s.vis.Destroy(o.Handle)
	if s.lock == o.ID {
		s.lock = 0
	}
	return true
}

// succeed scores a correct answer and reveals the completed word.
func (s *State) succeed(o *Obstacle) {
	if !s.markResolved(o) {
		return
	}
	s.score += s.cfg.Rules.SuccessPoints
	s.stats.Hits++
	s.flash(o)
	s.emit(EventHit, "id", o.ID, "word", o.Entry.Word, "score", s.score)
}

// fail costs one life for a wrong answer or a collision.
func (s *State) fail(o *Obstacle, cause string) {
	if !s.markResolved(o) {
		return
	}
	s.lives = max(0, s.lives-1)

	if cause == causeCollision {
		s.stats.Collisions++
		s.feedback(s.cfg.Effects.CrashText)
		s.emit(EventCollision, "id", o.ID, "word", o.Entry.Word, "lives", s.lives)
	} else {
		s.stats.Wrong++
		s.feedback(s.cfg.Effects.WrongText)
		s.emit(EventWrong, "id", o.ID, "word", o.Entry.Word, "lives", s.lives)
	}

	if s.lives == 0 {
		s.gameOver()
	}
}

// removeShot destroys a shot's visual and drops it from the live set.
func (s *State) removeShot(sh *Shot) {
	kept := make([]*Shot, 0, len(s.shots))
	for _, other := range s.shots {
		if other == sh {
			s.vis.Destroy(sh.Handle)
			continue
		}
		kept = append(kept, other)
	}
	s.shots = kept
}
