package sim

import (
	"math"

	"github.com/vovakirdan/jly-arcade/internal/config"
)

// Lock returns the locked obstacle ID, if any.
func (s *State) Lock() (ID, bool) {
	if s.obstacle(s.lock) == nil {
		return 0, false
	}
	return s.lock, true
}

// RefreshLock keeps the current target while it is live and unresolved.
// Otherwise it locks the unresolved obstacle with the lowest lock score,
// the earliest spawned winning ties, or clears the lock if there is none.
func (s *State) RefreshLock() {
	if s.obstacle(s.lock) != nil {
		return
	}

	var best *Obstacle
	bestScore := math.Inf(1)
	for _, o := range s.obstacles {
		if o.Resolved {
			continue
		}
		if score := s.lockScore(o); score < bestScore {
			best, bestScore = o, score
		}
	}

	if best == nil {
		s.setLock(0)
		return
	}
	s.setLock(best.ID)
}

// lockScore weighs how far the obstacle still has to travel to reach the
// player (never negative) against how far off to the side it is.
func (s *State) lockScore(o *Obstacle) float64 {
	p := s.Player()
	var forward, lateral float64
	if s.cfg.Spawn.Direction == config.DirectionLeft {
		forward = math.Max(0, o.Pos.X-p.X)
		lateral = math.Abs(o.Pos.Y - p.Y)
	} else {
		forward = math.Max(0, p.Y-o.Pos.Y)
		lateral = math.Abs(o.Pos.X - p.X)
	}
	return forward*s.cfg.Lock.ForwardWeight + lateral*s.cfg.Lock.LateralWeight
}

// CycleLock moves the lock through the unresolved obstacles in spawn order,
// wrapping in both directions. Without a current lock it picks the first.
func (s *State) CycleLock(dir int) {
	var live []*Obstacle
	for _, o := range s.obstacles {
		if !o.Resolved {
			live = append(live, o)
		}
	}
	if len(live) == 0 {
		s.setLock(0)
		return
	}

	idx := -1
	for i, o := range live {
		if o.ID == s.lock {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.setLock(live[0].ID)
		return
	}

	n := len(live)
	next := ((idx+dir)%n + n) % n
	s.setLock(live[next].ID)
}

// setLock changes the target and updates highlights only on a real change.
func (s *State) setLock(id ID) {
	if id == s.lock {
		return
	}
	if old := s.obstacle(s.lock); old != nil {
		s.vis.SetTint(old.Handle, false)
	}
	s.lock = id
	if o := s.obstacle(id); o != nil {
		s.vis.SetTint(o.Handle, true)
		s.emit(EventLock, "id", id, "masked", o.Masked)
	}
}
