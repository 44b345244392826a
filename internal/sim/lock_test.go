package sim

import (
	"testing"

	"github.com/vovakirdan/jly-arcade/internal/config"
	"github.com/vovakirdan/jly-arcade/internal/core"
)

// spread returns a shooter state with n obstacles spread over the spawn band
// and no initial one.
func spread(t *testing.T, n int) (*State, *recorder) {
	t.Helper()
	cfg := shooterConfig()
	cfg.Spawn.Initial = false
	cfg.Spawn.X = config.Range{Min: 162, Max: 738}
	s, rec := newState(t, cfg, golyo(t))
	for i := 0; i < n; i++ {
		s.spawnObstacle(false)
	}
	return s, rec
}

func TestRefreshLockPicksBestScore(t *testing.T) {
	s, _ := spread(t, 2)
	s.obstacles[0].Pos = core.V(450, -100) // far ahead, dead center
	s.obstacles[1].Pos = core.V(700, 100)  // closer, off to the side

	s.RefreshLock()

	id, ok := s.Lock()
	if !ok || id != s.obstacles[1].ID {
		t.Errorf("lock = %d, expected %d", id, s.obstacles[1].ID)
	}
}

func TestRefreshLockTieGoesToEarliest(t *testing.T) {
	s, _ := spread(t, 2)
	s.obstacles[0].Pos = core.V(400, 100)
	s.obstacles[1].Pos = core.V(500, 100)

	s.RefreshLock()

	if id, _ := s.Lock(); id != s.obstacles[0].ID {
		t.Errorf("lock = %d, expected the earlier obstacle %d", id, s.obstacles[0].ID)
	}
}

func TestRefreshLockIsStable(t *testing.T) {
	s, rec := spread(t, 3)
	s.RefreshLock()
	first, _ := s.Lock()
	calls := rec.tintCalls

	// A better candidate appearing does not steal a live lock.
	s.obstacles[2].Pos = core.V(450, 390)
	for i := 0; i < 10; i++ {
		s.RefreshLock()
	}

	if id, _ := s.Lock(); id != first {
		t.Errorf("lock moved from %d to %d", first, id)
	}
	if rec.tintCalls != calls {
		t.Errorf("%d highlight updates without a lock change", rec.tintCalls-calls)
	}
}

func TestRefreshLockEmpty(t *testing.T) {
	s, _ := spread(t, 0)
	s.RefreshLock()
	if _, ok := s.Lock(); ok {
		t.Error("no obstacles should mean no lock")
	}
	s.CycleLock(1)
	if _, ok := s.Lock(); ok {
		t.Error("cycling with no obstacles should clear the lock")
	}
}

func TestCycleLockWraps(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		s, rec := spread(t, n)
		s.RefreshLock()
		start, _ := s.Lock()

		for i := 0; i < n; i++ {
			s.CycleLock(1)
		}
		if id, _ := s.Lock(); id != start {
			t.Errorf("n=%d: %d forward cycles ended at %d, expected %d", n, n, id, start)
		}

		for i := 0; i < n; i++ {
			s.CycleLock(-1)
		}
		if id, _ := s.Lock(); id != start {
			t.Errorf("n=%d: %d backward cycles ended at %d, expected %d", n, n, id, start)
		}
		rec.check(t)
	}
}

func TestCycleLockOrder(t *testing.T) {
	s, rec := spread(t, 3)
	ids := []ID{s.obstacles[0].ID, s.obstacles[1].ID, s.obstacles[2].ID}

	s.CycleLock(1)
	if id, _ := s.Lock(); id != ids[0] {
		t.Errorf("first cycle without lock = %d, expected %d", id, ids[0])
	}
	s.CycleLock(-1)
	if id, _ := s.Lock(); id != ids[2] {
		t.Errorf("backward from first = %d, expected wrap to %d", id, ids[2])
	}

	// Only the current target is highlighted.
	tinted := 0
	for _, o := range s.obstacles {
		if rec.tokens[o.Handle].tint {
			tinted++
		}
	}
	if tinted != 1 || !rec.tokens[s.obstacles[2].Handle].tint {
		t.Errorf("%d obstacles highlighted, expected only the target", tinted)
	}
}

func TestLockSkipsResolved(t *testing.T) {
	s, rec := spread(t, 3)
	s.CycleLock(1)
	first, _ := s.Lock()

	s.escape(s.obstacles[0])
	if _, ok := s.Lock(); ok {
		t.Error("lock on a resolved obstacle should read as empty")
	}
	s.reapObstacles()
	s.RefreshLock()

	id, ok := s.Lock()
	if !ok || id == first {
		t.Errorf("lock = %d (%v), expected a different live obstacle", id, ok)
	}
	rec.check(t)
}
