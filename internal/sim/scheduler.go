package sim

import "time"

// TimerID identifies a scheduled callback. The zero TimerID is never issued.
type TimerID uint64

type timer struct {
	id    TimerID
	gen   uint64
	due   time.Duration
	every time.Duration // zero for one-shot timers
	fn    func()
}

// Scheduler runs deferred callbacks on simulation time. It only moves when
// Advance is called, so callbacks fire inside the frame that reaches them.
//
// Every timer is stamped with the generation it was scheduled in. Reset bumps
// the generation and drops all pending timers, and a timer whose generation
// is stale never fires, even if a callback captured it earlier. Halt freezes
// the scheduler until the next Reset.
type Scheduler struct {
	now    time.Duration
	gen    uint64
	nextID TimerID
	timers []*timer
	halted bool
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	return s.add(max(d, 0), 0, fn)
}

// Every schedules fn to run every d, starting d from now.
// A non-positive interval schedules nothing and returns 0.
func (s *Scheduler) Every(d time.Duration, fn func()) TimerID {
	if d <= 0 {
		return 0
	}
	return s.add(d, d, fn)
}

func (s *Scheduler) add(delay, every time.Duration, fn func()) TimerID {
	s.nextID++
	s.timers = append(s.timers, &timer{
		id:    s.nextID,
		gen:   s.gen,
		due:   s.now + delay,
		every: every,
		fn:    fn,
	})
	return s.nextID
}

// Cancel removes a pending timer. Unknown or already fired IDs are ignored.
func (s *Scheduler) Cancel(id TimerID) {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i:i], s.timers[i+1:]...)
			return
		}
	}
}

// Advance moves time forward by dt and runs every due callback in due order,
// ties in scheduling order. A repeating timer fires once per elapsed period.
func (s *Scheduler) Advance(dt time.Duration) {
	if s.halted {
		return
	}
	if dt > 0 {
		s.now += dt
	}
	for {
		t := s.nextDue()
		if t == nil {
			return
		}
		if t.every > 0 {
			t.due += t.every
		} else {
			s.Cancel(t.id)
		}
		if t.gen != s.gen {
			continue
		}

		gen := s.gen
		t.fn()
		if s.gen != gen {
			// A callback reset the scheduler; nothing left is ours to run.
			return
		}
		if s.halted {
			return
		}
	}
}

func (s *Scheduler) nextDue() *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > s.now {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

// Reset drops every pending timer, rewinds the clock and starts a new generation.
func (s *Scheduler) Reset() {
	s.halted = false
	s.gen++
	s.now = 0
	s.timers = s.timers[:0]
}

// Halt stops dispatch: the callback running now finishes, and nothing else
// fires, even later in the same Advance. Pending timers stay queued.
func (s *Scheduler) Halt() {
	s.halted = true
}

// Halted reports whether Halt was called since the last Reset.
func (s *Scheduler) Halted() bool {
	return s.halted
}

// Generation returns the current generation.
func (s *Scheduler) Generation() uint64 {
	return s.gen
}

// Now returns the scheduler clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of scheduled timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}
