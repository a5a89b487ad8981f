package carousel

import (
	"slices"
	"time"
)

// Scheduler drives deferred work for a controller from the frame loop.
// Tick must be called once per frame; nothing runs between ticks.
type Scheduler struct {
	now    func() time.Time
	timers []*Timer
	loops  []*Loop
}

func NewScheduler() *Scheduler {
	return &Scheduler{now: time.Now}
}

// SetClock replaces the time source. Tests use it to step time by hand.
func (s *Scheduler) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Scheduler) Now() time.Time { return s.now() }

// Timer is a one-shot callback created by AfterFunc.
type Timer struct {
	at      time.Time
	fn      func()
	pending bool
}

// Stop cancels the timer. It reports whether the timer was still pending.
func (t *Timer) Stop() bool {
	if t == nil || !t.pending {
		return false
	}
	t.pending = false
	return true
}

// AfterFunc schedules fn to run on the first Tick at or after d from now.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) *Timer {
	t := &Timer{at: s.now().Add(d), fn: fn, pending: true}
	s.timers = append(s.timers, t)
	return t
}

// Loop is a repeating per-frame task. step returns false to stop.
type Loop struct {
	step    func() bool
	running bool
}

// NewLoop registers a stopped loop with the scheduler.
func (s *Scheduler) NewLoop(step func() bool) *Loop {
	l := &Loop{step: step}
	s.loops = append(s.loops, l)
	return l
}

// Start arms the loop; the first step runs on the next Tick. It reports
// false if the loop was already running.
func (l *Loop) Start() bool {
	if l.running {
		return false
	}
	l.running = true
	return true
}

// Stop disarms the loop and reports whether it was running.
func (l *Loop) Stop() bool {
	was := l.running
	l.running = false
	return was
}

func (l *Loop) Running() bool { return l.running }

// Tick fires due timers in deadline order, then steps running loops.
func (s *Scheduler) Tick() {
	now := s.now()

	due := s.timers[:0:0]
	kept := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case !t.pending:
		case !t.at.After(now):
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	s.timers = kept
	slices.SortStableFunc(due, func(a, b *Timer) int { return a.at.Compare(b.at) })
	for _, t := range due {
		// an earlier callback may have stopped it
		if !t.pending {
			continue
		}
		t.pending = false
		t.fn()
	}

	for _, l := range s.loops {
		if l.running {
			l.running = l.step()
		}
	}
}

// Pending reports how many timers are still waiting.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if t.pending {
			n++
		}
	}
	return n
}

// Stop cancels every timer and loop.
func (s *Scheduler) Stop() {
	for _, t := range s.timers {
		t.pending = false
	}
	s.timers = nil
	for _, l := range s.loops {
		l.running = false
	}
}
