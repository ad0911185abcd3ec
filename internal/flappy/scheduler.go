package flappy

import (
	"fmt"
	"time"
)

// Scheduler runs interval timers against a virtual clock.
// Time only moves when Advance is called, so spawn timing is driven by the
// tick counter instead of the wall clock and replays identically.
// A Scheduler is not safe for concurrent use; all callbacks run on the caller.
type Scheduler struct {
	now    time.Duration
	timers []*Timer
	seq    uint64
}

// Timer is a repeating callback created by Scheduler.Every.
type Timer struct {
	name    string
	period  time.Duration
	next    time.Duration
	seq     uint64
	fn      func()
	fired   int
	stopped bool
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every registers fn to run once per period, first at Now()+period.
// Panics if period is not positive.
func (s *Scheduler) Every(name string, period time.Duration, fn func()) *Timer {
	if period <= 0 {
		panic(fmt.Sprintf("scheduler: timer %q has non-positive period %s", name, period))
	}
	s.seq++
	t := &Timer{
		name:   name,
		period: period,
		next:   s.now + period,
		seq:    s.seq,
		fn:     fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by d and runs every callback that comes due,
// in deadline order. Timers registered at the same deadline run in creation order.
// A timer due several times within d fires once per period.
// Returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	target := s.now
	if d > 0 {
		target += d
	}

	fired := 0
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.next
		t.next += t.period
		t.fired++
		fired++
		t.fn()
	}

	s.now = target
	s.prune()
	return fired
}

// Pending returns the number of timers that have not been stopped.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// nextDue returns the earliest live timer due at or before target.
func (s *Scheduler) nextDue(target time.Duration) *Timer {
	var due *Timer
	for _, t := range s.timers {
		if t.stopped || t.next > target {
			continue
		}
		if due == nil || t.next < due.next || (t.next == due.next && t.seq < due.seq) {
			due = t
		}
	}
	return due
}

// prune drops stopped timers.
func (s *Scheduler) prune() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	clear(s.timers[len(live):])
	s.timers = live
}

// Stop cancels the timer. It never fires again, even if it is already due
// within an Advance in progress. Stop on a nil or stopped timer is a no-op.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.stopped = true
}

// Active reports whether the timer is still scheduled.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// Name returns the label given at registration.
func (t *Timer) Name() string {
	return t.name
}

// Fired returns how many times the callback has run.
func (t *Timer) Fired() int {
	return t.fired
}
