package clock

import "time"

// Interval is a periodic callback owned by a Scheduler.
type Interval struct {
	period    time.Duration
	next      time.Time
	fn        func()
	cancelled bool
}

// Cancel stops the interval. Calling it again has no effect.
func (i *Interval) Cancel() {
	i.cancelled = true
}

func (i *Interval) Cancelled() bool {
	return i.cancelled
}

func (i *Interval) Period() time.Duration {
	return i.period
}

// Scheduler runs intervals on the goroutine that calls Advance. It never
// starts goroutines or timers of its own, so callbacks can touch game and
// surface state freely.
type Scheduler struct {
	now       time.Time
	intervals []*Interval
}

// NewScheduler starts the scheduler's clock at now.
func NewScheduler(now time.Time) *Scheduler {
	return &Scheduler{now: now}
}

// Every registers fn to run once per period, the first time one period from
// the scheduler's current time.
func (s *Scheduler) Every(period time.Duration, fn func()) *Interval {
	i := &Interval{
		period: period,
		next:   s.now.Add(period),
		fn:     fn,
	}
	s.intervals = append(s.intervals, i)
	return i
}

// Advance moves the clock to now and runs every interval that came due, in
// due-time order. An interval that is several periods behind runs once per
// missed period. Returns the number of callbacks run.
func (s *Scheduler) Advance(now time.Time) int {
	if now.Before(s.now) {
		return 0
	}

	ran := 0
	for {
		due := s.nextDue(now)
		if due == nil {
			break
		}
		s.now = due.next
		due.next = due.next.Add(due.period)
		due.fn()
		ran++
	}
	s.now = now
	s.prune()
	return ran
}

// Pending counts intervals that have not been cancelled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, i := range s.intervals {
		if !i.cancelled {
			n++
		}
	}
	return n
}

func (s *Scheduler) Now() time.Time {
	return s.now
}

func (s *Scheduler) nextDue(now time.Time) *Interval {
	var due *Interval
	for _, i := range s.intervals {
		if i.cancelled || i.period <= 0 || i.next.After(now) {
			continue
		}
		if due == nil || i.next.Before(due.next) {
			due = i
		}
	}
	return due
}

func (s *Scheduler) prune() {
	live := s.intervals[:0]
	for _, i := range s.intervals {
		if !i.cancelled {
			live = append(live, i)
		}
	}
	for j := len(live); j < len(s.intervals); j++ {
		s.intervals[j] = nil
	}
	s.intervals = live
}
