package common

// Timer accumulates elapsed seconds against a fixed duration.
type Timer struct {
	Duration float64
	Elapsed  float64
}

// Advance adds dt and reports whether the timer has run out.
func (t *Timer) Advance(dt float64) bool {
	if t == nil {
		return false
	}
	t.Elapsed += dt
	return t.Done()
}

func (t *Timer) Done() bool {
	return t != nil && t.Elapsed >= t.Duration
}

// Sequence runs Count steps spaced Interval seconds apart, resuming across
// ticks where it left off. Step 0 runs on the first Advance. Alive is checked
// before every step; once it reports false the sequence is cancelled.
type Sequence struct {
	Count    int
	Interval float64
	Step     func(i int)
	Alive    func() bool

	next      int
	wait      float64
	started   bool
	cancelled bool
}

// Advance moves the sequence forward by dt and runs every step that became due.
func (s *Sequence) Advance(dt float64) {
	if s == nil || s.Done() {
		return
	}
	if s.started {
		s.wait -= dt
	}
	s.started = true
	for s.next < s.Count && s.wait <= 0 {
		if s.Alive != nil && !s.Alive() {
			s.cancelled = true
			return
		}
		if s.Step != nil {
			s.Step(s.next)
		}
		s.next++
		s.wait += s.Interval
		if s.Interval <= 0 {
			s.wait = 0
		}
	}
}

// Done reports whether every step ran or the sequence was cancelled.
func (s *Sequence) Done() bool {
	return s == nil || s.cancelled || s.next >= s.Count
}

// Cancelled reports whether the liveness guard stopped the sequence early.
func (s *Sequence) Cancelled() bool {
	return s != nil && s.cancelled
}

// Completed returns how many steps have run.
func (s *Sequence) Completed() int {
	if s == nil {
		return 0
	}
	return s.next
}
