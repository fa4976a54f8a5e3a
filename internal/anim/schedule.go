package anim

import "sort"

// ScheduledAction runs Action once when a schedule's elapsed time reaches
// Delay seconds.
type ScheduledAction struct {
	Delay  float64
	Action func()
}

// Schedule fires a fixed list of actions in delay order after the power
// flag turns on. Turning power off discards everything still pending.
type Schedule struct {
	actions   []ScheduledAction
	next      int
	elapsed   float64
	running   bool
	prevPower bool
}

// NewSchedule copies and stable-sorts actions by delay.
func NewSchedule(actions ...ScheduledAction) *Schedule {
	as := make([]ScheduledAction, len(actions))
	copy(as, actions)
	sort.SliceStable(as, func(i, j int) bool { return as[i].Delay < as[j].Delay })
	return &Schedule{actions: as}
}

// Update samples the power flag, advances time and fires due actions.
// It returns how many actions fired during this call.
func (s *Schedule) Update(power bool, dt float64) int {
	rising := power && !s.prevPower
	s.prevPower = power

	if !power {
		s.Reset()
		return 0
	}
	if rising {
		s.elapsed = 0
		s.next = 0
		s.running = true
	}
	if !s.running {
		return 0
	}
	if validDelta(dt) {
		s.elapsed += dt
	}

	fired := 0
	for s.next < len(s.actions) && s.actions[s.next].Delay <= s.elapsed {
		a := s.actions[s.next]
		s.next++
		fired++
		if a.Action != nil {
			a.Action()
		}
	}
	if s.next == len(s.actions) {
		s.running = false
	}
	return fired
}

// Reset discards pending actions and rewinds elapsed time.
func (s *Schedule) Reset() {
	s.elapsed = 0
	s.next = 0
	s.running = false
}

// Pending returns the number of actions not yet fired in the current run.
func (s *Schedule) Pending() int {
	if !s.running {
		return 0
	}
	return len(s.actions) - s.next
}

// Elapsed returns seconds since power on.
func (s *Schedule) Elapsed() float64 { return s.elapsed }
