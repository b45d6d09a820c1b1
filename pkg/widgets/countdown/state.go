package countdown

import "time"

// DefaultThreshold is the remaining time below which the countdown turns urgent.
const DefaultThreshold = 30 * time.Minute

// State is the decomposed remaining time.
type State struct {
	Hours   int
	Minutes int
	Seconds int
	Urgent  bool
	Ended   bool
}

// Decompose splits d into whole hours, minutes within the hour and seconds
// within the minute. A non-positive duration yields the ended zero state.
func Decompose(d time.Duration) State {
	if d <= 0 {
		return State{Ended: true}
	}
	ms := d.Milliseconds()
	return State{
		Hours:   int(ms / 3_600_000),
		Minutes: int(ms % 3_600_000 / 60_000),
		Seconds: int(ms % 60_000 / 1_000),
	}
}

// Compute derives the state for target as seen at now.
func Compute(target, now time.Time, threshold time.Duration) State {
	state := Decompose(target.Sub(now))
	if state.Ended {
		return state
	}
	whole := time.Duration(state.Hours)*time.Hour + time.Duration(state.Minutes)*time.Minute
	state.Urgent = whole < threshold
	return state
}

// Remaining returns the state as a duration truncated to whole seconds.
func (s State) Remaining() time.Duration {
	return time.Duration(s.Hours)*time.Hour +
		time.Duration(s.Minutes)*time.Minute +
		time.Duration(s.Seconds)*time.Second
}

// Unit identifies one displayed digit group.
type Unit int

const (
	Hours Unit = iota
	Minutes
	Seconds
)

func (s State) value(u Unit) int {
	switch u {
	case Hours:
		return s.Hours
	case Minutes:
		return s.Minutes
	default:
		return s.Seconds
	}
}
