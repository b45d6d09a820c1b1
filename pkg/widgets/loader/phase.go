package loader

// Phase is one stage of the loading sequence. Phases are ordered.
type Phase int

const (
	Idle Phase = iota
	ReadingInput
	Processing
	Delivering
	Complete
)

var phaseNames = [...]string{
	Idle:         "idle",
	ReadingInput: "reading input",
	Processing:   "processing",
	Delivering:   "delivering",
	Complete:     "complete",
}

func (p Phase) String() string {
	if p < Idle || p > Complete {
		return "unknown"
	}
	return phaseNames[p]
}

// Active reports whether p is one of the working stages.
func (p Phase) Active() bool {
	return p >= ReadingInput && p <= Delivering
}

// Event drives a phase transition.
type Event int

const (
	// EventStart is the loading flag turning on.
	EventStart Event = iota
	// EventAdvance is the stage delay elapsing.
	EventAdvance
	// EventFinish is the loading flag turning off.
	EventFinish
	// EventSettle is the settle delay elapsing after completion.
	EventSettle
	// EventReset abandons the cycle.
	EventReset
)

// Next returns the phase reached from p on e. The boolean is false when e
// has no effect in p, in which case p is returned unchanged.
func (p Phase) Next(e Event) (Phase, bool) {
	switch e {
	case EventStart:
		if p == Idle || p == Complete {
			return ReadingInput, true
		}
	case EventAdvance:
		if p == ReadingInput || p == Processing {
			return p + 1, true
		}
	case EventFinish:
		if p.Active() {
			return Complete, true
		}
	case EventSettle:
		if p == Complete {
			return Idle, true
		}
	case EventReset:
		if p != Idle {
			return Idle, true
		}
	}
	return p, false
}
