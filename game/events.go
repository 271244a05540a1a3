package game

// EventKind classifies a session event.
type EventKind int

const (
	EventStart EventKind = iota
	EventLock
	EventLineClear
	EventLevelUp
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventLock:
		return "lock"
	case EventLineClear:
		return "line-clear"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event describes a state change that frontends may want to react to.
type Event struct {
	Kind   EventKind
	Lines  int
	Score  int
	Level  int
	Reason EndReason
}

// Listener receives events synchronously, on the goroutine that mutated the
// session. It must not call back into the session.
type Listener func(Event)
