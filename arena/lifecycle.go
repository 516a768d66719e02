// lifecycle.go tracks the process-wide arena's state machine and the
// wall-clock-free history of transitions between its states. Adapted from
// the teacher's key-lifecycle.go, which tracked a key-custody state machine
// (Uninitialized -> Initializing -> Ready -> Retired); repointed here at the
// arena singleton's own lifecycle (spec.md §4.F, §7).
package arena

// State names a stage in the process-wide arena's lifecycle.
type State int

const (
	// Uninitialized is the starting state: no arena has been built yet.
	Uninitialized State = iota
	// Initializing means Initialize has been called and the fill loop is
	// in progress; concurrent Initialize calls during this window still
	// observe ErrAlreadyInitialized because the mutex serializes them.
	Initializing
	// Ready means the arena is built, frozen, and available via Instance.
	Ready
	// TornDown means Teardown released the arena; the subsystem returns to
	// Uninitialized immediately afterward, but the transition is recorded
	// here for diagnostics.
	TornDown
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Ready:
		return "ready"
	case TornDown:
		return "torn-down"
	default:
		return "unknown"
	}
}

var transitions []State

// recordTransition appends a new state to the in-memory lifecycle history.
// Callers already hold globalMu, so no further synchronization is needed.
func recordTransition(s State) {
	transitions = append(transitions, s)
}

// Lifecycle reports the current arena state and the full transition history
// observed since process start, for the CLI's info subcommand.
func Lifecycle() (current State, history []State) {
	globalMu.Lock()
	defer globalMu.Unlock()
	current = globalState
	history = make([]State, len(transitions))
	copy(history, transitions)
	return current, history
}
