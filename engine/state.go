package engine

// State is the lifecycle state of an Engine.
type State int32

const (
	// StateUninitialized is the state before Run is called.
	StateUninitialized State = iota
	// StateInitializing is the state while the device is being acquired.
	StateInitializing
	// StateRunning is the state once the frame loop has started.
	StateRunning
	// StateFailed is the terminal state after initialization failed.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}
