package tether

// State represents the current state of a Loader.
type State int32

const (
	// StateAbsent indicates the source did not exist when the Loader was
	// created and no value has been loaded since.
	StateAbsent State = iota

	// StateHealthy indicates the last load succeeded.
	StateHealthy

	// StateDegraded indicates the last reload failed. The previous value
	// remains active.
	StateDegraded
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateHealthy:
		return "healthy"
	case StateDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// StopReason explains why a Loader stopped watching its source.
type StopReason int32

const (
	// ReasonUnreachable means the Loader was no longer referenced by anything
	// outside the watch.
	ReasonUnreachable StopReason = iota

	// ReasonClosed means Close was called on the Loader.
	ReasonClosed

	// ReasonDirectoryRemoved means the watched directory itself was removed or renamed.
	ReasonDirectoryRemoved

	// ReasonNotifierClosed means the notification stream ended.
	ReasonNotifierClosed
)

// String returns the string representation of the reason.
func (r StopReason) String() string {
	switch r {
	case ReasonUnreachable:
		return "unreachable"
	case ReasonClosed:
		return "closed"
	case ReasonDirectoryRemoved:
		return "directory_removed"
	case ReasonNotifierClosed:
		return "notifier_closed"
	default:
		return "unknown"
	}
}
