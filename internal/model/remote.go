package model

// RemoteState classifies a value fetched from the network.
type RemoteState int

const (
	// StatePending: a fetch is dispatched but has not completed.
	StatePending RemoteState = iota
	// StateReady: the fetch succeeded and the value is available.
	StateReady
	// StateError: the fetch failed; only a display message remains.
	StateError
)

// RemoteValue is the load state of a value fetched from the network.
// Pending and Error carry no value; Error carries a short message
// suitable for rendering in place of the value.
type RemoteValue[T any] struct {
	state RemoteState
	value T
	err   string
}

// Pending returns a value awaiting a remote result.
func Pending[T any]() RemoteValue[T] {
	return RemoteValue[T]{state: StatePending}
}

// Ready wraps a successfully fetched value.
func Ready[T any](value T) RemoteValue[T] {
	return RemoteValue[T]{state: StateReady, value: value}
}

// Errored records a failed fetch with its display message.
func Errored[T any](message string) RemoteValue[T] {
	return RemoteValue[T]{state: StateError, err: message}
}

// State returns the load state.
func (v RemoteValue[T]) State() RemoteState { return v.state }

// Value returns the fetched value and whether it is ready.
func (v RemoteValue[T]) Value() (T, bool) {
	return v.value, v.state == StateReady
}

// ErrMessage returns the display message for a failed fetch.
func (v RemoteValue[T]) ErrMessage() string { return v.err }
