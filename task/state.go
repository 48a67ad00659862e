package task

import "sync/atomic"

// State is a Task's lifecycle state.
type State uint32

const (
	// Created indicates the task record exists but its thread has not yet
	// started running entry.
	Created State = iota
	// Running indicates the trampoline has started entry on its own thread.
	Running
	// Completed indicates entry returned an Ok result.
	Completed
	// Failed indicates entry returned an Err result.
	Failed
)

// String returns a human-readable name for the State.
func (s State) String() string {
	switch s {
	case Created:
		return "Created"
	case Running:
		return "Running"
	case Completed:
		return "Completed"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// fastState is a lock-free atomic state holder, adapted from
// eventloop.FastState: plain atomic loads and stores, no compare-and-swap
// and no transition validation; it trusts the caller to drive the state
// machine in the one direction it ever moves
// (Created → Running → {Completed|Failed}).
type fastState struct {
	v atomic.Uint32
}

func newFastState() *fastState {
	s := &fastState{}
	s.v.Store(uint32(Created))
	return s
}

func (s *fastState) Load() State { return State(s.v.Load()) }

func (s *fastState) Store(state State) { s.v.Store(uint32(state)) }

// IsTerminal reports whether the state is Completed or Failed.
func (s *fastState) IsTerminal() bool {
	state := s.Load()
	return state == Completed || state == Failed
}
