// Package booking models one booking attempt as an explicit state machine.
// The TUI drives it: Start gates the network call on a non-empty selection,
// Succeed/Fail record the outcome, and a failed attempt returns to Idle with
// the selection intact so the user can retry without re-picking seats.
package booking

import "errors"

type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrEmptySelection rejects a submission with no seats before any network
// call is made.
var ErrEmptySelection = errors.New("select at least one seat")

// ErrAlreadySubmitting rejects a duplicate confirm while a request is in
// flight, so a double press cannot issue two reservations.
var ErrAlreadySubmitting = errors.New("booking already in progress")

type Flow struct {
	state State
	err   error
}

func NewFlow() *Flow {
	return &Flow{state: Idle}
}

func (f *Flow) State() State {
	return f.state
}

// Err returns the failure recorded by Fail, or nil.
func (f *Flow) Err() error {
	return f.err
}

// InFlight reports whether a submission is outstanding; the confirm control
// stays disabled while it is.
func (f *Flow) InFlight() bool {
	return f.state == Submitting
}

// Start moves Idle (or a retried Failed) to Submitting. An empty selection
// never leaves Idle.
func (f *Flow) Start(selectedSeats int) error {
	if f.state == Submitting {
		return ErrAlreadySubmitting
	}
	if selectedSeats <= 0 {
		return ErrEmptySelection
	}
	f.state = Submitting
	f.err = nil
	return nil
}

// Succeed records a completed reservation. The caller clears the selection
// and navigates away.
func (f *Flow) Succeed() {
	if f.state != Submitting {
		return
	}
	f.state = Succeeded
	f.err = nil
}

// Fail records the error and returns the flow to a retryable state. The
// caller keeps the selection.
func (f *Flow) Fail(err error) {
	if f.state != Submitting {
		return
	}
	f.state = Failed
	f.err = err
}

// Reset returns to Idle for a fresh attempt.
func (f *Flow) Reset() {
	f.state = Idle
	f.err = nil
}
