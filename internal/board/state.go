// internal/board/state.go
package board

import "github.com/rovshanmuradov/dealboard/internal/deal"

// Phase is the visual state derived from a State.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseLoaded
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// State is a snapshot of what the board displays. It is treated as a
// value: transitions return a new State and never modify the receiver.
type State struct {
	Deals   []deal.Deal
	Loading bool
	Error   string
}

// Initial is the state before the first refresh completes.
func Initial() State {
	return State{
		Deals:   []deal.Deal{},
		Loading: true,
	}
}

// Phase resolves the three mutually exclusive display states.
func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case s.Error != "":
		return PhaseError
	default:
		return PhaseLoaded
	}
}

func (s State) loading() State {
	return State{
		Deals:   s.Deals,
		Loading: true,
	}
}

func (s State) failed(msg string) State {
	if msg == "" {
		msg = "unknown error"
	}
	return State{
		Deals: s.Deals,
		Error: msg,
	}
}

func loaded(deals []deal.Deal) State {
	if deals == nil {
		deals = []deal.Deal{}
	}
	return State{Deals: deals}
}
