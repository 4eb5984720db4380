// Package game provides the main game loop and screen flow.
package game

// State represents the current top-level screen.
type State int

const (
	// StateTitle shows the title; taps are ignored for the title delay.
	StateTitle State = iota
	// StateShuffle plays the deck shuffle before a run.
	StateShuffle
	// StateRoom is the game room, driven by the encounter state machine.
	StateRoom
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateShuffle:
		return "shuffle"
	case StateRoom:
		return "room"
	default:
		return "unknown"
	}
}
