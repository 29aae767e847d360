package models

import "errors"

// Error kinds reported by the action controller. None of them abort a tick:
// the caller logs the rejection and the day proceeds as if NoAction had been
// chosen.
var (
	// ErrUnknownState means the action names a state id the country does not own
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownBuilding means the action names a building absent from the state
	ErrUnknownBuilding = errors.New("unknown building")

	// ErrInvalidProductionMethod means a swap to a method the kind does not define
	ErrInvalidProductionMethod = errors.New("invalid production method")

	// ErrInvalidTransition means an upgrade or downgrade outside its legal window
	ErrInvalidTransition = errors.New("invalid transition")
)
