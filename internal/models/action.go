package models

// ActionKind enumerates the closed set of action variants. Values start at 1
// to keep the numeric encoding aligned with the policy feature vector, where
// 0 is reserved for "no action present".
type ActionKind int

const (
	ActionSwapMethod ActionKind = iota + 1
	ActionUpgrade
	ActionDowngrade
	ActionNone
)

// String returns a string representation of the action kind
func (k ActionKind) String() string {
	switch k {
	case ActionSwapMethod:
		return "SwapProductionMethod"
	case ActionUpgrade:
		return "Upgrade"
	case ActionDowngrade:
		return "Downgrade"
	case ActionNone:
		return "NoAction"
	default:
		return "Unknown"
	}
}

// AllActionKinds returns the action kinds in deterministic order
func AllActionKinds() []ActionKind {
	return []ActionKind{ActionSwapMethod, ActionUpgrade, ActionDowngrade, ActionNone}
}

// Action is an immutable value object describing one externally chosen
// perturbation of the economy. NewMethod is only meaningful for
// ActionSwapMethod and empty otherwise.
type Action struct {
	Kind         ActionKind
	StateID      string
	BuildingName string
	NewMethod    string
}

// SwapMethod builds a production-method swap action
func SwapMethod(stateID, buildingName, newMethod string) Action {
	return Action{Kind: ActionSwapMethod, StateID: stateID, BuildingName: buildingName, NewMethod: newMethod}
}

// Upgrade builds an upgrade action
func Upgrade(stateID, buildingName string) Action {
	return Action{Kind: ActionUpgrade, StateID: stateID, BuildingName: buildingName}
}

// Downgrade builds a downgrade action
func Downgrade(stateID, buildingName string) Action {
	return Action{Kind: ActionDowngrade, StateID: stateID, BuildingName: buildingName}
}

// NoAction builds the always-legal empty action
func NoAction(stateID, buildingName string) Action {
	return Action{Kind: ActionNone, StateID: stateID, BuildingName: buildingName}
}
