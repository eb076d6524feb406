package input

// Action is a semantic control bound to one or more keys
type Action uint8

const (
	ActionNone Action = iota

	// Flight controls, held while the key repeats
	ActionLeft
	ActionRight
	ActionClimb
	ActionFall
	ActionAccelerate
	ActionDecelerate
	ActionFire

	// One-shot system actions
	ActionQuit
	ActionToggleHelp
	ActionToggleMute
)

// IsFlag reports whether the action maps onto a held flight flag
func (a Action) IsFlag() bool {
	return a >= ActionLeft && a <= ActionFire
}

// String returns the canonical config name
func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a {
			return name
		}
	}
	return "none"
}
