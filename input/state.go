package input

// State is the set of flight flags sampled once per frame
// Value type: the flight model receives a copy and cannot mutate the latch
type State struct {
	Left       bool
	Right      bool
	Climb      bool
	Fall       bool
	Accelerate bool
	Decelerate bool
	Fire       bool
}

// Set assigns the flag for a flight action, non-flag actions are ignored
func (s *State) Set(a Action, v bool) {
	switch a {
	case ActionLeft:
		s.Left = v
	case ActionRight:
		s.Right = v
	case ActionClimb:
		s.Climb = v
	case ActionFall:
		s.Fall = v
	case ActionAccelerate:
		s.Accelerate = v
	case ActionDecelerate:
		s.Decelerate = v
	case ActionFire:
		s.Fire = v
	}
}

// Any reports whether any flag is set
func (s State) Any() bool {
	return s.Left || s.Right || s.Climb || s.Fall || s.Accelerate || s.Decelerate || s.Fire
}
