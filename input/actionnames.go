package input

import "fmt"

// actionRegistry maps canonical action names to actions
// Used by the [input] config section to resolve binding names
var actionRegistry = map[string]Action{
	"none":        ActionNone,
	"left":        ActionLeft,
	"right":       ActionRight,
	"climb":       ActionClimb,
	"fall":        ActionFall,
	"accelerate":  ActionAccelerate,
	"decelerate":  ActionDecelerate,
	"fire":        ActionFire,
	"quit":        ActionQuit,
	"toggle_help": ActionToggleHelp,
	"toggle_mute": ActionToggleMute,
}

// ParseAction resolves a config action name
func ParseAction(name string) (Action, error) {
	a, ok := actionRegistry[name]
	if !ok {
		return ActionNone, fmt.Errorf("unknown action %q", name)
	}
	return a, nil
}
