package status

import "github.com/lixenwraith/flanker/parameter"

// Debouncer rate-limits the boundary label to one change per window
// The counter advances on every observed frame; the label is rewritten only
// on the frame where the counter exceeds the window, then the counter restarts
type Debouncer struct {
	window  int
	counter int
	text    string
}

// NewDebouncer creates a debouncer that refreshes after more than window frames
func NewDebouncer(window int) *Debouncer {
	return &Debouncer{window: window}
}

// Observe feeds one frame's edge state and returns the label and whether it was rewritten
func (d *Debouncer) Observe(atEdge bool) (string, bool) {
	if d.counter <= d.window {
		d.counter++
		return d.text, false
	}

	d.counter = 0
	if atEdge {
		d.text = parameter.StatusTextEdge
	} else {
		d.text = parameter.StatusTextOK
	}
	return d.text, true
}

// Text returns the currently displayed label, empty before the first refresh
func (d *Debouncer) Text() string {
	return d.text
}
