package render

import "github.com/gdamore/tcell/v2"

// Surface is the subset of tcell.Screen the renderer draws on
type Surface interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// drawText writes s starting at (x, y), clipped to the surface width
func drawText(s Surface, x, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			s.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
