package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// recordingSurface is an in-memory Surface for renderer tests
type recordingSurface struct {
	w, h   int
	cells  map[[2]int]rune
	styles map[[2]int]tcell.Style
	shows  int
}

func newRecordingSurface(w, h int) *recordingSurface {
	s := &recordingSurface{w: w, h: h}
	s.Clear()
	return s
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

func (s *recordingSurface) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.cells[[2]int{x, y}] = primary
	s.styles[[2]int{x, y}] = style
}

func (s *recordingSurface) Clear() {
	s.cells = make(map[[2]int]rune)
	s.styles = make(map[[2]int]tcell.Style)
}

func (s *recordingSurface) Show() { s.shows++ }

// row returns the text of one surface row, unset cells as spaces
func (s *recordingSurface) row(y int) string {
	var b strings.Builder
	for x := 0; x < s.w; x++ {
		r, ok := s.cells[[2]int{x, y}]
		if !ok || r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *recordingSurface) count(glyph rune) int {
	n := 0
	for _, r := range s.cells {
		if r == glyph {
			n++
		}
	}
	return n
}
