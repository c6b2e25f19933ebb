// Package render draws the game world and menus onto a terminal screen.
package render

import "github.com/nsf/termbox-go"

// Screen abstracts the terminal surface so the Drawer can be tested
// against an in-memory implementation.
type Screen interface {
	// Size returns the current width and height in cells.
	Size() (int, int)
	// SetCell puts a rune with attributes at the given cell.
	SetCell(x, y int, ch rune, fg, bg termbox.Attribute)
	// Clear wipes the whole surface.
	Clear()
	// Flush makes the drawn frame visible.
	Flush() error
}

// TermboxScreen is the production Screen backed by termbox.
// termbox.Init must be called before use.
type TermboxScreen struct{}

// NewTermboxScreen returns a Screen over the termbox terminal.
func NewTermboxScreen() *TermboxScreen {
	return &TermboxScreen{}
}

func (s *TermboxScreen) Size() (int, int) {
	return termbox.Size()
}

func (s *TermboxScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {
	termbox.SetCell(x, y, ch, fg, bg)
}

func (s *TermboxScreen) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (s *TermboxScreen) Flush() error {
	return termbox.Flush()
}
