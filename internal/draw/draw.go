// Package draw renders to a terminal with ANSI escapes and a half-block
// color canvas. It knows nothing about the game; callers hand it boxes.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Color is a 24-bit terminal color.
type Color struct {
	R, G, B uint8
}

// RGB builds a color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Common UI colors.
var (
	White  = RGB(235, 235, 235)
	Gray   = RGB(130, 130, 130)
	Red    = RGB(230, 60, 50)
	Gold   = RGB(255, 215, 60)
	Green  = RGB(60, 220, 120)
)

// ClearScreen clears the terminal and moves the cursor to the top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// ResetStyle clears any active colors.
func ResetStyle(w io.Writer) {
	fmt.Fprint(w, "\033[0m")
}

// TermSizeFunc returns the current terminal dimensions. Injected so SSH
// sessions can report their PTY window instead of the local terminal.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the local terminal size from stdout.
func DefaultTermSizeFunc() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
