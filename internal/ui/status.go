package ui

import (
	"io"

	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

// SetColor(false) turns colour off for status lines and switches to the
// mono theme. SetColor(true) leaves terminal detection in charge.
func SetColor(enabled bool) {
	if enabled {
		return
	}
	color.NoColor = true
	SetTheme("mono")
}

// OK prints a success line.
func OK(w io.Writer, msg string) { okColor.Fprintln(w, "✔ "+msg) }

// Fail prints an error line.
func Fail(w io.Writer, msg string) { failColor.Fprintln(w, "✖ "+msg) }
