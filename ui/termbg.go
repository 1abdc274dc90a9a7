package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// HasDarkBackground reports whether the terminal already uses a dark
// background. Light terminals keep their own background so the theme's dark
// base doesn't clash with their foreground defaults.
func HasDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// SetTerminalBackground emits OSC 11 to set the terminal's default background
// color and returns a function that restores the original default via OSC 111.
// With the default changed, every ANSI reset falls back to the theme base
// color instead of the terminal's configured background.
func SetTerminalBackground(hexColor string) func() {
	return setTermBg(os.Stdout, hexColor)
}

func setTermBg(w io.Writer, hexColor string) func() {
	if hexColor == "" {
		return func() {}
	}
	fmt.Fprintf(w, "\033]11;%s\033\\", hexColor)

	return func() {
		fmt.Fprint(w, "\033]111\033\\")
	}
}
