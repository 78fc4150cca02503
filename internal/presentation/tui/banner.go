package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the program banner with the version.
func PrintBanner(w io.Writer, version string, color bool) {
	out := NewOutput(w, color)
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	lines := []struct {
		text string
		hex  string
	}{
		{` _ __ ___   __ _ _ __| | _______   __`, "#818cf8"},
		{`| '_ ' _ \ / _' | '__| |/ / _ \ \ / /`, "#a78bfa"},
		{`| | | | | | (_| | |  |   < (_) \ V / `, "#e879f9"},
		{`|_| |_| |_|\__,_|_|  |_|\_\___/ \_/  `, "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.hex)))
	}
	fmt.Fprintf(w, "%s\n\n", out.String("v"+strings.TrimSpace(version)).Faint())
}

// NewOutput wraps w in a termenv output.
// Without color every style renders as plain text.
func NewOutput(w io.Writer, color bool) *termenv.Output {
	if !color {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI256))
}
