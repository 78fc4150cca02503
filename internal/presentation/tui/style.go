package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// Styler colours generated walks.
type Styler struct {
	out *termenv.Output
}

// NewStyler creates a styler writing escape codes only when color is set.
func NewStyler(w io.Writer, color bool) *Styler {
	return &Styler{out: NewOutput(w, color)}
}

// Heading styles the "Tweet 1:" / "Random Walk 1:" prefix.
func (s *Styler) Heading(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#a78bfa")).Bold().String()
}

// Terminal styles the state that ended a walk.
func (s *Styler) Terminal(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#34d399")).String()
}

// Error styles a walk that failed.
func (s *Styler) Error(text string) string {
	return s.out.String(text).Foreground(s.out.Color("#fb7185")).String()
}
