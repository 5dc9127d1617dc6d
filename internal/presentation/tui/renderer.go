package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/aretw0/turing/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Report renders rec as a markdown document.
func Report(rec *domain.RunRecord) string {
	var sb strings.Builder
	name := rec.Machine
	if name == "" {
		name = "machine"
	}
	fmt.Fprintf(&sb, "# %s: %s\n\n", name, rec.Outcome())
	fmt.Fprintf(&sb, "| Field | Value |\n| --- | --- |\n")
	fmt.Fprintf(&sb, "| Mode | %s |\n", rec.Mode)
	fmt.Fprintf(&sb, "| Input | `%s` |\n", rec.Input)
	fmt.Fprintf(&sb, "| Steps | %d |\n", rec.Steps)
	if rec.Mode == domain.ModeNonDeterministic {
		fmt.Fprintf(&sb, "| Paths | %d |\n", rec.Paths)
	}
	if len(rec.States) > 0 {
		fmt.Fprintf(&sb, "| Final states | %s |\n", strings.Join(rec.States, ", "))
	}
	if rec.Limited {
		sb.WriteString("\n> The step limit was reached before the machine halted.\n")
	}
	fmt.Fprintf(&sb, "\n```\n%s\n```\n", rec.Tape)
	return sb.String()
}
