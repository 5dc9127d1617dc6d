package tui

import (
	"github.com/muesli/termenv"

	"github.com/aretw0/turing/pkg/domain"
)

// Outcome colors the verdict of rec: green when accepted, yellow when the
// step limit stopped the run, red otherwise.
func Outcome(rec *domain.RunRecord) string {
	p := termenv.ColorProfile()
	s := termenv.String(rec.Outcome())
	switch {
	case rec.Accepted:
		return s.Foreground(p.Color("#22c55e")).Bold().String()
	case rec.Limited:
		return termenv.String(rec.Outcome() + " (step limit)").Foreground(p.Color("#eab308")).Bold().String()
	default:
		return s.Foreground(p.Color("#ef4444")).Bold().String()
	}
}
