package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/turing/internal/config"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/internal/presentation/tui"
)

// Validate parses path and builds its representation in the configured mode.
func (a *App) Validate(path string) error {
	sim, err := a.load(path)
	if err != nil {
		return err
	}
	repr := sim.Representation()
	fmt.Fprintf(a.Stdout, "%s is a valid %s machine: %d states, %d symbols, %d transitions\n",
		sim.Name, sim.Mode(), len(repr.States()), len(repr.Alphabet()), len(repr.Table().Entries()))
	return nil
}

// Graph prints the Mermaid transition graph of path. When tape is non-nil the
// machine is run on it first and its final states are highlighted.
func (a *App) Graph(ctx context.Context, path string, tape *string) error {
	sim, err := a.load(path)
	if err != nil {
		return err
	}

	var overlay *graph.GraphOverlay
	if tape != nil {
		rec, err := sim.Run(ctx, *tape)
		if err != nil {
			return err
		}
		overlay = &graph.GraphOverlay{CurrentStates: rec.States, Accepted: rec.Accepted}
	}

	_, err = fmt.Fprint(a.Stdout, graph.GenerateMermaid(sim.Representation(), overlay))
	return ioError(err)
}

// Table prints the states and the transition table of path.
func (a *App) Table(path string) error {
	sim, err := a.load(path)
	if err != nil {
		return err
	}
	repr := sim.Representation()

	markdown := a.Config.Output == config.OutputMarkdown
	if !markdown {
		tui.RenderStates(a.Stdout, repr)
	}
	tui.RenderTransitions(a.Stdout, repr, markdown)
	return nil
}
