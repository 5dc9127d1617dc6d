package tui

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/machine"
)

// RenderTransitions prints the transition table of repr, one row per choice.
// With markdown set the table is written as GitHub flavored markdown.
func RenderTransitions(w io.Writer, repr *machine.NonDeterministicRepresentation[string], markdown bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"State", "Read", "Next", "Write", "Move"})

	for _, e := range repr.Table().Entries() {
		t.AppendRow(table.Row{marked(repr, e.State), string(e.Read), marked(repr, e.Action.Next), string(e.Action.Write), e.Action.Move.String()})
	}
	t.AppendFooter(table.Row{"", "", "", "Alphabet", string(repr.Alphabet())})

	if markdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// RenderStates prints every state with its classification.
func RenderStates(w io.Writer, repr *machine.NonDeterministicRepresentation[string]) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"State", "Class"})

	states := repr.States()
	for _, id := range slices.Sorted(maps.Keys(states)) {
		t.AppendRow(table.Row{marked(repr, id), states[id].String()})
	}
	t.Render()
}

// RenderRuns prints a summary line per record.
func RenderRuns(w io.Writer, records []*domain.RunRecord, markdown bool) {
	if len(records) == 0 {
		fmt.Fprintln(w, "(0 runs)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Machine", "Mode", "Input", "Outcome", "Steps", "Created"})
	for _, r := range records {
		t.AppendRow(table.Row{r.ID, r.Machine, r.Mode, r.Input, r.Outcome(), r.Steps, r.CreatedAt.Format("2006-01-02 15:04:05")})
	}

	if markdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
	fmt.Fprintf(w, "(%d runs)\n", len(records))
}

// marked prefixes the starting state with an arrow.
func marked(repr *machine.NonDeterministicRepresentation[string], id string) string {
	if id == repr.StartingState() {
		return "→ " + id
	}
	return id
}
