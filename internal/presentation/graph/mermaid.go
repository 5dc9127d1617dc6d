package graph

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/turing/pkg/machine"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	// CurrentStates are the states the live paths stopped in.
	CurrentStates []string
	Accepted      bool
}

// GenerateMermaid produces a Mermaid flowchart of the transition graph.
// It applies semantic styling:
// - Start: ((Circle))
// - Accept: (((Double circle)))
// - Reject: {{Hexagon}}
// - Default: [Rectangle]
// Transitions sharing source and target are merged into one edge whose label
// lists every read/write,move triple.
func GenerateMermaid(repr *machine.NonDeterministicRepresentation[string], overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	states := repr.States()
	for _, id := range slices.Sorted(maps.Keys(states)) {
		opener, closer := "[", "]"
		switch {
		case id == repr.AcceptingState():
			opener, closer = "(((", ")))"
		case id == repr.RejectingState():
			opener, closer = "{{", "}}"
		case id == repr.StartingState():
			opener, closer = "((", "))"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", sanitizeMermaidID(id), opener, escapeLabel(id), closer)
	}

	type edge struct{ from, to string }
	var (
		order  []edge
		labels = make(map[edge][]string)
	)
	for _, e := range repr.Table().Entries() {
		k := edge{e.State, e.Action.Next}
		if _, seen := labels[k]; !seen {
			order = append(order, k)
		}
		labels[k] = append(labels[k], fmt.Sprintf("%c/%c,%s", e.Read, e.Action.Write, e.Action.Move))
	}
	for _, k := range order {
		fmt.Fprintf(&sb, "    %s -- \"%s\" --> %s\n",
			sanitizeMermaidID(k.from), escapeLabel(strings.Join(labels[k], "<br/>")), sanitizeMermaidID(k.to))
	}

	if overlay != nil && len(overlay.CurrentStates) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef accepted fill:#c8e6c9,stroke:#2e7d32,stroke-width:4px,color:#000;\n")

		class := "current"
		if overlay.Accepted {
			class = "accepted"
		}
		seen := make(map[string]bool)
		for _, id := range overlay.CurrentStates {
			safeID := sanitizeMermaidID(id)
			if _, ok := states[id]; !ok || seen[safeID] {
				continue
			}
			seen[safeID] = true
			fmt.Fprintf(&sb, "    class %s %s;\n", safeID, class)
		}
	}

	return sb.String()
}

// sanitizeMermaidID also prefixes every ID so names like "end" stay legal.
func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return "s_" + s
}

// escapeLabel keeps symbols such as quotes from closing the Mermaid label.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
