package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/markov/pkg/chain"
)

// Overlay contains a walk to highlight on the graph.
type Overlay struct {
	Visited []chain.StateID
	Current chain.StateID
}

// GenerateMermaid produces a Mermaid flowchart of a chain.
// It applies semantic styling:
// - Terminal: ((Circle))
// - Dead end (non-terminal without successors): [/Parallelogram/]
// - Default: [Rectangle]
// Edges are labelled with their observation count over the source's total weight.
// A nil label renders payloads with fmt.Sprint.
func GenerateMermaid[T any](c *chain.Chain[T], label func(T) string, overlay *Overlay) string {
	if label == nil {
		label = func(v T) string { return fmt.Sprint(v) }
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for id, payload := range c.States() {
		edges := c.Edges(id)

		opener, closer := "[", "]"
		switch {
		case c.IsTerminal(id):
			opener, closer = "((", "))"
		case len(edges) == 0:
			opener, closer = "[/", "/]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", nodeID(id), opener, escapeLabel(label(payload)), closer)

		total := c.TotalWeight(id)
		for _, e := range edges {
			arrow := "-->"
			if len(edges) > 1 {
				arrow = fmt.Sprintf("-- \"%d/%d\" -->", e.Count, total)
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", nodeID(id), arrow, nodeID(e.To))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[chain.StateID]bool)
		for _, id := range overlay.Visited {
			if seen[id] || id == chain.NoState {
				continue
			}
			seen[id] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(id))
		}
		if overlay.Current != chain.NoState {
			fmt.Fprintf(&sb, "    class %s current;\n", nodeID(overlay.Current))
		}
	}

	return sb.String()
}

func nodeID(id chain.StateID) string {
	return fmt.Sprintf("s%d", int(id))
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.ReplaceAll(s, "\n", " ")
}
