package graph

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/canova/pkg/domain"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedPages []string
	CurrentPage  string
	Orphans      []string
}

// GenerateMermaid produces a Mermaid flowchart from pages whose navigation edges
// were derived by the flow builder.
// It applies semantic styling:
// - Entry page: ((Circle))
// - Branching page: {Rhombus}
// - Terminal page: ([Stadium])
// - Default: [Rectangle]
// Branch edges are labelled with their conditions. Overlay styles are applied if provided.
func GenerateMermaid(pages []domain.Page, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, page := range pages {
		safeID := sanitizeMermaidID(page.ID)

		opener, closer := "[", "]"
		switch {
		case i == 0:
			opener, closer = "((", "))"
		case page.ConditionalLogic != nil:
			opener, closer = "{", "}"
		case page.IsTerminal():
			opener, closer = "([", "])"
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label(page), closer))

		for _, to := range page.NextPageID {
			arrow := "-->"
			if text := edgeLabel(page.ConditionalLogic, to); text != "" {
				arrow = fmt.Sprintf("-- \"%s\" -->", text)
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, sanitizeMermaidID(to)))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef orphan fill:#ffebee,stroke:#c62828,stroke-dasharray:5 5,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, id := range overlay.VisitedPages {
			safeID := sanitizeMermaidID(id)
			if !visitedSet[safeID] && safeID != "" {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		for _, id := range overlay.Orphans {
			sb.WriteString(fmt.Sprintf("    class %s orphan;\n", sanitizeMermaidID(id)))
		}

		if overlay.CurrentPage != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(overlay.CurrentPage)))
		}
	}

	return sb.String()
}

func label(page domain.Page) string {
	name := strings.ReplaceAll(page.Name, "\"", "'")
	if name == "" || name == page.ID {
		return page.ID
	}
	return fmt.Sprintf("%s <br/> %s", name, page.ID)
}

// edgeLabel describes why a branching page leads to target. Linear edges get none.
func edgeLabel(logic *domain.ConditionalLogic, target string) string {
	if logic == nil {
		return ""
	}
	switch target {
	case logic.TruePageID:
		return conditionsText(logic.Conditions)
	case logic.FalsePageID:
		return "otherwise"
	}
	return ""
}

func conditionsText(conditions []domain.Condition) string {
	if len(conditions) == 0 {
		return "always"
	}
	parts := make([]string, 0, len(conditions))
	for _, c := range conditions {
		criteria := c.AnswerCriteria
		if criteria == "" {
			criteria = "*"
		}
		parts = append(parts, fmt.Sprintf("%s = %s", c.QuestionID, criteria))
	}
	slices.Sort(parts)
	return strings.ReplaceAll(strings.Join(parts, " AND "), "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
