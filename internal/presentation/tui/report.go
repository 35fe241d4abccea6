package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/canova/pkg/flow"
)

// BuildReport formats a flow build as markdown: the derived edges of every
// page followed by the anomalies the builder found.
func BuildReport(title string, result *flow.BuildResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)

	sb.WriteString("| Page | Name | Next | Previous |\n|---|---|---|---|\n")
	for _, p := range result.Pages {
		fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n", p.ID, escape(p.Name), ids(p.NextPageID, "submit"), ids(p.PrevPageID, "-"))
	}

	if result.Clean() {
		sb.WriteString("\nNo anomalies.\n")
		return sb.String()
	}

	sb.WriteString("\n## Anomalies\n\n")
	for _, id := range result.Orphans {
		fmt.Fprintf(&sb, "- orphaned page `%s`\n", id)
	}
	for _, c := range result.Conflicts {
		owner := "the entry page"
		if c.ClaimedBy != "" {
			owner = fmt.Sprintf("`%s`", c.ClaimedBy)
		}
		fmt.Fprintf(&sb, "- `%s` %s branch to `%s` dropped, already claimed by %s\n", c.PageID, c.Branch, c.TargetID, owner)
	}
	for _, d := range result.Dangling {
		fmt.Fprintf(&sb, "- `%s` %s branch points to unknown page `%s`\n", d.PageID, d.Branch, d.TargetID)
	}
	return sb.String()
}

// LintReport formats lint issues as markdown.
func LintReport(title string, report *flow.Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", title)
	if len(report.Issues) == 0 {
		sb.WriteString("No issues.\n")
		return sb.String()
	}
	for _, i := range report.Issues {
		page := ""
		if i.PageID != "" {
			page = fmt.Sprintf(" `%s`", i.PageID)
		}
		fmt.Fprintf(&sb, "- **%s** %s%s: %s\n", i.Severity, i.Code, page, escape(i.Message))
	}
	return sb.String()
}

func ids(list []string, empty string) string {
	if len(list) == 0 {
		return empty
	}
	quoted := make([]string, len(list))
	for i, id := range list {
		quoted[i] = "`" + id + "`"
	}
	return strings.Join(quoted, ", ")
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
