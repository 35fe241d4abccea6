package flow

import (
	"fmt"

	"github.com/aretw0/canova/pkg/domain"
)

// Severity ranks lint issues.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue codes reported by Lint.
const (
	CodeDuplicatePage   = "duplicate_page"
	CodeEmptyPageID     = "empty_page_id"
	CodeDanglingTarget  = "dangling_target"
	CodeSelfTarget      = "self_target"
	CodeSameTargets     = "same_targets"
	CodeUnknownQuestion = "unknown_question"
	CodeForwardQuestion = "forward_question"
	CodeClaimConflict   = "claim_conflict"
	CodeOrphan          = "orphan"
	CodeUnreachable     = "unreachable"
)

// Issue is a single finding of Lint.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	PageID   string   `json:"pageId,omitempty"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.PageID, i.Message)
}

// Report is the outcome of Lint.
type Report struct {
	Issues []Issue `json:"issues"`
}

// HasErrors reports whether any issue has error severity.
func (r *Report) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r *Report) add(sev Severity, code, pageID, format string, args ...any) {
	r.Issues = append(r.Issues, Issue{
		Severity: sev,
		Code:     code,
		PageID:   pageID,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Lint checks a form's pages more strictly than Build, which tolerates every
// malformed reference. It is meant for editors and CI, not for the fill path.
func Lint(pages []domain.Page) *Report {
	report := &Report{Issues: []Issue{}}

	seen := make(map[string]bool, len(pages))
	for _, p := range pages {
		switch {
		case p.ID == "":
			report.add(SeverityError, CodeEmptyPageID, "", "page %q has no id", p.Name)
		case seen[p.ID]:
			report.add(SeverityError, CodeDuplicatePage, p.ID, "page id is used more than once")
		}
		seen[p.ID] = true
	}

	// questions available at each page: its own and those of every earlier page
	asked := make(map[string]bool)
	for _, p := range pages {
		for _, q := range p.Questions() {
			asked[q.ID] = true
		}
		logic := p.ConditionalLogic
		if logic == nil {
			continue
		}

		for _, target := range []string{logic.TruePageID, logic.FalsePageID} {
			if target != "" && !seen[target] {
				report.add(SeverityError, CodeDanglingTarget, p.ID, "branch targets unknown page %q", target)
			}
		}
		if p.ID != "" && (logic.TruePageID == p.ID || logic.FalsePageID == p.ID) {
			report.add(SeverityWarning, CodeSelfTarget, p.ID, "branch targets its own page")
		}
		if logic.TruePageID != "" && logic.TruePageID == logic.FalsePageID {
			report.add(SeverityWarning, CodeSameTargets, p.ID, "true and false branches target the same page")
		}

		for _, c := range logic.Conditions {
			if asked[c.QuestionID] {
				continue
			}
			if questionExists(pages, c.QuestionID) {
				report.add(SeverityWarning, CodeForwardQuestion, p.ID, "condition uses question %q from a later page", c.QuestionID)
			} else {
				report.add(SeverityError, CodeUnknownQuestion, p.ID, "condition uses unknown question %q", c.QuestionID)
			}
		}
	}

	result := Build(pages)
	for _, c := range result.Conflicts {
		if c.TargetID == c.PageID || c.ClaimedBy == c.PageID {
			continue // already reported above
		}
		owner := c.ClaimedBy
		if owner == "" {
			owner = "the entry page"
		}
		report.add(SeverityWarning, CodeClaimConflict, c.PageID,
			"%s branch to %q dropped, already claimed by %s", c.Branch, c.TargetID, owner)
	}
	for _, id := range result.Orphans {
		report.add(SeverityWarning, CodeOrphan, id, "no page leads here")
	}
	orphaned := make(map[string]bool, len(result.Orphans))
	for _, id := range result.Orphans {
		orphaned[id] = true
	}
	for _, id := range Unreachable(result.Pages) {
		if !orphaned[id] {
			report.add(SeverityWarning, CodeUnreachable, id, "only reachable from orphaned pages")
		}
	}

	return report
}

// Unreachable returns pages that cannot be reached from the first page by
// following NextPageID edges, in page order.
func Unreachable(pages []domain.Page) []string {
	if len(pages) == 0 {
		return nil
	}
	byID := make(map[string]*domain.Page, len(pages))
	for i := range pages {
		if _, dup := byID[pages[i].ID]; !dup {
			byID[pages[i].ID] = &pages[i]
		}
	}

	visited := make(map[string]bool)
	queue := []string{pages[0].ID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited[current] {
			continue
		}
		visited[current] = true

		page, ok := byID[current]
		if !ok {
			continue
		}
		for _, next := range page.NextPageID {
			if !visited[next] {
				queue = append(queue, next)
			}
		}
	}

	var out []string
	for _, p := range pages {
		if !visited[p.ID] {
			out = append(out, p.ID)
		}
	}
	return out
}

func questionExists(pages []domain.Page, id string) bool {
	for i := range pages {
		if _, ok := pages[i].Question(id); ok {
			return true
		}
	}
	return false
}
