package flow

import (
	"log/slog"

	"github.com/aretw0/canova/internal/logging"
	"github.com/aretw0/canova/pkg/domain"
)

// Branch names the side of a conditional rule.
type Branch string

const (
	BranchTrue  Branch = "true"
	BranchFalse Branch = "false"
)

// Conflict records a branch whose target page was already claimed by
// another page (or is the entry page). The branch edge is dropped.
type Conflict struct {
	PageID   string `json:"pageId"`
	Branch   Branch `json:"branch"`
	TargetID string `json:"targetId"`
	// ClaimedBy is the page that owns the target. Empty when the target is the entry page.
	ClaimedBy string `json:"claimedBy"`
}

// DanglingRef records a branch pointing to a page that does not exist.
type DanglingRef struct {
	PageID   string `json:"pageId"`
	Branch   Branch `json:"branch"`
	TargetID string `json:"targetId"`
}

// BuildResult is the outcome of a graph build.
type BuildResult struct {
	// Pages is a copy of the input with NextPageID/PrevPageID recomputed.
	Pages []domain.Page `json:"pages"`
	// Orphans are non-entry pages no edge leads to.
	Orphans   []string      `json:"orphans"`
	Conflicts []Conflict    `json:"conflicts"`
	Dangling  []DanglingRef `json:"dangling"`
}

// Clean reports whether the build found no anomaly.
func (r *BuildResult) Clean() bool {
	return len(r.Orphans) == 0 && len(r.Conflicts) == 0 && len(r.Dangling) == 0
}

type buildConfig struct {
	logger *slog.Logger
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

// WithLogger sets the logger receiving orphan warnings and the flow summary.
func WithLogger(logger *slog.Logger) BuildOption {
	return func(c *buildConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Build derives the navigation graph of a form from its pages.
//
// Conditional branches are expanded first, depth first from the entry page: a branch
// target is claimed by the first page reaching it, and a claimed page (including the
// entry page, which is claimed up front) is never the target of another edge. Pages
// are then visited in order. A page reached from the entry whose branches were not
// expanded yet is expanded, and a page still without an outgoing edge is linked to
// the first later page nobody claimed. Cycles, conflicting claims and references to
// unknown pages never fail the build; they are reported in the result and logged.
//
// The input slice is not modified.
func Build(pages []domain.Page, opts ...BuildOption) *BuildResult {
	cfg := buildConfig{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := newTraversal(pages)
	if len(t.pages) == 0 {
		return t.result
	}

	entry := t.pages[0].ID
	t.claimed[entry] = ""
	t.reached[entry] = true

	t.expand(entry)
	t.linkLinear()

	for i := range t.pages {
		t.pages[i].NextPageID = dedupe(t.pages[i].NextPageID)
		t.pages[i].PrevPageID = dedupe(t.pages[i].PrevPageID)
	}

	for _, p := range t.pages[1:] {
		if _, ok := t.claimed[p.ID]; !ok {
			t.result.Orphans = append(t.result.Orphans, p.ID)
		}
	}

	t.report(cfg.logger)
	return t.result
}

// traversal owns the mutable state of a single build.
type traversal struct {
	pages   []domain.Page
	index   map[string]int
	claimed map[string]string // target page -> claiming page
	visited map[string]bool
	reached map[string]bool // claimed through a chain starting at the entry page
	result  *BuildResult
}

func newTraversal(pages []domain.Page) *traversal {
	t := &traversal{
		pages:   domain.ClonePages(pages),
		index:   make(map[string]int, len(pages)),
		claimed: make(map[string]string, len(pages)),
		visited: make(map[string]bool, len(pages)),
		reached: make(map[string]bool, len(pages)),
		result: &BuildResult{
			Orphans:   []string{},
			Conflicts: []Conflict{},
			Dangling:  []DanglingRef{},
		},
	}
	for i := range t.pages {
		t.pages[i].NextPageID = []string{}
		t.pages[i].PrevPageID = []string{}
		// first occurrence wins on duplicate ids
		if _, dup := t.index[t.pages[i].ID]; !dup {
			t.index[t.pages[i].ID] = i
		}
	}
	if t.pages == nil {
		t.pages = []domain.Page{}
	}
	t.result.Pages = t.pages
	return t
}

type phase uint8

const (
	phaseEnter phase = iota
	phaseTrue
	phaseFalse
)

type frame struct {
	pageID string
	depth  int
	phase  phase
}

// expand walks conditional branches depth first from seed. The true branch of a
// page is fully expanded before its false branch is considered.
func (t *traversal) expand(seed string) {
	limit := len(t.pages)
	stack := []frame{{pageID: seed}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		switch top.phase {
		case phaseEnter:
			if top.depth > limit || t.visited[top.pageID] {
				stack = stack[:len(stack)-1]
				continue
			}
			t.visited[top.pageID] = true

			idx, ok := t.index[top.pageID]
			if !ok || t.pages[idx].ConditionalLogic == nil {
				stack = stack[:len(stack)-1]
				continue
			}
			top.phase = phaseTrue

		case phaseTrue:
			top.phase = phaseFalse
			if target, ok := t.claimBranch(top.pageID, BranchTrue); ok {
				stack = append(stack, frame{pageID: target, depth: top.depth + 1})
			}

		case phaseFalse:
			id, depth := top.pageID, top.depth
			stack = stack[:len(stack)-1]
			if target, ok := t.claimBranch(id, BranchFalse); ok {
				stack = append(stack, frame{pageID: target, depth: depth + 1})
			}
		}
	}
}

// claimBranch links pageID to its branch target if the target exists and is unclaimed.
func (t *traversal) claimBranch(pageID string, branch Branch) (string, bool) {
	from := t.index[pageID]
	logic := t.pages[from].ConditionalLogic

	target := logic.TruePageID
	if branch == BranchFalse {
		target = logic.FalsePageID
	}
	if target == "" {
		return "", false
	}

	to, ok := t.index[target]
	if !ok {
		t.result.Dangling = append(t.result.Dangling, DanglingRef{
			PageID:   pageID,
			Branch:   branch,
			TargetID: target,
		})
		return "", false
	}

	if owner, taken := t.claimed[target]; taken {
		t.result.Conflicts = append(t.result.Conflicts, Conflict{
			PageID:    pageID,
			Branch:    branch,
			TargetID:  target,
			ClaimedBy: owner,
		})
		return "", false
	}

	t.link(from, to)
	t.claimed[target] = pageID
	t.reached[target] = true
	return target, true
}

// linkLinear walks the pages in order. Reached pages with unexpanded branches are
// expanded, then every page without an outgoing edge is connected to the first
// later page nobody claimed. The last page is never linked.
func (t *traversal) linkLinear() {
	for i := range t.pages {
		p := &t.pages[i]
		if t.reached[p.ID] && p.ConditionalLogic != nil && !t.visited[p.ID] {
			t.expand(p.ID)
		}
		if i == len(t.pages)-1 || len(p.NextPageID) > 0 {
			continue
		}
		for j := i + 1; j < len(t.pages); j++ {
			id := t.pages[j].ID
			if _, taken := t.claimed[id]; taken {
				continue
			}
			t.link(i, j)
			t.claimed[id] = p.ID
			t.reached[id] = t.reached[p.ID]
			break
		}
	}
}

func (t *traversal) link(from, to int) {
	t.pages[from].NextPageID = append(t.pages[from].NextPageID, t.pages[to].ID)
	t.pages[to].PrevPageID = append(t.pages[to].PrevPageID, t.pages[from].ID)
}

func (t *traversal) report(logger *slog.Logger) {
	r := t.result
	if len(r.Orphans) > 0 {
		logger.Warn("Orphaned pages detected", "orphans", r.Orphans)
	}
	for _, c := range r.Conflicts {
		logger.Warn("Branch target already claimed",
			"page_id", c.PageID,
			"branch", c.Branch,
			"target_id", c.TargetID,
			"claimed_by", c.ClaimedBy,
		)
	}
	for _, d := range r.Dangling {
		logger.Warn("Branch target does not exist",
			"page_id", d.PageID,
			"branch", d.Branch,
			"target_id", d.TargetID,
		)
	}
	for _, p := range t.pages {
		logger.Debug("Flow page",
			"page_id", p.ID,
			"name", p.Name,
			"next", p.NextPageID,
			"conditional", p.ConditionalLogic != nil,
			"terminal", p.IsTerminal(),
		)
	}
}

func dedupe(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
