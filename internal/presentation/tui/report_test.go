package tui

import (
	"bytes"
	"testing"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/stretchr/testify/assert"
)

func TestBuildReport(t *testing.T) {
	result := flow.Build([]domain.Page{
		{ID: "A", Name: "Start | here", ConditionalLogic: &domain.ConditionalLogic{TruePageID: "C", FalsePageID: "ghost"}},
		{ID: "B"},
		{ID: "C"},
	})

	out := BuildReport("Survey", result)
	assert.Contains(t, out, "# Survey")
	assert.Contains(t, out, "| `A` | Start \\| here | `C` | - |")
	assert.Contains(t, out, "orphaned page `B`")
	assert.Contains(t, out, "unknown page `ghost`")

	clean := BuildReport("Linear", flow.Build([]domain.Page{{ID: "A"}, {ID: "B"}}))
	assert.Contains(t, clean, "| `B` |  | submit | `A` |")
	assert.Contains(t, clean, "No anomalies.")
}

func TestLintReport(t *testing.T) {
	report := flow.Lint([]domain.Page{{ID: "A"}, {ID: "A"}})
	out := LintReport("Lint", report)
	assert.Contains(t, out, "**error** "+flow.CodeDuplicatePage)

	assert.Contains(t, LintReport("Lint", &flow.Report{}), "No issues.")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|_| |_|")
}
