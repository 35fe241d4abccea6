package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/canova"
	"github.com/aretw0/canova/internal/presentation/tui"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/dsl"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/spf13/cobra"
)

var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Inspect the page flow of a form file",
	Long:  `Builds, lints and walks the navigation graph of a form described in a JSON or YAML file.`,
}

var flowBuildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Derive next and previous pages and report anomalies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, result, err := buildFile(cmd, args[0])
		if err != nil {
			return err
		}
		if asJSON(cmd) {
			return writeJSON(cmd.OutOrStdout(), result)
		}
		return render(cmd.OutOrStdout(), tui.BuildReport(form.Title, result))
	},
}

var flowLintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Check a form for flow problems",
	Long:  `Reports unreachable pages, dead branches and conditions on unknown questions. Exits non-zero on errors.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := dsl.DecodeFile(args[0])
		if err != nil {
			return err
		}
		report := newEngine(cmd).Lint(form.Pages)
		if asJSON(cmd) {
			err = writeJSON(cmd.OutOrStdout(), report)
		} else {
			err = render(cmd.OutOrStdout(), tui.LintReport(form.Title, report))
		}
		if err != nil {
			return err
		}
		if report.HasErrors() {
			return errors.New("lint found errors")
		}
		return nil
	},
}

var flowNextCmd = &cobra.Command{
	Use:   "next <file>",
	Short: "Compute the page that follows a page for the given answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, result, err := buildFile(cmd, args[0])
		if err != nil {
			return err
		}
		form.Pages = result.Pages

		pageID, _ := cmd.Flags().GetString("page")
		if pageID == "" && len(form.Pages) > 0 {
			pageID = form.Pages[0].ID
		}
		answers := domain.Answers{}
		if raw, _ := cmd.Flags().GetString("answers"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &answers); err != nil {
				return fmt.Errorf("invalid answers: %w", err)
			}
		}

		var history flow.History
		step, err := newEngine(cmd).Next(cmd.Context(), form, pageID, answers, &history)
		var missing *domain.MissingAnswersError
		if errors.As(err, &missing) {
			return fmt.Errorf("page %s cannot be left, required questions unanswered: %v", missing.PageID, missing.QuestionIDs)
		}
		if err != nil {
			return err
		}

		if asJSON(cmd) {
			return writeJSON(cmd.OutOrStdout(), step)
		}
		if step.Terminal() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> submit\n", pageID)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s)\n", pageID, step.PageID, step.Reason)
		return nil
	},
}

var flowWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Lint a form file again every time it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		debounce, _ := cmd.Flags().GetDuration("debounce")
		lint := func() {
			form, err := dsl.DecodeFile(args[0])
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "! %v\n", err)
				return
			}
			report := newEngine(cmd).Lint(form.Pages)
			if asJSON(cmd) {
				err = writeJSON(cmd.OutOrStdout(), report)
			} else {
				err = render(cmd.OutOrStdout(), tui.LintReport(form.Title, report))
			}
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "! %v\n", err)
			}
		}

		changes, err := dsl.Watch(ctx, args[0], debounce)
		if err != nil {
			return err
		}
		lint()
		for range changes {
			fmt.Fprintf(cmd.ErrOrStderr(), "Change detected in '%s'.\n", args[0])
			lint()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(flowCmd)
	flowCmd.AddCommand(flowBuildCmd, flowLintCmd, flowNextCmd, flowWatchCmd)
	flowWatchCmd.Flags().Duration("debounce", dsl.DefaultWatchDebounce, "Quiet period before re-linting")
	flowCmd.PersistentFlags().Bool("json", false, "Print JSON instead of a report")

	flowNextCmd.Flags().String("page", "", "Page being left (defaults to the first page)")
	flowNextCmd.Flags().String("answers", "", `Answers as a JSON object, e.g. '{"q1":"yes"}'`)
}

func newEngine(cmd *cobra.Command) *canova.Engine {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = "warn"
	}
	return canova.New(canova.WithLogger(newLogger(level)))
}

func buildFile(cmd *cobra.Command, path string) (*domain.Form, *flow.BuildResult, error) {
	form, err := dsl.DecodeFile(path)
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return form, newEngine(cmd).Build(ctx, form.ID, form.Pages), nil
}

func asJSON(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func render(w io.Writer, markdown string) error {
	out, err := tui.NewRenderer()(markdown)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
