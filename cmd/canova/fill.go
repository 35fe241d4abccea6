package main

import (
	"fmt"
	"os"

	"github.com/aretw0/canova/internal/presentation/tui"
	"github.com/aretw0/canova/pkg/runner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var fillCmd = &cobra.Command{
	Use:   "fill <file>",
	Short: "Fill a form interactively and print the response",
	Long: `Walks the pages of a form file one question at a time, following its branches.
Type "<" as an answer to go back. The collected response is printed as JSON,
or written to --out. With --json the session speaks JSON Lines for scripts.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form, result, err := buildFile(cmd, args[0])
		if err != nil {
			return err
		}
		form.Pages = result.Pages

		in, out := cmd.InOrStdin(), cmd.OutOrStdout()
		var handler runner.IOHandler
		if asJSON(cmd) {
			handler = runner.NewJSONHandler(in, out)
		} else {
			var opts []runner.TextHandlerOption
			if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				opts = append(opts, runner.WithTextHandlerRenderer(tui.NewRenderer()))
			}
			handler = runner.NewTextHandler(in, out, opts...)
		}

		r := runner.New(
			runner.WithEngine(newEngine(cmd)),
			runner.WithInputHandler(handler),
		)
		response, err := r.Run(cmd.Context(), form)
		if err != nil {
			return err
		}

		path, _ := cmd.Flags().GetString("out")
		if path == "" {
			return writeJSON(out, response)
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := writeJSON(f, response); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "response %s written to %s\n", response.ID, path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)
	fillCmd.Flags().Bool("json", false, "Speak JSON Lines instead of prompting")
	fillCmd.Flags().String("out", "", "Write the response to this file")
}
