package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/canova/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph <file>",
	Short: "Export the page flow as a Mermaid diagram",
	Long:  `Builds the navigation graph of a form file and outputs a Mermaid diagram (graph TD). Orphaned pages are highlighted.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, result, err := buildFile(cmd, args[0])
		if err != nil {
			return err
		}

		current, _ := cmd.Flags().GetString("current")
		visited, _ := cmd.Flags().GetString("visited")
		overlay := &graph.GraphOverlay{CurrentPage: current, Orphans: result.Orphans}
		if visited != "" {
			overlay.VisitedPages = strings.Split(visited, ",")
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(result.Pages, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("current", "", "Highlight the page a filler is on")
	graphCmd.Flags().String("visited", "", "Comma separated pages to mark as visited")
}
