package main

import (
	"fmt"

	"github.com/aretw0/labelwiz/internal/presentation/graph"
	"github.com/aretw0/labelwiz/internal/wizard"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the setup wizard flow as a Mermaid diagram",
	Long:  `Outputs a Mermaid diagram (graph TD) of the wizard steps, their answers and back edges.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(wizard.NewEngine().Inspect()))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
