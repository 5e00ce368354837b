package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/labelwiz/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "labelwiz",
	Short: "labelwiz is a wizard for labeling tabular data",
	Long: `labelwiz walks you through loading a CSV or Excel file, choosing a label
column and its options, and then labeling the records one by one.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

		return cli.Execute(cmd.Context(), cli.RunOptions{
			ConfigPath:  configPath,
			Debug:       debug,
			MetricsAddr: metricsAddr,
			Stdin:       cmd.InOrStdin(),
			Stdout:      cmd.OutOrStdout(),
		})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("config", "", "Path to a YAML config file")
	rootCmd.Flags().Bool("debug", false, "Write debug logs to stderr")
	rootCmd.Flags().String("metrics-addr", "", "Expose Prometheus metrics on this address (e.g. :2112)")
}
