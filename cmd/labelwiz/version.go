package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/labelwiz"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of labelwiz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "labelwiz version %s\n", strings.TrimSpace(labelwiz.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
