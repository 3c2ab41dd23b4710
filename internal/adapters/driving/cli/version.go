package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  exactArgs(0, "no arguments"),
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("wiki-push version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
