package cmd

import (
	"github.com/spf13/cobra"

	"github.com/disc0nn3ct/SAST-RPA/common"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show sastrpa version.",
	Run: func(cmd *cobra.Command, args []string) {
		common.Stdout("%s\n", common.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
