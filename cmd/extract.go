package cmd

import (
	"github.com/spf13/cobra"

	"github.com/disc0nn3ct/SAST-RPA/common"
	"github.com/disc0nn3ct/SAST-RPA/operations"
	"github.com/disc0nn3ct/SAST-RPA/pretty"
)

var extractCmd = &cobra.Command{
	Use:   "extract <robotrelease.xml>",
	Short: "Extract embedded code fragments into per-stage files.",
	Long: `Extract walks the release document's contents/object/process/stage
tree and writes each embedded code block to <stage>_<index>.<ext> in the
output directory. The extension follows the stage's declared language.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Code extraction lasted").Report()
		}
		err := operations.ExtractCode(args[0], outputDir())
		pretty.Guard(err == nil, 1, "Extraction failed: %v", err)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
