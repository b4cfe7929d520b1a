package cmd

import (
	"github.com/spf13/cobra"

	"github.com/disc0nn3ct/SAST-RPA/common"
	"github.com/disc0nn3ct/SAST-RPA/operations"
	"github.com/disc0nn3ct/SAST-RPA/pretty"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <robotrelease.xml>",
	Short: "Extract embedded code and generate an SBOM from a release document.",
	Long: `Analyze runs both pipelines against one release document: first the
code extraction into per-stage files, then dependency collection into
sbom.json. Both land in the output directory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Release analysis lasted").Report()
		}
		err := operations.AnalyzeRelease(args[0], outputDir())
		pretty.Guard(err == nil, 1, "Analysis failed: %v", err)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
