package cmd

import (
	"github.com/spf13/cobra"

	"github.com/disc0nn3ct/SAST-RPA/common"
	"github.com/disc0nn3ct/SAST-RPA/operations"
	"github.com/disc0nn3ct/SAST-RPA/pretty"
)

var sbomCmd = &cobra.Command{
	Use:   "sbom <robotrelease.xml>",
	Short: "Generate a CycloneDX SBOM from a release document.",
	Long: `Sbom scans the release document for <reference> and <import>
declarations and writes a CycloneDX 1.4 JSON document as sbom.json in
the output directory. Duplicate library names collapse into one
component, keeping first-seen order.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("SBOM generation lasted").Report()
		}
		target, err := operations.GenerateSbom(args[0], outputDir())
		pretty.Guard(err == nil, 1, "SBOM generation failed: %v", err)
		pretty.Highlight("SBOM: %s", target)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(sbomCmd)
}
