// Package operations ties the extraction and SBOM pipelines together
// for the command layer. The two pipelines share one input document but
// never interact; they only run in sequence.
package operations

import (
	"github.com/disc0nn3ct/SAST-RPA/common"
	"github.com/disc0nn3ct/SAST-RPA/release"
	"github.com/disc0nn3ct/SAST-RPA/sbom"
	"github.com/disc0nn3ct/SAST-RPA/settings"
)

// ExtractCode runs the code extraction pipeline: parse the release
// document and write every embedded code fragment under the output
// directory.
func ExtractCode(filename, outputDir string) error {
	extractor := release.NewExtractor(outputDir)
	extractor.Extensions = settings.Global.Extensions
	written, err := extractor.ExtractFile(filename)
	if err != nil {
		return err
	}
	common.Debug("Extraction done, %d code files written.", len(written))
	return nil
}

// GenerateSbom runs the dependency pipeline: scan the raw document for
// reference and import declarations and save the assembled CycloneDX
// document as sbom.json under the output directory. Returns the path
// written.
func GenerateSbom(filename, outputDir string) (string, error) {
	libraries, err := sbom.CollectLibraries(filename)
	if err != nil {
		return "", err
	}
	common.Debug("Collected %d library declarations.", len(libraries))
	return sbom.SaveAs(sbom.Generate(libraries), outputDir)
}

// AnalyzeRelease runs both pipelines against one release document.
func AnalyzeRelease(filename, outputDir string) error {
	if err := ExtractCode(filename, outputDir); err != nil {
		return err
	}
	_, err := GenerateSbom(filename, outputDir)
	return err
}
