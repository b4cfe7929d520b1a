package release

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disc0nn3ct/SAST-RPA/common"
	"github.com/disc0nn3ct/SAST-RPA/pathlib"
)

// Fragment is one extracted code block, ready to be written out.
type Fragment struct {
	Stage    string
	Index    int // 1-based, per stage
	Language string
	Body     string // trimmed source text
}

func (it Fragment) Filename(custom map[string]string) string {
	return fmt.Sprintf("%s_%d.%s", it.Stage, it.Index, Extension(it.Language, custom))
}

// Fragments converts the stage's code blocks into write-ready
// fragments. Stages without code blocks yield nothing.
func (it Stage) Fragments() []Fragment {
	result := make([]Fragment, 0, len(it.Blocks))
	for at, block := range it.Blocks {
		result = append(result, Fragment{
			Stage:    it.Name,
			Index:    at + 1,
			Language: it.Language,
			Body:     strings.TrimSpace(block),
		})
	}
	return result
}

// Extractor writes code fragments from release documents into one
// output directory. Existing files of the same derived name are
// overwritten, so repeated runs on identical input are idempotent.
type Extractor struct {
	OutputDir  string
	Extensions map[string]string
}

func NewExtractor(outputDir string) *Extractor {
	return &Extractor{OutputDir: outputDir}
}

// ExtractFile parses the release document at the given path and writes
// every discovered code fragment. Returns the paths written, in
// document order.
func (it *Extractor) ExtractFile(filename string) ([]string, error) {
	document, err := ParseFile(filename)
	if err != nil {
		return nil, err
	}
	return it.Extract(document)
}

func (it *Extractor) Extract(document *Document) ([]string, error) {
	fullpath, err := pathlib.EnsureDirectory(it.OutputDir)
	if err != nil {
		return nil, err
	}
	written := []string{}
	for _, object := range document.Objects() {
		common.Log("Found object: %s", object.Name)
		for _, stage := range object.Stages {
			common.Log("  Processing stage: %s, language: %s", stage.Name, stage.Language)
			for _, fragment := range stage.Fragments() {
				target := filepath.Join(fullpath, fragment.Filename(it.Extensions))
				common.Log("    Saving code to file: %s", target)
				if err := pathlib.WriteFile(target, []byte(fragment.Body), 0o644); err != nil {
					return written, err
				}
				written = append(written, target)
			}
		}
	}
	return written, nil
}
