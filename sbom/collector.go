package sbom

import (
	"os"
	"regexp"
	"strings"
)

const (
	KindReference = `reference`
	KindImport    = `import`
)

// The declarations are scanned from raw document text instead of the
// parsed XML tree, so they are found regardless of where the vendor
// nests them.
var (
	referencePattern = regexp.MustCompile(`(?s)<reference>(.*?)</reference>`)
	importPattern    = regexp.MustCompile(`(?s)<import>(.*?)</import>`)
)

// Library is one dependency declaration from a release document.
type Library struct {
	Kind string
	Name string
}

// CollectLibraries reads the release document as raw text and returns
// every reference declaration, in document order, followed by every
// import declaration, in document order. Names are trimmed. Duplicates
// are kept here; deduplication is the assembler's job.
func CollectLibraries(filename string) ([]Library, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Collect(string(content)), nil
}

func Collect(content string) []Library {
	result := scan(content, KindReference, referencePattern)
	return append(result, scan(content, KindImport, importPattern)...)
}

func scan(content, kind string, pattern *regexp.Regexp) []Library {
	found := pattern.FindAllStringSubmatch(content, -1)
	result := make([]Library, 0, len(found))
	for _, match := range found {
		result = append(result, Library{Kind: kind, Name: strings.TrimSpace(match[1])})
	}
	return result
}
