package release

import (
	"strings"
)

// DefaultExtension is used for unknown or undeclared languages.
const DefaultExtension = `txt`

var extensions = map[string]string{
	"csharp":      "cs",
	"powershell":  "ps1",
	"visualbasic": "vb",
}

// Extension maps a declared language to a file extension. Lookup is
// case-insensitive. Custom mappings from settings extend the fixed
// built-in set but never shadow it.
func Extension(language string, custom map[string]string) string {
	key := strings.ToLower(strings.TrimSpace(language))
	if extension, ok := extensions[key]; ok {
		return extension
	}
	if extension, ok := custom[key]; ok {
		return extension
	}
	return DefaultExtension
}
