// Package settings holds the optional YAML configuration of the tool.
// Currently that is custom language to file extension mappings used
// when extracted code declares a language outside the built-in set.
package settings

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/disc0nn3ct/SAST-RPA/common"
	"github.com/disc0nn3ct/SAST-RPA/pathlib"
)

// DefaultSettingsFile is consulted in the working directory when no
// explicit settings path is given.
const DefaultSettingsFile = `sastrpa.yaml`

type Settings struct {
	Extensions map[string]string `yaml:"extensions"`
}

// Global is the settings gateway commands read from. It starts empty
// and is replaced by SummonSettings.
var Global = &Settings{}

// SummonSettings loads settings from the given file, or from the
// default file when it exists, or returns empty settings. The result
// also becomes Global.
func SummonSettings(filename string) (*Settings, error) {
	result := &Settings{}
	if filename == "" {
		filename = DefaultSettingsFile
		if !pathlib.IsFile(filename) {
			Global = result
			return result, nil
		}
	}
	blob, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(blob, result); err != nil {
		return nil, fmt.Errorf("could not read settings %q: %w", filename, err)
	}
	result.Extensions = lowercased(result.Extensions)
	common.Debug("Loaded settings from %q with %d custom extension mappings.", filename, len(result.Extensions))
	Global = result
	return result, nil
}

// Language lookups are case-insensitive, so mapping keys are stored
// lowercased.
func lowercased(mapping map[string]string) map[string]string {
	if len(mapping) == 0 {
		return nil
	}
	result := make(map[string]string, len(mapping))
	for language, extension := range mapping {
		result[strings.ToLower(language)] = strings.TrimPrefix(extension, ".")
	}
	return result
}
