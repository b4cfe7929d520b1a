package sbom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectReturnsReferencesBeforeImports(t *testing.T) {
	content := `<release>
  <import>System.IO</import>
  <reference>Newtonsoft.Json</reference>
  <reference>RestSharp</reference>
  <import>System.Net</import>
</release>`

	libraries := Collect(content)
	require.Len(t, libraries, 4)
	assert.Equal(t, Library{KindReference, "Newtonsoft.Json"}, libraries[0])
	assert.Equal(t, Library{KindReference, "RestSharp"}, libraries[1])
	assert.Equal(t, Library{KindImport, "System.IO"}, libraries[2])
	assert.Equal(t, Library{KindImport, "System.Net"}, libraries[3])
}

func TestCollectTrimsMultilineContent(t *testing.T) {
	content := "<reference>\n  Newtonsoft.Json\n</reference>"

	libraries := Collect(content)
	require.Len(t, libraries, 1)
	assert.Equal(t, "Newtonsoft.Json", libraries[0].Name)
}

func TestCollectKeepsDuplicates(t *testing.T) {
	content := `<reference>Same</reference><reference>Same</reference>`

	libraries := Collect(content)
	assert.Len(t, libraries, 2)
}

func TestCollectOnEmptyDocument(t *testing.T) {
	assert.Empty(t, Collect("<release/>"))
}

func TestCollectLibrariesReadsRawFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "robotrelease.xml")
	require.NoError(t, os.WriteFile(filename, []byte(`<import>System.IO</import>`), 0o644))

	libraries, err := CollectLibraries(filename)
	require.NoError(t, err)
	require.Len(t, libraries, 1)
	assert.Equal(t, Library{KindImport, "System.IO"}, libraries[0])
}

func TestCollectLibrariesFailsOnMissingFile(t *testing.T) {
	_, err := CollectLibraries(filepath.Join(t.TempDir(), "no-such.xml"))
	assert.Error(t, err)
}
