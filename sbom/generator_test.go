package sbom

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeduplicatesByFirstSeenOrder(t *testing.T) {
	libraries := []Library{
		{KindReference, "Newtonsoft.Json"},
		{KindReference, "Newtonsoft.Json"},
		{KindImport, "System.IO"},
	}

	bom := Generate(libraries)
	require.NotNil(t, bom.Components)
	components := *bom.Components
	require.Len(t, components, 2)
	assert.Equal(t, "Newtonsoft.Json", components[0].Name)
	assert.Equal(t, "System.IO", components[1].Name)
}

func TestGenerateComponentShape(t *testing.T) {
	bom := Generate([]Library{{KindReference, "RestSharp"}})
	components := *bom.Components
	require.Len(t, components, 1)

	component := components[0]
	assert.NotEmpty(t, component.BOMRef)
	assert.Equal(t, "RestSharp", component.Name)
	assert.Equal(t, "unknown", component.Version)
	assert.Equal(t, "pkg:generic/RestSharp@unknown", component.PackageURL)
	require.NotNil(t, component.Supplier)
	assert.Equal(t, "unknown", component.Supplier.Name)
	require.NotNil(t, component.Hashes)
	assert.Empty(t, *component.Hashes)
	require.NotNil(t, component.Licenses)
	assert.Empty(t, *component.Licenses)
}

func TestGenerateAssignsDistinctIdentifiers(t *testing.T) {
	bom := Generate([]Library{
		{KindReference, "First"},
		{KindImport, "Second"},
	})
	components := *bom.Components
	require.Len(t, components, 2)
	assert.NotEqual(t, components[0].BOMRef, components[1].BOMRef)
}

func TestGeneratedJSONRoundTrip(t *testing.T) {
	bom := Generate([]Library{
		{KindReference, "Newtonsoft.Json"},
		{KindReference, "Newtonsoft.Json"},
		{KindImport, "System.IO"},
	})

	content, err := AsJSON(bom)
	require.NoError(t, err)

	parsed := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(content, &parsed))
	assert.Equal(t, "CycloneDX", parsed["bomFormat"])
	assert.Equal(t, "1.4", parsed["specVersion"])
	assert.Equal(t, float64(1), parsed["version"])

	components, ok := parsed["components"].([]interface{})
	require.True(t, ok, "components key missing or wrong shape")
	require.Len(t, components, 2)

	first, ok := components[0].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, first["bom-ref"])
	assert.Equal(t, "Newtonsoft.Json", first["name"])
	assert.Equal(t, "unknown", first["version"])
	assert.Equal(t, "pkg:generic/Newtonsoft.Json@unknown", first["purl"])
	assert.Equal(t, []interface{}{}, first["hashes"])
	assert.Equal(t, []interface{}{}, first["licenses"])
}

func TestGeneratedJSONUsesFourSpaceIndent(t *testing.T) {
	content, err := AsJSON(Generate(nil))
	require.NoError(t, err)
	assert.Contains(t, string(content), "\n    \"bomFormat\"")
}

func TestSaveAsWritesIntoOutputDirectory(t *testing.T) {
	output := filepath.Join(t.TempDir(), "artifacts")
	bom := Generate([]Library{{KindImport, "System.IO"}})

	target, err := SaveAs(bom, output)
	require.NoError(t, err)
	assert.Equal(t, OutputName, filepath.Base(target))

	blob, err := os.ReadFile(target)
	require.NoError(t, err)
	parsed := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(blob, &parsed))
	assert.Equal(t, "CycloneDX", parsed["bomFormat"])

	// re-saving overwrites without complaint
	_, err = SaveAs(bom, output)
	assert.NoError(t, err)
}
