package sbom

import (
	"encoding/json"
	"path/filepath"

	cdx "github.com/CycloneDX/cyclonedx-go"
	"github.com/google/uuid"
	"github.com/package-url/packageurl-go"

	"github.com/disc0nn3ct/SAST-RPA/common"
	"github.com/disc0nn3ct/SAST-RPA/pathlib"
)

// OutputName is the file name the SBOM is saved under.
const OutputName = `sbom.json`

// No version resolution is performed for collected libraries.
const placeholder = `unknown`

// Generate assembles a CycloneDX document with exactly one component
// per distinct library name, preserving first-seen order across the
// whole input sequence. The kind of the declaration is not carried
// into the component.
func Generate(libraries []Library) *cdx.BOM {
	components := make([]cdx.Component, 0, len(libraries))
	seen := make(map[string]bool, len(libraries))
	for _, library := range libraries {
		if seen[library.Name] {
			continue
		}
		seen[library.Name] = true
		components = append(components, asComponent(library.Name))
	}

	bom := cdx.NewBOM()
	bom.SpecVersion = cdx.SpecVersion1_4
	bom.Version = 1
	bom.Components = &components
	return bom
}

func asComponent(name string) cdx.Component {
	return cdx.Component{
		BOMRef:     uuid.NewString(),
		Type:       cdx.ComponentTypeLibrary,
		Name:       name,
		Version:    placeholder,
		PackageURL: genericPurl(name),
		Hashes:     &[]cdx.Hash{},
		Licenses:   &cdx.Licenses{},
		Supplier:   &cdx.OrganizationalEntity{Name: placeholder},
	}
}

func genericPurl(name string) string {
	return packageurl.NewPackageURL(packageurl.TypeGeneric, "", name, placeholder, nil, "").ToString()
}

// AsJSON serializes the document with four-space indentation. The
// cyclonedx-go encoder hardcodes two-space pretty printing, so the
// document is marshalled directly.
func AsJSON(bom *cdx.BOM) ([]byte, error) {
	return json.MarshalIndent(bom, "", "    ")
}

// SaveAs writes the document as sbom.json under the output directory,
// creating the directory if needed and overwriting any previous file.
// Returns the full path written.
func SaveAs(bom *cdx.BOM, outputDir string) (string, error) {
	fullpath, err := pathlib.EnsureDirectory(outputDir)
	if err != nil {
		return "", err
	}
	content, err := AsJSON(bom)
	if err != nil {
		return "", err
	}
	target := filepath.Join(fullpath, OutputName)
	if err := pathlib.WriteFile(target, content, 0o644); err != nil {
		return "", err
	}
	common.Log("SBOM file generated: %s", target)
	return target, nil
}
