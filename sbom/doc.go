// Package sbom provides Software Bill of Materials (SBOM) generation
// from dependency declarations found in robot release documents. It
// collects reference and import declarations and assembles them into a
// CycloneDX 1.4 JSON document.
package sbom
