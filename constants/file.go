package constants

import "strings"

// UnitKinds holds the allowed billing-unit classifications.
var UnitKinds = []string{"Residencial", "Comercial", "Industrial", "Rural"}

// DefaultUnitKind is applied when a unit is registered without a kind.
const DefaultUnitKind = "Residencial"

// DefaultDistributor is the distributor name assumed when a bill does not
// name one explicitly.
const DefaultDistributor = "Equatorial Energia"

// UnidentifiedSentinel marks textual fields the extractor could not match,
// so human review can tell "not attempted" from "attempted, no match".
const UnidentifiedSentinel = "Não identificado"

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsPDFExt reports whether ext names a PDF document. The ingestion surface
// only accepts PDFs; everything else is rejected before acquisition.
func IsPDFExt(ext string) bool {
	return NormalizeExt(ext) == "pdf"
}
