package compare

import "github.com/tr181kit/compare/internal/severity"

// Difference is one detected disagreement between the two sources, at
// either the node-presence level (only_in_sourceN) or the attribute level
// for a path present in both.
type Difference struct {
	// Path is the TR-181 parameter path the difference applies to.
	Path string `json:"path"`
	// Kind classifies what disagreed.
	Kind Kind `json:"kind"`
	// Source1Value and Source2Value hold the compared values, formatted for
	// display; their meaning depends on Kind (a data_type string for
	// type_mismatch, an access string for access_mismatch, and so on).
	Source1Value any `json:"source1_value,omitempty"`
	Source2Value any `json:"source2_value,omitempty"`
	// Severity rates how serious this disagreement is for the report's
	// consumer. A node missing from one source is more severe than a
	// cosmetic description difference would be, were descriptions compared.
	Severity severity.Severity `json:"severity"`
}

// Summary totals a Report's Differences by kind, plus the two presence
// counts, so a caller doesn't need to walk the full slice for headline
// numbers.
type Summary struct {
	TotalCommonPaths  int         `json:"total_common_paths"`
	TotalOnlySource1  int         `json:"total_only_source1"`
	TotalOnlySource2  int         `json:"total_only_source2"`
	TotalDifferences  int         `json:"total_differences"`
	ByKind            map[Kind]int `json:"by_kind"`
}

// IsIdentical reports whether the two sources disagreed on nothing at all.
func (s Summary) IsIdentical() bool {
	return s.TotalOnlySource1 == 0 && s.TotalOnlySource2 == 0 && s.TotalDifferences == 0
}
