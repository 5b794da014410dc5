package requirement

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"go.yaml.in/yaml/v4"

	"github.com/tr181kit/compare/internal/fileutil"
	"github.com/tr181kit/compare/internal/pathutil"
	"github.com/tr181kit/compare/node"
	"github.com/tr181kit/compare/validator"
)

// Document is the top-level shape of an operator-requirement file: a named
// list of partial node definitions.
type Document struct {
	Nodes []*node.Node `yaml:"nodes" json:"nodes"`
}

// Load reads and validates the requirement document at path. Format is
// detected from the file extension, falling back to content sniffing.
// Validation rejects duplicate paths, syntactically invalid paths, unknown
// data_type values, and malformed value_range constraints.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("requirement: read %s: %w", path, err)
	}

	format := resolveFormat(path, data)
	doc := &Document{}
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("requirement: parse %s as JSON: %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("requirement: parse %s as YAML: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("requirement: cannot determine format of %s", path)
	}

	for i, n := range doc.Nodes {
		if n == nil {
			return nil, fmt.Errorf("requirement: node at index %d is nil", i)
		}
		n.Origin = node.OriginRequirement
	}

	if err := validateAtLoad(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Save writes doc to path in the format implied by path's extension
// (defaulting to YAML when the extension is unrecognized). The write is
// atomic: staged to a temp file in the same directory, then renamed into
// place.
func Save(path string, doc *Document) error {
	format := detectFormatFromPath(path)
	if format == FormatUnknown {
		format = FormatYAML
	}

	var data []byte
	var err error
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("requirement: encode %s: %w", path, err)
	}

	clean, err := pathutil.SanitizeOutputPath(path)
	if err != nil {
		return fmt.Errorf("requirement: %w", err)
	}

	if err := fileutil.WriteAtomic(clean, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("requirement: %w", err)
	}
	return nil
}

// validateAtLoad enforces the load-time invariants: unique paths, valid
// path syntax (templates allowed), known data_type, and well-formed
// value_range.
func validateAtLoad(doc *Document) error {
	seen := make(map[string]bool, len(doc.Nodes))

	for _, n := range doc.Nodes {
		if seen[n.Path] {
			return fmt.Errorf("requirement: duplicate path %q", n.Path)
		}
		seen[n.Path] = true

		if err := validator.ValidatePath(n.Path, true); err != nil {
			return fmt.Errorf("requirement: %w", err)
		}

		if n.DataType != node.DataTypeUnknown && !n.DataType.IsKnown() {
			return fmt.Errorf("requirement: node %q has unknown data_type %q", n.Path, n.DataType)
		}

		if err := validateValueRange(n.ValueRange); err != nil {
			return fmt.Errorf("requirement: node %q has malformed value_range: %w", n.Path, err)
		}
	}

	return nil
}

func validateValueRange(vr *node.ValueRange) error {
	if vr.IsEmpty() {
		return nil
	}
	if vr.Min != nil && vr.Max != nil && *vr.Min > *vr.Max {
		return fmt.Errorf("min %v exceeds max %v", *vr.Min, *vr.Max)
	}
	if vr.MaxLength < 0 {
		return fmt.Errorf("max_length %d must not be negative", vr.MaxLength)
	}
	if vr.Pattern != "" {
		if _, err := regexp.Compile(vr.Pattern); err != nil {
			return fmt.Errorf("invalid pattern %q: %w", vr.Pattern, err)
		}
	}
	return nil
}
