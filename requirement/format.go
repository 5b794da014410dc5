package requirement

import (
	"bytes"
	"path/filepath"
)

// Format identifies the on-disk encoding of a requirement document.
type Format string

const (
	// FormatUnknown means the format could not be determined.
	FormatUnknown Format = ""
	// FormatJSON is encoding/json.
	FormatJSON Format = "json"
	// FormatYAML is go.yaml.in/yaml/v4.
	FormatYAML Format = "yaml"
)

// detectFormatFromPath detects the format from a file extension.
func detectFormatFromPath(path string) Format {
	switch filepath.Ext(path) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// detectFormatFromContent sniffs the format from the first non-whitespace
// byte: JSON documents start with '{' or '[', anything else is assumed
// YAML.
func detectFormatFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return FormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return FormatJSON
	}
	return FormatYAML
}

// resolveFormat detects the format of path/data, preferring the extension
// and falling back to content sniffing.
func resolveFormat(path string, data []byte) Format {
	if f := detectFormatFromPath(path); f != FormatUnknown {
		return f
	}
	return detectFormatFromContent(data)
}
