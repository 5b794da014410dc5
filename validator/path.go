package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tr181kit/compare/internal/pathutil"
	"github.com/tr181kit/compare/node"
)

// identSegmentRegex matches one non-instance, non-placeholder path segment:
// an uppercase letter followed by letters and digits (e.g. "WiFi", "Radio").
var identSegmentRegex = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// ValidatePath checks path against TR-181 path syntax: it must begin
// "Device.", contain no empty segments, use bare positive-integer instance
// indices between object segments, and use "{placeholder}" segments only
// when allowTemplates is true (operator requirement documents).
func ValidatePath(path string, allowTemplates bool) error {
	if path == "" {
		return fmt.Errorf("validator: path must not be empty")
	}
	if !strings.HasPrefix(path, node.RootPrefix) {
		return fmt.Errorf("validator: path %q must begin with %q", path, node.RootPrefix)
	}

	segs := node.Segments(path)
	if len(segs) == 0 || segs[0] != "Device" {
		return fmt.Errorf("validator: path %q must begin with %q", path, node.RootPrefix)
	}

	for _, seg := range segs[1:] {
		if seg == "" {
			return fmt.Errorf("validator: path %q has an empty segment", path)
		}
		if node.IsInstanceSegment(seg) {
			continue
		}
		if pathutil.PlaceholderRegex.MatchString(seg) {
			if pathutil.PlaceholderRegex.FindString(seg) != seg {
				return fmt.Errorf("validator: path %q has a malformed placeholder segment %q", path, seg)
			}
			if !allowTemplates {
				return fmt.Errorf("validator: path %q uses template placeholder %q, which is only allowed in requirement documents", path, seg)
			}
			continue
		}
		if !identSegmentRegex.MatchString(seg) {
			return fmt.Errorf("validator: path %q has an invalid segment %q", path, seg)
		}
	}
	return nil
}
