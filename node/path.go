package node

import "strings"

// RootPrefix is the mandatory prefix of every TR-181 path.
const RootPrefix = "Device."

// IsObjectPath reports whether path denotes an object container rather than
// a leaf parameter, i.e. it ends in ".".
func IsObjectPath(path string) bool {
	return strings.HasSuffix(path, ".")
}

// Segments splits path into its dot-separated segments, dropping any empty
// trailing segment produced by an object path's terminal ".".
func Segments(path string) []string {
	trimmed := strings.TrimSuffix(path, ".")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, ".")
}

// NameOf returns the last segment of path with any trailing "." stripped.
func NameOf(path string) string {
	segs := Segments(path)
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// ParentPath returns the path of path's parent, always rendered as an
// object path (trailing "."). Returns "" for a root-level path with no
// parent (e.g. "Device.").
func ParentPath(path string) string {
	segs := Segments(path)
	if len(segs) <= 1 {
		return ""
	}
	return strings.Join(segs[:len(segs)-1], ".") + "."
}

// IsInstanceSegment reports whether seg is a bare positive-integer object
// instance index, e.g. the "1" in "Device.WiFi.Radio.1.Channel".
func IsInstanceSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if r < '0' || r > '9' {
			return false
		}
	}
	return seg[0] != '0' || seg == "0"
}
