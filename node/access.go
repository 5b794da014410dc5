package node

// Access is a normalized TR-181 parameter access mode. It is string-backed
// so it serializes directly as its TR-181 name in requirement documents.
type Access string

const (
	// AccessUnknown is the zero value, used before normalization.
	AccessUnknown Access = ""
	// AccessReadOnly parameters may be read but never written.
	AccessReadOnly Access = "read-only"
	// AccessReadWrite parameters may be read and written.
	AccessReadWrite Access = "read-write"
	// AccessWriteOnly parameters may be written but never read back.
	AccessWriteOnly Access = "write-only"
)

var knownAccess = map[Access]bool{
	AccessReadOnly:  true,
	AccessReadWrite: true,
	AccessWriteOnly: true,
}

// String returns the TR-181 string representation of the access mode.
func (a Access) String() string {
	if a == AccessUnknown {
		return "unknown"
	}
	return string(a)
}

// IsKnown reports whether a is one of the recognized TR-181 access modes.
func (a Access) IsKnown() bool {
	return knownAccess[a]
}

// ParseAccess parses a declared TR-181 access string into an Access,
// reporting false when the value is not one of the known access modes.
func ParseAccess(s string) (Access, bool) {
	a := Access(s)
	return a, knownAccess[a]
}
