package node

// Node is the atomic unit of the TR-181 parameter tree: a single parameter
// or object, as produced by an extractor or declared in a requirement
// document. Nodes are immutable once constructed; hierarchy is resolved on
// demand through a [PathIndex], never stored as owning pointers.
type Node struct {
	// Path is the canonical TR-181 dotted identifier, beginning "Device.".
	// It ends in "." when the node denotes an object rather than a leaf
	// parameter. Numeric instance indices (".1.", ".2.") are part of the
	// path. Braced placeholders ("{i}") are allowed only in requirement
	// documents and never in extracted data.
	Path string `yaml:"path" json:"path"`
	// Name is the last segment of Path with any trailing "." stripped.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// DataType is the normalized data type. Absent on pure object nodes.
	DataType DataType `yaml:"data_type,omitempty" json:"data_type,omitempty"`
	// Access is the normalized access mode.
	Access Access `yaml:"access,omitempty" json:"access,omitempty"`
	// Value is present when the extractor retrieved it, typed per DataType
	// after coercion. Nil means "not retrieved", distinct from a present
	// zero value.
	Value any `yaml:"value,omitempty" json:"value,omitempty"`
	// Description is optional free text.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// IsObject is true when the node denotes an object container (Path
	// ends in ".").
	IsObject bool `yaml:"is_object,omitempty" json:"is_object,omitempty"`
	// IsCustom is true when Path lies outside the standard TR-181
	// namespace (a vendor extension).
	IsCustom bool `yaml:"is_custom,omitempty" json:"is_custom,omitempty"`
	// ValueRange is an optional constraint bundle.
	ValueRange *ValueRange `yaml:"value_range,omitempty" json:"value_range,omitempty"`
	// Events lists event descriptors this node exposes.
	Events []EventDescriptor `yaml:"events,omitempty" json:"events,omitempty"`
	// Functions lists function descriptors this node exposes.
	Functions []FunctionDescriptor `yaml:"functions,omitempty" json:"functions,omitempty"`

	// Origin records where this node's value came from, used by the
	// validator to apply CWMP-origin leniency. Empty means unspecified.
	Origin Origin `yaml:"-" json:"-"`

	// Extra preserves unknown requirement-document fields across a
	// load/save round trip.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Origin identifies which kind of source produced a node's value, used to
// apply source-specific validation leniency.
type Origin string

const (
	// OriginUnspecified means the node did not declare a source origin.
	OriginUnspecified Origin = ""
	// OriginCWMP means the node's value was retrieved through a CWMP/TR-069 hook.
	OriginCWMP Origin = "cwmp"
	// OriginDevice means the node's value was retrieved through a generic
	// device REST API.
	OriginDevice Origin = "device"
	// OriginRequirement means the node was declared in an operator
	// requirement document.
	OriginRequirement Origin = "requirement"
)

// Clone returns a shallow copy of n suitable for independent mutation of
// top-level fields. Value, ValueRange contents, and slice elements are not
// deep-copied.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := *n
	if n.ValueRange != nil {
		vr := *n.ValueRange
		clone.ValueRange = &vr
	}
	if n.Events != nil {
		clone.Events = append([]EventDescriptor(nil), n.Events...)
	}
	if n.Functions != nil {
		clone.Functions = append([]FunctionDescriptor(nil), n.Functions...)
	}
	return &clone
}
