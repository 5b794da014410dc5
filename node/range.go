package node

// ValueRange is an optional constraint bundle attached to a node. A zero
// value field means "no constraint" on that dimension.
type ValueRange struct {
	// Min is the inclusive minimum for numeric types. Nil means unbounded below.
	Min *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	// Max is the inclusive maximum for numeric types. Nil means unbounded above.
	Max *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	// AllowedValues, when non-empty, short-circuits min/max checks: the value
	// must equal one of these (after coercion).
	AllowedValues []string `yaml:"allowed_values,omitempty" json:"allowed_values,omitempty"`
	// MaxLength bounds string length. Zero means unbounded.
	MaxLength int `yaml:"max_length,omitempty" json:"max_length,omitempty"`
	// Pattern is a regular expression a string value must fully match.
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
}

// IsEmpty reports whether no constraint is actually set.
func (r *ValueRange) IsEmpty() bool {
	if r == nil {
		return true
	}
	return r.Min == nil && r.Max == nil && len(r.AllowedValues) == 0 && r.MaxLength == 0 && r.Pattern == ""
}

// EventDescriptor describes a TR-181 event a node may expose.
type EventDescriptor struct {
	// Name is the event name.
	Name string `yaml:"name" json:"name"`
	// Path is the TR-181 path the event is raised against.
	Path string `yaml:"path" json:"path"`
	// Parameters lists paths carried as event parameters; they may or may
	// not be present in the same extraction result.
	Parameters []string `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// FunctionDescriptor describes a TR-181 function (RPC-like command) a node
// may expose.
type FunctionDescriptor struct {
	// Name is the function name.
	Name string `yaml:"name" json:"name"`
	// Path is the TR-181 path the function is invoked against.
	Path string `yaml:"path" json:"path"`
	// InputParameters declares the function's input parameters.
	InputParameters []ParameterDescriptor `yaml:"input_parameters,omitempty" json:"input_parameters,omitempty"`
	// OutputParameters declares the function's expected output parameters.
	OutputParameters []ParameterDescriptor `yaml:"output_parameters,omitempty" json:"output_parameters,omitempty"`
}

// ParameterDescriptor declares one input or output parameter of a
// FunctionDescriptor.
type ParameterDescriptor struct {
	// Name is the parameter name.
	Name string `yaml:"name" json:"name"`
	// Path is the TR-181 path the parameter corresponds to, if any.
	Path string `yaml:"path,omitempty" json:"path,omitempty"`
	// DataType is the declared type of the parameter.
	DataType DataType `yaml:"data_type" json:"data_type"`
	// ValueRange is an optional constraint bundle for the parameter.
	ValueRange *ValueRange `yaml:"value_range,omitempty" json:"value_range,omitempty"`
}
