package hook

import "context"

// Hook is the pluggable I/O boundary between an extractor and a concrete
// transport (CWMP/SOAP, a device REST API, SNMP, ...). A Hook instance is
// owned by at most one extractor at a time; Connect/Disconnect bracket
// every extraction run.
type Hook interface {
	// Connect establishes the transport connection described by config.
	Connect(ctx context.Context, config DeviceConfig) error

	// Disconnect releases the transport connection. Safe to call even if
	// Connect was never called or already failed.
	Disconnect(ctx context.Context) error

	// GetParameterNames returns the direct and transitive children of
	// prefix. Object paths end in ".", leaf paths do not. Replies may be at
	// any depth under prefix; callers must not assume a single-level
	// response.
	GetParameterNames(ctx context.Context, prefix string) ([]string, error)

	// GetParameterValues returns the current value of each requested path.
	// A path present in the request but absent from the result indicates
	// that path could not be retrieved.
	GetParameterValues(ctx context.Context, paths []string) (map[string]any, error)

	// GetParameterAttributes returns the declared type and access of each
	// requested path.
	GetParameterAttributes(ctx context.Context, paths []string) (map[string]Attributes, error)

	// SetParameterValues writes the given path/value pairs.
	SetParameterValues(ctx context.Context, values map[string]any) error

	// SubscribeToEvent requests notification for the named event path,
	// returning whether the subscription succeeded.
	SubscribeToEvent(ctx context.Context, path string) (bool, error)

	// CallFunction invokes the function at path with the given named
	// inputs, returning its named outputs.
	CallFunction(ctx context.Context, path string, inputs map[string]any) (map[string]any, error)
}

// Attributes is the raw, pre-normalization type/access pair a hook reports
// for a parameter.
type Attributes struct {
	// Type is the hook's raw type token (e.g. "xsd:int", "xsd:string").
	Type string
	// Access is the hook's raw access token (e.g. "readwrite", "rw").
	Access string
}
