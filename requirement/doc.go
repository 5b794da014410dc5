// Package requirement loads and saves declarative operator-requirement
// documents: an unordered set of partial TR-181 node definitions an
// operator expects a device to implement. Format (JSON or YAML) is
// detected from the file extension, falling back to content sniffing,
// following the same two-stage detection the teacher uses for OpenAPI
// documents.
package requirement
