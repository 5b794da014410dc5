// Package node defines the TR-181 parameter record and the path utilities
// used throughout the extraction, validation, and comparison pipeline.
//
// The central type is [Node], a single TR-181 parameter or object. Nodes are
// created by an extractor and are immutable thereafter within a comparison
// run; hierarchy ([Node.Parent], [Node.Children]) is never stored as owning
// pointers and is instead resolved on demand through a [PathIndex] built
// once per run.
package node
