// Package device implements a thin extractor.Extractor over a generic
// device REST API hook: a single name-discovery call followed by a
// bounded-parallel per-path fetch, unlike the CWMP extractor's recursive
// BFS and batched two-call retrieval.
package device
