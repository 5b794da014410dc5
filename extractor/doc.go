// Package extractor defines the uniform interface every TR-181 source
// (CWMP device, generic device REST API, or static requirement document)
// implements to produce a normalized node set.
package extractor
