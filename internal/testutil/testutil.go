// Package testutil provides small shared helpers for unit tests across
// this module's packages.
package testutil

// Ptr returns a pointer to v. Handy for building literal struct fixtures
// that need a pointer to a value constant.
func Ptr[T any](v T) *T {
	return &v
}
