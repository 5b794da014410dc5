// Package hook defines the pluggable transport boundary extractors use to
// reach a device or ACS: connect/disconnect, parameter name/value/attribute
// RPCs, event subscription, and function invocation.
//
// [Hook] is the interface every transport implements. [Registry] maps a
// configuration-declared type string to a factory, so extractors resolve
// hooks without depending on any concrete transport package. [MockHook] is
// the in-repo reference implementation used by every test in this module.
package hook
