// Package validator validates TR-181 nodes and requirement documents: path
// syntax, declared-type coercion, value-range constraints, and custom
// (vendor-extension) node rules.
//
// [Validator.ValidateNode] checks a single node; [Validator.ValidateDocument]
// additionally enforces path uniqueness and cross-references event and
// function parameter paths against the rest of the result. The coercion
// table in coercion.go is pinned as package-level data per the "duck-typed
// value comparisons" design note, rather than a type-switch chain spread
// across call sites.
package validator
