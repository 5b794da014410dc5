// Package enhanced implements the enhanced comparison engine: the base
// compare.Compare set/attribute diff, plus per-node validation against a
// requirement side and, when a live hook is supplied (WithLiveHook), event
// subscription and function invocation probing over that hook.
//
// Engine wraps a compare configuration by composition, matching the
// teacher's unified-diff-plus-validator shape rather than a subclass of
// the base comparer (see the Design Notes on dynamic class hierarchies).
package enhanced
