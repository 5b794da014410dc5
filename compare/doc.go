// Package compare implements the TR-181 comparison engine: a set-difference
// over two node lists, plus an attribute/value diff for paths common to
// both, following the teacher's differ package's accumulator style (a
// comparer accumulator building up a Report's Differences slice through per-field
// diffX helpers) rather than a generic deep-equal walk.
package compare
