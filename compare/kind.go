package compare

// Kind identifies the nature of a single Difference entry.
type Kind string

const (
	KindOnlyInSource1  Kind = "only_in_source1"
	KindOnlyInSource2  Kind = "only_in_source2"
	KindTypeMismatch   Kind = "type_mismatch"
	KindAccessMismatch Kind = "access_mismatch"
	KindValueMismatch  Kind = "value_mismatch"
	KindRangeMismatch  Kind = "range_mismatch"
)

// kindOrder fixes the tie-break order used when two differences share a
// path, so sorting is deterministic independent of map iteration order.
var kindOrder = map[Kind]int{
	KindOnlyInSource1:  0,
	KindOnlyInSource2:  1,
	KindTypeMismatch:   2,
	KindAccessMismatch: 3,
	KindValueMismatch:  4,
	KindRangeMismatch:  5,
}
