package compare

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/tr181kit/compare/internal/severity"
	"github.com/tr181kit/compare/node"
	"github.com/tr181kit/compare/validator"
)

// Report is the result of a Compare call: the two source-exclusive node
// sets plus the attribute-level differences for every path present in
// both, sorted for stable output.
type Report struct {
	OnlyInSource1 []*node.Node `json:"only_in_source1"`
	OnlyInSource2 []*node.Node `json:"only_in_source2"`
	Differences   []Difference `json:"differences"`
	Summary       Summary      `json:"summary"`
}

// comparer accumulates a Report the way the teacher's Differ accumulates a
// DiffResult: a handful of diffX methods each append zero or more
// Difference entries rather than returning them, so a single comparison
// threads one report through the whole call tree.
type comparer struct {
	cfg    *config
	report *Report
}

// Compare indexes source1 and source2 by canonical path, computes their
// set difference, and diffs data_type, access, value, and value_range for
// every path present in both. The result is sorted by path then kind.
func Compare(source1, source2 []*node.Node, opts ...Option) (*Report, error) {
	cfg := newConfig(opts...)
	c := &comparer{
		cfg: cfg,
		report: &Report{
			Summary: Summary{ByKind: make(map[Kind]int)},
		},
	}

	index1 := c.indexByKey(source1)
	index2 := c.indexByKey(source2)

	for key, n1 := range index1 {
		n2, ok := index2[key]
		if !ok {
			c.reportOnlyIn1(n1)
			continue
		}
		c.diffCommon(n1, n2)
	}
	for key, n2 := range index2 {
		if _, ok := index1[key]; !ok {
			c.reportOnlyIn2(n2)
		}
	}

	c.sortDifferences()
	c.report.Summary.TotalOnlySource1 = len(c.report.OnlyInSource1)
	c.report.Summary.TotalOnlySource2 = len(c.report.OnlyInSource2)

	return c.report, nil
}

// indexByKey maps each node to its canonical key. Keys collapse the
// trailing "." when the comparer is configured to treat object/leaf stems
// as the same path.
func (c *comparer) indexByKey(nodes []*node.Node) map[string]*node.Node {
	idx := make(map[string]*node.Node, len(nodes))
	for _, n := range nodes {
		idx[c.canonicalKey(n.Path)] = n
	}
	return idx
}

func (c *comparer) canonicalKey(path string) string {
	if c.cfg.collapseObjectLeaf {
		return strings.TrimSuffix(path, ".")
	}
	return path
}

func (c *comparer) reportOnlyIn1(n *node.Node) {
	c.report.OnlyInSource1 = append(c.report.OnlyInSource1, n)
	c.add(Difference{
		Path:         n.Path,
		Kind:         KindOnlyInSource1,
		Source1Value: n.Value,
		Severity:     severity.SeverityWarning,
	})
}

func (c *comparer) reportOnlyIn2(n *node.Node) {
	c.report.OnlyInSource2 = append(c.report.OnlyInSource2, n)
	c.add(Difference{
		Path:         n.Path,
		Kind:         KindOnlyInSource2,
		Source2Value: n.Value,
		Severity:     severity.SeverityWarning,
	})
}

// diffCommon compares the attributes of two nodes sharing a canonical
// path, emitting one Difference per attribute that disagrees.
func (c *comparer) diffCommon(n1, n2 *node.Node) {
	c.report.Summary.TotalCommonPaths++

	c.diffDataType(n1, n2)

	// Tie-break per spec: value coercion always uses source1's declared
	// type, whether or not the two sides agreed on data_type.
	c.diffAccess(n1, n2)
	c.diffValue(n1, n2, n1.DataType)
	c.diffValueRange(n1, n2)
}

func (c *comparer) diffDataType(n1, n2 *node.Node) {
	if n1.DataType == n2.DataType && node.IsObjectPath(n1.Path) == node.IsObjectPath(n2.Path) {
		return
	}
	c.add(Difference{
		Path:         n1.Path,
		Kind:         KindTypeMismatch,
		Source1Value: string(n1.DataType),
		Source2Value: string(n2.DataType),
		Severity:     severity.SeverityError,
	})
}

func (c *comparer) diffAccess(n1, n2 *node.Node) {
	if n1.Access == n2.Access {
		return
	}
	c.add(Difference{
		Path:         n1.Path,
		Kind:         KindAccessMismatch,
		Source1Value: string(n1.Access),
		Source2Value: string(n2.Access),
		Severity:     severity.SeverityWarning,
	})
}

// diffValue compares two nodes' values in their normalized (coerced) form
// so that e.g. an int 6 and a string "6" are not reported as differing.
// compareType is the data type used for coercing both sides, already
// resolved per the source-1 tie-break rule.
func (c *comparer) diffValue(n1, n2 *node.Node, compareType node.DataType) {
	if n1.Value == nil && n2.Value == nil {
		return
	}
	if n1.Value == nil || n2.Value == nil {
		c.add(Difference{
			Path:         n1.Path,
			Kind:         KindValueMismatch,
			Source1Value: n1.Value,
			Source2Value: n2.Value,
			Severity:     severity.SeverityInfo,
		})
		return
	}

	c1 := normalizedValue(compareType, n1.Value)
	c2 := normalizedValue(compareType, n2.Value)
	if fmt.Sprint(c1) == fmt.Sprint(c2) {
		return
	}
	c.add(Difference{
		Path:         n1.Path,
		Kind:         KindValueMismatch,
		Source1Value: n1.Value,
		Source2Value: n2.Value,
		Severity:     severity.SeverityInfo,
	})
}

// normalizedValue coerces v under dt, falling back to v itself if it does
// not coerce cleanly (e.g. after a type_mismatch, the two sides' raw
// values may simply not share a common type).
func normalizedValue(dt node.DataType, v any) any {
	coerced, err := validator.CoerceValue(dt, v)
	if err != nil {
		return v
	}
	return coerced
}

func (c *comparer) diffValueRange(n1, n2 *node.Node) {
	if valueRangeEqual(n1.ValueRange, n2.ValueRange) {
		return
	}
	c.add(Difference{
		Path:         n1.Path,
		Kind:         KindRangeMismatch,
		Source1Value: n1.ValueRange,
		Source2Value: n2.ValueRange,
		Severity:     severity.SeverityWarning,
	})
}

func valueRangeEqual(a, b *node.ValueRange) bool {
	aEmpty, bEmpty := a.IsEmpty(), b.IsEmpty()
	if aEmpty && bEmpty {
		return true
	}
	if aEmpty != bEmpty {
		return false
	}
	return reflect.DeepEqual(*a, *b)
}

func (c *comparer) add(d Difference) {
	c.report.Differences = append(c.report.Differences, d)
	c.report.Summary.ByKind[d.Kind]++
	if d.Kind != KindOnlyInSource1 && d.Kind != KindOnlyInSource2 {
		c.report.Summary.TotalDifferences++
	}
}

func (c *comparer) sortDifferences() {
	diffs := c.report.Differences
	sort.Slice(diffs, func(i, j int) bool {
		if diffs[i].Path != diffs[j].Path {
			return diffs[i].Path < diffs[j].Path
		}
		return kindOrder[diffs[i].Kind] < kindOrder[diffs[j].Kind]
	})

	sort.Slice(c.report.OnlyInSource1, func(i, j int) bool {
		return c.report.OnlyInSource1[i].Path < c.report.OnlyInSource1[j].Path
	})
	sort.Slice(c.report.OnlyInSource2, func(i, j int) bool {
		return c.report.OnlyInSource2[i].Path < c.report.OnlyInSource2[j].Path
	})
}
