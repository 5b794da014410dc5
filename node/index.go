package node

import (
	"sort"
	"strings"
)

// PathIndex resolves parent/child relationships for a set of nodes produced
// by a single extraction or comparison run, without the nodes themselves
// carrying owning pointers in either direction (per the "cyclic parent/child
// references" design note: hierarchy is computed from paths, not stored).
type PathIndex struct {
	byPath map[string]*Node
	sorted []string // paths, sorted, built lazily
}

// NewPathIndex builds a PathIndex over nodes. Later nodes with a duplicate
// path overwrite earlier ones; callers that must reject duplicate paths
// should validate before constructing the index (see the validator
// package's path-uniqueness check).
func NewPathIndex(nodes []*Node) *PathIndex {
	idx := &PathIndex{byPath: make(map[string]*Node, len(nodes))}
	for _, n := range nodes {
		idx.byPath[n.Path] = n
	}
	return idx
}

// Get returns the node at path, or nil if not present in this run.
func (idx *PathIndex) Get(path string) *Node {
	return idx.byPath[path]
}

// Len returns the number of indexed nodes.
func (idx *PathIndex) Len() int {
	return len(idx.byPath)
}

// Parent returns the node's parent within this run, or nil if the parent
// path is not present (which is valid: the parent may be an implicit
// object never materialized as its own node).
func (idx *PathIndex) Parent(n *Node) *Node {
	if n == nil {
		return nil
	}
	parentPath := ParentPath(n.Path)
	if parentPath == "" {
		return nil
	}
	return idx.byPath[parentPath]
}

// Children returns every indexed node whose path is a direct child of n's
// path, sorted by path. Only direct children are returned; callers wanting
// the full subtree should recurse.
func (idx *PathIndex) Children(n *Node) []*Node {
	if n == nil || !n.IsObject {
		return nil
	}
	var children []*Node
	for _, p := range idx.sortedPaths() {
		if p == n.Path {
			continue
		}
		if !strings.HasPrefix(p, n.Path) {
			continue
		}
		rest := strings.TrimPrefix(p, n.Path)
		rest = strings.TrimSuffix(rest, ".")
		if rest == "" || strings.Contains(rest, ".") {
			continue // not a direct child
		}
		children = append(children, idx.byPath[p])
	}
	return children
}

// Paths returns every indexed path, sorted.
func (idx *PathIndex) Paths() []string {
	return append([]string(nil), idx.sortedPaths()...)
}

func (idx *PathIndex) sortedPaths() []string {
	if idx.sorted != nil {
		return idx.sorted
	}
	sorted := make([]string, 0, len(idx.byPath))
	for p := range idx.byPath {
		sorted = append(sorted, p)
	}
	sort.Strings(sorted)
	idx.sorted = sorted
	return sorted
}
