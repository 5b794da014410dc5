package cwmp

import (
	"context"
	"errors"
	"fmt"

	"github.com/tr181kit/compare/cmperrors"
	"github.com/tr181kit/compare/hook"
	"github.com/tr181kit/compare/node"
	"github.com/tr181kit/compare/observability"
)

// discoveryResult is the outcome of a BFS discovery pass: the leaf paths
// found, plus any depth-cap/cycle warnings raised along the way.
type discoveryResult struct {
	leaves   []string
	warnings []string
}

// queueItem is one pending prefix to expand, carrying its depth so the
// depth cap can be enforced without recomputing it from the path.
type queueItem struct {
	prefix string
	depth  int
}

// discover performs the recursive CWMP name-discovery walk described in
// spec §4.3: starting from node.RootPrefix, it processes a FIFO queue of
// object prefixes, calling GetParameterNames on each. Items ending in "."
// are re-enqueued as object prefixes; other items are recorded as leaves.
// A visited set prevents reprocessing a prefix, and maxDepth prunes any
// subtree discovered past the configured depth.
func discover(ctx context.Context, h hook.Hook, maxDepth int, sink observability.Sink) (discoveryResult, error) {
	result := discoveryResult{}
	visited := make(map[string]bool)
	leafSeen := make(map[string]bool)
	queue := []queueItem{{prefix: node.RootPrefix, depth: 0}}

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		if visited[item.prefix] {
			msg := fmt.Sprintf("cwmp: prefix %q already visited, skipping", item.prefix)
			result.warnings = append(result.warnings, msg)
			sink.Warn(msg)
			continue
		}
		visited[item.prefix] = true

		if item.depth > maxDepth {
			msg := fmt.Sprintf("cwmp: depth cap %d exceeded at prefix %q, pruning subtree", maxDepth, item.prefix)
			result.warnings = append(result.warnings, msg)
			sink.Warn(msg)
			continue
		}

		names, err := h.GetParameterNames(ctx, item.prefix)
		if err != nil {
			return result, classifyDiscoveryError(item.prefix, err)
		}

		for _, name := range names {
			if node.IsObjectPath(name) {
				queue = append(queue, queueItem{prefix: name, depth: item.depth + 1})
				continue
			}
			if !leafSeen[name] {
				leafSeen[name] = true
				result.leaves = append(result.leaves, name)
			}
		}
	}

	return result, nil
}

// classifyDiscoveryError wraps a raw hook error as the appropriate
// cmperrors type for a discovery-phase failure, which per spec §4.3
// propagates rather than degrading. A hook error already carrying one of
// the structured kinds is passed through unchanged.
func classifyDiscoveryError(prefix string, err error) error {
	var structured interface{ Retryable() bool }
	if errors.As(err, &structured) {
		return err
	}
	return &cmperrors.ProtocolError{
		Context: cmperrors.Context{
			Operation: "discover",
			Component: "cwmp",
			Metadata:  map[string]any{"prefix": prefix},
		},
		Cause: err,
	}
}
