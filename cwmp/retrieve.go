package cwmp

import (
	"context"
	"fmt"

	"github.com/tr181kit/compare/hook"
	"github.com/tr181kit/compare/node"
	"github.com/tr181kit/compare/retry"
	"github.com/tr181kit/compare/validator"
)

// missingAttributesError reports that a requested path was absent from a
// GetParameterAttributes reply, meaning the hook could not retrieve it.
func missingAttributesError(path string) error {
	return fmt.Errorf("cwmp: no attributes returned for %q", path)
}

// batches splits paths into fixed-size chunks, preserving order.
func batches(paths []string, size int) [][]string {
	if size <= 0 {
		size = len(paths)
		if size == 0 {
			return nil
		}
	}
	var out [][]string
	for i := 0; i < len(paths); i += size {
		end := i + size
		if end > len(paths) {
			end = len(paths)
		}
		out = append(out, paths[i:end])
	}
	return out
}

// retrieveAll fetches attributes and values for every leaf path, batched
// per cfg.batchSize. A batch whose two-call join fails outright falls back
// to per-path retrieval for that batch; per-path failures are reported
// through the returned PartialResult rather than aborting the run.
func retrieveAll(ctx context.Context, h hook.Hook, leaves []string, batchSize int) ([]*node.Node, *retry.PartialResult[string, *node.Node], []string) {
	var nodes []*node.Node
	var allWarnings []string
	partial := &retry.PartialResult[string, *node.Node]{Total: len(leaves)}

	for _, batch := range batches(leaves, batchSize) {
		attrs, values, err := fetchBatch(ctx, h, batch)
		if err != nil {
			// Batch-level join failed outright: fall back to retrieving
			// each path in the batch independently.
			for _, path := range batch {
				n, warnings, ferr := retrieveOne(ctx, h, path)
				allWarnings = append(allWarnings, warnings...)
				if ferr != nil {
					partial.Failed = append(partial.Failed, retry.Failure[string]{Item: path, Err: ferr})
					continue
				}
				nodes = append(nodes, n)
				partial.Successful = append(partial.Successful, n)
			}
			continue
		}

		for _, path := range batch {
			a, hasAttr := attrs[path]
			v, hasValue := values[path]
			if !hasAttr {
				partial.Failed = append(partial.Failed, retry.Failure[string]{
					Item: path,
					Err:  missingAttributesError(path),
				})
				continue
			}
			n, warnings := buildNode(path, a, v, hasValue)
			allWarnings = append(allWarnings, warnings...)
			nodes = append(nodes, n)
			partial.Successful = append(partial.Successful, n)
		}
	}

	return nodes, partial, allWarnings
}

// fetchBatch performs the two-call-then-join retrieval for one batch:
// attributes and values are fetched independently and joined by path.
func fetchBatch(ctx context.Context, h hook.Hook, batch []string) (map[string]hook.Attributes, map[string]any, error) {
	attrs, err := h.GetParameterAttributes(ctx, batch)
	if err != nil {
		return nil, nil, err
	}
	values, err := h.GetParameterValues(ctx, batch)
	if err != nil {
		return nil, nil, err
	}
	return attrs, values, nil
}

// retrieveOne retrieves and constructs a single node, used as the
// per-path fallback after a batch-level failure.
func retrieveOne(ctx context.Context, h hook.Hook, path string) (*node.Node, []string, error) {
	attrs, values, err := fetchBatch(ctx, h, []string{path})
	if err != nil {
		return nil, nil, err
	}
	a, hasAttr := attrs[path]
	if !hasAttr {
		return nil, nil, missingAttributesError(path)
	}
	v, hasValue := values[path]
	n, warnings := buildNode(path, a, v, hasValue)
	return n, warnings, nil
}

// buildNode constructs a normalized node.Node from one path's raw
// attributes and optional raw value, per spec §4.3(a)-(d).
func buildNode(path string, attrs hook.Attributes, rawValue any, hasValue bool) (*node.Node, []string) {
	var warnings []string

	dt, knownType := normalizeType(attrs.Type)
	if !knownType {
		warnings = append(warnings, "cwmp: unrecognized type "+attrs.Type+" for "+path+", defaulting to string")
	}

	access, knownAccess := normalizeAccess(attrs.Access)
	if !knownAccess {
		warnings = append(warnings, "cwmp: unrecognized access "+attrs.Access+" for "+path+", leaving unset")
	}

	n := &node.Node{
		Path:     path,
		Name:     node.NameOf(path),
		DataType: dt,
		Access:   access,
		IsObject: node.IsObjectPath(path),
		Origin:   node.OriginCWMP,
	}

	if hasValue {
		coerced, err := validator.CoerceValue(dt, rawValue)
		if err != nil {
			n.Value = rawValue
			warnings = append(warnings, "cwmp: value for "+path+" did not coerce to "+string(dt)+", keeping raw: "+err.Error())
		} else {
			n.Value = coerced
		}
	}

	return n, warnings
}
