package extractor

import (
	"context"
	"time"

	"github.com/tr181kit/compare/node"
	"github.com/tr181kit/compare/retry"
)

// SourceInfo describes the origin of an extracted node set, surfaced
// verbatim in comparison reports.
type SourceInfo struct {
	// Type names the extractor kind (e.g. "cwmp", "device", "requirement").
	Type string
	// Identifier names the specific source (e.g. a device name or file path).
	Identifier string
	// Timestamp is when the extraction ran.
	Timestamp time.Time
	// Metadata carries free-form extractor-specific detail.
	Metadata map[string]any
}

// Extractor produces a normalized TR-181 node set from a single source.
// Implementations must be safe to re-invoke after a failed Extract call.
type Extractor interface {
	// Extract produces the full node set from this source, along with a
	// PartialResult describing any per-item retrieval failures that did not
	// abort the run.
	Extract(ctx context.Context) ([]*node.Node, *retry.PartialResult[string, *node.Node], error)

	// Validate performs a cheap liveness check. It must not panic except on
	// programmer error.
	Validate(ctx context.Context) bool

	// SourceInfo describes this extractor's source, for reports.
	SourceInfo() SourceInfo
}
