// Package observability provides the structured logging, event, and
// performance-span surface shared by every pipeline stage: extraction,
// comparison, validation, and the resilience layer.
//
// [Logger] is a minimal, slog-compatible interface; [NopLogger],
// [SlogAdapter], and [ZerologAdapter] are the shipped implementations.
// [Sink] extends Logger with structured event and span recording, and
// [PrometheusSink] exposes span durations and event counts as Prometheus
// metrics.
package observability
