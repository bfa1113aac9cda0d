// Package metrics provides OpenTelemetry metrics for streamkit
// pipelines: counters for produced items, overflow drops, upstream
// fetches, and isolated transform failures, plus a queue depth gauge.
//
// InitMeter wires an OTLP HTTP exporter into the global meter provider.
// StreamMetrics instruments attach to pipelines through small hook
// adapters such as QueueOverflowHook, so the stream package itself
// stays free of any metrics dependency.
package metrics
