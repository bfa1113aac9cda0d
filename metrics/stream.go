package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/kbukum/streamkit/stream"
)

// StreamMetrics holds OpenTelemetry metric instruments for stream
// pipeline observability.
type StreamMetrics struct {
	itemsTotal      metric.Int64Counter
	dropsTotal      metric.Int64Counter
	fetchTotal      metric.Int64Counter
	transformErrors metric.Int64Counter
	queueDepth      metric.Int64UpDownCounter
}

// NewStreamMetrics creates metric instruments on the given meter.
func NewStreamMetrics(meter metric.Meter) (*StreamMetrics, error) {
	itemsTotal, err := meter.Int64Counter("stream.items.total",
		metric.WithDescription("Total number of items produced per stream"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.items.total counter: %w", err)
	}

	dropsTotal, err := meter.Int64Counter("stream.drops.total",
		metric.WithDescription("Total number of items dropped on overflow"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.drops.total counter: %w", err)
	}

	fetchTotal, err := meter.Int64Counter("stream.fetch.total",
		metric.WithDescription("Total number of upstream fetches issued"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.fetch.total counter: %w", err)
	}

	transformErrors, err := meter.Int64Counter("stream.transform.errors.total",
		metric.WithDescription("Total transform function failures, isolated per item"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.transform.errors.total counter: %w", err)
	}

	queueDepth, err := meter.Int64UpDownCounter("stream.queue.depth",
		metric.WithDescription("Number of items currently buffered per queue"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.queue.depth gauge: %w", err)
	}

	return &StreamMetrics{
		itemsTotal:      itemsTotal,
		dropsTotal:      dropsTotal,
		fetchTotal:      fetchTotal,
		transformErrors: transformErrors,
		queueDepth:      queueDepth,
	}, nil
}

// RecordItem records one produced item for the named stream.
func (m *StreamMetrics) RecordItem(ctx context.Context, streamName string) {
	m.itemsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stream", streamName),
	))
}

// RecordDrop records one item dropped on overflow.
func (m *StreamMetrics) RecordDrop(ctx context.Context, streamName string) {
	m.dropsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stream", streamName),
	))
}

// RecordFetch records one upstream fetch.
func (m *StreamMetrics) RecordFetch(ctx context.Context, streamName string) {
	m.fetchTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stream", streamName),
	))
}

// RecordTransformError records one isolated transform failure.
func (m *StreamMetrics) RecordTransformError(ctx context.Context, component string) {
	m.transformErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("component", component),
	))
}

// AddQueueDepth adjusts the buffered item count for the named queue.
func (m *StreamMetrics) AddQueueDepth(ctx context.Context, streamName string, delta int64) {
	m.queueDepth.Add(ctx, delta, metric.WithAttributes(
		attribute.String("stream", streamName),
	))
}

// QueueOverflowHook returns an overflow callback that counts drops for
// the named stream. Install it on a queue or forker:
//
//	q := stream.NewQueue[int](cap, stream.WithOverflow(metrics.QueueOverflowHook[int](m, "ingest")))
func QueueOverflowHook[T any](m *StreamMetrics, streamName string) stream.OverflowFunc[T] {
	return func(_ *stream.Queue[T], _ T) {
		m.RecordDrop(context.Background(), streamName)
	}
}
