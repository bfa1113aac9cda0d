package metrics

import (
	"context"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/kbukum/streamkit/stream"
)

func newTestMetrics(t *testing.T) (*StreamMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewStreamMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	return m, reader
}

func sumOf(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatal(err)
	}
	for _, scope := range rm.ScopeMetrics {
		for _, met := range scope.Metrics {
			if met.Name != name {
				continue
			}
			sum, ok := met.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %s has unexpected data type %T", name, met.Data)
			}
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total
		}
	}
	return 0
}

func TestQueueOverflowHookCountsDrops(t *testing.T) {
	m, reader := newTestMetrics(t)

	q := stream.NewQueue(1,
		stream.WithName[int]("ingest"),
		stream.WithOverflow(QueueOverflowHook[int](m, "ingest")),
	)
	if err := q.PushNowait(1, 2, 3); err != nil {
		t.Fatal(err)
	}

	if got := sumOf(t, reader, "stream.drops.total"); got != 2 {
		t.Errorf("stream.drops.total = %d, want 2", got)
	}
}

func TestRecordCounters(t *testing.T) {
	ctx := context.Background()
	m, reader := newTestMetrics(t)

	m.RecordItem(ctx, "s")
	m.RecordItem(ctx, "s")
	m.RecordFetch(ctx, "s")
	m.RecordTransformError(ctx, "map")

	if got := sumOf(t, reader, "stream.items.total"); got != 2 {
		t.Errorf("stream.items.total = %d, want 2", got)
	}
	if got := sumOf(t, reader, "stream.fetch.total"); got != 1 {
		t.Errorf("stream.fetch.total = %d, want 1", got)
	}
	if got := sumOf(t, reader, "stream.transform.errors.total"); got != 1 {
		t.Errorf("stream.transform.errors.total = %d, want 1", got)
	}
}

func TestQueueDepthUpDown(t *testing.T) {
	ctx := context.Background()
	m, reader := newTestMetrics(t)

	m.AddQueueDepth(ctx, "q", 3)
	m.AddQueueDepth(ctx, "q", -1)

	if got := sumOf(t, reader, "stream.queue.depth"); got != 2 {
		t.Errorf("stream.queue.depth = %d, want 2", got)
	}
}
