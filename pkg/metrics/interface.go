package metrics

// Collector is the interface for engine metrics collection. It allows easy
// mocking in tests; the production implementation registers prometheus
// metrics.
type Collector interface {
	// Connection metrics
	RecordConnectAttempt(connectionID string)
	RecordConnectSuccess(connectionID string)
	RecordConnectFailure(connectionID string)
	RecordDisconnect(connectionID string)

	// Queue metrics
	SetQueueDepth(connectionID, queue string, depth int64)
	RecordRefresh(connectionID string, queues int)

	// Message operation metrics
	RecordBrowse(queue string, messages int)
	RecordDelete(queue string)
	RecordPurge(queue string, removed int)
	RecordSend(queue string, bytes int)
}

// Ensure implementations satisfy the interface.
var (
	_ Collector = (*PrometheusCollector)(nil)
	_ Collector = (*NoopCollector)(nil)
)
