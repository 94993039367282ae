package metrics

// NoopCollector discards all metrics. Used in tests and when metrics are
// disabled by configuration.
type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

func (NoopCollector) RecordConnectAttempt(connectionID string)              {}
func (NoopCollector) RecordConnectSuccess(connectionID string)              {}
func (NoopCollector) RecordConnectFailure(connectionID string)              {}
func (NoopCollector) RecordDisconnect(connectionID string)                  {}
func (NoopCollector) SetQueueDepth(connectionID, queue string, depth int64) {}
func (NoopCollector) RecordRefresh(connectionID string, queues int)         {}
func (NoopCollector) RecordBrowse(queue string, messages int)               {}
func (NoopCollector) RecordDelete(queue string)                             {}
func (NoopCollector) RecordPurge(queue string, removed int)                 {}
func (NoopCollector) RecordSend(queue string, bytes int)                    {}
