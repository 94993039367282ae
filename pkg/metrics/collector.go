package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector registers engine metrics on its own registry so the
// web layer can expose them without touching the default registry.
type PrometheusCollector struct {
	registry *prometheus.Registry

	connectAttempts *prometheus.CounterVec
	connectFailures *prometheus.CounterVec
	connectsActive  prometheus.Gauge

	queueDepth   *prometheus.GaugeVec
	refreshTotal *prometheus.CounterVec

	browseTotal   *prometheus.CounterVec
	browsedMsgs   *prometheus.CounterVec
	deleteTotal   *prometheus.CounterVec
	purgeTotal    *prometheus.CounterVec
	purgedMsgs    *prometheus.CounterVec
	sendTotal     *prometheus.CounterVec
	sentBytes     *prometheus.CounterVec
}

func NewPrometheusCollector() *PrometheusCollector {
	c := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		connectAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqscope_connect_attempts_total",
			Help: "Connection attempts per configured queue manager",
		}, []string{"connection"}),
		connectFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqscope_connect_failures_total",
			Help: "Failed connection attempts per configured queue manager",
		}, []string{"connection"}),
		connectsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mqscope_connections_active",
			Help: "Queue manager connections currently established",
		}),
		queueDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "mqscope_queue_depth",
			Help: "Current queue depth as of the last catalog refresh",
		}, []string{"connection", "queue"}),
		refreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqscope_catalog_refreshes_total",
			Help: "Catalog refreshes per connection",
		}, []string{"connection"}),
		browseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqscope_browse_operations_total",
			Help: "Browse operations per queue",
		}, []string{"queue"}),
		browsedMsgs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqscope_browsed_messages_total",
			Help: "Messages returned by browse operations per queue",
		}, []string{"queue"}),
		deleteTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqscope_deleted_messages_total",
			Help: "Single-message deletes per queue",
		}, []string{"queue"}),
		purgeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqscope_purge_operations_total",
			Help: "Purge operations per queue",
		}, []string{"queue"}),
		purgedMsgs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqscope_purged_messages_total",
			Help: "Messages removed by purges per queue",
		}, []string{"queue"}),
		sendTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqscope_sent_messages_total",
			Help: "Messages sent per queue",
		}, []string{"queue"}),
		sentBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mqscope_sent_bytes_total",
			Help: "Payload bytes sent per queue",
		}, []string{"queue"}),
	}

	c.registry.MustRegister(
		c.connectAttempts, c.connectFailures, c.connectsActive,
		c.queueDepth, c.refreshTotal,
		c.browseTotal, c.browsedMsgs, c.deleteTotal,
		c.purgeTotal, c.purgedMsgs, c.sendTotal, c.sentBytes,
	)
	return c
}

// Registry exposes the backing registry for the /metrics endpoint.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *PrometheusCollector) RecordConnectAttempt(connectionID string) {
	c.connectAttempts.WithLabelValues(connectionID).Inc()
}

func (c *PrometheusCollector) RecordConnectSuccess(connectionID string) {
	c.connectsActive.Inc()
}

func (c *PrometheusCollector) RecordConnectFailure(connectionID string) {
	c.connectFailures.WithLabelValues(connectionID).Inc()
}

func (c *PrometheusCollector) RecordDisconnect(connectionID string) {
	c.connectsActive.Dec()
}

func (c *PrometheusCollector) SetQueueDepth(connectionID, queue string, depth int64) {
	c.queueDepth.WithLabelValues(connectionID, queue).Set(float64(depth))
}

func (c *PrometheusCollector) RecordRefresh(connectionID string, queues int) {
	c.refreshTotal.WithLabelValues(connectionID).Inc()
}

func (c *PrometheusCollector) RecordBrowse(queue string, messages int) {
	c.browseTotal.WithLabelValues(queue).Inc()
	c.browsedMsgs.WithLabelValues(queue).Add(float64(messages))
}

func (c *PrometheusCollector) RecordDelete(queue string) {
	c.deleteTotal.WithLabelValues(queue).Inc()
}

func (c *PrometheusCollector) RecordPurge(queue string, removed int) {
	c.purgeTotal.WithLabelValues(queue).Inc()
	c.purgedMsgs.WithLabelValues(queue).Add(float64(removed))
}

func (c *PrometheusCollector) RecordSend(queue string, bytes int) {
	c.sendTotal.WithLabelValues(queue).Inc()
	c.sentBytes.WithLabelValues(queue).Add(float64(bytes))
}
