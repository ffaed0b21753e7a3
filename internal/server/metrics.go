package server

import (
	"sync/atomic"
	"time"

	"github.com/Brownie44l1/httpd/internal/response"
)

// Metrics holds server runtime counters. They are the only state shared
// between connections and are only touched atomically.
type Metrics struct {
	ConnectionsTotal  atomic.Int64
	ActiveConnections atomic.Int64
	RequestsTotal     atomic.Int64
	Errors4xx         atomic.Int64
	// AbortedTotal counts connections dropped without a response.
	AbortedTotal atomic.Int64
	BytesWritten atomic.Int64

	TotalLatencyNs atomic.Int64
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordRequest records a request that was answered
func (m *Metrics) RecordRequest(status response.Status, written int, duration time.Duration) {
	m.RequestsTotal.Add(1)
	m.BytesWritten.Add(int64(written))
	m.TotalLatencyNs.Add(duration.Nanoseconds())

	if status.IsClientError() {
		m.Errors4xx.Add(1)
	}
}

// RecordAbort records a connection closed without a response
func (m *Metrics) RecordAbort() {
	m.AbortedTotal.Add(1)
}

// AverageLatency returns average request latency
func (m *Metrics) AverageLatency() time.Duration {
	totalReqs := m.RequestsTotal.Load()
	if totalReqs == 0 {
		return 0
	}

	avgNs := m.TotalLatencyNs.Load() / totalReqs
	return time.Duration(avgNs)
}

// MetricsSnapshot is a point-in-time copy of Metrics
type MetricsSnapshot struct {
	ConnectionsTotal  int64
	ActiveConnections int64
	RequestsTotal     int64
	Errors4xx         int64
	AbortedTotal      int64
	BytesWritten      int64
	AverageLatency    time.Duration
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		ConnectionsTotal:  m.ConnectionsTotal.Load(),
		ActiveConnections: m.ActiveConnections.Load(),
		RequestsTotal:     m.RequestsTotal.Load(),
		Errors4xx:         m.Errors4xx.Load(),
		AbortedTotal:      m.AbortedTotal.Load(),
		BytesWritten:      m.BytesWritten.Load(),
		AverageLatency:    m.AverageLatency(),
	}
}

// Fields renders the snapshot for the logger
func (s MetricsSnapshot) Fields() []Field {
	return []Field{
		{"connections_total", s.ConnectionsTotal},
		{"active_connections", s.ActiveConnections},
		{"requests_total", s.RequestsTotal},
		{"errors_4xx", s.Errors4xx},
		{"aborted_total", s.AbortedTotal},
		{"bytes_written", s.BytesWritten},
		{"avg_latency", s.AverageLatency},
	}
}
