package ploc2d

import (
	"sync/atomic"
)

// SessionMetrics contains atomic metrics for a session.
// Metrics can be used as the value of a prometheus CounterFunc or GaugeFunc.
type SessionMetrics struct {
	// ConnectCount indicates the number of successful connections.
	ConnectCount atomic.Uint64

	// JobSendCount indicates the number of job requests sent.
	JobSendCount atomic.Uint64
	// JobRecvCount indicates the number of job replies received.
	JobRecvCount atomic.Uint64
	// JobErrCount indicates the number of jobs that failed at the transport
	// level (send, receive, timeout, malformed reply).
	JobErrCount atomic.Uint64

	// DeviceErrCount indicates the number of locate errors reported by the
	// device itself.
	DeviceErrCount atomic.Uint64
}

func (m *SessionMetrics) incConnectCount() {
	m.ConnectCount.Add(1)
}

func (m *SessionMetrics) incJobSendCount() {
	m.JobSendCount.Add(1)
}

func (m *SessionMetrics) incJobRecvCount() {
	m.JobRecvCount.Add(1)
}

func (m *SessionMetrics) incJobErrCount() {
	m.JobErrCount.Add(1)
}

func (m *SessionMetrics) incDeviceErrCount() {
	m.DeviceErrCount.Add(1)
}
