package ploc2d

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/ryan-topping/sick-ploc2d/logger"
)

// Session represents one TCP connection to a single PLOC2D device.
//
// The command channel is strictly half-duplex with one request in flight at
// a time; Session serializes RunJob internally, so a second call blocks
// until the previous round-trip completes. To run jobs on several devices
// concurrently, use one Session per device.
type Session struct {
	cfg    *SessionConfig
	logger logger.Logger

	mu   sync.Mutex
	conn net.Conn // nil when disconnected

	metrics SessionMetrics

	now func() time.Time // clock, replaceable in tests
}

// NewSession creates a Session for the device described by cfg.
// The session starts disconnected; call Connect before running jobs.
func NewSession(cfg *SessionConfig) *Session {
	return &Session{
		cfg:    cfg,
		logger: cfg.logger,
		now:    time.Now,
	}
}

// Connect establishes the TCP connection to the device.
// It is a no-op when the session is already connected. The dial is bounded
// by the configured connect timeout, or by ctx if it expires earlier.
func (s *Session) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return nil
	}

	dialer := &net.Dialer{}
	dialCtx, cancel := context.WithTimeout(ctx, s.cfg.connectTimeout)
	defer cancel()

	conn, err := dialer.DialContext(dialCtx, "tcp", s.cfg.address())
	if err != nil {
		s.logger.Debug("failed to dial to device", "address", s.cfg.address(), "error", err)
		return fmt.Errorf("%w: %v", ErrConnectFailed, err)
	}

	s.conn = conn
	s.metrics.incConnectCount()

	s.logger.Debug("connected to device",
		"host", s.cfg.host,
		"port", s.cfg.port,
		"local_addr", conn.LocalAddr().String(),
		"remote_addr", conn.RemoteAddr().String(),
	)

	return nil
}

// Disconnect closes the connection if one is open; it is a no-op otherwise.
// The close is best-effort: a failed close is logged and swallowed, and the
// connection handle is released unconditionally.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dropConn()
}

// IsConnected reports whether the session currently holds an open connection.
func (s *Session) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conn != nil
}

// Metrics returns the metrics associated with the session.
func (s *Session) Metrics() *SessionMetrics {
	return &s.metrics
}

// JobOption represents an optional parameter for RunJob.
type JobOption func(*jobRequest)

type jobRequest struct {
	match *int
}

// WithMatch selects which candidate detection the device reports when the
// job yields multiple matches. Without this option no match selector is sent
// and the device reports its default match.
func WithMatch(matchID int) JobOption {
	return func(r *jobRequest) {
		id := matchID
		r.match = &id
	}
}

// RunJob invokes the locate job with the given id on the device and blocks
// until the device replies or the configured timeout elapses. An earlier ctx
// deadline tightens the timeout.
//
// Transport faults (ErrNotConnected, ErrSendFailed, ErrReceiveTimeout,
// ErrReceiveFailed, ErrEmptyResponse, ErrMalformedResponse) are returned as
// errors; a send or receive fault also forces the session back to the
// disconnected state, so the caller must Connect again before retrying.
// Locate errors reported by the device are returned as a normal Result with
// the error fields populated.
func (s *Session) RunJob(ctx context.Context, jobID int, opts ...JobOption) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.conn == nil {
		return nil, ErrNotConnected
	}

	var job jobRequest
	for _, opt := range opts {
		opt(&job)
	}

	payload, err := encodeRequest(jobID, job.match)
	if err != nil {
		return nil, err
	}

	deadline := s.deadline(ctx)

	if err := s.send(payload, deadline); err != nil {
		s.metrics.incJobErrCount()
		s.dropConn()
		s.logger.Error("failed to send job request", "job", jobID, "error", err)
		return nil, err
	}
	s.metrics.incJobSendCount()

	reply, err := s.receive(deadline)
	if err != nil {
		s.metrics.incJobErrCount()
		s.dropConn()
		s.logger.Error("failed to receive job reply", "job", jobID, "error", err)
		return nil, err
	}
	s.metrics.incJobRecvCount()

	fields, err := decodeEnvelope(reply)
	if err != nil {
		s.metrics.incJobErrCount()
		s.logger.Error("failed to decode job reply", "job", jobID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	result := newResult(jobID, fields, s.now())

	if result.IsError() {
		s.metrics.incDeviceErrCount()
		s.logger.Warn("device reported locate error",
			"job", jobID,
			"error_code", result.ErrorCode,
			"error_text", result.ErrorText,
		)
	} else {
		s.logger.Debug("job completed",
			"job", jobID,
			"matches", result.Matches,
			"score", result.Score,
			"time_ms", result.Time,
		)
	}

	return result, nil
}

// deadline computes the I/O deadline for one round-trip from the configured
// timeout, tightened by the context deadline when that comes first.
func (s *Session) deadline(ctx context.Context) time.Time {
	d := s.now().Add(s.cfg.timeout)
	if cd, ok := ctx.Deadline(); ok && cd.Before(d) {
		d = cd
	}
	return d
}

// send writes the full request to the connection before the deadline.
// The caller must hold s.mu.
func (s *Session) send(payload []byte, deadline time.Time) error {
	if err := s.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if _, err := s.conn.Write(payload); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return nil
}

// receive reads one reply chunk of at most the configured buffer size before
// the deadline. The caller must hold s.mu.
func (s *Session) receive(deadline time.Time) ([]byte, error) {
	if err := s.conn.SetReadDeadline(deadline); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReceiveFailed, err)
	}

	buf := make([]byte, s.cfg.bufferSize)
	n, err := s.conn.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err == nil {
		return nil, ErrEmptyResponse
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return nil, fmt.Errorf("%w after %s", ErrReceiveTimeout, s.cfg.timeout)
	}

	// EOF before any data means the device closed without answering.
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyResponse
	}

	return nil, fmt.Errorf("%w: %v", ErrReceiveFailed, err)
}

// dropConn closes and releases the connection handle.
// The caller must hold s.mu.
func (s *Session) dropConn() {
	if s.conn == nil {
		return
	}

	if err := s.conn.Close(); err != nil {
		s.logger.Debug("failed to close connection", "error", err)
	}
	s.conn = nil

	s.logger.Debug("disconnected from device", "host", s.cfg.host, "port", s.cfg.port)
}
