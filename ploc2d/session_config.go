package ploc2d

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/ryan-topping/sick-ploc2d/logger"
)

// DefaultPort is the TCP port of the PLOC2D command channel.
const DefaultPort = 14158

// SessionConfig represents the configuration parameters for one session with
// a PLOC2D device.
type SessionConfig struct {
	// host specifies the address of the device.
	host string

	// port specifies the TCP port of the device command channel.
	// Defaults to DefaultPort (14158).
	port int

	// timeout bounds each blocking send and receive on the connection.
	// Defaults to 3 seconds.
	timeout time.Duration

	// connectTimeout bounds the TCP dial.
	// Defaults to the configured timeout.
	connectTimeout time.Duration

	// bufferSize is the maximum reply size read in one receive, in bytes.
	// Defaults to 1024.
	bufferSize int

	// logger provides a logger instance for session events and errors.
	logger logger.Logger
}

// NewSessionConfig creates a session configuration for the device at the
// given host, applies the provided options, and validates the result.
//
// The host may be an IP address or a resolvable hostname. See the WithXXX
// functions for the available options and their defaults.
func NewSessionConfig(host string, opts ...SessionOption) (*SessionConfig, error) {
	cfg := &SessionConfig{
		port:       DefaultPort,
		timeout:    3 * time.Second,
		bufferSize: 1024,
		logger:     logger.GetLogger(),
	}

	if err := withHost(host)(cfg); err != nil {
		return cfg, err
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.connectTimeout == 0 {
		cfg.connectTimeout = cfg.timeout
	}

	return cfg, nil
}

// address returns the host:port dial target.
func (cfg *SessionConfig) address() string {
	return net.JoinHostPort(cfg.host, strconv.Itoa(cfg.port))
}

// SessionOption represents a functional option for configuring a SessionConfig.
type SessionOption func(*SessionConfig) error

// withHost sets and validates the device address.
// An error is returned if the host is neither a valid IP address nor a
// resolvable hostname.
func withHost(host string) SessionOption {
	return func(cfg *SessionConfig) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if ip := net.ParseIP(host); ip != nil {
			cfg.host = host
			return nil
		}

		host = strings.TrimPrefix(host, ".")
		host = strings.TrimSuffix(host, ".")
		if _, err := net.LookupHost(host); err == nil {
			cfg.host = host
			return nil
		}

		return errors.New("invalid host")
	}
}

// WithPort sets the TCP port of the device command channel.
// An error is returned if the port is out of the valid range (1-65535) or if
// the configuration is nil.
//
// The default value is DefaultPort (14158).
func WithPort(port int) SessionOption {
	return func(cfg *SessionConfig) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if port < 1 || port > 65535 {
			return errors.New("port is out of range [1, 65535]")
		}
		cfg.port = port

		return nil
	}
}

// WithTimeout sets the timeout applied to each blocking send and receive on
// the connection, and, unless overridden by WithConnectTimeout, to the TCP
// dial as well.
// An error is returned if the timeout is outside the valid range
// (10 milliseconds to 120 seconds) or if the configuration is nil.
//
// The default value is 3 seconds.
func WithTimeout(val time.Duration) SessionOption {
	return func(cfg *SessionConfig) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if val < 10*time.Millisecond || val > 120*time.Second {
			return errors.New("timeout out of range [0.01, 120]")
		}
		cfg.timeout = val

		return nil
	}
}

// WithConnectTimeout sets the timeout for establishing the TCP connection.
// An error is returned if the timeout is outside the valid range
// (10 milliseconds to 120 seconds) or if the configuration is nil.
//
// The default value is the configured send/receive timeout.
func WithConnectTimeout(val time.Duration) SessionOption {
	return func(cfg *SessionConfig) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if val < 10*time.Millisecond || val > 120*time.Second {
			return errors.New("connect timeout out of range [0.01, 120]")
		}
		cfg.connectTimeout = val

		return nil
	}
}

// WithBufferSize sets the maximum reply size read in one receive, in bytes.
// An error is returned if the size is outside the valid range (64-65536) or
// if the configuration is nil.
//
// The default value is 1024.
func WithBufferSize(size int) SessionOption {
	return func(cfg *SessionConfig) error {
		if cfg == nil {
			return ErrConfigNil
		}

		if size < 64 || size > 65536 {
			return errors.New("buffer size out of range [64, 65536]")
		}
		cfg.bufferSize = size

		return nil
	}
}

// WithLogger sets the logger for the session.
// An error is returned if the configuration is nil.
//
// The default logger is the global logger instance.
func WithLogger(l logger.Logger) SessionOption {
	return func(cfg *SessionConfig) error {
		if cfg == nil {
			return ErrConfigNil
		}

		cfg.logger = l

		return nil
	}
}
