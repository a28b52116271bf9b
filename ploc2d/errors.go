package ploc2d

import "errors"

var (
	// ErrConfigNil indicates that a nil SessionConfig was provided.
	ErrConfigNil = errors.New("session config is nil")

	// ErrDuplicateSession indicates that a session with the same name is
	// already registered in a Manager.
	ErrDuplicateSession = errors.New("session name already registered")
)

var (
	// ErrConnectFailed indicates that the TCP connection to the device could
	// not be established before the connect timeout elapsed.
	ErrConnectFailed = errors.New("connect to device failed")

	// ErrNotConnected indicates that an operation requiring an open
	// connection was attempted on a disconnected session.
	ErrNotConnected = errors.New("not connected to device")

	// ErrSendFailed indicates that sending the request to the device failed.
	ErrSendFailed = errors.New("send to device failed")

	// ErrReceiveFailed indicates that receiving the reply from the device
	// failed for a reason other than a timeout.
	ErrReceiveFailed = errors.New("receive from device failed")

	// ErrReceiveTimeout indicates that no reply arrived within the
	// configured timeout.
	ErrReceiveTimeout = errors.New("receive timeout")
)

var (
	// ErrEmptyResponse indicates that the device closed the exchange without
	// sending any reply data.
	ErrEmptyResponse = errors.New("empty response from device")

	// ErrMalformedResponse indicates that the reply could not be parsed as a
	// flat XML message envelope.
	ErrMalformedResponse = errors.New("malformed response from device")
)
