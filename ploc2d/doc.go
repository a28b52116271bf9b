// Package ploc2d implements a client driver for the Sick PLOC2D vision
// locating device, speaking the device's XML request/response protocol over
// a TCP/IP connection.
//
// # Protocol Overview
//
// The PLOC2D exposes a half-duplex request/response command channel on TCP
// port 14158. Each command is a single flat XML document; the device answers
// with a single flat XML document. There is no framing beyond one message
// per send/receive pair, and at most one request may be in flight on a
// connection at a time.
//
// A locate request invokes a job preconfigured on the device:
//
//	<message><name>Run.Locate</name><job>1</job></message>
//
// or, when the job yields multiple candidate detections, with an explicit
// match selector:
//
//	<message><name>Run.Locate</name><job>1</job><match>2</match></message>
//
// The reply carries the message name ("Run.Locate.Ok" or "Run.Locate.Error"),
// an optional error code, and the pose fields of the detected object:
//
//	<message><name>Run.Locate.Ok</name><match>1</match><matches>1</matches>
//	<x>102.5</x><y>-3.1</y><z>0</z><r1>0</r1><r2>0</r2><r3>45.2</r3>
//	<scale>1.0</scale><score>97</score><time>161</time>
//	<exposure>9000</exposure></message>
//
// # Usage
//
// Create a session, connect, run jobs sequentially, disconnect:
//
//	cfg, err := ploc2d.NewSessionConfig("10.78.1.156")
//	if err != nil {
//	    // ... handle error ...
//	}
//	session := ploc2d.NewSession(cfg)
//	if err := session.Connect(ctx); err != nil {
//	    // ... handle error ...
//	}
//	defer session.Disconnect()
//
//	result, err := session.RunJob(ctx, 1)
//	// or, selecting the second match:
//	result, err = session.RunJob(ctx, 1, ploc2d.WithMatch(2))
//
// Transport faults (dial, send, receive, timeout) surface as Go errors.
// Locate failures reported by the device are data, not faults: RunJob
// returns a Result whose ResultType is "Run.Locate.Error" with the error
// code and resolved error text populated. Use Result.IsError to distinguish.
//
// A Session must not be shared between goroutines without external
// synchronization; to drive several devices concurrently use one Session
// per device, optionally through a Manager.
package ploc2d
