package ploc2d

import (
	"strconv"
	"time"
)

// Result is an immutable snapshot of one job response from the device.
//
// The pose fields (X, Y, Z, R1, R2, R3, Scale) describe the detected
// object's position relative to the calibrated origin: translations in the
// device's length unit, rotations in degrees, scale as a unitless
// multiplier. Any field the device omitted from its reply holds the zero
// value of its type.
type Result struct {
	// ResultID is a correlation/sequence id derived from the response
	// receipt time, in integer seconds since the Unix epoch.
	ResultID int64
	// Timestamp is the wall-clock receipt time of the response, taken from
	// the same clock read as ResultID.
	Timestamp time.Time

	// ResultType is the protocol message name of the reply, either
	// MsgRunLocateOk or MsgRunLocateError.
	ResultType string
	// ErrorCode is the device-reported error code, empty on success.
	ErrorCode string
	// ErrorText is ErrorCode resolved through the device error catalog,
	// empty when the code is absent or unrecognized.
	ErrorText string

	JobID   int
	MatchID int
	Matches int

	X     float64
	Y     float64
	Z     float64
	R1    float64
	R2    float64
	R3    float64
	Scale float64

	// Score is the device-computed confidence metric for the match.
	Score int
	// Time is the device-reported processing time, in milliseconds.
	Time int
	// Exposure is the device-reported exposure, in device units.
	Exposure int
	// Identified is the device-reported identification count.
	Identified int
}

// IsError reports whether the device answered with a locate error rather
// than a successful match.
func (r *Result) IsError() bool {
	return r.ResultType == MsgRunLocateError || r.ErrorCode != ""
}

// newResult converts a decoded reply envelope into a typed Result,
// applying the defaulting rules field by field and stamping the receipt
// time.
func newResult(jobID int, fields map[string]string, receivedAt time.Time) *Result {
	code := fields["error"]

	return &Result{
		ResultID:   receivedAt.Unix(),
		Timestamp:  receivedAt,
		ResultType: fields["name"],
		ErrorCode:  code,
		ErrorText:  DescribeError(code),
		JobID:      jobID,
		MatchID:    fieldInt(fields, "match"),
		Matches:    fieldInt(fields, "matches"),
		X:          fieldFloat(fields, "x"),
		Y:          fieldFloat(fields, "y"),
		Z:          fieldFloat(fields, "z"),
		R1:         fieldFloat(fields, "r1"),
		R2:         fieldFloat(fields, "r2"),
		R3:         fieldFloat(fields, "r3"),
		Scale:      fieldFloat(fields, "scale"),
		Score:      fieldInt(fields, "score"),
		Time:       fieldInt(fields, "time"),
		Exposure:   fieldInt(fields, "exposure"),
		Identified: fieldInt(fields, "identified"),
	}
}

// fieldInt decodes an integer field leniently: missing or unparseable text
// yields 0, and fractional text is truncated so a device emitting "97.0"
// still decodes to 97.
func fieldInt(fields map[string]string, tag string) int {
	text, ok := fields[tag]
	if !ok || text == "" {
		return 0
	}
	if v, err := strconv.Atoi(text); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return int(f)
	}
	return 0
}

// fieldFloat decodes a float field; missing or unparseable text yields 0.
func fieldFloat(fields map[string]string, tag string) float64 {
	text, ok := fields[tag]
	if !ok || text == "" {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return v
}
