package ploc2d

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// Protocol message names used on the command channel.
const (
	MsgRunLocate      = "Run.Locate"
	MsgRunLocateOk    = "Run.Locate.Ok"
	MsgRunLocateError = "Run.Locate.Error"
)

// requestEnvelope is the wire shape of a client command.
// Match is a pointer so that the <match> element is emitted only when the
// caller selected a match explicitly.
type requestEnvelope struct {
	XMLName xml.Name `xml:"message"`
	Name    string   `xml:"name"`
	Job     int      `xml:"job"`
	Match   *int     `xml:"match,omitempty"`
}

// encodeRequest serializes a Run.Locate command for the given job.
// The output is plain ASCII with no XML declaration, matching what the
// device expects.
func encodeRequest(jobID int, matchID *int) ([]byte, error) {
	req := requestEnvelope{
		Name:  MsgRunLocate,
		Job:   jobID,
		Match: matchID,
	}

	data, err := xml.Marshal(&req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	return data, nil
}

// decodeEnvelope parses a device reply into a flat tag-to-text mapping of
// the root element's children. Unknown tags are retained in the map and
// simply ignored by the typed decode; nested structure below the first
// child level is not expected from the device and is discarded.
func decodeEnvelope(data []byte) (map[string]string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	fields := make(map[string]string)
	depth := 0
	rootSeen := false
	var tag string
	var text bytes.Buffer

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				rootSeen = true
			}
			if depth == 2 {
				tag = t.Name.Local
				text.Reset()
			}
		case xml.CharData:
			if depth == 2 {
				text.Write(t)
			}
		case xml.EndElement:
			if depth == 2 {
				fields[tag] = text.String()
			}
			depth--
		}
	}

	if !rootSeen {
		return nil, errors.New("no message envelope found")
	}

	return fields, nil
}
