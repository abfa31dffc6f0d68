package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	contentTypeSSE  = "text/event-stream"
	contentTypeJSON = "application/json"
)

// Encoder frames protocol events for the wire. The framing is negotiated once
// from the request Accept header and reused for every event of the run:
// server-sent events by default, newline-delimited JSON when the client asks
// for application/json explicitly.
type Encoder struct {
	contentType string
}

// NewEncoder negotiates an encoder from an Accept header value.
func NewEncoder(accept string) *Encoder {
	ct := contentTypeSSE
	if strings.Contains(accept, contentTypeJSON) && !strings.Contains(accept, contentTypeSSE) {
		ct = contentTypeJSON
	}
	return &Encoder{contentType: ct}
}

// ContentType returns the negotiated response content type.
func (e *Encoder) ContentType() string { return e.contentType }

// Encode serializes one event into an already-framed chunk of bytes. A
// marshalling failure prevents delivering any further events and is therefore
// fatal to the run.
func (e *Encoder) Encode(ev Event) ([]byte, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("encode %s event: %w", ev.EventType(), err)
	}
	if e.contentType == contentTypeSSE {
		return []byte("data: " + string(data) + "\n\n"), nil
	}
	return append(data, '\n'), nil
}
