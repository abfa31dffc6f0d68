package stream

import "strings"

// Delimiters marking reasoning spans inside model output. Matching is literal
// substring search, not a tag grammar.
const (
	openDelimiter  = "<thinking>"
	closeDelimiter = "</thinking>"
)

// SpanKind classifies a span of model output.
type SpanKind int

const (
	// SpanPlain is visible answer text.
	SpanPlain SpanKind = iota
	// SpanThinking is internal reasoning text.
	SpanThinking
)

// Span is a maximal run of characters of one kind. Spans are ephemeral:
// consumed immediately into protocol events, never stored.
type Span struct {
	Kind SpanKind
	Text string
}

// Demux is a two-state incremental lexer that splits an arbitrarily chunked
// text stream into alternating plain and thinking spans. State is the current
// mode plus a carry buffer for input that may end in a partial delimiter.
type Demux struct {
	thinking bool
	buffer   string
}

// NewDemux returns a demultiplexer starting in plain mode.
func NewDemux() *Demux { return &Demux{} }

// Feed consumes one text fragment and returns the spans completed by it.
// Feeding an empty fragment emits nothing. Whitespace-only spans are consumed
// but suppressed to avoid spurious message starts.
func (d *Demux) Feed(fragment string) []Span {
	if fragment == "" {
		return nil
	}
	d.buffer += fragment

	var spans []Span
	for {
		delim, kind := openDelimiter, SpanPlain
		if d.thinking {
			delim, kind = closeDelimiter, SpanThinking
		}

		if idx := strings.Index(d.buffer, delim); idx >= 0 {
			prefix := d.buffer[:idx]
			d.buffer = d.buffer[idx+len(delim):]
			d.thinking = !d.thinking
			if strings.TrimSpace(prefix) != "" {
				spans = append(spans, Span{Kind: kind, Text: prefix})
			}
			continue // more transitions may hide in the remainder
		}

		// No full delimiter. If the tail could be the start of one, hold the
		// buffer and wait for more input instead of emitting.
		if strings.Contains(d.buffer, "<") && !strings.HasSuffix(d.buffer, ">") {
			break
		}

		if strings.TrimSpace(d.buffer) != "" {
			spans = append(spans, Span{Kind: kind, Text: d.buffer})
		}
		d.buffer = ""
		break
	}
	return spans
}

// Flush drains any residual buffer as a final span of the current mode. It is
// called once at turn end; a held partial delimiter is emitted as-is since no
// more input can complete it.
func (d *Demux) Flush() []Span {
	if strings.TrimSpace(d.buffer) == "" {
		d.buffer = ""
		return nil
	}
	kind := SpanPlain
	if d.thinking {
		kind = SpanThinking
	}
	span := Span{Kind: kind, Text: d.buffer}
	d.buffer = ""
	return []Span{span}
}
