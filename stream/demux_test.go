package stream

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feedAll feeds fragments one by one and appends the flush output.
func feedAll(d *Demux, fragments ...string) []Span {
	var spans []Span
	for _, f := range fragments {
		spans = append(spans, d.Feed(f)...)
	}
	return append(spans, d.Flush()...)
}

func joined(spans []Span, kind SpanKind) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Kind == kind {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

func TestDemux_PlainOnly(t *testing.T) {
	d := NewDemux()
	spans := d.Feed("Hello")
	require.Len(t, spans, 1)
	assert.Equal(t, SpanPlain, spans[0].Kind)
	assert.Equal(t, "Hello", spans[0].Text)
	assert.Empty(t, d.Flush())
}

func TestDemux_NoDelimiterNeverEmitsThinking(t *testing.T) {
	d := NewDemux()
	spans := feedAll(d, "The answer ", "is ", "42.")
	for _, s := range spans {
		assert.Equal(t, SpanPlain, s.Kind)
	}
	assert.Equal(t, "The answer is 42.", joined(spans, SpanPlain))
}

func TestDemux_SingleThinkingSpan(t *testing.T) {
	d := NewDemux()
	spans := feedAll(d, "<thinking>step1</thinking>answer")
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Kind: SpanThinking, Text: "step1"}, spans[0])
	assert.Equal(t, Span{Kind: SpanPlain, Text: "answer"}, spans[1])
}

func TestDemux_SplitInvariance(t *testing.T) {
	input := "before<thinking>reasoning here</thinking>after"

	// Reference output from a single feed.
	want := feedAll(NewDemux(), input)

	// Any two-way split of the same input must classify the same text the
	// same way, including splits inside the delimiters themselves. Span
	// boundaries may differ when the split lands inside a span, so compare
	// the per-kind concatenation.
	for i := 1; i < len(input); i++ {
		got := feedAll(NewDemux(), input[:i], input[i:])
		assert.Equal(t, joined(want, SpanPlain), joined(got, SpanPlain), "plain text, split at %d", i)
		assert.Equal(t, joined(want, SpanThinking), joined(got, SpanThinking), "thinking text, split at %d", i)
	}
}

func TestDemux_DelimiterSplitAcrossFragments(t *testing.T) {
	d := NewDemux()

	spans := d.Feed("<thi")
	assert.Empty(t, spans, "partial delimiter must be held")

	spans = d.Feed("nking>deep thought</thinking>done")
	require.Len(t, spans, 2)
	assert.Equal(t, Span{Kind: SpanThinking, Text: "deep thought"}, spans[0])
	assert.Equal(t, Span{Kind: SpanPlain, Text: "done"}, spans[1])
}

func TestDemux_SpansAlternate(t *testing.T) {
	d := NewDemux()
	spans := feedAll(d, "a<thinking>b</thinking>c<thinking>d</thinking>e")
	require.Len(t, spans, 5)
	want := []SpanKind{SpanPlain, SpanThinking, SpanPlain, SpanThinking, SpanPlain}
	for i, s := range spans {
		assert.Equal(t, want[i], s.Kind, "span %d", i)
	}
}

func TestDemux_MultipleTransitionsInOneFragment(t *testing.T) {
	d := NewDemux()
	spans := d.Feed("<thinking>one</thinking>mid<thinking>two</thinking>end")
	require.Len(t, spans, 4)
	assert.Equal(t, "one", spans[0].Text)
	assert.Equal(t, "mid", spans[1].Text)
	assert.Equal(t, "two", spans[2].Text)
	assert.Equal(t, "end", spans[3].Text)
}

func TestDemux_EmptyFragmentEmitsNothing(t *testing.T) {
	d := NewDemux()
	assert.Empty(t, d.Feed(""))
	d.Feed("text")
	assert.Empty(t, d.Feed(""))
}

func TestDemux_WhitespaceOnlySpanSuppressed(t *testing.T) {
	d := NewDemux()
	assert.Empty(t, d.Feed("   "))

	// Known edge case: a legitimate single space between sentences that lands
	// in its own fragment is dropped, not forwarded.
	d = NewDemux()
	var spans []Span
	spans = append(spans, d.Feed("First sentence.")...)
	spans = append(spans, d.Feed(" ")...)
	spans = append(spans, d.Feed("Second sentence.")...)
	assert.Equal(t, "First sentence.Second sentence.", joined(spans, SpanPlain))
}

func TestDemux_WhitespaceBeforeDelimiterSuppressed(t *testing.T) {
	d := NewDemux()
	spans := d.Feed("  <thinking>x</thinking>y")
	require.Len(t, spans, 2)
	assert.Equal(t, SpanThinking, spans[0].Kind)
}

func TestDemux_FlushDrainsThinkingBuffer(t *testing.T) {
	d := NewDemux()
	spans := d.Feed("<thinking>unterminated")
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Kind: SpanThinking, Text: "unterminated"}, spans[0])

	// A held partial close tag is surfaced by the flush.
	spans = d.Feed("</thi")
	assert.Empty(t, spans)
	spans = d.Flush()
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Kind: SpanThinking, Text: "</thi"}, spans[0])
}

func TestDemux_AngleBracketWithoutTagIsHeldUntilFlush(t *testing.T) {
	d := NewDemux()
	assert.Empty(t, d.Feed("compare a < b"))
	spans := d.Flush()
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Kind: SpanPlain, Text: "compare a < b"}, spans[0])
}
