// Package protocol defines the AG-UI event vocabulary exchanged with
// front-end renderers, the wire encoder that frames events for a negotiated
// content type, and the RunAgentInput request payload.
//
// Events are strongly typed; the set is closed (every event embeds BaseEvent
// and implements the unexported marker). Encoding is negotiated once per run
// from the request Accept header and reused for every event of that run.
package protocol
