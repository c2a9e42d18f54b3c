package toolcall

import "net/url"

// ResultEnvelope is the response wrapper expected by tool-call callers. The
// transport layer always answers with this shape once an envelope was
// detected, including on failure.
type ResultEnvelope struct {
	Results []ToolCallResult `json:"results"`
}

// ToolCallResult pairs the caller's correlation ID with the tool outcome.
// Result is either a structured object or a pre-serialized string depending
// on the route convention.
type ToolCallResult struct {
	ToolCallID string      `json:"toolCallId"`
	Result     interface{} `json:"result"`
}

// WrapResult builds the single-result envelope for a successful call.
func WrapResult(toolCallID string, result interface{}) ResultEnvelope {
	return ResultEnvelope{
		Results: []ToolCallResult{{ToolCallID: toolCallID, Result: result}},
	}
}

// WrapError encodes a failure inside the envelope so the transport still
// succeeds from the caller's point of view.
func WrapError(toolCallID string, message string) ResultEnvelope {
	return WrapResult(toolCallID, map[string]string{"error": message})
}

// RecoverToolCallID re-extracts the correlation ID from an already-consumed
// request for the error path. Falls back to the sentinel when nothing in the
// body or the message parameter carries an ID.
func RecoverToolCallID(body []byte, params url.Values) string {
	if item, ok := envelopeFromJSON(body); ok && item.ID != "" {
		return item.ID
	}
	if msg := params.Get("message"); msg != "" {
		if item, ok := envelopeFromJSON([]byte(msg)); ok && item.ID != "" {
			return item.ID
		}
	}
	return UnknownToolCallID
}
