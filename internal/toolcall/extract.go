package toolcall

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// UnknownToolCallID is the sentinel correlation ID used when a tool-call
// shaped response is required but no envelope supplied an ID.
const UnknownToolCallID = "unknown"

const (
	// MinLimit and MaxLimit bound the effective page size on every path.
	MinLimit = 1
	MaxLimit = 50
)

// SearchArgs is the canonical argument set every caller convention reduces to.
type SearchArgs struct {
	Query  string
	Limit  int
	Cursor string
}

// Extraction is the outcome of normalizing one request. IsToolCall records
// whether the caller used a tool-call convention, which the response shaper
// needs to pick the envelope format.
type Extraction struct {
	Args       SearchArgs
	ToolCallID string
	IsToolCall bool
}

// toolCallItem is one entry of a tool-call envelope. Arguments may be an
// object or a JSON-encoded string of an object; some assistant runtimes put
// the parameters under function.parameters instead.
type toolCallItem struct {
	ID        string          `json:"id"`
	Arguments json.RawMessage `json:"arguments"`
	Function  struct {
		Parameters json.RawMessage `json:"parameters"`
	} `json:"function"`
}

func (it *toolCallItem) argsMap() map[string]interface{} {
	raw := it.Arguments
	if len(raw) == 0 || string(raw) == "null" {
		raw = it.Function.Parameters
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err == nil {
		return m
	}
	// arguments serialized as a string: unwrap once and retry
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &m); err == nil {
			return m
		}
	}
	return nil
}

// ExtractSearch reduces any of the supported caller conventions to one
// canonical SearchArgs plus an optional correlation ID. Detection order is
// fixed: JSON-body envelope, then envelope in the "message" query parameter,
// then plain body fields, then plain query parameters. Malformed JSON is
// treated as an absent body and never surfaces as an error.
//
// Only toolCallList[0] is honored; later entries of a batch are ignored
// because multi-call semantics were never specified by the calling
// convention.
func ExtractSearch(body []byte, params url.Values, defaultLimit int) Extraction {
	if item, ok := envelopeFromJSON(body); ok {
		return extractionFromItem(item, defaultLimit)
	}
	if msg := params.Get("message"); msg != "" {
		if item, ok := envelopeFromJSON([]byte(msg)); ok {
			return extractionFromItem(item, defaultLimit)
		}
	}
	if args, ok := plainArgsFromJSON(body, defaultLimit); ok {
		return Extraction{Args: args, ToolCallID: UnknownToolCallID}
	}
	if args, ok := plainArgsFromQuery(params, defaultLimit); ok {
		return Extraction{Args: args, ToolCallID: UnknownToolCallID}
	}
	return Extraction{
		Args:       SearchArgs{Limit: ClampLimit(defaultLimit)},
		ToolCallID: UnknownToolCallID,
	}
}

func extractionFromItem(item *toolCallItem, defaultLimit int) Extraction {
	id := item.ID
	if id == "" {
		id = UnknownToolCallID
	}
	return Extraction{
		Args:       argsFromMap(item.argsMap(), defaultLimit),
		ToolCallID: id,
		IsToolCall: true,
	}
}

// envelopeFromJSON recognizes the three wrapped shapes:
// {message:{toolCallList:[...]}}, {toolCall:{...}}, and {arguments:{...}}.
func envelopeFromJSON(data []byte) (*toolCallItem, bool) {
	if len(data) == 0 {
		return nil, false
	}
	var wire struct {
		Message struct {
			ToolCallList []toolCallItem `json:"toolCallList"`
		} `json:"message"`
		ToolCall  *toolCallItem   `json:"toolCall"`
		Arguments json.RawMessage `json:"arguments"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, false
	}
	if len(wire.Message.ToolCallList) > 0 {
		item := wire.Message.ToolCallList[0]
		return &item, true
	}
	if wire.ToolCall != nil {
		return wire.ToolCall, true
	}
	if len(wire.Arguments) > 0 && string(wire.Arguments) != "null" {
		return &toolCallItem{Arguments: wire.Arguments}, true
	}
	return nil, false
}

func plainArgsFromJSON(data []byte, defaultLimit int) (SearchArgs, bool) {
	if len(data) == 0 {
		return SearchArgs{}, false
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return SearchArgs{}, false
	}
	if !hasSearchKey(m) {
		return SearchArgs{}, false
	}
	return argsFromMap(m, defaultLimit), true
}

func plainArgsFromQuery(params url.Values, defaultLimit int) (SearchArgs, bool) {
	if !params.Has("q") && !params.Has("query") && !params.Has("limit") && !params.Has("cursor") {
		return SearchArgs{}, false
	}
	query := params.Get("q")
	if query == "" {
		query = params.Get("query")
	}
	return SearchArgs{
		Query:  query,
		Limit:  coerceLimit(params.Get("limit"), defaultLimit),
		Cursor: params.Get("cursor"),
	}, true
}

func hasSearchKey(m map[string]interface{}) bool {
	for _, k := range []string{"q", "query", "limit", "cursor"} {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

func argsFromMap(m map[string]interface{}, defaultLimit int) SearchArgs {
	args := SearchArgs{Limit: ClampLimit(defaultLimit)}
	if m == nil {
		return args
	}
	if q, ok := stringValue(m["q"]); ok && q != "" {
		args.Query = q
	} else if q, ok := stringValue(m["query"]); ok {
		args.Query = q
	}
	args.Limit = coerceLimit(m["limit"], defaultLimit)
	if c, ok := stringValue(m["cursor"]); ok {
		args.Cursor = c
	}
	return args
}

func stringValue(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// coerceLimit applies numeric coercion to whatever the caller supplied.
// Non-numeric or missing values fall back to the route default; the result
// is always clamped to [MinLimit, MaxLimit], never rejected.
func coerceLimit(v interface{}, defaultLimit int) int {
	switch n := v.(type) {
	case float64:
		return ClampLimit(int(n))
	case int:
		return ClampLimit(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return ClampLimit(int(f))
		}
	case string:
		if n = strings.TrimSpace(n); n != "" {
			if f, err := strconv.ParseFloat(n, 64); err == nil {
				return ClampLimit(int(f))
			}
		}
	}
	return ClampLimit(defaultLimit)
}

// ClampLimit forces n into [MinLimit, MaxLimit].
func ClampLimit(n int) int {
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}
