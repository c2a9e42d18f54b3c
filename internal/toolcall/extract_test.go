package toolcall

import (
	"net/url"
	"testing"
)

func TestExtract_PlainQueryParams(t *testing.T) {
	params := url.Values{}
	params.Set("q", "shoe")
	params.Set("limit", "3")
	params.Set("cursor", "abc")

	got := ExtractSearch(nil, params, 20)
	if got.IsToolCall {
		t.Fatal("plain query params must not be detected as a tool call")
	}
	if got.ToolCallID != UnknownToolCallID {
		t.Fatalf("expected sentinel tool call ID, got %q", got.ToolCallID)
	}
	if got.Args.Query != "shoe" || got.Args.Limit != 3 || got.Args.Cursor != "abc" {
		t.Fatalf("unexpected args: %+v", got.Args)
	}
}

func TestExtract_PlainJSONBody(t *testing.T) {
	body := []byte(`{"q":"shoe","limit":3,"cursor":"abc"}`)
	got := ExtractSearch(body, url.Values{}, 20)
	if got.IsToolCall {
		t.Fatal("plain body must not be detected as a tool call")
	}
	if got.Args.Query != "shoe" || got.Args.Limit != 3 || got.Args.Cursor != "abc" {
		t.Fatalf("unexpected args: %+v", got.Args)
	}
}

func TestExtract_ToolCallListEnvelope(t *testing.T) {
	body := []byte(`{"message":{"toolCallList":[{"id":"call_1","arguments":{"q":"shoe","limit":3,"cursor":"abc"}}]}}`)
	got := ExtractSearch(body, url.Values{}, 5)
	if !got.IsToolCall {
		t.Fatal("expected tool call detection")
	}
	if got.ToolCallID != "call_1" {
		t.Fatalf("expected call_1, got %q", got.ToolCallID)
	}
	if got.Args.Query != "shoe" || got.Args.Limit != 3 || got.Args.Cursor != "abc" {
		t.Fatalf("unexpected args: %+v", got.Args)
	}
}

// Equivalent semantic content through every supported shape must produce
// identical downstream parameters.
func TestExtract_ShapeEquivalence(t *testing.T) {
	queryParams := url.Values{}
	queryParams.Set("q", "shoe")
	queryParams.Set("limit", "3")

	messageParams := url.Values{}
	messageParams.Set("message", `{"message":{"toolCallList":[{"id":"x","arguments":{"q":"shoe","limit":3}}]}}`)

	cases := []struct {
		name   string
		body   []byte
		params url.Values
	}{
		{"query_params", nil, queryParams},
		{"plain_body", []byte(`{"q":"shoe","limit":3}`), url.Values{}},
		{"toolcall_list", []byte(`{"message":{"toolCallList":[{"id":"x","arguments":{"q":"shoe","limit":3}}]}}`), url.Values{}},
		{"toolcall_direct", []byte(`{"toolCall":{"id":"x","arguments":{"q":"shoe","limit":3}}}`), url.Values{}},
		{"arguments_only", []byte(`{"arguments":{"q":"shoe","limit":3}}`), url.Values{}},
		{"message_param", nil, messageParams},
		{"function_parameters", []byte(`{"toolCall":{"id":"x","function":{"parameters":{"q":"shoe","limit":3}}}}`), url.Values{}},
	}
	for _, tc := range cases {
		got := ExtractSearch(tc.body, tc.params, 5)
		if got.Args.Query != "shoe" || got.Args.Limit != 3 {
			t.Fatalf("%s: expected {shoe 3}, got %+v", tc.name, got.Args)
		}
	}
}

func TestExtract_OnlyFirstToolCallHonored(t *testing.T) {
	body := []byte(`{"message":{"toolCallList":[
		{"id":"call_1","arguments":{"q":"first"}},
		{"id":"call_2","arguments":{"q":"second"}}]}}`)
	got := ExtractSearch(body, url.Values{}, 5)
	if got.ToolCallID != "call_1" || got.Args.Query != "first" {
		t.Fatalf("expected first list entry to win, got %+v", got)
	}
}

func TestExtract_BodyEnvelopeBeatsMessageParam(t *testing.T) {
	params := url.Values{}
	params.Set("message", `{"message":{"toolCallList":[{"id":"from_param","arguments":{"q":"param"}}]}}`)
	body := []byte(`{"message":{"toolCallList":[{"id":"from_body","arguments":{"q":"body"}}]}}`)

	got := ExtractSearch(body, params, 5)
	if got.ToolCallID != "from_body" || got.Args.Query != "body" {
		t.Fatalf("body envelope must take precedence, got %+v", got)
	}
}

func TestExtract_ArgumentsAsEncodedString(t *testing.T) {
	body := []byte(`{"toolCall":{"id":"call_9","arguments":"{\"q\":\"shoe\",\"limit\":2}"}}`)
	got := ExtractSearch(body, url.Values{}, 5)
	if !got.IsToolCall || got.Args.Query != "shoe" || got.Args.Limit != 2 {
		t.Fatalf("string-encoded arguments not unwrapped: %+v", got)
	}
}

func TestExtract_MalformedJSONFallsThrough(t *testing.T) {
	params := url.Values{}
	params.Set("q", "shoe")
	got := ExtractSearch([]byte(`{not json`), params, 20)
	if got.Args.Query != "shoe" || got.Args.Limit != 20 {
		t.Fatalf("malformed body must fall through to query params, got %+v", got.Args)
	}
}

func TestExtract_NothingRecognized(t *testing.T) {
	got := ExtractSearch(nil, url.Values{}, 20)
	if got.IsToolCall || got.Args.Query != "" || got.Args.Limit != 20 || got.Args.Cursor != "" {
		t.Fatalf("expected empty-query default, got %+v", got)
	}
	if got.ToolCallID != UnknownToolCallID {
		t.Fatalf("expected sentinel ID, got %q", got.ToolCallID)
	}
}

func TestExtract_EnvelopeWithoutIDGetsSentinel(t *testing.T) {
	body := []byte(`{"arguments":{"q":"shoe"}}`)
	got := ExtractSearch(body, url.Values{}, 5)
	if !got.IsToolCall {
		t.Fatal("bare arguments object is still a tool-call convention")
	}
	if got.ToolCallID != UnknownToolCallID {
		t.Fatalf("expected sentinel ID, got %q", got.ToolCallID)
	}
}

func TestLimitClamping(t *testing.T) {
	cases := []struct {
		name  string
		limit interface{}
		want  int
	}{
		{"negative", float64(-5), 1},
		{"zero", float64(0), 1},
		{"too_large", float64(500), 50},
		{"numeric_string", "7", 7},
		{"non_numeric_string", "lots", 5},
		{"missing", nil, 5},
		{"float", float64(2.9), 2},
	}
	for _, tc := range cases {
		got := coerceLimit(tc.limit, 5)
		if got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
		if got < MinLimit || got > MaxLimit {
			t.Fatalf("%s: limit %d escaped [%d,%d]", tc.name, got, MinLimit, MaxLimit)
		}
	}
}

func TestRecoverToolCallID(t *testing.T) {
	body := []byte(`{"message":{"toolCallList":[{"id":"call_7","arguments":{}}]}}`)
	if id := RecoverToolCallID(body, url.Values{}); id != "call_7" {
		t.Fatalf("expected call_7, got %q", id)
	}
	if id := RecoverToolCallID([]byte(`broken`), url.Values{}); id != UnknownToolCallID {
		t.Fatalf("expected sentinel for unrecoverable body, got %q", id)
	}
}
