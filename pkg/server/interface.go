/*
Package server implements msgpack IPC for keybinding search services.

The server provides a minimal interface for filtering parsed keybindings
using msgpack serialization over stdin/stdout, so launchers and editor
plugins can drive the search without linking the Go packages.

# IPC

The server operates on a request response model: clients send structured
messages via stdin and receive responses through stdout. Each message
carries an ID field that is echoed back.

Filter requests use mainly this structure:

	{"id": "req_001", "q": "workspace", "mods": {"c": true}, "l": 24}

The server responds with the ranked entries, each carrying its highlight
spans:

	{"id": "req_001", "e": [{"g": "wm", "d": "move workspace", "k": "$mod+ctrl+Left", ...}], "c": 1, "t": 145}

Control messages reload the config text or probe liveness:

	{"id": "ctl_001", "action": "reload"}
	{"id": "ctl_002", "action": "health"}

An empty entry list is a normal response, not an error; error responses are
only produced for malformed or oversized requests.
*/
package server

// ModifierFlags mirrors the held modifier keys of a filter request.
type ModifierFlags struct {
	Shift   bool `msgpack:"s,omitempty"`
	Control bool `msgpack:"c,omitempty"`
	Alt     bool `msgpack:"a,omitempty"`
	Meta    bool `msgpack:"m,omitempty"`
}

// Request - filter or control request
type Request struct {
	ID     string        `msgpack:"id"`
	Action string        `msgpack:"action,omitempty"` // "", "health", "reload"
	Query  string        `msgpack:"q,omitempty"`
	Mods   ModifierFlags `msgpack:"mods,omitempty"`
	Limit  int           `msgpack:"l,omitempty"`
}

// SpanPayload - one highlight run of a field
type SpanPayload struct {
	Text    string `msgpack:"x"`
	Matched bool   `msgpack:"m,omitempty"`
}

// EntryPayload - one ranked keybinding
type EntryPayload struct {
	Group            string        `msgpack:"g"`
	Description      string        `msgpack:"d"`
	Keys             string        `msgpack:"k"`
	GroupSpans       []SpanPayload `msgpack:"gs,omitempty"`
	DescriptionSpans []SpanPayload `msgpack:"ds,omitempty"`
}

// FilterResponse - ranked entries for one request
type FilterResponse struct {
	ID        string         `msgpack:"id"`
	Entries   []EntryPayload `msgpack:"e"`
	Count     int            `msgpack:"c"`
	TimeTaken int64          `msgpack:"t"`
}

// StatusResponse - control operation response
type StatusResponse struct {
	ID      string `msgpack:"id"`
	Status  string `msgpack:"status"`
	Error   string `msgpack:"error,omitempty"`
	Entries int    `msgpack:"entries,omitempty"`
}

// RequestError holds basic error information for bad requests
type RequestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
