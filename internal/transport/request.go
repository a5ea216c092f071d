package transport

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Request describes one exchange with the basket store.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string

	// Body is attached for write verbs only. It is JSON-encoded when the
	// declared Content-Type is application/json; otherwise it must be a
	// map[string]string whose fields are url-form-encoded and joined with "&".
	Body any

	// Timeout is the wall-clock limit for the whole exchange, enforced by
	// the executing process itself (curl's --max-time) or by the in-process
	// client. Zero means no limit beyond the caller's context.
	Timeout time.Duration
}

// Response is the structured result of a completed exchange.
type Response struct {
	Status int
	Body   string
}

// isJSON reports whether the request declares a JSON body.
func (r Request) isJSON() bool {
	return strings.Contains(r.Headers["Content-Type"], "application/json")
}

// hasBody reports whether the verb carries a payload.
func (r Request) hasBody() bool {
	switch strings.ToUpper(r.Method) {
	case "POST", "PUT", "PATCH":
		return r.Body != nil
	default:
		return false
	}
}

// encodeBody renders the request payload as it goes on the wire.
func encodeBody(r Request) (string, error) {
	if !r.hasBody() {
		return "", nil
	}

	if r.isJSON() {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return "", fmt.Errorf("encode json body: %w", err)
		}
		return string(b), nil
	}

	fields, ok := r.Body.(map[string]string)
	if !ok {
		return "", fmt.Errorf("form body must be map[string]string, got %T", r.Body)
	}
	return EncodeForm(fields), nil
}

// URLEncode percent-encodes every byte outside the unreserved set, maps " "
// to "+", and normalizes line endings to CRLF first, matching the wire
// convention of the basket store.
func URLEncode(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", "\r\n")
	return url.QueryEscape(s)
}

// EncodeForm renders fields as a url-form-encoded string with keys in
// deterministic order.
func EncodeForm(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, URLEncode(k)+"="+URLEncode(fields[k]))
	}
	return strings.Join(pairs, "&")
}

// Status-marker framing. The executing process appends the marker after the
// response body, separated by a single newline:
//
//	<body>\n---HTTP_STATUS:<code>---
const (
	statusMarkerPrefix = "---HTTP_STATUS:"
	statusMarkerSuffix = "---"

	// curlWriteOutFormat is passed to curl's --write-out to emit the marker.
	curlWriteOutFormat = "\n" + statusMarkerPrefix + "%{http_code}" + statusMarkerSuffix
)

// ParseOutput recovers a [Response] from the combined output of a completed
// exchange. The first occurrence of the status marker wins: the digits
// between the sentinels are the status and everything before the marker,
// minus the single trailing separator, is the body. Output without a marker
// (e.g. truncated by the process) defaults to status 200 with the whole blob
// as the body.
func ParseOutput(blob string) Response {
	start := strings.Index(blob, statusMarkerPrefix)
	if start < 0 {
		return Response{Status: 200, Body: blob}
	}

	rest := blob[start+len(statusMarkerPrefix):]
	end := strings.Index(rest, statusMarkerSuffix)
	if end < 0 {
		return Response{Status: 200, Body: blob}
	}

	status, err := strconv.Atoi(strings.TrimSpace(rest[:end]))
	if err != nil {
		return Response{Status: 200, Body: blob}
	}

	body := strings.TrimSuffix(blob[:start], "\n")
	return Response{Status: status, Body: body}
}
