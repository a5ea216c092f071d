package adapter

import "encoding/base64"

// The safe alphabet is standard base64: reversible, ASCII-only, safe to
// embed in a structured wire payload regardless of what the raw text holds.

// EncodeContent renders raw text in the safe-alphabet wire encoding.
func EncodeContent(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeContent decodes a wire value back to raw text. Values written before
// the encoding was introduced are stored as plain text; when decoding fails
// the raw string is returned as-is.
func DecodeContent(s string) string {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return s
	}
	return string(b)
}
