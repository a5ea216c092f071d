package models

// BasketPayload is the JSON document stored in a basket.
//
// Content travels in its safe-alphabet wire encoding; the adapter encodes it
// on push and decodes it on fetch. LastModified is epoch seconds set by the
// writer.
type BasketPayload struct {
	Content      string `json:"content"`
	CursorPos    Cursor `json:"cursor_pos"`
	LastModified int64  `json:"last_modified"`
}

// BasketDocument is a fetched basket entry after wire decoding.
type BasketDocument struct {
	Content string
	Cursor  Cursor
}

// EmptyBasketDocument is what a missing basket resolves to: a fresh document
// with the cursor at the start.
func EmptyBasketDocument() BasketDocument {
	return BasketDocument{Content: "", Cursor: Cursor{Line: 1, Col: 0}}
}
