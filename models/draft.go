package models

import "time"

// Draft is a dirty document's content captured at surface-close time,
// persisted locally so it can be rehydrated on the next open.
type Draft struct {
	Basket  string
	Name    string
	Content string
	Cursor  Cursor
	SavedAt time.Time
}
