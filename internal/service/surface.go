package service

import (
	"sync"

	"github.com/mikevskater/sheet-todo/models"
)

// BufferSurface is an in-memory Surface. The TUI keeps its textarea in sync
// with one of these; tests drive it directly.
type BufferSurface struct {
	mu     sync.Mutex
	text   string
	cursor models.Cursor
}

// NewBufferSurface returns an empty surface with the cursor at line 1, col 0.
func NewBufferSurface() *BufferSurface {
	return &BufferSurface{cursor: models.Cursor{Line: 1, Col: 0}}
}

func (s *BufferSurface) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

func (s *BufferSurface) SetText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
}

func (s *BufferSurface) Cursor() models.Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

func (s *BufferSurface) SetCursor(cursor models.Cursor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = cursor
}

// Type simulates a user edit: it replaces the buffer text and reports the
// observer stamp a real surface would attach to the resulting notification.
// Only tests use it.
func (s *BufferSurface) Type(o *Observer, text string) uint64 {
	s.mu.Lock()
	s.text = text
	stamp := o.Generation()
	s.mu.Unlock()
	return stamp
}
