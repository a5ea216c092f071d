package service

import (
	"sync"

	"github.com/mikevskater/sheet-todo/models"
)

type documentService struct {
	surface Surface

	// observer is attached after construction; nil until then. Programmatic
	// bulk writes run inside its suppression window.
	observer *Observer

	mu  sync.Mutex
	doc models.Document
}

// NewDocumentService constructs the [DocumentService] over the given
// editing surface. The document starts empty with the cursor at {1,0}.
func NewDocumentService(surface Surface) *documentService {
	return &documentService{
		surface: surface,
		doc:     models.Document{Cursor: models.Cursor{Line: 1, Col: 0}},
	}
}

// AttachObserver wires the change observer used to suppress notifications
// generated by programmatic writes. Must be called before the event loop
// starts delivering edits.
func (d *documentService) AttachObserver(o *Observer) {
	d.observer = o
}

func (d *documentService) programmatic(fn func()) {
	if d.observer != nil {
		d.observer.Programmatic(fn)
		return
	}
	fn()
}

// Load implements [DocumentService].
func (d *documentService) Load(text string, cursor models.Cursor) {
	d.programmatic(func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		saved := text
		d.doc.SavedContent = &saved
		d.doc.UnsavedContent = nil
		d.doc.Dirty = false
		d.doc.Cursor = cursor.Clamp(models.LineCount(text))

		d.surface.SetText(text)
		d.surface.SetCursor(d.doc.Cursor)
	})
}

// Current implements [DocumentService].
func (d *documentService) Current() string {
	return d.surface.Text()
}

// Dirty implements [DocumentService].
func (d *documentService) Dirty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Dirty
}

// Document implements [DocumentService].
func (d *documentService) Document() models.Document {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc := d.doc
	if d.doc.SavedContent != nil {
		saved := *d.doc.SavedContent
		doc.SavedContent = &saved
	}
	if d.doc.UnsavedContent != nil {
		unsaved := *d.doc.UnsavedContent
		doc.UnsavedContent = &unsaved
	}
	return doc
}

// SetCursor implements [DocumentService].
func (d *documentService) SetCursor(line, col int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	cur := models.Cursor{Line: line, Col: col}
	d.doc.Cursor = cur.Clamp(models.LineCount(d.surface.Text()))
}

// Cursor implements [DocumentService].
func (d *documentService) Cursor() models.Cursor {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Cursor
}

// CaptureCursor implements [DocumentService].
func (d *documentService) CaptureCursor() models.Cursor {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.doc.Cursor = d.surface.Cursor().Clamp(models.LineCount(d.surface.Text()))
	return d.doc.Cursor
}

// RecomputeDirty implements [DocumentService].
func (d *documentService) RecomputeDirty() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	current := d.surface.Text()

	var dirty bool
	if d.doc.SavedContent != nil {
		dirty = current != *d.doc.SavedContent
	} else {
		dirty = len(current) > 0
	}

	changed := dirty != d.doc.Dirty
	d.doc.Dirty = dirty
	return changed
}

// Revert implements [DocumentService].
func (d *documentService) Revert() (string, error) {
	d.mu.Lock()
	if d.doc.SavedContent == nil {
		d.mu.Unlock()
		return "", ErrNoSavedContent
	}
	saved := *d.doc.SavedContent
	d.mu.Unlock()

	d.programmatic(func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		d.doc.UnsavedContent = nil
		d.doc.Dirty = false
		d.doc.Cursor = d.doc.Cursor.Clamp(models.LineCount(saved))

		d.surface.SetText(saved)
		d.surface.SetCursor(d.doc.Cursor)
	})

	return saved, nil
}

// Commit implements [DocumentService]. The whole update happens under one
// lock acquisition, so no edit notification can observe a half-updated
// baseline.
func (d *documentService) Commit() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	current := d.surface.Text()
	d.doc.SavedContent = &current
	d.doc.UnsavedContent = nil
	d.doc.Dirty = false
	return current
}

// SnapshotOnClose implements [DocumentService].
func (d *documentService) SnapshotOnClose() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.doc.Dirty {
		return "", false
	}

	current := d.surface.Text()
	d.doc.UnsavedContent = &current
	return current, true
}

// RestoreDraft implements [DocumentService].
func (d *documentService) RestoreDraft(text string, cursor models.Cursor) {
	d.programmatic(func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		d.doc.UnsavedContent = nil
		d.doc.Dirty = true
		d.doc.Cursor = cursor.Clamp(models.LineCount(text))

		d.surface.SetText(text)
		d.surface.SetCursor(d.doc.Cursor)
	})
}
