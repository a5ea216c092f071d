package service

import "sync/atomic"

// DirtyTracker is the slice of [DocumentService] the observer needs.
type DirtyTracker interface {
	RecomputeDirty() bool
	Dirty() bool
}

// Observer separates genuine edits from the synthetic notifications that
// programmatic bulk writes (load, revert, draft restore) generate.
//
// Suppression uses a generation counter rather than a deferred flag clear.
// The counter starts at 1 and each programmatic window advances it twice,
// once on entry and once on exit, so windows always occupy even generations
// and live periods odd ones. The surface stamps every notification with the
// generation current at mutation time; an even stamp can only have been read
// inside a window and is dropped, no matter how late it is delivered. A
// genuine keystroke right after a window carries the next odd generation and
// is observed, so there is no interval in which a fast real edit can be
// lost.
type Observer struct {
	tracker  DirtyTracker
	onChange func(dirty bool)

	gen atomic.Uint64
}

// NewObserver constructs an Observer over the tracker. onChange is invoked
// only when the dirty flag's value actually changes (edge-triggered); nil is
// allowed.
func NewObserver(tracker DirtyTracker, onChange func(dirty bool)) *Observer {
	o := &Observer{tracker: tracker, onChange: onChange}
	o.gen.Store(1)
	return o
}

// Generation returns the stamp the editing surface attaches to the edit
// notifications it emits. The stamp must be read at mutation time, not at
// delivery time.
func (o *Observer) Generation() uint64 {
	return o.gen.Load()
}

// Programmatic runs fn inside a suppression window. The window is closed
// synchronously when fn returns; surface mutations are serialized in the
// event loop, so no genuine edit can land while a window is open.
func (o *Observer) Programmatic(fn func()) {
	o.gen.Add(1)
	defer o.gen.Add(1)
	fn()
}

// Notify delivers a raw edit notification stamped with gen. Suppressed
// notifications are dropped before any dirty recomputation.
func (o *Observer) Notify(gen uint64) {
	if gen%2 == 0 {
		return
	}

	if o.tracker.RecomputeDirty() && o.onChange != nil {
		o.onChange(o.tracker.Dirty())
	}
}
