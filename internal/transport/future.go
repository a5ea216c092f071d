package transport

import (
	"context"
	"sync"
)

// Result is the discriminated outcome of an asynchronous exchange: exactly
// one of Response or Err is meaningful.
type Result struct {
	Response Response
	Err      error
}

// Future is a handle to an in-flight exchange started by [Submit].
type Future struct {
	done   chan Result
	cancel context.CancelFunc

	once   sync.Once
	result Result
}

// Submit starts req on exec in a background goroutine and returns a Future
// carrying the eventual Result. The caller may cancel via Cancel or by
// cancelling ctx; cancellation after completion is a no-op.
func Submit(ctx context.Context, exec Executor, req Request) *Future {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future{done: make(chan Result, 1), cancel: cancel}

	go func() {
		defer cancel()
		resp, err := exec.Execute(ctx, req)
		f.done <- Result{Response: resp, Err: err}
	}()

	return f
}

// Wait blocks until the exchange completes and returns its Result. Safe to
// call multiple times.
func (f *Future) Wait() Result {
	f.once.Do(func() {
		f.result = <-f.done
	})
	return f.result
}

// Cancel aborts the in-flight exchange. The Result then carries the
// context's error.
func (f *Future) Cancel() {
	f.cancel()
}
