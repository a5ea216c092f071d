// SPDX-License-Identifier: Apache-2.0

// Package transport executes single request/response exchanges against the
// basket store.
//
// The primary abstraction is [Executor], which decouples callers from how a
// request is actually carried out. Two implementations ship:
//
//   - [CurlExecutor] spawns one curl process per request and recovers a
//     structured [Response] from the process's combined output using the
//     trailing status-marker convention (see ParseOutput).
//   - [RestyExecutor] performs the exchange in-process with the resty HTTP
//     client.
//
// Failed exchanges are reported as [*TransportError]; a non-2xx status is not
// an executor-level error and is left for callers to interpret.
package transport

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/executor_mock.go -package=mock

// Executor runs one request to completion and returns the structured
// response. Implementations must never retry: every call maps to exactly one
// exchange, and overlapping calls are allowed to race (last writer wins at
// the store).
type Executor interface {
	// Execute performs the exchange described by req. The only cancellation
	// mechanisms are ctx and the request's own timeout; there is no
	// mid-flight cancel beyond those.
	Execute(ctx context.Context, req Request) (Response, error)
}
