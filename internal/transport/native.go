package transport

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/mikevskater/sheet-todo/internal/config"
	"github.com/mikevskater/sheet-todo/internal/logger"
)

// RestyExecutor implements [Executor] in-process with the resty HTTP client.
// It honors the same request model as [CurlExecutor] but needs no framing:
// status and body arrive separately.
type RestyExecutor struct {
	client *resty.Client
	logger *logger.Logger
}

// NewRestyExecutor constructs a RestyExecutor with the configured default
// request timeout.
func NewRestyExecutor(cfg config.Transport, log *logger.Logger) *RestyExecutor {
	client := resty.New().SetTimeout(cfg.RequestTimeout)
	return &RestyExecutor{client: client, logger: log}
}

// Execute implements [Executor].
func (e *RestyExecutor) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	r := e.client.R().
		SetContext(ctx).
		SetHeaders(req.Headers).
		SetHeader("X-Request-ID", uuid.NewString())

	if req.hasBody() {
		payload, err := encodeBody(req)
		if err != nil {
			return Response{}, err
		}
		r.SetBody(payload)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		e.logger.Err(err).Str("func", "RestyExecutor.Execute").Str("method", req.Method).Msg("exchange failed")
		return Response{}, &TransportError{Message: err.Error()}
	}

	e.logger.Debug().Str("func", "RestyExecutor.Execute").Int("status", resp.StatusCode()).Msg("exchange completed")
	return Response{Status: resp.StatusCode(), Body: string(resp.Body())}, nil
}
