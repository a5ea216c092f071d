package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mikevskater/sheet-todo/internal/config"
	"github.com/mikevskater/sheet-todo/internal/logger"
	"github.com/mikevskater/sheet-todo/internal/transport"
	"github.com/mikevskater/sheet-todo/models"
)

type basketAdapter struct {
	exec transport.Executor

	baseURL  string
	basketID string
	name     string
	timeout  time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewBasketAdapter constructs a [BasketAdapter] bound to the configured
// basket. The base URL is normalised and validated only when a basket
// identifier is present; an unconfigured basket is a valid state in which
// both operations return [ErrNotConfigured].
func NewBasketAdapter(basketCfg config.Basket, transportCfg config.Transport, exec transport.Executor, log *logger.Logger) (BasketAdapter, error) {
	a := &basketAdapter{
		exec:     exec,
		basketID: strings.TrimSpace(basketCfg.ID),
		name:     strings.TrimSpace(basketCfg.Name),
		timeout:  transportCfg.RequestTimeout,
		now:      time.Now,
		logger:   log,
	}

	if a.basketID != "" {
		baseURL, err := normalizeBaseURL(basketCfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid basket base url: %w", err)
		}
		a.baseURL = baseURL
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (a *basketAdapter) entryURL() string {
	return a.baseURL + "/" + url.PathEscape(a.basketID) + "/" + url.PathEscape(a.name)
}

// Fetch implements [BasketAdapter]. It issues GET <basket-url> and decodes
// the JSON payload. Status 400 and 404 both mean "no such basket" here (the
// store conflates them) and translate to an empty document.
func (a *basketAdapter) Fetch(ctx context.Context) (models.BasketDocument, error) {
	if a.basketID == "" {
		return models.BasketDocument{}, ErrNotConfigured
	}

	resp, err := a.exec.Execute(ctx, transport.Request{
		Method:  "GET",
		URL:     a.entryURL(),
		Timeout: a.timeout,
	})
	if err != nil {
		return models.BasketDocument{}, fmt.Errorf("fetch request: %w", err)
	}

	if resp.Status == 400 || resp.Status == 404 {
		a.logger.Debug().Str("func", "basketAdapter.Fetch").Int("status", resp.Status).Msg("basket missing, starting empty")
		return models.EmptyBasketDocument(), nil
	}
	if !is2xx(resp.Status) {
		return models.BasketDocument{}, &ProtocolError{Status: resp.Status, Body: resp.Body}
	}

	var payload models.BasketPayload
	if err = json.Unmarshal([]byte(resp.Body), &payload); err != nil {
		a.logger.Err(err).Str("func", "basketAdapter.Fetch").Msg("undecodable basket payload")
		return models.BasketDocument{}, &ProtocolError{Status: resp.Status, Body: resp.Body}
	}

	content := DecodeContent(payload.Content)
	return models.BasketDocument{
		Content: content,
		Cursor:  payload.CursorPos.Clamp(models.LineCount(content)),
	}, nil
}

// Push implements [BasketAdapter]. It upserts the basket entry via
// POST <basket-url> with a JSON payload carrying the safe-alphabet encoded
// content, the cursor, and the current timestamp.
func (a *basketAdapter) Push(ctx context.Context, content string, cursor models.Cursor) error {
	if a.basketID == "" {
		return ErrNotConfigured
	}

	payload := models.BasketPayload{
		Content:      EncodeContent(content),
		CursorPos:    cursor,
		LastModified: a.now().Unix(),
	}

	resp, err := a.exec.Execute(ctx, transport.Request{
		Method:  "POST",
		URL:     a.entryURL(),
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    payload,
		Timeout: a.timeout,
	})
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}

	if !is2xx(resp.Status) {
		return &ProtocolError{Status: resp.Status, Body: resp.Body}
	}

	a.logger.Debug().Str("func", "basketAdapter.Push").Int("status", resp.Status).Msg("basket updated")
	return nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}
