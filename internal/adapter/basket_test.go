// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/mikevskater/sheet-todo/internal/config"
	"github.com/mikevskater/sheet-todo/internal/logger"
	"github.com/mikevskater/sheet-todo/internal/mock"
	"github.com/mikevskater/sheet-todo/internal/transport"
	"github.com/mikevskater/sheet-todo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAdapter(t *testing.T, ctrl *gomock.Controller) (*basketAdapter, *mock.MockExecutor) {
	t.Helper()
	exec := mock.NewMockExecutor(ctrl)

	a, err := NewBasketAdapter(
		config.Basket{BaseURL: "http://localhost:8080", ID: "b1", Name: "sheet"},
		config.Transport{RequestTimeout: 30 * time.Second},
		exec,
		logger.Nop(),
	)
	require.NoError(t, err)

	ba := a.(*basketAdapter)
	ba.now = func() time.Time { return time.Unix(1756000000, 0) }
	return ba, exec
}

func TestNewBasketAdapter_InvalidBaseURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewBasketAdapter(
		config.Basket{BaseURL: "", ID: "b1"},
		config.Transport{},
		mock.NewMockExecutor(ctrl),
		logger.Nop(),
	)
	require.Error(t, err)
}

func TestNewBasketAdapter_UnconfiguredIsValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, err := NewBasketAdapter(config.Basket{}, config.Transport{}, mock.NewMockExecutor(ctrl), logger.Nop())
	require.NoError(t, err)

	// No network call happens: the mock has no expectations.
	_, err = a.Fetch(context.Background())
	require.ErrorIs(t, err, ErrNotConfigured)

	err = a.Push(context.Background(), "x", models.Cursor{Line: 1})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestBasketAdapter_Fetch_DecodesPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, exec := newTestAdapter(t, ctrl)
	ctx := context.Background()

	body, err := json.Marshal(models.BasketPayload{
		Content:      EncodeContent("buy milk\nbuy bread"),
		CursorPos:    models.Cursor{Line: 2, Col: 4},
		LastModified: 1700000000,
	})
	require.NoError(t, err)

	exec.EXPECT().
		Execute(ctx, transport.Request{
			Method:  "GET",
			URL:     "http://localhost:8080/b1/sheet",
			Timeout: 30 * time.Second,
		}).
		Return(transport.Response{Status: 200, Body: string(body)}, nil)

	doc, err := a.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "buy milk\nbuy bread", doc.Content)
	assert.Equal(t, models.Cursor{Line: 2, Col: 4}, doc.Cursor)
}

func TestBasketAdapter_Fetch_MissingBasketStatuses(t *testing.T) {
	for _, status := range []int{400, 404} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			a, exec := newTestAdapter(t, ctrl)
			ctx := context.Background()

			exec.EXPECT().
				Execute(ctx, gomock.Any()).
				Return(transport.Response{Status: status, Body: "no such basket"}, nil)

			doc, err := a.Fetch(ctx)
			require.NoError(t, err)
			assert.Equal(t, models.EmptyBasketDocument(), doc)
		})
	}
}

func TestBasketAdapter_Fetch_ProtocolErrorOnUnexpectedStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, exec := newTestAdapter(t, ctrl)
	ctx := context.Background()

	exec.EXPECT().
		Execute(ctx, gomock.Any()).
		Return(transport.Response{Status: 500, Body: "boom"}, nil)

	_, err := a.Fetch(ctx)
	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 500, perr.Status)
	assert.Equal(t, "boom", perr.Body)
}

func TestBasketAdapter_Fetch_ProtocolErrorOnUndecodableBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, exec := newTestAdapter(t, ctrl)
	ctx := context.Background()

	exec.EXPECT().
		Execute(ctx, gomock.Any()).
		Return(transport.Response{Status: 200, Body: "<html>not json</html>"}, nil)

	_, err := a.Fetch(ctx)
	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
}

func TestBasketAdapter_Fetch_LegacyPlainContentKeptAsIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, exec := newTestAdapter(t, ctrl)
	ctx := context.Background()

	// Payload written before the safe-alphabet encoding was introduced.
	body := `{"content":"plain legacy text!","cursor_pos":{"line":0,"col":0},"last_modified":0}`

	exec.EXPECT().
		Execute(ctx, gomock.Any()).
		Return(transport.Response{Status: 200, Body: body}, nil)

	doc, err := a.Fetch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "plain legacy text!", doc.Content)
	// Out-of-range line from the wire is clamped to a valid one.
	assert.Equal(t, 1, doc.Cursor.Line)
}

func TestBasketAdapter_Fetch_TransportFailureBubbles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, exec := newTestAdapter(t, ctrl)
	ctx := context.Background()

	terr := &transport.TransportError{Message: "could not resolve host", ExitCode: 6}
	exec.EXPECT().
		Execute(ctx, gomock.Any()).
		Return(transport.Response{}, terr)

	_, err := a.Fetch(ctx)
	require.Error(t, err)

	var got *transport.TransportError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "could not resolve host", got.Message)
}

func TestBasketAdapter_Push_BuildsUpsertRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, exec := newTestAdapter(t, ctrl)
	ctx := context.Background()

	var captured transport.Request
	exec.EXPECT().
		Execute(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req transport.Request) (transport.Response, error) {
			captured = req
			return transport.Response{Status: 200, Body: ""}, nil
		})

	err := a.Push(ctx, "buy milk", models.Cursor{Line: 1, Col: 8})
	require.NoError(t, err)

	assert.Equal(t, "POST", captured.Method)
	assert.Equal(t, "http://localhost:8080/b1/sheet", captured.URL)
	assert.Equal(t, "application/json", captured.Headers["Content-Type"])

	payload, ok := captured.Body.(models.BasketPayload)
	require.True(t, ok)
	assert.Equal(t, EncodeContent("buy milk"), payload.Content)
	assert.Equal(t, models.Cursor{Line: 1, Col: 8}, payload.CursorPos)
	assert.Equal(t, int64(1756000000), payload.LastModified)
}

func TestBasketAdapter_Push_ProtocolErrorOnFailureStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, exec := newTestAdapter(t, ctrl)
	ctx := context.Background()

	exec.EXPECT().
		Execute(ctx, gomock.Any()).
		Return(transport.Response{Status: 503, Body: "unavailable"}, nil)

	err := a.Push(ctx, "x", models.Cursor{Line: 1})
	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 503, perr.Status)
}

func TestEncodeDecodeContent_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"buy milk",
		"line1\nline2\r\nline3",
		"tabs\tand\x00control\x1bbytes",
		"юникод 💾 text",
	}

	for _, in := range inputs {
		assert.Equal(t, in, DecodeContent(EncodeContent(in)))
	}
}

func Test_normalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "scheme added", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "https://basket.example.com/", want: "https://basket.example.com"},
		{name: "empty rejected", raw: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_errorIsCheckForWrappedTransportError(t *testing.T) {
	err := fmt.Errorf("fetch request: %w", &transport.TransportError{Message: "timeout"})
	var terr *transport.TransportError
	assert.True(t, errors.As(err, &terr))
}
