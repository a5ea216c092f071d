package transport

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mikevskater/sheet-todo/internal/config"
	"github.com/mikevskater/sheet-todo/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCurlExecutor(t *testing.T, binPath string) *CurlExecutor {
	t.Helper()
	return NewCurlExecutor(config.Transport{CurlPath: binPath}, logger.Nop())
}

// writeFakeCurl creates an executable that ignores its arguments and behaves
// per the given script body.
func writeFakeCurl(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakecurl")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestCurlExecutor_BuildArgs_GetRequest(t *testing.T) {
	e := newTestCurlExecutor(t, "curl")

	args, err := e.buildArgs(Request{
		Method:  "GET",
		URL:     "http://example.com/b1/sheet",
		Timeout: 30 * time.Second,
	}, "req-1")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"-s", "-X", "GET",
		"--max-time", "30",
		"--write-out", "\n---HTTP_STATUS:%{http_code}---",
		"-H", "X-Request-ID: req-1",
		"http://example.com/b1/sheet",
	}, args)
}

func TestCurlExecutor_BuildArgs_PostJSONWithHeaders(t *testing.T) {
	e := newTestCurlExecutor(t, "curl")

	args, err := e.buildArgs(Request{
		Method:  "POST",
		URL:     "http://example.com/b1/sheet",
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    map[string]string{"content": "hi"},
	}, "req-2")
	require.NoError(t, err)

	// Headers are sorted, body follows them, URL is last.
	assert.Equal(t, []string{
		"-s", "-X", "POST",
		"--write-out", "\n---HTTP_STATUS:%{http_code}---",
		"-H", "Content-Type: application/json",
		"-H", "X-Request-ID: req-2",
		"-d", `{"content":"hi"}`,
		"http://example.com/b1/sheet",
	}, args)
}

func TestCurlExecutor_BuildArgs_NoTimeoutFlagWhenZero(t *testing.T) {
	e := newTestCurlExecutor(t, "curl")

	args, err := e.buildArgs(Request{Method: "GET", URL: "http://example.com"}, "req-3")
	require.NoError(t, err)
	assert.NotContains(t, args, "--max-time")
}

func TestCurlExecutor_Execute_ParsesMarker(t *testing.T) {
	bin := writeFakeCurl(t, `printf 'hello\n---HTTP_STATUS:201---'`)
	e := newTestCurlExecutor(t, bin)

	resp, err := e.Execute(context.Background(), Request{Method: "GET", URL: "http://x"})
	require.NoError(t, err)
	assert.Equal(t, Response{Status: 201, Body: "hello"}, resp)
}

func TestCurlExecutor_Execute_NoMarkerDefaultsTo200(t *testing.T) {
	bin := writeFakeCurl(t, `printf 'raw output'`)
	e := newTestCurlExecutor(t, bin)

	resp, err := e.Execute(context.Background(), Request{Method: "GET", URL: "http://x"})
	require.NoError(t, err)
	assert.Equal(t, Response{Status: 200, Body: "raw output"}, resp)
}

func TestCurlExecutor_Execute_LargeSingleLineBody(t *testing.T) {
	// A pushed document serializes to one very long JSON line; the whole
	// line and the trailing marker must survive draining.
	const bodyLen = 5 * 1024 * 1024
	bin := writeFakeCurl(t, `head -c `+strconv.Itoa(bodyLen)+` /dev/zero | tr '\0' 'a'
printf '\n---HTTP_STATUS:200---'`)
	e := newTestCurlExecutor(t, bin)

	resp, err := e.Execute(context.Background(), Request{Method: "GET", URL: "http://x"})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	require.Len(t, resp.Body, bodyLen)
	assert.Equal(t, strings.Repeat("a", 64), resp.Body[:64])
}

func TestCurlExecutor_Execute_PreservesCRLFInBody(t *testing.T) {
	bin := writeFakeCurl(t, `printf 'line1\r\nline2\n---HTTP_STATUS:200---'`)
	e := newTestCurlExecutor(t, bin)

	resp, err := e.Execute(context.Background(), Request{Method: "GET", URL: "http://x"})
	require.NoError(t, err)
	assert.Equal(t, Response{Status: 200, Body: "line1\r\nline2"}, resp)
}

func TestCurlExecutor_Execute_NonZeroExitUsesStderr(t *testing.T) {
	bin := writeFakeCurl(t, `echo 'could not resolve host' >&2; exit 6`)
	e := newTestCurlExecutor(t, bin)

	_, err := e.Execute(context.Background(), Request{Method: "GET", URL: "http://x"})
	require.Error(t, err)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "could not resolve host", terr.Message)
	assert.Equal(t, 6, terr.ExitCode)
}

func TestCurlExecutor_Execute_NonZeroExitEmptyStderr(t *testing.T) {
	bin := writeFakeCurl(t, `exit 7`)
	e := newTestCurlExecutor(t, bin)

	_, err := e.Execute(context.Background(), Request{Method: "GET", URL: "http://x"})
	require.Error(t, err)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "curl failed with code 7", terr.Message)
}

func TestCurlExecutor_Execute_SpawnFailure(t *testing.T) {
	e := newTestCurlExecutor(t, filepath.Join(t.TempDir(), "missing-binary"))

	_, err := e.Execute(context.Background(), Request{Method: "GET", URL: "http://x"})
	require.Error(t, err)

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
}

func TestSubmit_DeliversResult(t *testing.T) {
	bin := writeFakeCurl(t, `printf 'async\n---HTTP_STATUS:200---'`)
	e := newTestCurlExecutor(t, bin)

	f := Submit(context.Background(), e, Request{Method: "GET", URL: "http://x"})
	res := f.Wait()

	require.NoError(t, res.Err)
	assert.Equal(t, Response{Status: 200, Body: "async"}, res.Response)

	// Wait is idempotent.
	assert.Equal(t, res, f.Wait())
}
