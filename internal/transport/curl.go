package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mikevskater/sheet-todo/internal/config"
	"github.com/mikevskater/sheet-todo/internal/logger"
	"github.com/rs/zerolog"
)

// CurlExecutor implements [Executor] by spawning one curl process per
// request. Curl's native instrumentation mixes the response body and the
// status marker into stdout; Execute streams both stdout and stderr into
// ordered buffers as chunks arrive and re-frames the result via ParseOutput.
type CurlExecutor struct {
	binPath string
	logger  *logger.Logger
}

// NewCurlExecutor constructs a CurlExecutor using cfg.CurlPath as the binary
// to spawn ("curl" resolved via PATH when empty).
func NewCurlExecutor(cfg config.Transport, log *logger.Logger) *CurlExecutor {
	binPath := cfg.CurlPath
	if binPath == "" {
		binPath = "curl"
	}
	return &CurlExecutor{binPath: binPath, logger: log}
}

// Execute implements [Executor].
func (e *CurlExecutor) Execute(ctx context.Context, req Request) (Response, error) {
	requestID := uuid.NewString()
	log := e.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", requestID).Str("method", req.Method)
	})

	args, err := e.buildArgs(req, requestID)
	if err != nil {
		return Response{}, err
	}

	cmd := exec.CommandContext(ctx, e.binPath, args...)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return Response{}, &TransportError{Message: fmt.Sprintf("open stdout pipe: %v", err)}
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return Response{}, &TransportError{Message: fmt.Sprintf("open stderr pipe: %v", err)}
	}

	if err = cmd.Start(); err != nil {
		log.Err(err).Str("func", "CurlExecutor.Execute").Msg("spawn failed")
		return Response{}, &TransportError{Message: fmt.Sprintf("spawn %s: %v", e.binPath, err)}
	}

	// Each stream is drained by its own goroutine so neither can block the
	// other. Draining copies raw bytes: no line splitting, no length cap,
	// and the body's own line endings pass through untouched.
	var wg sync.WaitGroup
	var stdoutBuf, stderrBuf bytes.Buffer
	var stdoutErr, stderrErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, stdoutErr = io.Copy(&stdoutBuf, stdoutPipe)
	}()
	go func() {
		defer wg.Done()
		_, stderrErr = io.Copy(&stderrBuf, stderrPipe)
	}()
	wg.Wait()

	waitErr := cmd.Wait()
	if waitErr != nil {
		exitCode := -1
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}

		message := strings.TrimSpace(stderrBuf.String())
		if message == "" {
			message = fmt.Sprintf("curl failed with code %d", exitCode)
		}

		log.Error().Str("func", "CurlExecutor.Execute").Int("exit_code", exitCode).Msg(message)
		return Response{}, &TransportError{Message: message, ExitCode: exitCode}
	}

	if readErr := errors.Join(stdoutErr, stderrErr); readErr != nil {
		log.Err(readErr).Str("func", "CurlExecutor.Execute").Msg("drain failed")
		return Response{}, &TransportError{Message: fmt.Sprintf("read curl output: %v", readErr)}
	}

	resp := ParseOutput(stdoutBuf.String())
	log.Debug().Str("func", "CurlExecutor.Execute").Int("status", resp.Status).Msg("exchange completed")
	return resp, nil
}

// buildArgs constructs the curl invocation for req: silent mode, explicit
// method, process-enforced timeout, headers, body for write verbs, and the
// trailing status marker appended to stdout after the body.
func (e *CurlExecutor) buildArgs(req Request, requestID string) ([]string, error) {
	args := []string{"-s", "-X", strings.ToUpper(req.Method)}

	if req.Timeout > 0 {
		args = append(args, "--max-time", strconv.FormatFloat(req.Timeout.Seconds(), 'f', -1, 64))
	}

	args = append(args, "--write-out", curlWriteOutFormat)

	headers := make([]string, 0, len(req.Headers)+1)
	for k, v := range req.Headers {
		headers = append(headers, k+": "+v)
	}
	headers = append(headers, "X-Request-ID: "+requestID)
	sort.Strings(headers)
	for _, h := range headers {
		args = append(args, "-H", h)
	}

	if req.hasBody() {
		payload, err := encodeBody(req)
		if err != nil {
			return nil, err
		}
		args = append(args, "-d", payload)
	}

	return append(args, req.URL), nil
}
