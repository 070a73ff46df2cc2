// Package exec is a stateless passthrough to a remote code-execution
// service (Piston-compatible API). It never touches room state; results
// and failures go back to the requesting client only.
package exec

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrDisabled = errors.New("execution service not configured")

type Client struct {
	url   string
	httpc *http.Client
}

func New(url string, timeout time.Duration) *Client {
	return &Client{
		url:   url,
		httpc: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Enabled() bool { return c.url != "" }

type Result struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exitCode"`
}

type executeRequest struct {
	Language string        `json:"language"`
	Version  string        `json:"version"`
	Files    []executeFile `json:"files"`
}

type executeFile struct {
	Content string `json:"content"`
}

type executeResponse struct {
	Run struct {
		Stdout string `json:"stdout"`
		Stderr string `json:"stderr"`
		Code   int    `json:"code"`
	} `json:"run"`
}

// Run submits {language, buffer} and returns the execution output.
func (c *Client) Run(ctx context.Context, language, code string) (*Result, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	body, err := json.Marshal(executeRequest{
		Language: language,
		Version:  "*",
		Files:    []executeFile{{Content: code}},
	})
	if err != nil {
		return nil, fmt.Errorf("encode execute request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build execute request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("module", "exec").Msg("execution service unreachable")
		return nil, fmt.Errorf("execution service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("execution service status %d", resp.StatusCode)
	}

	var out executeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode execute response: %w", err)
	}

	return &Result{
		Stdout:   out.Run.Stdout,
		Stderr:   out.Run.Stderr,
		ExitCode: out.Run.Code,
	}, nil
}
