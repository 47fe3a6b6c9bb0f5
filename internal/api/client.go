package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"wateen/client/internal/config"
)

const requestIDHeader = "X-Request-Id"

// TokenSource supplies the bearer credential for authorized calls. The
// session store implements it.
type TokenSource interface {
	Token() string
}

// Client issues the REST calls the screens need. Every request carries an
// explicit timeout through the underlying http.Client and honors context
// cancellation; a hung backend cannot pin a screen forever.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     zerolog.Logger
}

func NewClient(cfg config.BackendConfig, tokens TokenSource, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		tokens:  tokens,
		log:     log,
	}
}

// Error is a backend failure collapsed to the single message the screens
// show near the submit control.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

type errorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, auth bool, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, auth, out)
}

func (c *Client) send(req *http.Request, auth bool, out any) error {
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	if auth {
		req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("request_id", requestID).
			Str("path", req.URL.Path).Msg("request failed")
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.asError(resp, requestID)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) asError(resp *http.Response, requestID string) error {
	var body errorBody
	_ = json.NewDecoder(resp.Body).Decode(&body)

	message := body.Detail
	if message == "" {
		message = body.Error
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	c.log.Debug().Int("status", resp.StatusCode).Str("request_id", requestID).
		Str("path", resp.Request.URL.Path).Msg("backend error")
	return &Error{Status: resp.StatusCode, Message: message}
}
