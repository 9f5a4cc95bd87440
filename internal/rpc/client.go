package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"mail-settings/internal/domain"
	"mail-settings/internal/service"
)

var _ service.SettingsService = (*Client)(nil)

var ErrUnauthorized = errors.New("unauthorized: run 'mailsettings login' first")

// RemoteError is a non-2xx answer from the settings service.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("settings service returned %d", e.StatusCode)
	}
	return fmt.Sprintf("settings service returned %d: %s", e.StatusCode, e.Message)
}

// Client calls the settings service over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

type ClientOption func(*Client)

// WithToken sends the token as a bearer credential.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout bounds every call. The http.Client is copied, so one passed
// to WithHTTPClient keeps its own timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch implements fetchSettings.
func (c *Client) Fetch(ctx context.Context) (*domain.Settings, error) {
	var resp fetchResponse
	if err := c.call(ctx, http.MethodGet, PathSettingsGet, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Settings == nil {
		return nil, errors.New("settings service returned no settings")
	}
	return resp.Settings, nil
}

// Save sends the whole record.
func (c *Client) Save(ctx context.Context, s *domain.Settings) error {
	if s == nil {
		return errors.New("settings are required")
	}

	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	var resp saveResponse
	if err := c.call(ctx, http.MethodPost, PathSettingsSave, body, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return errors.New("settings service did not confirm the save")
	}
	return nil
}

func (c *Client) call(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("settings service unreachable: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var e errorResponse
		_ = json.NewDecoder(io.LimitReader(res.Body, 64<<10)).Decode(&e)
		return &RemoteError{StatusCode: res.StatusCode, Message: e.Error}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
