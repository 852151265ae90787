package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultAPIVersion is the Graph API version used unless overridden
	// via WHATSAPP_API_VERSION.
	DefaultAPIVersion = "v21.0"

	defaultBaseURL = "https://graph.facebook.com"
	defaultTimeout = 30 * time.Second
)

// APIError is a non-success response from the Cloud API. The response body is
// preserved because Meta returns the actual failure reason there.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whatsapp api returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Client sends text messages through the WhatsApp Cloud API (Meta Graph API).
type Client struct {
	token         string
	phoneNumberID string
	apiVersion    string
	baseURL       string
	httpClient    *http.Client
	logger        *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithAPIVersion overrides the Graph API version path segment.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.apiVersion = version
		}
	}
}

// WithBaseURL overrides the API host. Tests point this at a local server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a Cloud API client for one sender phone number.
func NewClient(token, phoneNumberID string, opts ...Option) *Client {
	c := &Client{
		token:         token,
		phoneNumberID: phoneNumberID,
		apiVersion:    DefaultAPIVersion,
		baseURL:       defaultBaseURL,
		httpClient:    &http.Client{Timeout: defaultTimeout},
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type textPayload struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

type messagePayload struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             textPayload `json:"text"`
}

type messageResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// SendText posts one text message to the recipient. It makes exactly one
// attempt; a non-2xx response yields an *APIError carrying the response body.
func (c *Client) SendText(ctx context.Context, recipient, text string) (string, error) {
	url := fmt.Sprintf("%s/%s/%s/messages", c.baseURL, c.apiVersion, c.phoneNumberID)

	payload := messagePayload{
		MessagingProduct: "whatsapp",
		To:               recipient,
		Type:             "text",
		Text:             textPayload{PreviewURL: false, Body: text},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("cannot encode message payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("cannot build api request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending message",
		zap.String("to", recipient),
		zap.Int("body_bytes", len(text)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("whatsapp api request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("cannot read api response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var decoded messageResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return "", fmt.Errorf("cannot decode api response: %w", err)
		}
	}
	if len(decoded.Messages) == 0 {
		return "", nil
	}
	return decoded.Messages[0].ID, nil
}
