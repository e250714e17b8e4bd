// Package assistant is the HTTP client for the upstream AI troubleshooting
// backend. It owns everything the classification pipeline must not: network
// calls, session lifecycle, image upload, and the user-facing error taxonomy.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"foreman/internal/classify"
)

// Client talks to the upstream assistant service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	sessions   *sessions
	useSession bool
}

// Option configures the Client during construction.
type Option func(*clientConfig) error

type clientConfig struct {
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
	sessions   bool
}

// New creates a Client for the given assistant instance. The apiKey, when
// non-empty, is sent as a bearer token on every request.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("assistant: baseURL is required")
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	cfg := &clientConfig{sessions: true}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.timeout > 0 {
		httpClient.Timeout = cfg.timeout
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
		logger:     logger,
		sessions:   &sessions{},
		useSession: cfg.sessions,
	}, nil
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) error {
		cfg.httpClient = c
		return nil
	}
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *clientConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithTimeout sets a timeout on the HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) error {
		cfg.timeout = d
		return nil
	}
}

// WithSessions toggles the session-based request path. Even when enabled,
// any session failure permanently falls back to stateless requests.
func WithSessions(enabled bool) Option {
	return func(cfg *clientConfig) error {
		cfg.sessions = enabled
		return nil
	}
}

type askRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	ImageID   string `json:"image_id,omitempty"`
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
}

type uploadResponse struct {
	ImageID string `json:"image_id"`
}

// Ask sends a query (optionally referencing a previously uploaded image) and
// runs the response through the classification pipeline. A session is used
// when available; a failed session send falls back to one stateless retry of
// the same request, and sessions stay disabled afterwards.
func (c *Client) Ask(ctx context.Context, message, imageID string) (classify.Result, error) {
	if c.useSession {
		if sid := c.sessions.acquire(ctx, c.createSession); sid != "" {
			body, err := c.post(ctx, "/api/ask", "ask (session)", askRequest{
				Message:   message,
				SessionID: sid,
				ImageID:   imageID,
			})
			if err == nil {
				return c.transform(body)
			}
			c.logger.WarnContext(ctx, "session request failed, falling back to stateless",
				"error", err)
			c.sessions.disable()
		}
	}

	body, err := c.post(ctx, "/api/ask", "ask", askRequest{Message: message, ImageID: imageID})
	if err != nil {
		return classify.Result{}, err
	}
	return c.transform(body)
}

// transform hands the response body to the pipeline and maps the upstream
// failure contract onto the error taxonomy.
func (c *Client) transform(body []byte) (classify.Result, error) {
	res, err := classify.Transform(body)
	if err != nil {
		var upstream *classify.UpstreamError
		if errors.As(err, &upstream) {
			return classify.Result{}, &RequestError{
				operation: "ask",
				category:  CategoryUpstream,
				message:   upstream.Message,
			}
		}
		return classify.Result{}, newRequestError("ask", 0, "", err)
	}
	return res, nil
}

// UploadImage uploads an image ahead of a query and returns the upstream
// image ID. Any failure is terminal for the query that needed the image.
func (c *Client) UploadImage(ctx context.Context, filename string, data []byte) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err == nil {
		_, err = part.Write(data)
	}
	if err == nil {
		err = mw.Close()
	}
	if err != nil {
		return "", &RequestError{operation: "upload image", category: CategoryUploadFailed, message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return "", &RequestError{operation: "upload image", category: CategoryUploadFailed, message: err.Error()}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &RequestError{operation: "upload image", category: CategoryUploadFailed, message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// 413 keeps its dedicated category so the user is told to shrink
		// the image rather than to retry.
		if cat := categorize(resp.StatusCode, string(respBody)); cat == CategoryImageTooLarge {
			return "", &RequestError{
				operation:  "upload image",
				category:   CategoryImageTooLarge,
				statusCode: resp.StatusCode,
				message:    string(respBody),
			}
		}
		return "", &RequestError{
			operation:  "upload image",
			category:   CategoryUploadFailed,
			statusCode: resp.StatusCode,
			message:    string(respBody),
		}
	}

	var out uploadResponse
	if err := json.Unmarshal(respBody, &out); err != nil || out.ImageID == "" {
		return "", &RequestError{operation: "upload image", category: CategoryUploadFailed, message: "no image_id in response"}
	}
	return out.ImageID, nil
}

// createSession asks the backend for a new session ID.
func (c *Client) createSession(ctx context.Context) (string, error) {
	body, err := c.post(ctx, "/api/session", "create session", struct{}{})
	if err != nil {
		return "", err
	}
	var out sessionResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("create session: decode response: %w", err)
	}
	return out.SessionID, nil
}

// post executes a JSON POST and returns the raw response body. Error statuses
// map into the user-facing taxonomy.
func (c *Client) post(ctx context.Context, path, operation string, payload any) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	c.logger.InfoContext(ctx, "assistant request", "operation", operation, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newRequestError(operation, 0, "", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newRequestError(operation, resp.StatusCode, "", err)
	}

	c.logger.DebugContext(ctx, "assistant response", "operation", operation, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newRequestError(operation, resp.StatusCode, string(body), nil)
	}
	return body, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
