package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/takenotes/internal/validation"
	"github.com/iudanet/takenotes/pkg/api"
)

// DefaultBaseURL is the address of a locally running TakeNotes server
const DefaultBaseURL = "http://localhost:3001"

const defaultTimeout = 30 * time.Second

// TokenSource provides the current bearer token.
// An empty string means the caller is not authenticated.
type TokenSource interface {
	Token() string
}

// Client is an HTTP client for the TakeNotes API
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
	timeout    *time.Duration // применяется к копии httpClient в NewClient
	baseURL    string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
// The client is never modified; nil keeps the default one.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout overrides the per-request timeout; zero disables it
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = &timeout
	}
}

// NewClient creates a new API client.
// tokens may be nil, in which case requests are never authenticated.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		tokens:     tokens,
		logger:     slog.New(slog.DiscardHandler),
		httpClient: newDefaultHTTPClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = newDefaultHTTPClient()
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	if c.timeout != nil {
		// переданный через WithHTTPClient клиент может быть общим, меняем только копию
		hc := *c.httpClient
		hc.Timeout = *c.timeout
		c.httpClient = &hc
	}

	return c
}

func newDefaultHTTPClient() *http.Client {
	return &http.Client{
		Timeout: defaultTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("stopped after 10 redirects")
			}
			// переносим bearer-токен при редиректе
			if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
				req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
			}
			return nil
		},
	}
}

// RequestHeaders builds the headers sent with every request.
// Authorization is set only when token is non-empty.
func RequestHeaders(token string) http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// RawResponse is an undecoded server response
type RawResponse struct {
	Header     http.Header
	Body       []byte
	StatusCode int
}

// Register registers a new user.
// The server reply is returned as-is since its body carries no contract.
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*RawResponse, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/users/register", req)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return resp, nil
}

// Login authenticates the user and returns the issued access token
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	if err := validateResponse(resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// CreateNote creates a note and returns it as stored by the server
func (c *Client) CreateNote(ctx context.Context, req api.CreateNoteRequest) (*api.Note, error) {
	var note api.Note
	if err := c.doJSON(ctx, http.MethodPost, "/api/notes/create", req, &note); err != nil {
		return nil, fmt.Errorf("create note request failed: %w", err)
	}
	if err := validateResponse(note); err != nil {
		return nil, fmt.Errorf("create note request failed: %w", err)
	}
	return &note, nil
}

// GetNotes returns the caller's notes in the order the server sent them
func (c *Client) GetNotes(ctx context.Context) ([]api.Note, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/notes", nil)
	if err != nil {
		return nil, fmt.Errorf("get notes request failed: %w", err)
	}

	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 || body[0] != '[' {
		return nil, fmt.Errorf("get notes request failed: %w: expected a JSON array", ErrMalformedResponse)
	}

	var notes []api.Note
	if err := json.Unmarshal(body, &notes); err != nil {
		return nil, fmt.Errorf("get notes request failed: %w: %v", ErrMalformedResponse, err)
	}

	for i := range notes {
		if err := validateResponse(notes[i]); err != nil {
			return nil, fmt.Errorf("get notes request failed: note %d: %w", i, err)
		}
	}

	return notes, nil
}

// doJSON выполняет запрос и декодирует успешный ответ в result
func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(resp.Body, result); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return nil
}

// do выполняет один HTTP запрос.
// Статусы вне 2xx превращаются в ошибки, иначе возвращается тело ответа.
func (c *Client) do(ctx context.Context, method, path string, body any) (*RawResponse, error) {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var token string
	if c.tokens != nil {
		token = c.tokens.Token()
	}
	req.Header = RequestHeaders(token)

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "HTTP request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrNetwork, err)
	}

	c.logger.DebugContext(ctx, "HTTP request",
		"method", method,
		"path", path,
		"request_id", requestID,
		"authenticated", token != "",
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"bytes_read", len(respBody),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newStatusError(resp.StatusCode, respBody)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

func validateResponse(v any) error {
	if err := validation.ValidateResponse(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
