package service

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
	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the development backend. It is expected to be
	// overridden from the settings screen or CINETIX_API_URL.
	DefaultBaseURL = "https://9525-102-219-208-124.ngrok-free.app"

	defaultTimeout  = 12 * time.Second
	maxResponseSize = 1 << 20
)

// ErrHTMLResponse marks a body that turned out to be an HTML page where JSON
// was expected, which almost always means the backend base URL points at a
// login/redirect page rather than the API.
var ErrHTMLResponse = errors.New("received HTML instead of JSON (check the backend API URL)")

// Client wraps HTTP access to the cinema booking API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	log        *logrus.Logger
}

// APIError is returned when the backend responds with a non-2xx status.
// Message holds the server's own error text when the body carried one.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return "api error"
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// IsNotFound reports whether the error represents a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsUnauthorized reports whether the error represents a rejected or expired
// credential. Callers use this to force a logout.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// NewClient creates a new API client. If httpClient is nil, a default client
// is used; if log is nil, logging is discarded.
func NewClient(httpClient *http.Client, log *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
		log:        log,
	}
}

// SetBaseURL overrides the backend base URL. Trailing slashes are trimmed so
// paths can always be joined with a leading slash.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken installs the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) ClearToken() {
	c.token = ""
}

// do issues a JSON request and decodes the response into out. A nil body
// sends no payload; a nil out discards the response body. Pass a *string out
// to accept opaque non-JSON success bodies.
func (c *Client) do(ctx context.Context, method string, path string, body any, out any) error {
	endpoint := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send finishes header injection, performs the request and applies the
// tolerant response handling shared by all call families.
func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Ngrok-Skip-Browser-Warning", "true")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{
			"method": req.Method,
			"url":    req.URL.String(),
		}).Warn("request failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response from %s: %w", req.URL, err)
	}

	c.log.WithFields(logrus.Fields{
		"method":   req.Method,
		"url":      req.URL.String(),
		"status":   res.StatusCode,
		"duration": time.Since(start).Round(time.Millisecond).String(),
	}).Debug("api request")

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   req.URL.String(),
			Message:    serverMessage(res.Header.Get("Content-Type"), raw),
		}
	}

	if out == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	switch classifyBody(res.Header.Get("Content-Type"), trimmed) {
	case bodyHTML:
		return fmt.Errorf("%s: %w", req.URL, ErrHTMLResponse)
	case bodyText:
		if s, ok := out.(*string); ok {
			*s = string(raw)
			return nil
		}
		return fmt.Errorf("unexpected non-JSON response from %s: %q", req.URL, snippet(trimmed))
	default:
		if s, ok := out.(*string); ok {
			*s = string(raw)
			return nil
		}
		if err := json.Unmarshal(trimmed, out); err != nil {
			return fmt.Errorf("decode response from %s: %w", req.URL, err)
		}
		return nil
	}
}

// serverMessage extracts the backend's own error text from an error body,
// returning "" when none can be found.
func serverMessage(contentType string, raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if classifyBody(contentType, trimmed) != bodyJSON {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	return body.Error
}

func snippet(raw []byte) string {
	const limit = 120
	if len(raw) > limit {
		return string(raw[:limit]) + "..."
	}
	return string(raw)
}
