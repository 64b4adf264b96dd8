package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/careercracker/webclient/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// exhaustedMessage is the literal signal the backend emits when the question
// supply for a session is depleted. It is matched here, at the client edge,
// and nowhere else; callers only ever see ErrQuestionsExhausted.
const exhaustedMessage = "no more questions"

var (
	// ErrUnauthorized covers a missing or rejected bearer credential.
	ErrUnauthorized = errors.New("backend: unauthorized")

	// ErrQuestionsExhausted is the structured termination signal for the
	// per-question loop. It is an expected control-flow outcome, not a failure.
	ErrQuestionsExhausted = errors.New("backend: question supply exhausted")
)

// APIError is a normalized non-2xx response from the backend, carrying the
// human-readable message extracted from the server payload.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// Client is the typed REST client over the CareerCracker backend. It is
// stateless with respect to users: the bearer credential is an argument on
// every call, so a single instance serves all of them.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Backend.Timeout},
	}
}

// errorPayload covers the shapes the backend uses for failures: DRF's
// {"detail"}, the app's {"error"} and the auth views' {"message"}.
type errorPayload struct {
	Error   string `json:"error"`
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

func (p errorPayload) message() string {
	switch {
	case p.Error != "":
		return p.Error
	case p.Detail != "":
		return p.Detail
	default:
		return p.Message
	}
}

// do performs one authenticated round trip and decodes the 2xx body into out
// (which may be nil for void endpoints). Non-2xx responses are normalized
// into *APIError, with 401/403 additionally wrapping ErrUnauthorized.
func (c *Client) do(ctx context.Context, cred, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if cred != "" {
		req.Header.Set("Authorization", "Bearer "+cred)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("Backend request failed")
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read backend response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.asAPIError(resp.StatusCode, raw, method, path)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Error().Err(err).Str("path", path).Msg("Backend returned a malformed payload")
		return fmt.Errorf("malformed backend payload for %s: %w", path, err)
	}
	return nil
}

func (c *Client) asAPIError(status int, raw []byte, method, path string) error {
	var payload errorPayload
	_ = json.Unmarshal(raw, &payload)

	message := payload.message()
	if message == "" {
		message = http.StatusText(status)
	}

	apiErr := &APIError{StatusCode: status, Message: message}
	log.Warn().Int("status", status).Str("method", method).Str("path", path).Str("message", message).Msg("Backend error response")

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
	}
	return apiErr
}
