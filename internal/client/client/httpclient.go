package client

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
	"time"

	"github.com/dmitrijs2005/zenora/internal/client/models"
	"github.com/dmitrijs2005/zenora/internal/common"
	"github.com/dmitrijs2005/zenora/internal/logging"
	"github.com/sethvargo/go-retry"
)

const (
	pathLogin       = "/api/auth/login"
	pathSignup      = "/api/auth/signup"
	pathAssessments = "/api/assessments"
	pathJournal     = "/api/journal"
	pathMoodLog     = "/api/moodlog"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryDelay = 500 * time.Millisecond
)

// HTTPClient talks JSON to the Zenora API.
type HTTPClient struct {
	baseURL    string
	http       *http.Client
	tokens     TokenSource
	timeout    time.Duration
	retryDelay time.Duration
	log        logging.Logger
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client (tests use the
// httptest server's client).
func WithHTTPClient(h *http.Client) Option {
	return func(c *HTTPClient) { c.http = h }
}

// WithTimeout bounds each request attempt. Non-positive values keep the
// default.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

// WithRetryDelay sets the pause before the single retry. Non-positive values
// keep the default.
func WithRetryDelay(d time.Duration) Option {
	return func(c *HTTPClient) { c.retryDelay = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient builds a client for baseURL. tokens may be nil, in which
// case every request is unauthenticated.
func NewHTTPClient(baseURL string, tokens TokenSource, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       http.DefaultClient,
		tokens:     tokens,
		timeout:    DefaultTimeout,
		retryDelay: DefaultRetryDelay,
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	// retry.NewConstant panics on a non-positive delay
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if c.retryDelay <= 0 {
		c.retryDelay = DefaultRetryDelay
	}
	return c, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (models.AuthResponse, error) {
	req := map[string]string{"email": email, "password": password}
	return c.authenticate(ctx, pathLogin, req)
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (models.AuthResponse, error) {
	req := map[string]string{"name": name, "email": email, "password": password}
	return c.authenticate(ctx, pathSignup, req)
}

func (c *HTTPClient) authenticate(ctx context.Context, path string, req any) (models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, path, req, &resp); err != nil {
		return models.AuthResponse{}, err
	}
	if resp.Token == "" || resp.User.ID == "" {
		return models.AuthResponse{}, ErrMalformedResponse
	}
	return resp, nil
}

func (c *HTTPClient) SaveAssessment(ctx context.Context, rec models.AssessmentRecord) error {
	return c.do(ctx, http.MethodPost, pathAssessments, rec, nil)
}

func (c *HTTPClient) ListAssessments(ctx context.Context) ([]models.AssessmentRecord, error) {
	var out []models.AssessmentRecord
	if err := c.do(ctx, http.MethodGet, pathAssessments, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SaveJournal(ctx context.Context, entry models.JournalEntry) error {
	return c.do(ctx, http.MethodPost, pathJournal, entry, nil)
}

func (c *HTTPClient) ListJournal(ctx context.Context) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	if err := c.do(ctx, http.MethodGet, pathJournal, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SaveMood(ctx context.Context, entry models.MoodEntry) error {
	return c.do(ctx, http.MethodPost, pathMoodLog, entry, nil)
}

func (c *HTTPClient) ListMoods(ctx context.Context) ([]models.MoodEntry, error) {
	var out []models.MoodEntry
	if err := c.do(ctx, http.MethodGet, pathMoodLog, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do sends one logical request: at most two attempts, each bounded by
// c.timeout. Only transport failures and 502/503/504 are retried.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = b
	}

	backoff := retry.WithMaxRetries(1, retry.NewConstant(c.retryDelay))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := c.once(ctx, method, path, body, out)
		if err != nil {
			c.log.Debug(ctx, "request attempt failed", "method", method, "path", path, "attempt", attempt, "error", err)
		}
		return err
	})
}

func (c *HTTPClient) once(ctx context.Context, method, path string, body []byte, out any) error {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// caller gave up; do not retry
			return ctx.Err()
		}
		return retry.RetryableError(fmt.Errorf("%w: %v", ErrUnavailable, err))
	}
	defer resp.Body.Close()

	return c.mapResponse(resp, out)
}

func (c *HTTPClient) mapResponse(resp *http.Response, out any) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized

	case resp.StatusCode == http.StatusBadGateway,
		resp.StatusCode == http.StatusServiceUnavailable,
		resp.StatusCode == http.StatusGatewayTimeout:
		return retry.RetryableError(fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode))

	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)

	default:
		return &APIError{Status: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}
}

// readErrorMessage extracts {"error": "..."} or {"message": "..."} from a
// rejection body.
func readErrorMessage(r io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(r, 64<<10)).Decode(&payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}
