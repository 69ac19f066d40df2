package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/a2sh3r/mindflex/internal/apperrors"
	"github.com/a2sh3r/mindflex/internal/logger"
	"github.com/a2sh3r/mindflex/internal/models"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
	Retries int
	Backoff time.Duration
}

// Client talks to the mindflex API on behalf of one tutor.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	backoff    time.Duration

	mu       sync.RWMutex
	token    string
	username string
	password string
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retries:    cfg.Retries,
		backoff:    cfg.Backoff,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	Role  models.Role `json:"role"`
}

func (c *Client) Login(ctx context.Context, username, password string) error {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/user/login", body)
	if err != nil {
		return err
	}
	defer closeBody(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return apperrors.ErrInvalidCredentials
	default:
		return fmt.Errorf("login: unexpected status: %d", resp.StatusCode)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if lr.Role != models.RoleTutor {
		return apperrors.ErrForbiddenRole
	}

	c.mu.Lock()
	c.token = lr.Token
	c.username, c.password = username, password
	c.mu.Unlock()
	return nil
}

// doAuthorized is do for endpoints behind the session. A 401 after a
// successful Login means the token expired: the client logs in again with
// the stored credentials and repeats the request once.
func (c *Client) doAuthorized(ctx context.Context, method, path string) (*http.Response, error) {
	resp, err := c.do(ctx, method, path, nil)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	c.mu.RLock()
	username, password := c.username, c.password
	c.mu.RUnlock()
	if username == "" {
		return resp, nil
	}
	closeBody(resp.Body)

	logger.Log.Info("session expired, logging in again", zap.String("username", username))
	if err := c.Login(ctx, username, password); err != nil {
		return nil, err
	}
	return c.do(ctx, method, path, nil)
}

// ListOpen returns the open questions in any of subjects, or all of them
// when subjects is empty.
func (c *Client) ListOpen(ctx context.Context, subjects []string) ([]models.Question, error) {
	path := "/api/questions/open"
	if len(subjects) > 0 {
		q := url.Values{}
		for _, s := range subjects {
			q.Add("subject", s)
		}
		path += "?" + q.Encode()
	}

	resp, err := c.doAuthorized(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		return nil, nil
	case http.StatusUnauthorized:
		return nil, apperrors.ErrInvalidToken
	default:
		return nil, fmt.Errorf("list open questions: unexpected status: %d", resp.StatusCode)
	}

	var questions []models.Question
	if err := json.NewDecoder(resp.Body).Decode(&questions); err != nil {
		return nil, fmt.Errorf("list open questions: %w", err)
	}
	return questions, nil
}

// do sends the request, retrying transport failures and 5xx answers up to
// c.retries more times with a linear backoff.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoff * time.Duration(attempt)):
			}
		}

		var r io.Reader
		if body != nil {
			r = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
		if err != nil {
			return nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		c.mu.RLock()
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
		c.mu.RUnlock()

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			logger.Log.Warn("request failed", zap.String("path", path), zap.Int("attempt", attempt+1), zap.Error(err))
			continue
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			closeBody(resp.Body)
			lastErr = fmt.Errorf("unexpected status: %d", resp.StatusCode)
			logger.Log.Warn("server error", zap.String("path", path), zap.Int("attempt", attempt+1), zap.Int("status", resp.StatusCode))
			continue
		}
		return resp, nil
	}
	return nil, apperrors.Upstream(method+" "+path, lastErr)
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logger.Log.Error("failed to close response body", zap.Error(err))
	}
}
