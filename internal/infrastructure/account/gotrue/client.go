// Package gotrue verifies access tokens against a GoTrue-compatible auth
// service by fetching the token's user record.
package gotrue

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/tickerdraft/tickerdraft/internal/domain/user"
	"github.com/tickerdraft/tickerdraft/internal/usecase"
)

type Client struct {
	httpClient *http.Client
	userURL    string
	anonKey    string
	logger     *slog.Logger
}

func NewClient(httpClient *http.Client, baseURL, anonKey string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient: httpClient,
		userURL:    buildURL(baseURL, "/auth/v1/user"),
		anonKey:    strings.TrimSpace(anonKey),
		logger:     logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userURL, nil)
	if err != nil {
		return user.Principal{}, fmt.Errorf("create user lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if c.anonKey != "" {
		req.Header.Set("apikey", c.anonKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return user.Principal{}, fmt.Errorf("request user from auth service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return user.Principal{}, fmt.Errorf("%w: token rejected", usecase.ErrUnauthorized)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := io.Copy(buf, io.LimitReader(resp.Body, 1<<20)); err != nil {
		return user.Principal{}, fmt.Errorf("read user response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "auth user lookup non-200",
			"status_code", resp.StatusCode,
		)
		return user.Principal{}, fmt.Errorf("auth user lookup failed with status %d", resp.StatusCode)
	}

	var decoded userResponse
	if err := sonic.Unmarshal(buf.Bytes(), &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal user response: %w", err)
	}

	if strings.TrimSpace(decoded.ID) == "" {
		return user.Principal{}, fmt.Errorf("invalid user response: id is empty")
	}

	return user.Principal{
		UserID: decoded.ID,
		Email:  decoded.Email,
	}, nil
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
