package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/client/models"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

type HTTPClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        logging.Logger
}

// NewHTTPClient returns a client for the API rooted at baseURL. A zero
// timeout leaves requests bounded only by the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		timeout:    timeout,
		httpClient: &http.Client{},
		log:        log,
	}
}

// bearerClient wraps the shared transport with an oauth2 transport that
// sets "Authorization: Bearer <token>".
func (c *HTTPClient) bearerClient(token string) *http.Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
	return &http.Client{
		Transport: &oauth2.Transport{Source: src, Base: c.httpClient.Transport},
	}
}

// do sends one JSON request and decodes a 2xx body into out (when out is
// non-nil). It returns the HTTP status; transport failures wrap
// ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, hc *http.Client, method, path string, in, out any) (int, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "api request", "method", method, "path", path, "status", resp.StatusCode,
		"request_id", requestID, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return resp.StatusCode, nil
}

// mapStatus turns a non-2xx status into a sentinel error.
func mapStatus(status int) error {
	switch {
	case status >= 200 && status <= 299:
		return nil
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, status)
	default:
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, status)
	}
}

// Login posts the credentials and returns the issued access token. Only
// 201 Created with a non-empty access_token counts as success.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp models.TokenResponse

	status, err := c.do(ctx, c.httpClient, http.MethodPost, "/auth/login",
		models.Credentials{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if status >= 500 {
		return "", mapStatus(status)
	}
	if status != http.StatusCreated {
		return "", fmt.Errorf("%w: status %d", ErrUnauthorized, status)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", ErrMalformedResponse)
	}
	return resp.AccessToken, nil
}

// Profile returns the user the token was issued to.
func (c *HTTPClient) Profile(ctx context.Context, token string) (models.User, error) {
	var u models.User
	status, err := c.do(ctx, c.bearerClient(token), http.MethodGet, "/auth/profile", nil, &u)
	if err != nil {
		return models.User{}, err
	}
	if err := mapStatus(status); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	status, err := c.do(ctx, c.httpClient, http.MethodGet, "/users", nil, &users)
	if err != nil {
		return nil, err
	}
	if err := mapStatus(status); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *HTTPClient) CreateUser(ctx context.Context, u models.NewUser) (models.User, error) {
	var created models.User
	status, err := c.do(ctx, c.httpClient, http.MethodPost, "/users", u, &created)
	if err != nil {
		return models.User{}, err
	}
	if err := mapStatus(status); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (c *HTTPClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	status, err := c.do(ctx, c.httpClient, http.MethodGet, "/products", nil, &products)
	if err != nil {
		return nil, err
	}
	if err := mapStatus(status); err != nil {
		return nil, err
	}
	return products, nil
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
