package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"catalogkeeper/internal/shared"
	"catalogkeeper/internal/token"
	"catalogkeeper/internal/validation"
	pkgapi "catalogkeeper/pkg/api"
)

// AuthSource supplies the current credential to outgoing requests and
// receives the forced-logout signal when the server rejects it. The session
// manager implements it; the client is constructed first and bound to the
// session afterwards.
type AuthSource interface {
	// Token returns the current bearer token; ok is false when no
	// credential is held.
	Token() (tok string, ok bool)

	// ForceLogout clears the session after an authentication rejection
	ForceLogout(ctx context.Context)
}

// Client represents the HTTP client for the remote catalog service. Every
// request passes through it, so credential attachment and failure
// translation happen exactly once.
type Client struct {
	httpClient *http.Client
	auth       AuthSource
	baseURL    string
	clientID   string
}

// NewClient creates a new API client. clientID is the persistent client
// instance id attached to every request.
func NewClient(baseURL, clientID string) *Client {
	return &Client{
		baseURL:  baseURL,
		clientID: clientID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the Authorization header across redirects
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetAuthSource binds the session manager after construction
func (c *Client) SetAuthSource(auth AuthSource) {
	c.auth = auth
}

// Login authenticates the user and returns the issued bearer token
func (c *Client) Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
	var resp pkgapi.TokenResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/login", req, &resp, false); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Signup registers a new user
func (c *Client) Signup(ctx context.Context, req pkgapi.SignupRequest) (*pkgapi.MessageResponse, error) {
	var resp pkgapi.MessageResponse
	if err := c.doRequest(ctx, http.MethodPost, "/auth/signup", req, &resp, false); err != nil {
		return nil, fmt.Errorf("signup request failed: %w", err)
	}
	return &resp, nil
}

// ListProducts fetches the full product collection for the current identity
func (c *Client) ListProducts(ctx context.Context) ([]pkgapi.Product, error) {
	var resp []pkgapi.Product
	if err := c.doRequest(ctx, http.MethodGet, "/api/products", nil, &resp, true); err != nil {
		return nil, fmt.Errorf("list products request failed: %w", err)
	}
	return resp, nil
}

// CreateProduct submits a new product. The server assigns the id, so the
// caller reconciles by refetching rather than decoding the response.
func (c *Client) CreateProduct(ctx context.Context, p pkgapi.Product) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/products", p, nil, true); err != nil {
		return fmt.Errorf("create product request failed: %w", err)
	}
	return nil
}

// UpdateProduct replaces the fields of an existing product
func (c *Client) UpdateProduct(ctx context.Context, id int64, p pkgapi.Product) error {
	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.doRequest(ctx, http.MethodPut, path, p, nil, true); err != nil {
		return fmt.Errorf("update product request failed: %w", err)
	}
	return nil
}

// DeleteProduct removes an existing product
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/products/%d", id)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil, true); err != nil {
		return fmt.Errorf("delete product request failed: %w", err)
	}
	return nil
}

// doRequest performs an HTTP request. When authed is true the current
// credential is attached as a bearer token; requests without a held,
// structurally valid credential fail before leaving the client.
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}, authed bool) error {
	var bearer string
	if authed {
		if c.auth == nil {
			return shared.ErrUnauthenticated
		}
		tok, ok := c.auth.Token()
		if !ok {
			return shared.ErrUnauthenticated
		}
		if !token.Valid(tok) {
			// Corrupt slot: same cleanup as a server-side rejection
			slog.Warn("discarding malformed credential")
			c.auth.ForceLogout(ctx)
			return shared.ErrInvalidCredential
		}
		bearer = tok
	}

	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.clientID != "" {
		req.Header.Set("X-Client-Id", c.clientID)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrNetworkFailure, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.classifyError(ctx, resp.StatusCode, respBody, authed)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// classifyError translates a non-success status into the error kind the
// calling component handles. An authentication rejection on a bearer
// request forces logout before the error reaches the caller.
func (c *Client) classifyError(ctx context.Context, status int, body []byte, authed bool) error {
	msg := serverMessage(body)

	switch status {
	case http.StatusUnauthorized:
		if authed {
			slog.Warn("credential rejected by server, forcing logout")
			c.auth.ForceLogout(ctx)
			return shared.ErrSessionExpired
		}
		return shared.ErrInvalidCredentials
	case http.StatusNotFound:
		return shared.ErrNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		if msg == "" {
			msg = "request rejected by server"
		}
		return &validation.Error{Reason: msg}
	default:
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return fmt.Errorf("server error (%d): %s", status, msg)
	}
}

// serverMessage extracts the human readable message from an error body
func serverMessage(body []byte) string {
	var errResp pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	if errResp.Message != "" {
		return errResp.Message
	}
	return errResp.Error
}
