package accountsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// BasePath is where the account routes are mounted.
const BasePath = "/api/auth"

// SDKClient talks to the account service. It covers unauthenticated calls and
// creates Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient returns a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates an account. The service always assigns the "user" role.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := c.doRequest(ctx, http.MethodPost, BasePath+"/register", req, "")
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusCreated)
}

// Login exchanges credentials for a signed session token.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, BasePath+"/login",
		LoginRequest{Email: email, Password: password}, "")
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return c.NewSession(tok.Token), nil
}

// NewSession wraps an existing token, e.g. one persisted by a previous login.
func (c *SDKClient) NewSession(token string) *Session {
	return &Session{client: c, token: token}
}

// Liveness checks /livez.
func (c *SDKClient) Liveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// Health checks /readyz, which also pings the store.
func (c *SDKClient) Health(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
