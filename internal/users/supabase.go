package users

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"docqa/internal/config"
	"docqa/internal/model"
)

// SupabaseClient implements Service against a Supabase-style auth endpoint.
type SupabaseClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewSupabase creates a user-management client from config.
func NewSupabase(cfg config.UsersConfig) (*SupabaseClient, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("users base URL is required")
	}

	return &SupabaseClient{
		client: &http.Client{
			Timeout:   time.Duration(cfg.TimeoutSec) * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}, nil
}

var _ Service = (*SupabaseClient)(nil)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	Message     string     `json:"msg"`
}

// Create registers a new user account.
func (c *SupabaseClient) Create(ctx context.Context, email, password string) (*model.User, error) {
	body, err := json.Marshal(signupRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/v1/signup", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("signup request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var out signupResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("decode signup response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if out.Message != "" {
			return nil, fmt.Errorf("signup API returned %s: %s", resp.Status, out.Message)
		}
		return nil, fmt.Errorf("signup API returned %s", resp.Status)
	}

	user := &model.User{
		ID:        out.ID,
		Email:     out.Email,
		CreatedAt: out.CreatedAt,
	}
	if out.ConfirmedAt != nil {
		user.ConfirmedAt = *out.ConfirmedAt
	}
	return user, nil
}
