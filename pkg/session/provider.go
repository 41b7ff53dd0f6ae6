package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Provider is the authentication backend behind a Manager.
type Provider interface {
	Login(ctx context.Context, email, password string) (*Token, *User, error)
	Refresh(ctx context.Context, token *Token) (*Token, *User, error)
	Verify(ctx context.Context, token *Token) (bool, *User, error)
	Logout(ctx context.Context, token *Token) error
}

// ProviderError is a non-2xx answer from the auth API.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("auth api: %d %s", e.Status, e.Message)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type tokenData struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         *User     `json:"user"`
}

func (d *tokenData) split() (*Token, *User) {
	return &Token{
		AccessToken:  d.AccessToken,
		RefreshToken: d.RefreshToken,
		ExpiresAt:    d.ExpiresAt,
	}, d.User
}

type verifyData struct {
	Valid bool  `json:"valid"`
	User  *User `json:"user"`
}

// HTTPProvider talks to the clinic API auth endpoints.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

func NewHTTPProvider(baseURL string, client *http.Client) *HTTPProvider {
	if client == nil {
		client = &http.Client{Timeout: defaultCallTimeout}
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/") + "/api/v1/auth",
		client:  client,
	}
}

func (p *HTTPProvider) Login(ctx context.Context, email, password string) (*Token, *User, error) {
	var data tokenData
	body := map[string]string{"email": email, "password": password}
	if _, err := p.post(ctx, "/login", "", body, &data); err != nil {
		return nil, nil, err
	}
	token, user := data.split()
	return token, user, nil
}

func (p *HTTPProvider) Refresh(ctx context.Context, token *Token) (*Token, *User, error) {
	var data tokenData
	body := map[string]string{"refresh_token": token.RefreshToken}
	if _, err := p.post(ctx, "/refresh-token", "", body, &data); err != nil {
		return nil, nil, err
	}
	next, user := data.split()
	return next, user, nil
}

// Verify reports a rejected token as (false, nil, nil).
func (p *HTTPProvider) Verify(ctx context.Context, token *Token) (bool, *User, error) {
	var data verifyData
	body := map[string]string{"token": token.AccessToken}
	status, err := p.post(ctx, "/verify", "", body, &data)
	if status == http.StatusUnauthorized {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	return data.Valid, data.User, nil
}

func (p *HTTPProvider) Logout(ctx context.Context, token *Token) error {
	body := map[string]string{"refresh_token": token.RefreshToken}
	_, err := p.post(ctx, "/logout", token.AccessToken, body, nil)
	return err
}

func (p *HTTPProvider) post(ctx context.Context, path, bearer string, body, out interface{}) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return resp.StatusCode, &ProviderError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return resp.StatusCode, fmt.Errorf("decode %s response: %w", path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		return resp.StatusCode, &ProviderError{Status: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode %s data: %w", path, err)
		}
	}
	return resp.StatusCode, nil
}
