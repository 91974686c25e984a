// internal/adapters/out/http/identity_client.go
package httpout

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
)

const identityBaseURL = "https://identitytoolkit.googleapis.com/v1"

var (
	ErrInvalidCredentials = errors.New("identity: invalid email or password")
	ErrUserDisabled       = errors.New("identity: account disabled")
)

// IdentityClient talks to the Identity Toolkit REST API. The operator CLI
// uses it for email/password sign-in and password reset dispatch; the server
// side never needs it (it only verifies tokens).
type IdentityClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewIdentityClient(apiKey string) *IdentityClient {
	return &IdentityClient{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: identityBaseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Session is the authenticated result of a sign-in.
type Session struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
}

type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

type identityError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *IdentityClient) SignIn(ctx context.Context, email, password string) (Session, error) {
	payload := map[string]any{
		"email":             strings.TrimSpace(email),
		"password":          password,
		"returnSecureToken": true,
	}

	var out signInResponse
	if err := c.post(ctx, "accounts:signInWithPassword", payload, &out); err != nil {
		return Session{}, err
	}
	return Session{
		UID:          out.LocalID,
		Email:        out.Email,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
	}, nil
}

// SendPasswordReset dispatches the reset email. Identity Toolkit responds
// identically whether or not the account exists, so no enumeration is
// possible here.
func (c *IdentityClient) SendPasswordReset(ctx context.Context, email string) error {
	payload := map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       strings.TrimSpace(email),
	}
	return c.post(ctx, "accounts:sendOobCode", payload, &struct{}{})
}

func (c *IdentityClient) post(ctx context.Context, action string, payload, out any) error {
	if c.apiKey == "" {
		return errors.New("identity: api key is empty")
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	url := c.baseURL + "/" + action + "?key=" + c.apiKey

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if res.StatusCode != http.StatusOK {
		var ie identityError
		_ = json.Unmarshal(raw, &ie)
		switch {
		case strings.HasPrefix(ie.Error.Message, "INVALID_LOGIN_CREDENTIALS"),
			strings.HasPrefix(ie.Error.Message, "EMAIL_NOT_FOUND"),
			strings.HasPrefix(ie.Error.Message, "INVALID_PASSWORD"):
			return ErrInvalidCredentials
		case strings.HasPrefix(ie.Error.Message, "USER_DISABLED"):
			return ErrUserDisabled
		}
		return fmt.Errorf("identity call %s failed status=%d: %s", action, res.StatusCode, ie.Error.Message)
	}
	return json.Unmarshal(raw, out)
}
