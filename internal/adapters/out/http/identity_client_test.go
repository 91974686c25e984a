// internal/adapters/out/http/identity_client_test.go
package httpout

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identityServer(t *testing.T, handler http.HandlerFunc) *IdentityClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewIdentityClient("test-key")
	c.baseURL = srv.URL
	return c
}

func TestIdentitySignIn(t *testing.T) {
	c := identityServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.URL.Path, "/accounts:signInWithPassword"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ops@example.com", body["email"])
		assert.Equal(t, true, body["returnSecureToken"])

		json.NewEncoder(w).Encode(map[string]string{
			"localId":      "u1",
			"email":        "ops@example.com",
			"idToken":      "tok",
			"refreshToken": "ref",
		})
	})

	s, err := c.SignIn(context.Background(), "ops@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "u1", s.UID)
	assert.Equal(t, "tok", s.IDToken)
}

func TestIdentitySignInBadCredentials(t *testing.T) {
	c := identityServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "INVALID_LOGIN_CREDENTIALS"},
		})
	})

	_, err := c.SignIn(context.Background(), "ops@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestIdentitySendPasswordReset(t *testing.T) {
	var gotType string
	c := identityServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotType, _ = body["requestType"].(string)
		w.Write([]byte(`{}`))
	})

	require.NoError(t, c.SendPasswordReset(context.Background(), "ops@example.com"))
	assert.Equal(t, "PASSWORD_RESET", gotType)
}
