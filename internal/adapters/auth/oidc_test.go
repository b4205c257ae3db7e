package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/javaBin/talks-browser/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIssuer starts a fake OIDC issuer that hands out accessToken to client-id/client-secret
func newIssuer(t *testing.T, accessToken string) *httptest.Server {
	t.Helper()

	var issuer *httptest.Server
	mux := http.NewServeMux()

	mux.HandleFunc("GET /.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"issuer":                                issuer.URL,
			"authorization_endpoint":                issuer.URL + "/authorize",
			"token_endpoint":                        issuer.URL + "/token",
			"jwks_uri":                              issuer.URL + "/keys",
			"id_token_signing_alg_values_supported": []string{"RS256"},
		})
	})

	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		clientID, clientSecret, ok := r.BasicAuth()
		if !ok {
			clientID = r.PostForm.Get("client_id")
			clientSecret = r.PostForm.Get("client_secret")
		}
		if clientID != "client-id" || clientSecret != "client-secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": accessToken,
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})

	issuer = httptest.NewServer(mux)
	t.Cleanup(issuer.Close)
	return issuer
}

func TestNewClientCredentialsClient(t *testing.T) {
	t.Run("attaches bearer token", func(t *testing.T) {
		issuer := newIssuer(t, "secret-token")

		var gotAuth string
		api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer api.Close()

		client, err := NewClientCredentialsClient(context.Background(), config.OIDCConfig{
			IssuerURL:    issuer.URL,
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			Scopes:       []string{"talks.read"},
		}, 5*time.Second)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.Timeout)

		resp, err := client.Get(api.URL + "/api/talks")
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "Bearer secret-token", gotAuth)
	})

	t.Run("not configured", func(t *testing.T) {
		client, err := NewClientCredentialsClient(context.Background(), config.OIDCConfig{}, time.Second)

		require.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("issuer unreachable", func(t *testing.T) {
		issuer := httptest.NewServer(http.NotFoundHandler())
		issuer.Close()

		client, err := NewClientCredentialsClient(context.Background(), config.OIDCConfig{
			IssuerURL:    issuer.URL,
			ClientID:     "client-id",
			ClientSecret: "client-secret",
		}, time.Second)

		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to create OIDC provider")
	})
}
