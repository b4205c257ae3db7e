package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/javaBin/talks-browser/internal/config"
	"golang.org/x/oauth2/clientcredentials"
)

// NewClientCredentialsClient discovers the issuer's token endpoint and returns an
// HTTP client that attaches a client-credentials access token to every request.
// Tokens are fetched lazily and refreshed when they expire.
func NewClientCredentialsClient(ctx context.Context, cfg config.OIDCConfig, timeout time.Duration) (*http.Client, error) {
	if !cfg.IsConfigured() {
		return nil, errors.New("OIDC client credentials are not configured")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	tokenURL := provider.Endpoint().TokenURL
	if tokenURL == "" {
		return nil, fmt.Errorf("issuer %s does not advertise a token endpoint", cfg.IssuerURL)
	}

	ccConfig := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     tokenURL,
		Scopes:       cfg.Scopes,
	}

	// Token refreshes outlive the setup context
	client := ccConfig.Client(context.WithoutCancel(ctx))
	client.Timeout = timeout

	return client, nil
}
