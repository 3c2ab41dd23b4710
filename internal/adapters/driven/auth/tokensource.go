package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/wiki-push/internal/adapters/driven/sites"
	"github.com/custodia-labs/wiki-push/internal/core/domain"
	"github.com/custodia-labs/wiki-push/internal/core/ports/driven"
)

// DefaultTokenURL is Google's OAuth2 token endpoint.
const DefaultTokenURL = "https://oauth2.googleapis.com/token"

// ErrNoCredentials indicates that no usable credential was configured.
var ErrNoCredentials = errors.New("no credentials: set an access token, a refresh token and client, or an email and password")

// TokenSource selects a token source from cfg. In order of preference:
//   - an access token, refreshable when a refresh token and client ID are also set
//   - a refresh token with client credentials
//   - an email and password, exchanged with the password grant
func TokenSource(ctx context.Context, cfg driven.SessionConfig) (oauth2.TokenSource, error) {
	conf := oauthConfig(cfg)
	canRefresh := cfg.RefreshToken != "" && cfg.ClientID != ""

	switch {
	case cfg.AccessToken != "" && canRefresh:
		return conf.TokenSource(ctx, &oauth2.Token{
			AccessToken:  cfg.AccessToken,
			RefreshToken: cfg.RefreshToken,
			TokenType:    "Bearer",
		}), nil

	case cfg.AccessToken != "":
		return oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.AccessToken,
			TokenType:   "Bearer",
		}), nil

	case canRefresh:
		return conf.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken}), nil

	case cfg.Email != "" && cfg.Password != "":
		token, err := conf.PasswordCredentialsToken(ctx, cfg.Email, cfg.Password)
		if err != nil {
			return nil, fmt.Errorf("%w: log in as %s: %w", domain.ErrSession, cfg.Email, err)
		}
		return conf.TokenSource(ctx, token), nil

	default:
		return nil, fmt.Errorf("%w: %w", domain.ErrSession, ErrNoCredentials)
	}
}

func oauthConfig(cfg driven.SessionConfig) *oauth2.Config {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: []string{sites.Scope},
	}
}
