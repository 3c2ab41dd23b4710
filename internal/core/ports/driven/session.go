package driven

import "context"

// SessionConfig carries everything needed to open a session against a site.
type SessionConfig struct {
	// Domain is the site's domain ("site" for consumer sites).
	Domain string

	// Site is the site name.
	Site string

	// Email and Password are the optional login pair.
	Email    string
	Password string

	// AccessToken is a pre-issued bearer token.
	AccessToken string

	// RefreshToken, ClientID, ClientSecret and TokenURL allow token refresh.
	RefreshToken string
	ClientID     string
	ClientSecret string
	TokenURL     string

	// RequestsPerSecond and Burst pace requests against the remote API.
	RequestsPerSecond float64
	Burst             int

	// Debug enables request tracing.
	Debug bool
}

// SessionFactory establishes an authenticated SiteStore.
type SessionFactory interface {
	// Open authenticates and validates a session.
	// Errors wrap domain.ErrSession.
	Open(ctx context.Context, cfg SessionConfig) (SiteStore, error)
}
