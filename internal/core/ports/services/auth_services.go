package services

import (
	"context"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues access tokens for authenticated principals.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, principal domain.Principal) (string, time.Time, error)
}

// AccessSvcFacade decides who may sign in.
type AccessSvcFacade interface {
	// AuthenticateOwner checks the owner email and password. A mismatch of
	// either returns apperrors.ErrUnauthorized.
	AuthenticateOwner(ctx context.Context, email, password string) (*domain.Principal, error)

	// AuthorizeGoogleUser admits a verified Google account whose email is on
	// the allow list, otherwise apperrors.ErrForbidden.
	AuthorizeGoogleUser(ctx context.Context, email, name string, emailVerified bool) (*domain.Principal, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
