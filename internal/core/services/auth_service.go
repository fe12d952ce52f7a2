package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/platform/config"
	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService issues signed JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given principal.
func (s *tokenService) GenerateAccessToken(ctx context.Context, principal domain.Principal) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(principal.ID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", principal.ID))
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// accessService decides who may sign in. The owner signs in with a password;
// everyone else needs a verified Google account on the allow list.
type accessService struct {
	BaseService
	ownerEmail        string
	ownerPasswordHash string
	allowed           []string
}

func NewAccessService(cfg *config.Config) portssvc.AccessSvcFacade {
	allowed := make([]string, 0, len(cfg.AllowedEmails)+1)
	for _, e := range cfg.AllowedEmails {
		allowed = append(allowed, normalizeEmail(e))
	}
	owner := normalizeEmail(cfg.OwnerEmail)
	if owner != "" {
		allowed = append(allowed, owner)
	}
	return &accessService{
		ownerEmail:        owner,
		ownerPasswordHash: cfg.OwnerPasswordHash,
		allowed:           allowed,
	}
}

var _ portssvc.AccessSvcFacade = (*accessService)(nil)

func (s *accessService) AuthenticateOwner(ctx context.Context, email, password string) (*domain.Principal, error) {
	if s.ownerEmail == "" || s.ownerPasswordHash == "" {
		s.LogInfo(ctx, "Password login attempted but no owner is configured")
		return nil, fmt.Errorf("%w: password login is disabled", apperrors.ErrUnauthorized)
	}
	// the hash is compared even when the email is wrong
	passwordOK := utils.CheckPasswordHash(password, s.ownerPasswordHash)
	if normalizeEmail(email) != s.ownerEmail || !passwordOK {
		s.LogInfo(ctx, "Rejected password login", slog.String("email", email))
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}
	p := domain.NewPrincipal(s.ownerEmail, "", domain.ProviderPassword)
	return &p, nil
}

func (s *accessService) AuthorizeGoogleUser(ctx context.Context, email, name string, emailVerified bool) (*domain.Principal, error) {
	if !emailVerified {
		return nil, fmt.Errorf("%w: google email %s is not verified", apperrors.ErrForbidden, email)
	}
	if !slices.Contains(s.allowed, normalizeEmail(email)) {
		s.LogInfo(ctx, "Google account not on allow list", slog.String("email", email))
		return nil, fmt.Errorf("%w: %s may not use these books", apperrors.ErrForbidden, email)
	}
	p := domain.NewPrincipal(email, name, domain.ProviderGoogle)
	return &p, nil
}

func normalizeEmail(e string) string { return strings.ToLower(strings.TrimSpace(e)) }

// --- GoogleOAuthHandlerSvcFacade Implementation ---

// googleOAuthHandlerService implements the GoogleOAuthHandlerSvcFacade.
type googleOAuthHandlerService struct {
	cfg *config.Config
	// oauth2Config is configured at initialization time
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthHandlerService creates a new instance of googleOAuthHandlerService.
func NewGoogleOAuthHandlerService(cfg *config.Config) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *googleOAuthHandlerService) GenerateStateString(ctx context.Context) (string, error) {
	state, err := utils.NewOAuthState(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate state string for OAuth: %w", err)
	}
	return state, nil
}

func (s *googleOAuthHandlerService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

func (s *googleOAuthHandlerService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google sign-in is not configured")
	}
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to exchange oauth code for token: %w", apperrors.ErrUnauthorized, err)
	}
	return token, nil
}

// ValidateGoogleIDToken validates an ID token received from Google and returns the payload if valid.
func (s *googleOAuthHandlerService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}
	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: google ID token validation failed: %w", apperrors.ErrUnauthorized, err)
	}
	return payload, nil
}
