package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	"github.com/SscSPs/shop_bookkeeping/internal/core/services"
	"github.com/SscSPs/shop_bookkeeping/internal/platform/config"
	"github.com/SscSPs/shop_bookkeeping/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)
	return &config.Config{
		JWTSecret:         "secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		OwnerEmail:        "Owner@Shop.example",
		OwnerPasswordHash: hash,
		AllowedEmails:     []string{"clerk@shop.example"},
	}
}

func TestAccessService_AuthenticateOwner(t *testing.T) {
	svc := services.NewAccessService(newAuthConfig(t))
	ctx := context.Background()

	p, err := svc.AuthenticateOwner(ctx, "owner@shop.example", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, domain.PrincipalID("owner@shop.example"), p.ID)
	assert.Equal(t, domain.ProviderPassword, p.Provider)

	_, err = svc.AuthenticateOwner(ctx, "owner@shop.example", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.AuthenticateOwner(ctx, "clerk@shop.example", "correct horse")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	disabled := services.NewAccessService(&config.Config{})
	_, err = disabled.AuthenticateOwner(ctx, "", "")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAccessService_AuthorizeGoogleUser(t *testing.T) {
	svc := services.NewAccessService(newAuthConfig(t))
	ctx := context.Background()

	p, err := svc.AuthorizeGoogleUser(ctx, "Clerk@shop.example", "Clerk", true)
	require.NoError(t, err)
	assert.Equal(t, "clerk@shop.example", p.Email)
	assert.Equal(t, domain.ProviderGoogle, p.Provider)

	// the owner is always allowed
	_, err = svc.AuthorizeGoogleUser(ctx, "owner@shop.example", "", true)
	assert.NoError(t, err)

	_, err = svc.AuthorizeGoogleUser(ctx, "clerk@shop.example", "Clerk", false)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.AuthorizeGoogleUser(ctx, "stranger@example.com", "", true)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestTokenService_GenerateAccessToken(t *testing.T) {
	cfg := newAuthConfig(t)
	principal := domain.NewPrincipal("owner@shop.example", "", domain.ProviderPassword)

	token, expiresAt, err := services.NewTokenService(cfg).GenerateAccessToken(context.Background(), principal)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, claims.Subject)
	assert.Equal(t, "test", claims.Issuer)
}
