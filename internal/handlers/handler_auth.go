package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/shop_bookkeeping/internal/apperrors"
	"github.com/SscSPs/shop_bookkeeping/internal/core/domain"
	portssvc "github.com/SscSPs/shop_bookkeeping/internal/core/ports/services"
	"github.com/SscSPs/shop_bookkeeping/internal/dto"
	"github.com/SscSPs/shop_bookkeeping/internal/middleware"
	"github.com/SscSPs/shop_bookkeeping/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	accessService portssvc.AccessSvcFacade
	tokenService  portssvc.TokenSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(access portssvc.AccessSvcFacade, tokens portssvc.TokenSvcFacade) *AuthHandler {
	return &AuthHandler{accessService: access, tokenService: tokens}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Access, services.TokenService)

	auth := r.Group("/api/v1/auth")
	login := []gin.HandlerFunc{h.Login}
	if l, err := middleware.NewMemoryLimiter(cfg.LoginRateLimit); err != nil {
		slog.Warn("Login rate limit disabled", slog.String("error", err.Error()))
	} else {
		login = append([]gin.HandlerFunc{middleware.RateLimit(l)}, login...)
	}
	auth.POST("/login", login...)

	registerGoogleOAuthRoutes(auth, services)
}

// Login godoc
// @Summary Owner login
// @Description Authenticates the shop owner and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewBadRequestError("Invalid request body")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}
	principal, err := h.accessService.AuthenticateOwner(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Owner login rejected", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid email or password")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}
	h.issueToken(c, *principal)
}

// issueToken signs an access token for the principal and writes the login response.
func (h *AuthHandler) issueToken(c *gin.Context, principal domain.Principal) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), principal)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		appErr := apperrors.NewInternalServerError("Failed to generate token")
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}
	logger.Info("Signed in", slog.String("user_id", principal.ID), slog.String("provider", string(principal.Provider)))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		UserID:    principal.ID,
		Email:     principal.Email,
	})
}
