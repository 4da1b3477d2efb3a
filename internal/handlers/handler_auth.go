package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/pfdash/pfdash_backend/internal/apperrors"
	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
	"github.com/pfdash/pfdash_backend/internal/middleware"
	"github.com/pfdash/pfdash_backend/internal/platform/config"
	"github.com/pfdash/pfdash_backend/internal/utils"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *authHandler {
	return &authHandler{
		userService:  services.User,
		tokenService: services.TokenService,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes. The group
// lives at the refresh cookie path so the browser only sends the cookie here.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(cfg, services)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := r.Group(cfg.RefreshTokenCookiePath)
	{
		auth.POST("/register", limitMiddleware, h.register)
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/guest", limitMiddleware, h.guest)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", h.logout)
		auth.POST("/password-reset", limitMiddleware, h.initiatePasswordReset)
		auth.POST("/password-reset/confirm", limitMiddleware, h.confirmPasswordReset)
	}
}

// issueSession mints an access/refresh token pair for the user, persists the
// refresh token hash and sets the HTTP-only refresh cookie. The cookie value
// carries the user ID alongside the opaque token so refresh can look the
// stored hash up without a round trip through the access token.
func (h *authHandler) issueSession(c *gin.Context, user *domain.User) (*dto.LoginResponse, error) {
	ctx := c.Request.Context()

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}
	if err := h.userService.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		return nil, err
	}

	maxAge := int(time.Until(refreshExpiry).Seconds())
	c.SetCookie(h.cfg.RefreshTokenCookieName, user.UserID+":"+refreshToken, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)

	return &dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        dto.ToUserResponse(user),
	}, nil
}

func (h *authHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

// register godoc
// @Summary Register new user
// @Description Creates a new local user account and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User registration info"
// @Success 201 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	session, err := h.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to start session after registration", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, session)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and starts a session. The refresh token
// @Description is set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password share one message.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	session, err := h.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to start session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, session)
}

// guest godoc
// @Summary Start a guest session
// @Description Creates a throwaway guest user and starts a session for it.
// @Tags auth
// @Produce json
// @Success 201 {object} dto.LoginResponse
// @Router /auth/guest [post]
func (h *authHandler) guest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, err := h.userService.CreateGuestUser(c.Request.Context())
	if err != nil {
		logger.Error("Failed to create guest user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest session"})
		return
	}

	session, err := h.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to start guest session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	logger.Info("Guest session started", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, session)
}

// refresh godoc
// @Summary Refresh the session
// @Description Rotates the refresh token from the HTTP-only cookie and
// @Description returns a fresh access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string "Missing, invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token required"})
		return
	}
	userID, token, ok := strings.Cut(cookie, ":")
	if !ok || userID == "" || token == "" {
		h.clearSessionCookie(c)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		h.clearSessionCookie(c)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	user, err = h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), user.UserID, token)
	if err != nil {
		h.clearSessionCookie(c)
		if errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	// Rotation: every refresh invalidates the previous token.
	session, err := h.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to rotate session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh session"})
		return
	}

	c.JSON(http.StatusOK, session)
}

// logout godoc
// @Summary Log out
// @Description Invalidates the stored refresh token and clears the cookie.
// @Tags auth
// @Success 204 "Logged out"
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName); err == nil {
		if userID, _, ok := strings.Cut(cookie, ":"); ok && userID != "" {
			if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
				logger.Warn("Failed to clear stored refresh token", slog.String("error", err.Error()))
			}
		}
	}

	h.clearSessionCookie(c)
	c.Status(http.StatusNoContent)
}

// initiatePasswordReset godoc
// @Summary Request a password reset token
// @Description Issues a single-use reset token for the email. The response is
// @Description identical whether or not the email exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetRequest true "Account email"
// @Success 202 {object} map[string]string
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /auth/password-reset [post]
func (h *authHandler) initiatePasswordReset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := h.userService.InitiatePasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		logger.Error("Failed to initiate password reset", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate password reset"})
		return
	}

	resp := gin.H{"message": "If the email is registered, a reset token has been issued"}
	// There is no mail delivery yet, so outside production the token is
	// returned directly for the frontend to present.
	if token != "" && !h.cfg.IsProduction {
		resp["token"] = token
	}
	c.JSON(http.StatusAccepted, resp)
}

// confirmPasswordReset godoc
// @Summary Complete a password reset
// @Description Consumes a reset token and sets the new password. All existing
// @Description sessions are invalidated.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetConfirmRequest true "Reset token and new password"
// @Success 204 "Password updated"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid or expired reset token"
// @Router /auth/password-reset/confirm [post]
func (h *authHandler) confirmPasswordReset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.userService.CompletePasswordReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired reset token"})
			return
		}
		logger.Error("Failed to complete password reset", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	c.Status(http.StatusNoContent)
}
