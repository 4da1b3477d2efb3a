package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pfdash/pfdash_backend/internal/core/domain"
	portssvc "github.com/pfdash/pfdash_backend/internal/core/ports/services"
	"github.com/pfdash/pfdash_backend/internal/dto"
	"github.com/pfdash/pfdash_backend/internal/middleware"
	"github.com/pfdash/pfdash_backend/internal/platform/config"
)

const oauthStateCookieName = "oauth_state"

// googleOAuthHandler handles the Google sign-in flows: the server-side
// redirect/callback pair and the client-side ID token exchange.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	auth               *authHandler
	cfg                *config.Config
}

func newGoogleOAuthHandler(cfg *config.Config, services *portssvc.ServiceContainer) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: services.GoogleOAuthHandler,
		userService:        services.User,
		auth:               newAuthHandler(cfg, services),
		cfg:                cfg,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes. They live
// under the auth group so the refresh cookie path covers the callback.
func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(cfg, services)

	googleRoutes := r.Group(cfg.RefreshTokenCookiePath + "/google")
	{
		googleRoutes.GET("/login", h.loginGoogle)
		googleRoutes.GET("/callback", h.callbackGoogle)
		googleRoutes.POST("/id-token", h.exchangeIDToken)
	}
}

// loginGoogle godoc
// @Summary Begin Google sign-in
// @Description Redirects the browser to Google's consent screen. A CSRF state
// @Description token is stored in a short-lived cookie for the callback.
// @Tags auth
// @Success 307 "Redirect to Google"
// @Router /auth/google/login [get]
func (h *googleOAuthHandler) loginGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to begin Google sign-in"})
		return
	}

	c.SetCookie(oauthStateCookieName, state, 600, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// callbackGoogle godoc
// @Summary Google sign-in callback
// @Description Handles Google's redirect: verifies the CSRF state, exchanges
// @Description the code, resolves the user and sets the refresh cookie, then
// @Description redirects to the frontend which picks the session up via
// @Description /auth/refresh.
// @Tags auth
// @Success 307 "Redirect to frontend"
// @Router /auth/google/callback [get]
func (h *googleOAuthHandler) callbackGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	storedState, err := c.Cookie(oauthStateCookieName)
	c.SetCookie(oauthStateCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	if err != nil || storedState == "" || c.Query("state") != storedState {
		logger.Warn("OAuth state mismatch on Google callback")
		h.redirectFrontend(c, "state_mismatch")
		return
	}

	code := c.Query("code")
	if code == "" {
		logger.Warn("Google callback missing authorization code", slog.String("error_param", c.Query("error")))
		h.redirectFrontend(c, "access_denied")
		return
	}

	token, err := h.googleOAuthService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		h.redirectFrontend(c, "exchange_failed")
		return
	}

	info, err := h.googleOAuthService.GetUserInfo(c.Request.Context(), token)
	if err != nil {
		logger.Error("Failed to fetch Google profile", slog.String("error", err.Error()))
		h.redirectFrontend(c, "profile_failed")
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), *info)
	if err != nil {
		logger.Error("Failed to resolve Google user", slog.String("error", err.Error()))
		h.redirectFrontend(c, "user_failed")
		return
	}

	if _, err := h.auth.issueSession(c, user); err != nil {
		logger.Error("Failed to start session after Google sign-in", slog.String("error", err.Error()))
		h.redirectFrontend(c, "session_failed")
		return
	}

	logger.Info("User signed in via Google", slog.String("user_id", user.UserID))
	h.redirectFrontend(c, "")
}

func (h *googleOAuthHandler) redirectFrontend(c *gin.Context, errCode string) {
	target := strings.TrimSuffix(h.cfg.FrontendBaseURL, "/") + "/auth/callback"
	if errCode != "" {
		target += "?error=" + errCode
	}
	c.Redirect(http.StatusTemporaryRedirect, target)
}

// exchangeIDToken godoc
// @Summary Sign in with a Google ID token
// @Description Validates a client-obtained Google ID token, resolves the user
// @Description and starts a session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleIDTokenRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid Google ID token"
// @Router /auth/google/id-token [post]
func (h *googleOAuthHandler) exchangeIDToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GoogleIDTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || payload.Subject == "" {
		logger.Error("Essential claims missing from Google ID token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google ID token"})
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), domain.GoogleUserInfo{
		ID:            payload.Subject,
		Email:         email,
		VerifiedEmail: verified,
		Name:          name,
	})
	if err != nil {
		logger.Error("Failed to resolve Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process Google sign-in"})
		return
	}

	session, err := h.auth.issueSession(c, user)
	if err != nil {
		logger.Error("Failed to start session after Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	c.JSON(http.StatusOK, session)
}
