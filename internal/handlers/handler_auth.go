package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/SscSPs/daily_journal_app/internal/dto"
	"github.com/SscSPs/daily_journal_app/internal/middleware"
	"github.com/SscSPs/daily_journal_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles registration, login and logout.
type authHandler struct {
	journal      portssvc.JournalAppSvcFacade
	cookieName   string
	secureCookie bool
}

func newAuthHandler(journal portssvc.JournalAppSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{
		journal:      journal,
		cookieName:   cfg.SessionCookieName,
		secureCookie: cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the routes for authentication.
// Register and login share the per-IP limiter.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, journal portssvc.JournalAppSvcFacade, authLimiter *limiter.Limiter) {
	h := newAuthHandler(journal, cfg)

	auth := r.Group("/auth")
	auth.GET("/logout", h.logout)

	limited := auth.Group("")
	if authLimiter != nil {
		limited.Use(middleware.RateLimit(authLimiter))
	}
	limited.POST("/register", h.register)
	limited.POST("/login", h.login)
}

// register godoc
// @Summary Register new user
// @Description Creates an account. The caller must log in afterwards.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username or email taken"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Debug("Invalid registration request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please provide a username, a valid email and a password of at least 8 characters."})
		return
	}

	user, err := h.journal.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		User:     dto.ToUserResponse(user),
		Message:  "Your account has been created! You are now able to log in.",
		Redirect: loginPath,
	})
}

// login godoc
// @Summary User login
// @Description Verifies credentials, starts a session and sets the session cookie.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		// Same answer as bad credentials.
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password."})
		return
	}

	current := middleware.GetSessionTokenFromContext(c)
	token, expiresAt, err := h.journal.Login(c.Request.Context(), req, current)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setSessionCookie(c, token, int(time.Until(expiresAt).Seconds()))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Message:   "Login successful!",
		Redirect:  homePath,
	})
}

// logout godoc
// @Summary Log out
// @Description Ends the current session. Succeeds without one.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [get]
func (h *authHandler) logout(c *gin.Context) {
	token := middleware.GetSessionTokenFromContext(c)
	if err := h.journal.Logout(c.Request.Context(), token); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to destroy session on logout", slog.String("error", err.Error()))
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "You have been logged out.", Redirect: homePath})
}

func (h *authHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, value, maxAge, "/", "", h.secureCookie, true)
}
