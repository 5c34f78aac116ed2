package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/SscSPs/warehouse_management_app/internal/middleware"
	"github.com/SscSPs/warehouse_management_app/internal/platform/config"
	"github.com/SscSPs/warehouse_management_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const defaultLoginRate = "5-M"

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	username     string
	passwordHash string
	jwtSecret    string
	jwtIssuer    string
	jwtDuration  time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		username:     cfg.AdminUsername,
		passwordHash: cfg.AdminPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		jwtIssuer:    cfg.JWTIssuer,
		jwtDuration:  cfg.JWTExpiryDuration,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, using default", slog.String("value", cfg.LoginRateLimit), slog.String("default", defaultLoginRate))
		rate, _ = limiter.NewRateFromFormatted(defaultLoginRate)
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.Login)
	}
}

// Login godoc
// @Summary Operator login
// @Description Checks the operator credentials and returns a JWT bearer token.
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
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	userMatches := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	if h.passwordHash == "" || !userMatches || !utils.CheckPasswordHash(req.Password, h.passwordHash) {
		logger.Warn("Failed login attempt", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
		return
	}

	token, err := utils.GenerateJWT(h.username, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Operator logged in", slog.String("username", h.username))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresIn: int64(h.jwtDuration.Seconds())})
}
