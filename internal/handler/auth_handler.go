package handler

import (
	"net/http"

	"github.com/bagabo/hotel-booking/internal/application"
	"github.com/bagabo/hotel-booking/internal/auth"
	"github.com/bagabo/hotel-booking/internal/middleware"
	"github.com/bagabo/hotel-booking/internal/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and profile requests.
type AuthHandler struct {
	service *application.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service *application.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes registers all auth routes on the given router group.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/register", h.Register)
		authRoutes.POST("/login", h.Login)
		authRoutes.GET("/profile", middleware.AuthMiddleware(jwtManager), h.Profile)
	}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req application.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req application.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Authenticate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Profile handles GET /api/v1/auth/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	result, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
