package handler

import (
	"net/http"

	"github.com/bagabo/hotel-booking/internal/application"
	"github.com/bagabo/hotel-booking/internal/auth"
	userDomain "github.com/bagabo/hotel-booking/internal/domain/user"
	"github.com/bagabo/hotel-booking/internal/middleware"
	"github.com/bagabo/hotel-booking/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BillingHandler handles HTTP requests for billing reads.
type BillingHandler struct {
	service *application.BillingService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(service *application.BillingService) *BillingHandler {
	return &BillingHandler{service: service}
}

// RegisterRoutes registers all billing routes on the given router group.
func (h *BillingHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)

	adminMW := middleware.RequireRole(string(userDomain.RoleAdmin))

	billings := r.Group("/api/v1/billings")
	billings.Use(authMW)
	{
		billings.GET("", adminMW, h.ListAllBillings)
		billings.GET("/my", h.ListMyBillings)
		billings.GET("/:id", h.GetBilling)
		billings.GET("/booking/:bookingId", h.GetBillingByBooking)
	}
}

// ListMyBillings handles GET /api/v1/billings/my.
func (h *BillingHandler) ListMyBillings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	result, err := h.service.GetUserBillings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBilling handles GET /api/v1/billings/:id. Customers can only read
// their own billing records.
func (h *BillingHandler) GetBilling(c *gin.Context) {
	billingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid billing ID")
		return
	}

	result, err := h.service.GetBilling(c.Request.Context(), billingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !h.canAccess(c, result.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	response.Success(c, result)
}

// GetBillingByBooking handles GET /api/v1/billings/booking/:bookingId.
func (h *BillingHandler) GetBillingByBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.GetBillingByBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !h.canAccess(c, result.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	response.Success(c, result)
}

// ListAllBillings handles GET /api/v1/billings.
func (h *BillingHandler) ListAllBillings(c *gin.Context) {
	result, err := h.service.ListAllBillings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

func (h *BillingHandler) canAccess(c *gin.Context, ownerID uuid.UUID) bool {
	role, _ := middleware.GetUserRole(c)
	if role == string(userDomain.RoleAdmin) {
		return true
	}
	userID, ok := middleware.GetUserID(c)
	return ok && userID == ownerID
}
