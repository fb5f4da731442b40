package handler

import (
	"github.com/bagabo/hotel-booking/internal/application"
	"github.com/bagabo/hotel-booking/internal/auth"
	userDomain "github.com/bagabo/hotel-booking/internal/domain/user"
	"github.com/bagabo/hotel-booking/internal/middleware"
	"github.com/bagabo/hotel-booking/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HotelHandler handles HTTP requests for hotel catalog operations.
type HotelHandler struct {
	service *application.HotelService
}

// NewHotelHandler creates a new HotelHandler.
func NewHotelHandler(service *application.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

// RegisterRoutes registers all hotel routes on the given router group. Reads
// are public; mutations require the admin role.
func (h *HotelHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)
	adminMW := middleware.RequireRole(string(userDomain.RoleAdmin))

	hotels := r.Group("/api/v1/hotels")
	{
		hotels.GET("", h.ListHotels)
		hotels.GET("/:id", h.GetHotel)
		hotels.POST("", authMW, adminMW, h.CreateHotel)
		hotels.PUT("/:id", authMW, adminMW, h.UpdateHotel)
		hotels.DELETE("/:id", authMW, adminMW, h.DeleteHotel)
	}
}

// CreateHotel handles POST /api/v1/hotels.
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var req application.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateHotel(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListHotels handles GET /api/v1/hotels.
func (h *HotelHandler) ListHotels(c *gin.Context) {
	result, err := h.service.ListHotels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetHotel handles GET /api/v1/hotels/:id.
func (h *HotelHandler) GetHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}

	result, err := h.service.GetHotel(c.Request.Context(), hotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateHotel handles PUT /api/v1/hotels/:id.
func (h *HotelHandler) UpdateHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}

	var req application.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateHotel(c.Request.Context(), hotelID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteHotel handles DELETE /api/v1/hotels/:id.
func (h *HotelHandler) DeleteHotel(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}

	if err := h.service.DeleteHotel(c.Request.Context(), hotelID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
