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

// RoomHandler handles HTTP requests for room catalog operations.
type RoomHandler struct {
	service *application.RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(service *application.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// RegisterRoutes registers all room routes on the given router group. Reads
// are public; mutations require the admin role.
func (h *RoomHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	authMW := middleware.AuthMiddleware(jwtManager)
	adminMW := middleware.RequireRole(string(userDomain.RoleAdmin))

	rooms := r.Group("/api/v1/rooms")
	{
		rooms.GET("/:id", h.GetRoom)
		rooms.GET("/hotel/:hotelId", h.ListHotelRooms)
		rooms.GET("/hotel/:hotelId/available", h.ListAvailableRooms)
		rooms.POST("", authMW, adminMW, h.CreateRoom)
		rooms.PUT("/:id", authMW, adminMW, h.UpdateRoom)
		rooms.DELETE("/:id", authMW, adminMW, h.DeleteRoom)
	}
}

// CreateRoom handles POST /api/v1/rooms.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req application.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetRoom handles GET /api/v1/rooms/:id.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	result, err := h.service.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListHotelRooms handles GET /api/v1/rooms/hotel/:hotelId.
func (h *RoomHandler) ListHotelRooms(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("hotelId"))
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}

	result, err := h.service.GetRoomsByHotel(c.Request.Context(), hotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListAvailableRooms handles GET /api/v1/rooms/hotel/:hotelId/available.
func (h *RoomHandler) ListAvailableRooms(c *gin.Context) {
	hotelID, err := uuid.Parse(c.Param("hotelId"))
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}

	result, err := h.service.GetAvailableRoomsByHotel(c.Request.Context(), hotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateRoom handles PUT /api/v1/rooms/:id.
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	var req application.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateRoom(c.Request.Context(), roomID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteRoom handles DELETE /api/v1/rooms/:id.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), roomID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
