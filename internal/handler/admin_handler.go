package handler

import (
	"github.com/bagabo/hotel-booking/internal/application"
	"github.com/bagabo/hotel-booking/internal/auth"
	userDomain "github.com/bagabo/hotel-booking/internal/domain/user"
	"github.com/bagabo/hotel-booking/internal/middleware"
	"github.com/bagabo/hotel-booking/internal/response"
	"github.com/gin-gonic/gin"
)

// DashboardStats aggregates entity counts for the admin dashboard.
type DashboardStats struct {
	TotalUsers    int64            `json:"total_users"`
	TotalHotels   int64            `json:"total_hotels"`
	TotalRooms    int64            `json:"total_rooms"`
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"bookings_by_status"`
}

// AdminHandler serves the admin dashboard.
type AdminHandler struct {
	users    *application.UserService
	hotels   *application.HotelService
	rooms    *application.RoomService
	bookings *application.BookingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(
	users *application.UserService,
	hotels *application.HotelService,
	rooms *application.RoomService,
	bookings *application.BookingService,
) *AdminHandler {
	return &AdminHandler{users: users, hotels: hotels, rooms: rooms, bookings: bookings}
}

// RegisterRoutes registers admin dashboard routes.
func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup, jwtManager *auth.JWTManager) {
	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole(string(userDomain.RoleAdmin)))
	{
		admin.GET("/dashboard/stats", h.Dashboard)
	}
}

// Dashboard handles GET /api/v1/admin/dashboard/stats.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	totalUsers, err := h.users.GetTotalUsers(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	totalHotels, err := h.hotels.GetTotalHotels(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	totalRooms, err := h.rooms.GetTotalRooms(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	bookingStats, err := h.bookings.GetBookingStats(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, DashboardStats{
		TotalUsers:    totalUsers,
		TotalHotels:   totalHotels,
		TotalRooms:    totalRooms,
		TotalBookings: bookingStats.TotalBookings,
		ByStatus:      bookingStats.ByStatus,
	})
}
