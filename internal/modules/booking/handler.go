package booking

import (
	"errors"
	"net/http"

	"kejaspace/internal/pkg/response"
	"kejaspace/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtected(r *gin.RouterGroup) {
	r.POST("/bookings", h.CreateBooking)
	r.GET("/bookings", h.GetBookings)
	r.POST("/moving-bookings", h.CreateMovingBooking)
	r.GET("/moving-bookings", h.GetMovingBookings)
}

// CreateBooking handles POST /api/bookings
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ValidationError(c, details)
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDates):
			response.Error(c, http.StatusBadRequest, "Check-out must be after check-in")
		case errors.Is(err, ErrPropertyNotFound):
			response.Error(c, http.StatusNotFound, "Property not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

// GetBookings handles GET /api/bookings
func (h *Handler) GetBookings(c *gin.Context) {
	bookings, err := h.service.GetUserBookings(c.Request.Context(), c.GetString("account_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// CreateMovingBooking handles POST /api/moving-bookings
func (h *Handler) CreateMovingBooking(c *gin.Context) {
	var req CreateMovingBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ValidationError(c, details)
		return
	}

	b, err := h.service.CreateMovingBooking(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			response.Error(c, http.StatusNotFound, "Moving service not found")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to create moving booking")
		return
	}

	c.JSON(http.StatusCreated, b)
}

// GetMovingBookings handles GET /api/moving-bookings
func (h *Handler) GetMovingBookings(c *gin.Context) {
	bookings, err := h.service.GetUserMovingBookings(c.Request.Context(), c.GetString("account_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch moving bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}
