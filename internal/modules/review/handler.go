package review

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

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/properties/:id/reviews", h.GetPropertyReviews)
	r.GET("/moving-services/:id/reviews", h.GetMovingServiceReviews)
}

func (h *Handler) RegisterProtected(r *gin.RouterGroup) {
	r.POST("/reviews", h.Create)
}

// Create handles POST /api/reviews
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ValidationError(c, details)
		return
	}

	rv, err := h.service.Create(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidTarget):
			response.Error(c, http.StatusBadRequest, "Review must target exactly one listing")
		case errors.Is(err, ErrTargetNotFound):
			response.Error(c, http.StatusNotFound, "Review target not found")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Failed to create review")
		}
		return
	}

	c.JSON(http.StatusCreated, rv)
}

// GetPropertyReviews handles GET /api/properties/:id/reviews
func (h *Handler) GetPropertyReviews(c *gin.Context) {
	reviews, err := h.service.GetPropertyReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// GetMovingServiceReviews handles GET /api/moving-services/:id/reviews
func (h *Handler) GetMovingServiceReviews(c *gin.Context) {
	reviews, err := h.service.GetMovingServiceReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	c.JSON(http.StatusOK, reviews)
}
