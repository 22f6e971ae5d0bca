package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"kejaspace/internal/pkg/response"
	"kejaspace/internal/pkg/validator"
	"kejaspace/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public catalog surface; RegisterProtected
// mounts property management.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/properties", h.GetProperties)
	r.GET("/properties/search", h.SearchProperties)
	r.GET("/properties/:id", h.GetProperty)

	r.GET("/marketplace-items", h.GetMarketplaceItems)
	r.GET("/marketplace-items/:id", h.GetMarketplaceItem)

	r.GET("/moving-services", h.GetMovingServices)
	r.GET("/moving-services/:id", h.GetMovingService)
}

func (h *Handler) RegisterProtected(r *gin.RouterGroup) {
	r.POST("/properties", h.CreateProperty)
	r.PATCH("/properties/:id", h.UpdateProperty)
	r.DELETE("/properties/:id", h.DeleteProperty)
	r.GET("/my/properties", h.GetMyProperties)
}

/* ---------- PROPERTIES ---------- */

// GetProperties handles GET /api/properties?type=...&featured=...
func (h *Handler) GetProperties(c *gin.Context) {
	var f repository.PropertyFilters

	if t := c.Query("type"); t != "" {
		f.Type = t
	}
	if v := c.Query("featured"); v != "" {
		if featured, err := strconv.ParseBool(v); err == nil {
			f.Featured = &featured
		}
	}

	props, err := h.service.GetProperties(c.Request.Context(), f)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch properties")
		return
	}

	c.JSON(http.StatusOK, props)
}

// SearchProperties handles GET /api/properties/search with compound
// filters: q, type, min_price, max_price, location, bedrooms.
func (h *Handler) SearchProperties(c *gin.Context) {
	var f repository.PropertySearch

	f.Type = c.Query("type")
	f.Location = c.Query("location")
	if v := c.Query("min_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = n
		}
	}
	if v := c.Query("max_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = n
		}
	}
	if v := c.Query("bedrooms"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinBedrooms = n
		}
	}

	props, err := h.service.SearchProperties(c.Request.Context(), c.Query("q"), f)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to search properties")
		return
	}

	c.JSON(http.StatusOK, props)
}

// GetProperty handles GET /api/properties/:id
func (h *Handler) GetProperty(c *gin.Context) {
	prop, err := h.service.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch property")
		return
	}
	if prop == nil {
		response.Error(c, http.StatusNotFound, "Property not found")
		return
	}

	c.JSON(http.StatusOK, prop)
}

// CreateProperty handles POST /api/properties (protected)
func (h *Handler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ValidationError(c, details)
		return
	}

	prop, err := h.service.CreateProperty(c.Request.Context(), req)
	if err != nil {
		if isBadRequest(err) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to create property")
		return
	}

	c.JSON(http.StatusCreated, prop)
}

// UpdateProperty handles PATCH /api/properties/:id (protected)
func (h *Handler) UpdateProperty(c *gin.Context) {
	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	prop, err := h.service.UpdateProperty(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if isBadRequest(err) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to update property")
		return
	}
	if prop == nil {
		response.Error(c, http.StatusNotFound, "Property not found")
		return
	}

	c.JSON(http.StatusOK, prop)
}

// DeleteProperty handles DELETE /api/properties/:id (protected)
func (h *Handler) DeleteProperty(c *gin.Context) {
	if err := h.service.DeleteProperty(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to delete property")
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMyProperties handles GET /api/my/properties (protected). The
// landlord reference is the account id, matching how property rows
// record their managing landlord.
func (h *Handler) GetMyProperties(c *gin.Context) {
	accountID := c.GetString("account_id")

	props, err := h.service.GetPropertiesByLandlord(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch properties")
		return
	}

	c.JSON(http.StatusOK, props)
}

/* ---------- MARKETPLACE ITEMS ---------- */

// GetMarketplaceItems handles GET /api/marketplace-items
func (h *Handler) GetMarketplaceItems(c *gin.Context) {
	items, err := h.service.GetMarketplaceItems(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch marketplace items")
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetMarketplaceItem handles GET /api/marketplace-items/:id
func (h *Handler) GetMarketplaceItem(c *gin.Context) {
	item, err := h.service.GetMarketplaceItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch marketplace item")
		return
	}
	if item == nil {
		response.Error(c, http.StatusNotFound, "Marketplace item not found")
		return
	}

	c.JSON(http.StatusOK, item)
}

/* ---------- MOVING SERVICES ---------- */

// GetMovingServices handles GET /api/moving-services
func (h *Handler) GetMovingServices(c *gin.Context) {
	services, err := h.service.GetMovingServices(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch moving services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetMovingService handles GET /api/moving-services/:id
func (h *Handler) GetMovingService(c *gin.Context) {
	service, err := h.service.GetMovingService(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch moving service")
		return
	}
	if service == nil {
		response.Error(c, http.StatusNotFound, "Moving service not found")
		return
	}

	c.JSON(http.StatusOK, service)
}

func isBadRequest(err error) bool {
	return errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrInvalidPriceType) ||
		errors.Is(err, ErrInvalidManagedBy)
}
