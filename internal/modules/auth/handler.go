package auth

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
	r.POST("/auth/signup", h.SignUp)
	r.POST("/auth/signin", h.SignIn)
}

func (h *Handler) RegisterProtected(r *gin.RouterGroup) {
	r.POST("/auth/signout", h.SignOut)
	r.GET("/auth/me", h.Me)
	r.GET("/auth/profile", h.GetProfile)
	r.PATCH("/auth/profile", h.UpdateProfile)
}

// SignUp handles POST /api/auth/signup
func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ValidationError(c, details)
		return
	}

	result, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "Email already registered")
		case errors.Is(err, ErrInvalidUserType):
			response.Error(c, http.StatusBadRequest, "Invalid user type")
		case errors.Is(err, ErrAuthDisabled):
			response.Error(c, http.StatusServiceUnavailable, "Authentication is not configured")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Failed to sign up")
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

// SignIn handles POST /api/auth/signin
func (h *Handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ValidationError(c, details)
		return
	}

	result, err := h.service.SignIn(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid email or password")
		case errors.Is(err, ErrAuthDisabled):
			response.Error(c, http.StatusServiceUnavailable, "Authentication is not configured")
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Failed to sign in")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// SignOut handles POST /api/auth/signout. Access tokens are
// stateless, so there is nothing to revoke server-side; clients drop
// the token.
func (h *Handler) SignOut(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Me handles GET /api/auth/me
func (h *Handler) Me(c *gin.Context) {
	account, err := h.service.GetCurrentAccount(c.Request.Context(), c.GetString("account_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch account")
		return
	}
	if account == nil {
		response.Error(c, http.StatusNotFound, "Account not found")
		return
	}

	c.JSON(http.StatusOK, account)
}

// GetProfile handles GET /api/auth/profile
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.GetString("account_id"))
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if profile == nil {
		response.Error(c, http.StatusNotFound, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PATCH /api/auth/profile
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), c.GetString("account_id"), req)
	if err != nil {
		if errors.Is(err, ErrInvalidUserType) {
			response.Error(c, http.StatusBadRequest, "Invalid user type")
			return
		}
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if profile == nil {
		response.Error(c, http.StatusNotFound, "Profile not found")
		return
	}

	c.JSON(http.StatusOK, profile)
}
