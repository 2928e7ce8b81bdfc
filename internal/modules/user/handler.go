package user

import (
	"github.com/gin-gonic/gin"

	"github.com/stargazed/core/internal/middleware"
	"github.com/stargazed/core/internal/pkg/response"
)

// Handler handles self-service profile HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the profile routes behind the auth middleware.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg := api.Group("/user", authMW)
	rg.GET("/profile", h.profile)
	rg.PUT("/profile", h.updateProfile)
}

// profile GET /user/profile
func (h *Handler) profile(c *gin.Context) {
	user, err := h.svc.Profile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// updateProfile PUT /user/profile
func (h *Handler) updateProfile(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.UpdateProfile(c.Request.Context(), middleware.CurrentUserID(c), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}
