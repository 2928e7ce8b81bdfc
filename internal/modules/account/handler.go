package account

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stargazed/core/internal/pkg/pagination"
	"github.com/stargazed/core/internal/pkg/query"
	"github.com/stargazed/core/internal/pkg/response"
)

// Handler handles account management HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the management surface. The entire group runs behind
// the supplied guard chain.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, guards ...gin.HandlerFunc) {
	admins := api.Group("/superadmin/admins", guards...)
	admins.GET("", h.listAdmins)
	admins.POST("", h.createAdmin)
	admins.GET("/:id", h.get)
	admins.PUT("/:id", h.updateAdmin)
	admins.DELETE("/:id", h.delete)

	users := api.Group("/superadmin/users", guards...)
	users.GET("", h.listUsers)
	users.PUT("/:id", h.updateUser)
	users.DELETE("/:id", h.delete)
}

// listAdmins GET /superadmin/admins
func (h *Handler) listAdmins(c *gin.Context) {
	q, p := listParams(c)
	items, pag, stats, err := h.svc.ListAdmins(c.Request.Context(), q, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, items, pag, stats)
}

// listUsers GET /superadmin/users
func (h *Handler) listUsers(c *gin.Context) {
	q, p := listParams(c)
	items, pag, stats, err := h.svc.ListUsers(c.Request.Context(), q, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, items, pag, stats)
}

func listParams(c *gin.Context) (pagination.Query, query.Params) {
	q := pagination.FromContext(c)
	p := query.Params{
		Search:    strings.TrimSpace(c.Query("search")),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	if active := c.Query("isActive"); active != "" {
		p.Filters = append(p.Filters, query.Filter{Field: "isActive", Op: query.OpEq, Value: active == "true"})
	}
	return q, p
}

// get GET /superadmin/admins/:id
func (h *Handler) get(c *gin.Context) {
	user, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// createAdmin POST /superadmin/admins
func (h *Handler) createAdmin(c *gin.Context) {
	var dto CreateAdminDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.CreateAdmin(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// updateAdmin PUT /superadmin/admins/:id
func (h *Handler) updateAdmin(c *gin.Context) {
	var dto UpdateAdminDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.UpdateAdmin(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// updateUser PUT /superadmin/users/:id
func (h *Handler) updateUser(c *gin.Context) {
	var dto UpdateUserDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.UpdateUser(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// delete DELETE /superadmin/admins/:id and /superadmin/users/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "account deleted")
}
