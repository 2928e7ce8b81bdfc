package movie

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stargazed/core/internal/pkg/pagination"
	"github.com/stargazed/core/internal/pkg/query"
	"github.com/stargazed/core/internal/pkg/response"
)

// Handler handles movie HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts public and management routes. Writes run behind the
// supplied guard chain.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	pub := api.Group("/movies")
	pub.GET("/:slug", h.getBySlug)

	admin := api.Group("/superadmin/movies")
	admin.GET("", h.list)
	admin.GET("/:id", h.get)

	w := admin.Group("", writeGuards...)
	w.POST("", h.create)
	w.PUT("/:id", h.update)
	w.DELETE("/:id", h.delete)
}

// list GET /superadmin/movies
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	p := query.Params{
		Search:    strings.TrimSpace(c.Query("search")),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	if status := c.Query("status"); status != "" {
		p.Filters = append(p.Filters, query.Filter{Field: "status", Op: query.OpEq, Value: status})
	}
	if genre := c.Query("genre"); genre != "" {
		p.Filters = append(p.Filters, query.Filter{Field: "genre", Op: query.OpHas, Value: genre})
	}

	items, pag, stats, err := h.svc.List(c.Request.Context(), q, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, items, pag, stats)
}

// get GET /superadmin/movies/:id (id or slug)
func (h *Handler) get(c *gin.Context) {
	mov, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, mov)
}

// getBySlug GET /movies/:slug
func (h *Handler) getBySlug(c *gin.Context) {
	mov, err := h.svc.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, mov)
}

// create POST /superadmin/movies
func (h *Handler) create(c *gin.Context) {
	var dto CreateMovieDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	mov, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, mov)
}

// update PUT /superadmin/movies/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateMovieDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	mov, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, mov)
}

// delete DELETE /superadmin/movies/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "movie deleted")
}
