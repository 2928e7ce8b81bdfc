package blog

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stargazed/core/internal/pkg/pagination"
	"github.com/stargazed/core/internal/pkg/query"
	pkgredis "github.com/stargazed/core/internal/pkg/redis"
	"github.com/stargazed/core/internal/pkg/response"
)

// Handler handles blog HTTP requests.
type Handler struct {
	svc *Service
	rc  *pkgredis.Client
}

func NewHandler(svc *Service, rc *pkgredis.Client) *Handler {
	return &Handler{svc: svc, rc: rc}
}

// RegisterRoutes mounts public and superadmin management routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	pub := api.Group("/blogs")
	pub.GET("/:slug", h.getPublished)

	h.registerManagement(api.Group("/superadmin/blogs"), writeGuards...)
}

// RegisterAdminRoutes additionally mounts the management surface for the
// admin tier under its own prefix.
func (h *Handler) RegisterAdminRoutes(api *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	h.registerManagement(api.Group("/admin/blogs"), writeGuards...)
}

func (h *Handler) registerManagement(rg *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)

	w := rg.Group("", writeGuards...)
	w.POST("", h.create)
	w.PUT("/:id", h.update)
	w.DELETE("/:id", h.delete)
}

// list GET /superadmin/blogs and /admin/blogs
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
	if category := c.Query("category"); category != "" {
		p.Filters = append(p.Filters, query.Filter{Field: "category", Op: query.OpEq, Value: category})
	}
	if tag := c.Query("tag"); tag != "" {
		p.Filters = append(p.Filters, query.Filter{Field: "tags", Op: query.OpHas, Value: tag})
	}

	items, pag, stats, err := h.svc.List(c.Request.Context(), q, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, items, pag, stats)
}

// get GET /superadmin/blogs/:id (id or slug)
func (h *Handler) get(c *gin.Context) {
	post, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, post)
}

// getPublished GET /blogs/:slug
func (h *Handler) getPublished(c *gin.Context) {
	post, err := h.svc.GetPublished(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.seenToday(c, fmt.Sprintf("blog:view:%s:%s", post.ID.Hex(), c.ClientIP())) {
		go func() { _ = h.svc.IncrementViews(post.ID) }()
	}
	response.OK(c, post)
}

// create POST /superadmin/blogs and /admin/blogs
func (h *Handler) create(c *gin.Context) {
	var dto CreateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

// update PUT /superadmin/blogs/:id and /admin/blogs/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateBlogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	post, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, post)
}

// delete DELETE /superadmin/blogs/:id and /admin/blogs/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "blog deleted")
}

// seenToday reports whether this is the first time the key was seen today.
// Redis trouble counts the request, so counters over-count rather than stall.
func (h *Handler) seenToday(c *gin.Context, key string) bool {
	if h.rc == nil {
		return true
	}
	first, err := h.rc.OncePerDay(c.Request.Context(), key)
	if err != nil {
		return true
	}
	return first
}
