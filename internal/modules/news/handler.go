package news

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stargazed/core/internal/pkg/pagination"
	"github.com/stargazed/core/internal/pkg/query"
	pkgredis "github.com/stargazed/core/internal/pkg/redis"
	"github.com/stargazed/core/internal/pkg/response"
)

// Handler handles news HTTP requests.
type Handler struct {
	svc *Service
	rc  *pkgredis.Client
}

func NewHandler(svc *Service, rc *pkgredis.Client) *Handler {
	return &Handler{svc: svc, rc: rc}
}

// RegisterRoutes mounts public and superadmin management routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	pub := api.Group("/news")
	pub.GET("/:slug", h.getPublished)
	pub.POST("/:id/like", h.like)
	pub.POST("/:id/share", h.share)

	h.registerManagement(api.Group("/superadmin/news"), writeGuards...)
}

// RegisterAdminRoutes additionally mounts the management surface for the
// admin tier under its own prefix.
func (h *Handler) RegisterAdminRoutes(api *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	h.registerManagement(api.Group("/admin/news"), writeGuards...)
}

func (h *Handler) registerManagement(rg *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)

	w := rg.Group("", writeGuards...)
	w.POST("", h.create)
	w.PUT("/:id", h.update)
	w.DELETE("/:id", h.delete)
}

// list GET /superadmin/news and /admin/news
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
	if celeb := c.Query("celebrity"); celeb != "" {
		id, err := primitive.ObjectIDFromHex(celeb)
		if err != nil {
			response.BadRequest(c, "invalid celebrity id")
			return
		}
		p.Filters = append(p.Filters, query.Filter{Field: "celebrityId", Op: query.OpEq, Value: id})
	}

	items, pag, stats, err := h.svc.List(c.Request.Context(), q, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, items, pag, stats)
}

// get GET /superadmin/news/:id (id or slug)
func (h *Handler) get(c *gin.Context) {
	art, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, art)
}

// getPublished GET /news/:slug
func (h *Handler) getPublished(c *gin.Context) {
	art, err := h.svc.GetPublished(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.seenToday(c, fmt.Sprintf("news:view:%s:%s", art.ID.Hex(), c.ClientIP())) {
		go func() { _ = h.svc.IncrementViews(art.ID) }()
	}
	response.OK(c, art)
}

// like POST /news/:id/like
func (h *Handler) like(c *gin.Context) {
	h.countOnce(c, "likes", "like")
}

// share POST /news/:id/share
func (h *Handler) share(c *gin.Context) {
	h.countOnce(c, "shares", "share")
}

func (h *Handler) countOnce(c *gin.Context, counter, verb string) {
	id := c.Param("id")
	if !h.seenToday(c, fmt.Sprintf("news:%s:%s:%s", verb, id, c.ClientIP())) {
		response.Message(c, "already counted")
		return
	}
	if err := h.svc.IncrementCounter(c.Request.Context(), id, counter); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, verb+" counted")
}

// create POST /superadmin/news and /admin/news
func (h *Handler) create(c *gin.Context) {
	var dto CreateNewsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	art, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, art)
}

// update PUT /superadmin/news/:id and /admin/news/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateNewsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	art, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, art)
}

// delete DELETE /superadmin/news/:id and /admin/news/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "news deleted")
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
