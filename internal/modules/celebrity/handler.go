package celebrity

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stargazed/core/internal/pkg/pagination"
	"github.com/stargazed/core/internal/pkg/query"
	pkgredis "github.com/stargazed/core/internal/pkg/redis"
	"github.com/stargazed/core/internal/pkg/response"
)

// Handler handles celebrity HTTP requests.
type Handler struct {
	svc *Service
	rc  *pkgredis.Client
}

func NewHandler(svc *Service, rc *pkgredis.Client) *Handler {
	return &Handler{svc: svc, rc: rc}
}

// RegisterRoutes mounts public and management routes. Writes run behind the
// supplied guard chain.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	pub := api.Group("/celebrities")
	pub.GET("/:slug", h.getPublished)
	pub.POST("/:id/share", h.share)

	admin := api.Group("/superadmin/celebrities")
	admin.GET("", h.list)
	admin.GET("/:id", h.get)

	w := admin.Group("", writeGuards...)
	w.POST("", h.create)
	w.PUT("/:id", h.update)
	w.DELETE("/:id", h.delete)
}

// list GET /superadmin/celebrities
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
	if nationality := c.Query("nationality"); nationality != "" {
		p.Filters = append(p.Filters, query.Filter{Field: "nationality", Op: query.OpEq, Value: nationality})
	}
	if profession := c.Query("profession"); profession != "" {
		p.Filters = append(p.Filters, query.Filter{Field: "professions", Op: query.OpHas, Value: profession})
	}

	items, pag, stats, err := h.svc.List(c.Request.Context(), q, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, items, pag, stats)
}

// get GET /superadmin/celebrities/:id (id or slug)
func (h *Handler) get(c *gin.Context) {
	cel, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cel)
}

// getPublished GET /celebrities/:slug
func (h *Handler) getPublished(c *gin.Context) {
	cel, err := h.svc.GetPublished(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.seenToday(c, fmt.Sprintf("celebrity:view:%s:%s", cel.ID.Hex(), c.ClientIP())) {
		go func() { _ = h.svc.IncrementViews(cel.ID) }()
	}
	response.OK(c, cel)
}

// share POST /celebrities/:id/share
func (h *Handler) share(c *gin.Context) {
	id := c.Param("id")
	if !h.seenToday(c, fmt.Sprintf("celebrity:share:%s:%s", id, c.ClientIP())) {
		response.Message(c, "already counted")
		return
	}
	if err := h.svc.IncrementShares(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "share counted")
}

// create POST /superadmin/celebrities
func (h *Handler) create(c *gin.Context) {
	var dto CreateCelebrityDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cel, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, cel)
}

// update PUT /superadmin/celebrities/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateCelebrityDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cel, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cel)
}

// delete DELETE /superadmin/celebrities/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "celebrity deleted")
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
