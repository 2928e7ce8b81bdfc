package outfit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stargazed/core/internal/pkg/pagination"
	"github.com/stargazed/core/internal/pkg/query"
	pkgredis "github.com/stargazed/core/internal/pkg/redis"
	"github.com/stargazed/core/internal/pkg/response"
)

// Handler handles outfit HTTP requests.
type Handler struct {
	svc *Service
	rc  *pkgredis.Client
}

func NewHandler(svc *Service, rc *pkgredis.Client) *Handler {
	return &Handler{svc: svc, rc: rc}
}

// RegisterRoutes mounts public and management routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, writeGuards ...gin.HandlerFunc) {
	pub := api.Group("/outfits")
	pub.GET("/:slug", h.getPublished)

	admin := api.Group("/superadmin/outfits")
	admin.GET("", h.list)
	admin.GET("/:id", h.get)

	w := admin.Group("", writeGuards...)
	w.POST("", h.create)
	w.PUT("/:id", h.update)
	w.DELETE("/:id", h.delete)
}

// list GET /superadmin/outfits
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
		// The reference filter takes the hex id the dashboard already holds.
		oid, err := primitive.ObjectIDFromHex(celeb)
		if err != nil {
			response.BadRequest(c, "invalid celebrity id")
			return
		}
		p.Filters = append(p.Filters, query.Filter{Field: "celebrityId", Op: query.OpEq, Value: oid})
	}
	if year := c.Query("year"); year != "" {
		if y, err := strconv.Atoi(year); err == nil {
			p.Filters = append(p.Filters, query.Filter{Field: "year", Op: query.OpEq, Value: y})
		}
	}

	items, pag, stats, err := h.svc.List(c.Request.Context(), q, p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, items, pag, stats)
}

// get GET /superadmin/outfits/:id (id or slug)
func (h *Handler) get(c *gin.Context) {
	o, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, o)
}

// getPublished GET /outfits/:slug
func (h *Handler) getPublished(c *gin.Context) {
	o, err := h.svc.GetPublished(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if h.rc != nil {
		key := fmt.Sprintf("outfit:view:%s:%s", o.ID.Hex(), c.ClientIP())
		if first, err := h.rc.OncePerDay(c.Request.Context(), key); err == nil && first {
			go func() { _ = h.svc.IncrementViews(o.ID) }()
		}
	}
	response.OK(c, o)
}

// create POST /superadmin/outfits
func (h *Handler) create(c *gin.Context) {
	var dto CreateOutfitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	o, err := h.svc.Create(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, o)
}

// update PUT /superadmin/outfits/:id
func (h *Handler) update(c *gin.Context) {
	var dto UpdateOutfitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	o, err := h.svc.Update(c.Request.Context(), c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, o)
}

// delete DELETE /superadmin/outfits/:id
func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "outfit deleted")
}
