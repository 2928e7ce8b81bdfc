package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/stargazed/core/internal/middleware"
	"github.com/stargazed/core/internal/models"
	"github.com/stargazed/core/internal/modules/account"
	"github.com/stargazed/core/internal/modules/auth"
	"github.com/stargazed/core/internal/modules/blog"
	"github.com/stargazed/core/internal/modules/celebrity"
	"github.com/stargazed/core/internal/modules/movie"
	"github.com/stargazed/core/internal/modules/news"
	"github.com/stargazed/core/internal/modules/outfit"
	"github.com/stargazed/core/internal/modules/review"
	"github.com/stargazed/core/internal/modules/user"
	"github.com/stargazed/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db

	var rdb *redis.Client
	if a.rc != nil {
		rdb = a.rc.Raw()
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	appInfo := gin.H{
		"name":    "stargaze-core",
		"version": "1.0.0",
	}

	api := r.Group("/api")
	api.Use(middleware.OptionalAuth(a.cfg.CookieName))
	api.Use(middleware.RateLimit(rdb))
	api.Use(middleware.HTTPCache(rdb, middleware.HTTPCacheOptions{
		TTL:     15 * time.Second,
		Disable: a.cfg.IsDev(),
		SkipPaths: []string{
			"/api/ping",
			"/api/uptime",
			"/api/auth/session",
			"/api/user/profile",
		},
	}))

	// Writes invalidate the whole response cache so public reads converge
	// immediately instead of waiting out the TTL.
	api.Use(func(c *gin.Context) {
		c.Next()
		if c.Request.Method != http.MethodGet && c.Writer.Status() < 400 {
			middleware.PurgeHTTPCache(c, rdb)
		}
	})

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/uptime", func(c *gin.Context) {
		uptimeMs := time.Since(a.startedAt).Milliseconds()
		c.JSON(http.StatusOK, gin.H{
			"timestamp": uptimeMs,
			"humanize":  humanizeDuration(time.Duration(uptimeMs) * time.Millisecond),
		})
	})

	authMW := middleware.Auth(a.cfg.CookieName)
	requireAdmin := []gin.HandlerFunc{authMW, middleware.RequireRole(models.RoleAdmin)}
	requireSuper := []gin.HandlerFunc{authMW, middleware.RequireRole(models.RoleSuperadmin)}

	// Auth & accounts
	auth.NewHandler(auth.NewService(db), a.cfg).RegisterRoutes(api, authMW)
	user.NewHandler(user.NewService(db)).RegisterRoutes(api, authMW)
	account.NewHandler(account.NewService(db)).RegisterRoutes(api, requireSuper...)

	// Content
	celebrity.NewHandler(celebrity.NewService(db), a.rc).RegisterRoutes(api, requireSuper...)
	outfit.NewHandler(outfit.NewService(db), a.rc).RegisterRoutes(api, requireSuper...)
	movie.NewHandler(movie.NewService(db)).RegisterRoutes(api, requireSuper...)
	review.NewHandler(review.NewService(db), a.rc).RegisterRoutes(api, requireSuper...)

	newsHandler := news.NewHandler(news.NewService(db), a.rc)
	newsHandler.RegisterRoutes(api, requireSuper...)
	newsHandler.RegisterAdminRoutes(api, requireAdmin...)

	blogHandler := blog.NewHandler(blog.NewService(db), a.rc)
	blogHandler.RegisterRoutes(api, requireSuper...)
	blogHandler.RegisterAdminRoutes(api, requireAdmin...)
}
