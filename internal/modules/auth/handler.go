package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stargazed/core/internal/config"
	"github.com/stargazed/core/internal/middleware"
	"github.com/stargazed/core/internal/pkg/jwt"
	"github.com/stargazed/core/internal/pkg/response"
)

// Handler handles signup, login, logout and session reads.
type Handler struct {
	svc *Service
	cfg *config.AppConfig
}

func NewHandler(svc *Service, cfg *config.AppConfig) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

// RegisterRoutes mounts the auth routes. The session read runs behind the
// supplied auth middleware.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg := api.Group("/auth")
	rg.POST("/signup", h.signup)
	rg.POST("/login", h.login)
	rg.POST("/logout", h.logout)
	rg.GET("/session", authMW, h.session)
}

// signup POST /auth/signup
func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.Signup(c.Request.Context(), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, user)
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	user, err := h.svc.Login(c.Request.Context(), &dto)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			response.Unauthorized(c)
			return
		}
		response.Error(c, err)
		return
	}

	token, err := jwt.Sign(user.ID.Hex(), string(user.Role), h.cfg.TokenTTL.Std())
	if err != nil {
		response.Error(c, err)
		return
	}
	h.setTokenCookie(c, token, int(h.cfg.TokenTTL.Std().Seconds()))
	response.OK(c, user)
}

// logout POST /auth/logout
func (h *Handler) logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	response.Message(c, "logged out")
}

// session GET /auth/session
func (h *Handler) session(c *gin.Context) {
	user, err := h.svc.GetUser(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

func (h *Handler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, token, maxAge, "/", "", h.cfg.SecureCookies(), true)
}
