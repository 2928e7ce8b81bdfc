package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stargazed/core/internal/models"
	"github.com/stargazed/core/internal/pkg/jwt"
)

const testCookie = "sg-token"

func newGateRouter(min models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", Auth(testCookie), RequireRole(min), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": CurrentUserID(c), "role": string(CurrentRole(c))})
	})
	return r
}

func request(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signedToken(t *testing.T, role models.Role) string {
	t.Helper()
	token, err := jwt.Sign("64f1c7e2a9b3d40012345678", string(role), time.Minute)
	require.NoError(t, err)
	return token
}

func TestAuthRejectsMissingCookie(t *testing.T) {
	w := request(t, newGateRouter(models.RoleUser), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	w := request(t, newGateRouter(models.RoleUser), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleRankTable(t *testing.T) {
	tests := []struct {
		min    models.Role
		actual models.Role
		want   int
	}{
		{models.RoleSuperadmin, models.RoleSuperadmin, http.StatusOK},
		{models.RoleSuperadmin, models.RoleAdmin, http.StatusForbidden},
		{models.RoleSuperadmin, models.RoleUser, http.StatusForbidden},
		{models.RoleAdmin, models.RoleSuperadmin, http.StatusOK},
		{models.RoleAdmin, models.RoleAdmin, http.StatusOK},
		{models.RoleAdmin, models.RoleUser, http.StatusForbidden},
		{models.RoleUser, models.RoleUser, http.StatusOK},
	}
	for _, tt := range tests {
		w := request(t, newGateRouter(tt.min), signedToken(t, tt.actual))
		assert.Equal(t, tt.want, w.Code, "min=%s actual=%s", tt.min, tt.actual)
		if tt.want == http.StatusForbidden {
			assert.Contains(t, w.Body.String(), "Forbidden")
		}
	}
}

func TestRequireRoleRejectsUnknownRole(t *testing.T) {
	w := request(t, newGateRouter(models.RoleUser), signedToken(t, models.Role("root")))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOptionalAuthNeverBlocks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/open", OptionalAuth(testCookie), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"authed": IsAuthenticated(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "false")

	req = httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: signedToken(t, models.RoleUser)})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")
}
