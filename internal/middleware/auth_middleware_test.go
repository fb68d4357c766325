package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medm/attendance/internal/app/models"
	"github.com/medm/attendance/internal/app/policy"
	"github.com/medm/attendance/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "attendance.test",
	})

	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("", m.JWTAuth())
	protected.GET("/roles", m.RequireOperation(policy.OpListRoles), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	protected.POST("/lectures/:id/users", m.RequireOperation(policy.OpEnroll), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService
}

func tokenFor(t *testing.T, jwtService *auth.JWTService, roles ...string) string {
	t.Helper()
	user := &models.User{ID: 42, Email: "john@student.edu"}
	for i, name := range roles {
		user.Roles = append(user.Roles, models.Role{ID: int64(i + 1), Name: name})
	}
	token, _, err := jwtService.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func doRequest(router *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	router, jwtService := newTestRouter(t)

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/roles", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/roles", "not-a-bearer-token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/roles", "Bearer abc.def.ghi")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		token := tokenFor(t, jwtService, "ROLE_ADMIN")
		w := doRequest(router, http.MethodGet, "/roles", "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireOperation(t *testing.T) {
	router, jwtService := newTestRouter(t)

	t.Run("role without the operation gets 403", func(t *testing.T) {
		token := tokenFor(t, jwtService, "ROLE_USER")
		w := doRequest(router, http.MethodGet, "/roles", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("enroll is user only", func(t *testing.T) {
		adminToken := tokenFor(t, jwtService, "ROLE_ADMIN")
		w := doRequest(router, http.MethodPost, "/lectures/1/users", "Bearer "+adminToken)
		assert.Equal(t, http.StatusForbidden, w.Code)

		userToken := tokenFor(t, jwtService, "ROLE_USER")
		w = doRequest(router, http.MethodPost, "/lectures/1/users", "Bearer "+userToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("token with no roles gets 403 not 401", func(t *testing.T) {
		token := tokenFor(t, jwtService)
		w := doRequest(router, http.MethodGet, "/roles", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
