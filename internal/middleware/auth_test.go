package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"learnhub_backend/internal/model"
	"learnhub_backend/internal/util"
	"learnhub_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func newEngine(roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.InitNop()
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(secret)}
	if len(roles) > 0 {
		handlers = append(handlers, RoleMiddleware(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, "%d", util.GetUserFromContext(c).UserID)
	})
	r.GET("/me", handlers...)
	return r
}

func token(t *testing.T, role model.UserRole, key string, ttl time.Duration) string {
	t.Helper()
	tok, err := util.GenerateJWT(42, role, "Ada", key, ttl)
	require.NoError(t, err)
	return tok
}

func do(r *gin.Engine, target, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newEngine()

	w := do(r, "/me", token(t, model.Student, secret, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "42", w.Body.String())

	w = do(r, "/me?token="+token(t, model.Student, secret, time.Hour), "")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", token(t, model.Student, "other", time.Hour)).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/me", token(t, model.Student, secret, -time.Minute)).Code)
}

func TestRoleMiddleware(t *testing.T) {
	r := newEngine(model.Teacher)

	assert.Equal(t, http.StatusForbidden, do(r, "/me", token(t, model.Student, secret, time.Hour)).Code)
	assert.Equal(t, http.StatusOK, do(r, "/me", token(t, model.Teacher, secret, time.Hour)).Code)
	assert.Equal(t, http.StatusOK, do(r, "/me", token(t, model.Admin, secret, time.Hour)).Code)
}
