package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func withRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) { c.Set("role", role) }
}

func serve(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireRole_AllowsListedRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/pending", withRole("publisher"), RequireRole("publisher", "admin"), okHandler)

	w := serve(router, "/pending")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_RejectsOtherRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/pending", withRole("reader"), RequireRole("publisher", "admin"), okHandler)

	w := serve(router, "/pending")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_MissingRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/pending", RequireRole("admin"), okHandler)

	w := serve(router, "/pending")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAIRateLimiter_EnforcesBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ai", func(c *gin.Context) { c.Set("userID", "u-1") }, AIRateLimiter(3), okHandler)

	for i := 0; i < 3; i++ {
		w := serve(router, "/ai")
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(router, "/ai")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestAIRateLimiter_PerUserBuckets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	limiter := AIRateLimiter(1)
	router.GET("/ai/:user", func(c *gin.Context) { c.Set("userID", c.Param("user")) }, limiter, okHandler)

	assert.Equal(t, http.StatusOK, serve(router, "/ai/u-1").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(router, "/ai/u-1").Code)
	assert.Equal(t, http.StatusOK, serve(router, "/ai/u-2").Code)
}
